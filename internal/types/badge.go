package types

import "time"

type BadgeStatus string

const (
	BadgeCompliant     BadgeStatus = "Compliant"
	BadgeExpiring      BadgeStatus = "Expiring"
	BadgeMissing       BadgeStatus = "Missing"
	BadgeNotApplicable BadgeStatus = "N/A"
)

// IssuedBadge is a general compliance credential with a hard expiry,
// covering non-test-method skills.
type IssuedBadge struct {
	ID             string    `json:"badge_id" yaml:"badge_id"`
	PersonID       int       `json:"person_id" yaml:"person_id"`
	SkillID        int       `json:"skill_id" yaml:"skill_id"`
	IssueDate      time.Time `json:"issueDate" yaml:"issue_date"`
	ExpiryDate     time.Time `json:"expiryDate" yaml:"expiry_date"`
	VerificationID string    `json:"verificationId" yaml:"verification_id"`
}

// OpenBadge is a verifiable microcredential tied to a course completion.
// It never expires; applying one upgrades the holder's skill level.
type OpenBadge struct {
	ID            string    `json:"badge_id" yaml:"badge_id"`
	PersonID      int       `json:"person_id" yaml:"person_id"`
	CourseID      int       `json:"course_id" yaml:"course_id"`
	SkillID       int       `json:"skill_id" yaml:"skill_id"`
	LevelAchieved int       `json:"levelAchieved" yaml:"level_achieved"` // 1..5
	IssueDate     time.Time `json:"issueDate" yaml:"issue_date"`
	EvidenceURL   string    `json:"evidenceUrl" yaml:"evidence_url"`
}

// ComputedBadge is one cell of the compliance matrix.
type ComputedBadge struct {
	Person Person       `json:"person"`
	Skill  Skill        `json:"skill"`
	Status BadgeStatus  `json:"status"`
	Badge  *IssuedBadge `json:"badge,omitempty"`
}
