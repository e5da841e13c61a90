package types

import "time"

type AuthorizationStatus string

const (
	StatusAuthorized     AuthorizationStatus = "Authorized"
	StatusInTraining     AuthorizationStatus = "In Training"
	StatusNotAuthorized  AuthorizationStatus = "Not Authorized"
	StatusSupervisedOnly AuthorizationStatus = "Supervised Use Only"
)

// Competency is a person's authorization record for one NATA test method.
// One record per (person, skill) pair; the store rejects duplicates.
type Competency struct {
	ID                    int                 `json:"competency_id" yaml:"competency_id"`
	PersonID              int                 `json:"person_id" yaml:"person_id"`
	SkillID               int                 `json:"skill_id" yaml:"skill_id"`
	TrainingCompleteDate  *time.Time          `json:"trainingCompleteDate" yaml:"training_complete_date"`
	CompetencyAssessedDate *time.Time         `json:"competencyAssessedDate" yaml:"competency_assessed_date"`
	AssessedBy            string              `json:"assessedBy,omitempty" yaml:"assessed_by"`
	AuthorizationStatus   AuthorizationStatus `json:"authorizationStatus" yaml:"authorization_status"`
}

type Evidence struct {
	ID           int       `json:"evidence_id" yaml:"evidence_id"`
	CompetencyID int       `json:"competency_id" yaml:"competency_id"`
	Date         time.Time `json:"date" yaml:"date"`
	Record       string    `json:"record" yaml:"record"`
	Author       string    `json:"author" yaml:"author"`
}
