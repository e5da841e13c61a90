package types

// GapAnalysisResult compares a person's possessed skills against a target
// skill set. MatchPercentage is 100 when the target set is empty (vacuous
// full match), never a division error.
type GapAnalysisResult struct {
	MatchingSkills  []Skill `json:"matchingSkills"`
	SkillGaps       []Skill `json:"skillGaps"`
	MatchPercentage int     `json:"matchPercentage"`
}

type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// MethodRisk flags a NATA test method with too few authorized technicians.
type MethodRisk struct {
	Level      RiskLevel `json:"level"`
	MethodName string    `json:"methodName"`
	Details    string    `json:"details"`
}

// ExpiryBucket counts authorized competencies whose 2-year validity lapses
// within the named window.
type ExpiryBucket struct {
	Name     string `json:"name"`
	Expiring int    `json:"expiring"`
}
