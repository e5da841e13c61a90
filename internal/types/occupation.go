package types

type Occupation struct {
	ID             int    `json:"occupation_id" yaml:"occupation_id"`
	Title          string `json:"title" yaml:"title"`
	Description    string `json:"description" yaml:"description"`
	RequiredSkills []int  `json:"required_skills" yaml:"required_skills"`
}
