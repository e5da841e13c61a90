package types

// Course produces exactly one skill on completion.
type Course struct {
	ID              int    `json:"course_id" yaml:"course_id"`
	Title           string `json:"title" yaml:"title"`
	Provider        string `json:"provider" yaml:"provider"`
	ProvidesSkillID int    `json:"provides_skill_id" yaml:"provides_skill_id"`
}
