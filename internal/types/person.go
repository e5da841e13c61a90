package types

type PersonSkill struct {
	SkillID int `json:"skill_id" yaml:"skill_id"`
	Level   int `json:"level" yaml:"level"` // 1..5
}

// Person.Job duplicates an Occupation.Title rather than holding a foreign
// key; occupation lookups match on the title string. A title rename
// disconnects existing people until their Job is corrected, so the store
// warns when a person is written with a job no occupation carries.
type Person struct {
	ID           int           `json:"person_id" yaml:"person_id"`
	Name         string        `json:"name" yaml:"name"`
	Job          string        `json:"job" yaml:"job"`
	DepartmentID int           `json:"department_id" yaml:"department_id"`
	Skills       []PersonSkill `json:"skills" yaml:"skills"`

	IsTechnician   bool     `json:"isTechnician,omitempty" yaml:"is_technician"`
	TechnicianID   string   `json:"technicianId,omitempty" yaml:"technician_id"`
	Qualifications []string `json:"qualifications,omitempty" yaml:"qualifications"`
	Experience     string   `json:"experience,omitempty" yaml:"experience"`
}

// SkillIDSet returns the ids of the person's possessed skills.
func (p Person) SkillIDSet() map[int]bool {
	out := make(map[int]bool, len(p.Skills))
	for _, s := range p.Skills {
		out[s.SkillID] = true
	}
	return out
}
