package types

// Skill is either a general competency or a regulated NATA test method.
// The two kinds logically partition the skill set: test methods carry a
// method code and are tracked through Competency records rather than
// expiry-bearing badges.
type Skill struct {
	ID               int    `json:"skill_id" yaml:"skill_id"`
	Name             string `json:"name" yaml:"name"`
	Category         string `json:"category" yaml:"category"`
	IsAISkill        bool   `json:"isAiSkill,omitempty" yaml:"is_ai_skill"`
	IsNataTestMethod bool   `json:"isNataTestMethod,omitempty" yaml:"is_nata_test_method"`
	MethodCode       string `json:"methodCode,omitempty" yaml:"method_code"`
}

// ExternalSkill is a skill candidate suggested from an external taxonomy
// (e.g. an ESCO lookup). It is resolved against the internal skill list by
// case-insensitive label match when an occupation is created.
type ExternalSkill struct {
	URI         string `json:"uri" yaml:"uri"`
	Label       string `json:"preferredLabel" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	SkillType   string `json:"skillType" yaml:"skill_type"`
}
