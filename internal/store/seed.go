package store

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/types"
)

//go:embed seed.yaml
var seedYAML []byte

// Data is a full entity snapshot used to pre-populate a store, from the
// embedded seed or from a test fixture.
type Data struct {
	Skills                 []types.Skill           `yaml:"skills"`
	Occupations            []types.Occupation      `yaml:"occupations"`
	Departments            []types.Department      `yaml:"departments"`
	People                 []types.Person          `yaml:"people"`
	IssuedBadges           []types.IssuedBadge     `yaml:"issued_badges"`
	Competencies           []types.Competency      `yaml:"competencies"`
	Evidence               []types.Evidence        `yaml:"evidence"`
	Courses                []types.Course          `yaml:"courses"`
	DevelopmentPlans       []types.DevelopmentPlan `yaml:"development_plans"`
	PendingBadges          []types.OpenBadge       `yaml:"pending_badges"`
	ExternalSkills         []types.ExternalSkill   `yaml:"external_skills"`
	ProductivityBenchmarks map[string]float64      `yaml:"productivity_benchmarks"`
}

// NewFromSeed builds a store pre-populated with the embedded dataset.
func NewFromSeed(baseLog *logger.Logger) (*Store, error) {
	var data Data
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return nil, fmt.Errorf("decode seed dataset: %w", err)
	}
	s := NewFromData(baseLog, data)
	s.log.Info("Seed dataset loaded",
		"skills", len(s.skills),
		"occupations", len(s.occupations),
		"people", len(s.people),
		"competencies", len(s.competencies),
		"courses", len(s.courses))
	return s, nil
}

// NewFromData builds a store holding the given snapshot. The Unassigned
// department sentinel is added when the snapshot lacks it.
func NewFromData(baseLog *logger.Logger, data Data) *Store {
	s := New(baseLog)
	s.skills = data.Skills
	s.occupations = data.Occupations
	if len(data.Departments) > 0 {
		s.departments = data.Departments
	}
	s.people = data.People
	s.issuedBadges = data.IssuedBadges
	s.competencies = data.Competencies
	s.evidence = data.Evidence
	s.courses = data.Courses
	s.plans = data.DevelopmentPlans
	s.pendingBadges = data.PendingBadges
	s.externalSkills = data.ExternalSkills
	if data.ProductivityBenchmarks != nil {
		s.benchmarks = data.ProductivityBenchmarks
	}

	hasSentinel := false
	for _, d := range s.departments {
		if d.ID == types.UnassignedDepartmentID {
			hasSentinel = true
			break
		}
	}
	if !hasSentinel {
		s.departments = append([]types.Department{
			{ID: types.UnassignedDepartmentID, Name: "Unassigned"},
		}, s.departments...)
	}
	return s
}
