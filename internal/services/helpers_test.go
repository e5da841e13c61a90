package services

import (
	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

func nopLog() *logger.Logger { return logger.NewNop() }

func newStore(data store.Data) *store.Store {
	return store.NewFromData(nopLog(), data)
}

// labFixture is a compact dataset exercising every derived view: a lab
// cohort with one technician short on skills, courses covering the
// required set, and a spread of NATA competencies.
func labFixture() store.Data {
	return store.Data{
		Skills: []types.Skill{
			{ID: 1, Name: "Data Security", Category: "Compliance"},
			{ID: 2, Name: "SQL", Category: "Database Management"},
			{ID: 10, Name: "AI for Labs", Category: "AI/ML", IsAISkill: true},
			{ID: 101, Name: "Standard Compaction", Category: "Soils & Aggregates", IsNataTestMethod: true, MethodCode: "AS 1289.5.1.1"},
			{ID: 102, Name: "Sieve Analysis", Category: "Soils & Aggregates", IsNataTestMethod: true, MethodCode: "AS 1289.3.6.1"},
			{ID: 103, Name: "Compressive Strength", Category: "Concrete (PCC)", IsNataTestMethod: true, MethodCode: "AS 1012.9"},
		},
		Occupations: []types.Occupation{
			{ID: 1, Title: "Lab Technician", RequiredSkills: []int{1, 10, 101}},
		},
		Departments: []types.Department{
			{ID: 0, Name: "Unassigned"},
			{ID: 6, Name: "Lab Staff"},
		},
		People: []types.Person{
			{ID: 1, Name: "Ava Stone", Job: "Lab Technician", DepartmentID: 6, IsTechnician: true,
				Skills: []types.PersonSkill{{SkillID: 1, Level: 4}}},
			{ID: 2, Name: "Ben Reid", Job: "Lab Technician", DepartmentID: 6, IsTechnician: true,
				Skills: []types.PersonSkill{{SkillID: 1, Level: 5}, {SkillID: 10, Level: 3}}},
		},
		Courses: []types.Course{
			{ID: 1, Title: "Data Security Basics", Provider: "microcredentials.io", ProvidesSkillID: 1},
			{ID: 7, Title: "AI in the Lab", Provider: "microcredentials.io", ProvidesSkillID: 10},
			{ID: 8, Title: "Compaction Fundamentals", Provider: "microcredentials.io", ProvidesSkillID: 101},
		},
	}
}
