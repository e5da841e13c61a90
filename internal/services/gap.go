package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

// GapService compares possessed skills against a target skill set and
// turns identified gaps into course assignments.
type GapService interface {
	Analyze(possessed map[int]bool, required []types.Skill) types.GapAnalysisResult
	AnalyzeOccupation(personID, occupationID int) (types.GapAnalysisResult, error)
	AssignGapCourses(personID int, gaps []types.Skill) (int, error)
	AggregateSkills() []types.SkillAggregate
}

type gapService struct {
	store *store.Store
	plans PlanService
	log   *logger.Logger
}

func NewGapService(st *store.Store, plans PlanService, baseLog *logger.Logger) GapService {
	return &gapService{
		store: st,
		plans: plans,
		log:   baseLog.With("service", "GapService"),
	}
}

// Analyze is pure: required skills present in the possessed set are
// matches, the rest are gaps. An empty required set is a vacuous full
// match at 100%, never a division error.
func (gs *gapService) Analyze(possessed map[int]bool, required []types.Skill) types.GapAnalysisResult {
	result := types.GapAnalysisResult{
		MatchingSkills: []types.Skill{},
		SkillGaps:      []types.Skill{},
	}
	for _, skill := range required {
		if possessed[skill.ID] {
			result.MatchingSkills = append(result.MatchingSkills, skill)
		} else {
			result.SkillGaps = append(result.SkillGaps, skill)
		}
	}
	if len(required) == 0 {
		result.MatchPercentage = 100
		return result
	}
	result.MatchPercentage = int(math.Round(float64(len(result.MatchingSkills)) / float64(len(required)) * 100))
	return result
}

func (gs *gapService) AnalyzeOccupation(personID, occupationID int) (types.GapAnalysisResult, error) {
	person, ok := gs.store.Person(personID)
	if !ok {
		return types.GapAnalysisResult{}, fmt.Errorf("person %d not found", personID)
	}
	occ, ok := gs.store.Occupation(occupationID)
	if !ok {
		return types.GapAnalysisResult{}, fmt.Errorf("occupation %d not found", occupationID)
	}
	required := make([]types.Skill, 0, len(occ.RequiredSkills))
	for _, id := range occ.RequiredSkills {
		if skill, ok := gs.store.Skill(id); ok {
			required = append(required, skill)
		} else {
			gs.log.Warn("Occupation references unknown skill", "occupation_id", occupationID, "skill_id", id)
		}
	}
	return gs.Analyze(person.SkillIDSet(), required), nil
}

// AssignGapCourses maps each gap skill to every course that provides it
// and merges the lot into the person's plan. Returns the number of
// courses actually added, which can be lower than the candidate count
// when the active plan already holds some of them.
func (gs *gapService) AssignGapCourses(personID int, gaps []types.Skill) (int, error) {
	gapIDs := make(map[int]bool, len(gaps))
	for _, skill := range gaps {
		gapIDs[skill.ID] = true
	}
	var courseIDs []int
	for _, course := range gs.store.Courses() {
		if gapIDs[course.ProvidesSkillID] {
			courseIDs = append(courseIDs, course.ID)
		}
	}
	if len(courseIDs) == 0 {
		gs.log.Info("No courses cover the identified gaps", "person_id", personID, "gaps", len(gaps))
		return 0, nil
	}
	return gs.plans.CreatePlan(personID, courseIDs)
}

// AggregateSkills reports holder count and mean proficiency per skill,
// omitting skills nobody holds. Ordered by holder count descending,
// name ascending on ties.
func (gs *gapService) AggregateSkills() []types.SkillAggregate {
	type stat struct {
		count      int
		totalLevel int
	}
	stats := make(map[int]stat)
	for _, person := range gs.store.People() {
		for _, ps := range person.Skills {
			s := stats[ps.SkillID]
			s.count++
			s.totalLevel += ps.Level
			stats[ps.SkillID] = s
		}
	}
	var out []types.SkillAggregate
	for _, skill := range gs.store.Skills() {
		s, ok := stats[skill.ID]
		if !ok {
			continue
		}
		out = append(out, types.SkillAggregate{
			Skill:          skill,
			EmployeeCount:  s.count,
			AvgProficiency: float64(s.totalLevel) / float64(s.count),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EmployeeCount != out[j].EmployeeCount {
			return out[i].EmployeeCount > out[j].EmployeeCount
		}
		return out[i].Skill.Name < out[j].Skill.Name
	})
	return out
}
