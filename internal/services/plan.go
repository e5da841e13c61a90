package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

// CourseFieldsUpdate carries optional per-course plan fields. Nil means
// leave the field alone; course status is never touched here.
type CourseFieldsUpdate struct {
	Priority     *types.CoursePriority `json:"priority"`
	DueDate      *time.Time            `json:"dueDate"`
	ManagerNotes *string               `json:"managerNotes"`
}

// PlanService owns development-plan lifecycle: idempotent merges into
// the single active plan per person, automatic gap-driven creation, and
// applying badge completions back onto plans and skill levels.
type PlanService interface {
	CreatePlan(personID int, courseIDs []int) (int, error)
	AutoCreatePlan(personID int) (int, error)
	SyncBadges() (types.BadgeSyncReport, error)
	UpdateCourseFields(planID, courseID int, upd CourseFieldsUpdate) error
	HubStats() types.HubStats
	PlanDetails() []types.PlanDetail
}

type planService struct {
	store *store.Store
	log   *logger.Logger
}

func NewPlanService(st *store.Store, baseLog *logger.Logger) PlanService {
	return &planService{
		store: st,
		log:   baseLog.With("service", "PlanService"),
	}
}

// CreatePlan merges the given courses into the person's active plan, or
// opens a new one. Re-adding a course already in the active plan is a
// no-op for that course. Returns the number of courses actually added.
func (ps *planService) CreatePlan(personID int, courseIDs []int) (int, error) {
	if len(courseIDs) == 0 {
		return 0, nil
	}
	if _, ok := ps.store.Person(personID); !ok {
		return 0, fmt.Errorf("person %d not found", personID)
	}

	plan, exists := ps.store.ActivePlanForPerson(personID)
	if !exists {
		plan = types.DevelopmentPlan{
			PersonID:    personID,
			Status:      types.PlanAssigned,
			CreatedDate: time.Now(),
		}
	}

	added := 0
	for _, courseID := range courseIDs {
		if plan.HasCourse(courseID) {
			continue
		}
		if _, ok := ps.store.Course(courseID); !ok {
			ps.log.Warn("CreatePlan: unknown course skipped", "person_id", personID, "course_id", courseID)
			continue
		}
		plan.Courses = append(plan.Courses, types.PlanCourse{
			CourseID: courseID,
			Status:   types.CourseAssigned,
		})
		added++
	}
	if added == 0 {
		return 0, nil
	}

	// New work resets the plan to Assigned even mid-progress.
	plan.Status = types.PlanAssigned
	if exists {
		ps.store.SavePlan(plan)
	} else {
		inserted, err := ps.store.InsertPlan(plan)
		if err != nil {
			return 0, fmt.Errorf("insert plan: %w", err)
		}
		plan = inserted
	}
	ps.log.Info("Plan updated", "person_id", personID, "plan_id", plan.ID, "courses_added", added)
	return added, nil
}

// AutoCreatePlan resolves the person's occupation by job title, finds
// courses covering the missing required skills, and merges them in.
// Courses already present in any of the person's plans, completed ones
// included, are never re-assigned.
func (ps *planService) AutoCreatePlan(personID int) (int, error) {
	person, ok := ps.store.Person(personID)
	if !ok {
		return 0, fmt.Errorf("person %d not found", personID)
	}
	occ, ok := ps.store.OccupationByTitle(person.Job)
	if !ok {
		ps.log.Warn("AutoCreatePlan: no occupation matches job title", "person_id", personID, "job", person.Job)
		return 0, nil
	}

	possessed := person.SkillIDSet()
	missing := make(map[int]bool)
	for _, skillID := range occ.RequiredSkills {
		if !possessed[skillID] {
			missing[skillID] = true
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	assigned := make(map[int]bool)
	for _, plan := range ps.store.PlansForPerson(personID) {
		for _, c := range plan.Courses {
			assigned[c.CourseID] = true
		}
	}

	var courseIDs []int
	seen := make(map[int]bool)
	for _, course := range ps.store.Courses() {
		if !missing[course.ProvidesSkillID] || assigned[course.ID] || seen[course.ID] {
			continue
		}
		seen[course.ID] = true
		courseIDs = append(courseIDs, course.ID)
	}
	if len(courseIDs) == 0 {
		return 0, nil
	}
	return ps.CreatePlan(personID, courseIDs)
}

// SyncBadges applies every pending open badge: the matching plan course
// is marked Completed and the holder's skill level upserted. A badge
// whose course sits in none of the person's plans still applies its
// skill update; the skipped plan effect is reported as a warning rather
// than papered over with an invented plan.
func (ps *planService) SyncBadges() (types.BadgeSyncReport, error) {
	pending := ps.store.PendingBadges()
	report := types.BadgeSyncReport{}
	if len(pending) == 0 {
		return report, nil
	}

	for _, badge := range pending {
		report.Processed++

		plan, found := ps.planWithCourse(badge.PersonID, badge.CourseID)
		if found {
			for i := range plan.Courses {
				if plan.Courses[i].CourseID == badge.CourseID {
					plan.Courses[i].Status = types.CourseCompleted
				}
			}
			plan.Status = planStatusFromCourses(plan.Courses)
			ps.store.SavePlan(plan)
			report.PlansUpdated++
		} else {
			msg := fmt.Sprintf("badge %s: course %d not in any plan for person %d, skill update applied anyway",
				badge.ID, badge.CourseID, badge.PersonID)
			ps.log.Warn("SyncBadges: plan update skipped", "badge_id", badge.ID,
				"person_id", badge.PersonID, "course_id", badge.CourseID)
			report.Warnings = append(report.Warnings, msg)
		}

		if ps.store.UpsertPersonSkill(badge.PersonID, badge.SkillID, badge.LevelAchieved) {
			report.SkillsUpdated++
		} else {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("badge %s: person %d not found, skill update dropped", badge.ID, badge.PersonID))
		}
	}

	ps.store.CommitOpenBadges(pending)
	ps.log.Info("Badge sync complete", "processed", report.Processed,
		"plans_updated", report.PlansUpdated, "warnings", len(report.Warnings))
	return report, nil
}

func (ps *planService) planWithCourse(personID, courseID int) (types.DevelopmentPlan, bool) {
	for _, plan := range ps.store.PlansForPerson(personID) {
		if plan.HasCourse(courseID) {
			return plan, true
		}
	}
	return types.DevelopmentPlan{}, false
}

func planStatusFromCourses(courses []types.PlanCourse) types.PlanStatus {
	for _, c := range courses {
		if c.Status != types.CourseCompleted {
			return types.PlanInProgress
		}
	}
	return types.PlanCompleted
}

// UpdateCourseFields shallow-merges priority, due date, and notes on a
// single plan entry without touching its status.
func (ps *planService) UpdateCourseFields(planID, courseID int, upd CourseFieldsUpdate) error {
	for _, plan := range ps.store.Plans() {
		if plan.ID != planID {
			continue
		}
		for i := range plan.Courses {
			if plan.Courses[i].CourseID != courseID {
				continue
			}
			if upd.Priority != nil {
				plan.Courses[i].Priority = *upd.Priority
			}
			if upd.DueDate != nil {
				due := *upd.DueDate
				plan.Courses[i].DueDate = &due
			}
			if upd.ManagerNotes != nil {
				plan.Courses[i].ManagerNotes = *upd.ManagerNotes
			}
			ps.store.SavePlan(plan)
			return nil
		}
		return fmt.Errorf("course %d not in plan %d", courseID, planID)
	}
	return fmt.Errorf("plan %d not found", planID)
}

// HubStats folds over active plans only.
func (ps *planService) HubStats() types.HubStats {
	stats := types.HubStats{}
	now := time.Now()
	for _, plan := range ps.store.Plans() {
		if !plan.Active() {
			continue
		}
		for _, c := range plan.Courses {
			stats.TotalCourses++
			if c.Status == types.CourseCompleted {
				stats.CompletedCourses++
			} else if c.DueDate != nil && c.DueDate.Before(now) {
				stats.OverdueCourses++
			}
		}
	}
	if stats.TotalCourses > 0 {
		stats.CompletionRatePct = int(math.Round(float64(stats.CompletedCourses) / float64(stats.TotalCourses) * 100))
	}
	return stats
}

// PlanDetails joins every plan with its person and per-course titles,
// skill names, and overdue flags, ordered by person name then plan id.
func (ps *planService) PlanDetails() []types.PlanDetail {
	now := time.Now()
	var out []types.PlanDetail
	for _, plan := range ps.store.Plans() {
		person, ok := ps.store.Person(plan.PersonID)
		if !ok {
			ps.log.Warn("PlanDetails: plan references unknown person", "plan_id", plan.ID, "person_id", plan.PersonID)
			continue
		}
		detail := types.PlanDetail{Plan: plan, Person: person}
		for _, c := range plan.Courses {
			dc := types.PlanCourseDetail{PlanCourse: c}
			if course, ok := ps.store.Course(c.CourseID); ok {
				dc.CourseTitle = course.Title
				dc.Provider = course.Provider
				if skill, ok := ps.store.Skill(course.ProvidesSkillID); ok {
					dc.SkillName = skill.Name
				}
			}
			dc.Overdue = c.Status == types.CourseAssigned && c.DueDate != nil && c.DueDate.Before(now)
			detail.Courses = append(detail.Courses, dc)
		}
		out = append(out, detail)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Person.Name != out[j].Person.Name {
			return out[i].Person.Name < out[j].Person.Name
		}
		return out[i].Plan.ID < out[j].Plan.ID
	})
	return out
}
