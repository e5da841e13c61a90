package services

import (
	"strings"
	"testing"
	"time"

	"github.com/labtrack/labtrack-backend/internal/types"
)

func TestCreatePlanIdempotentMerge(t *testing.T) {
	st := newStore(labFixture())
	plans := NewPlanService(st, nopLog())

	added, err := plans.CreatePlan(1, []int{7})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if added != 1 {
		t.Fatalf("expected 1 added, got %d", added)
	}

	added, err = plans.CreatePlan(1, []int{7})
	if err != nil {
		t.Fatalf("CreatePlan repeat: %v", err)
	}
	if added != 0 {
		t.Fatalf("re-adding the same course must be a no-op, got %d", added)
	}

	plan, _ := st.ActivePlanForPerson(1)
	count := 0
	for _, c := range plan.Courses {
		if c.CourseID == 7 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one entry for course 7, got %d", count)
	}
}

func TestCreatePlanEmptyCourseList(t *testing.T) {
	st := newStore(labFixture())
	plans := NewPlanService(st, nopLog())
	added, err := plans.CreatePlan(1, nil)
	if err != nil || added != 0 {
		t.Fatalf("empty course list must be a no-op, got %d, %v", added, err)
	}
}

func TestCreatePlanResetsStatusToAssigned(t *testing.T) {
	st := newStore(labFixture())
	plans := NewPlanService(st, nopLog())

	if _, err := plans.CreatePlan(1, []int{7}); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	plan, _ := st.ActivePlanForPerson(1)
	plan.Status = types.PlanInProgress
	st.SavePlan(plan)

	if _, err := plans.CreatePlan(1, []int{8}); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	plan, _ = st.ActivePlanForPerson(1)
	if plan.Status != types.PlanAssigned {
		t.Fatalf("new work must reset status to Assigned, got %q", plan.Status)
	}
}

func TestAutoCreatePlanEndToEnd(t *testing.T) {
	st := newStore(labFixture())
	plans := NewPlanService(st, nopLog())

	// Ava holds skill 1 of required {1, 10, 101}; courses 7 and 8 cover
	// the missing two.
	created, err := plans.AutoCreatePlan(1)
	if err != nil {
		t.Fatalf("AutoCreatePlan: %v", err)
	}
	if created != 2 {
		t.Fatalf("expected 2 courses assigned, got %d", created)
	}
	plan, ok := st.ActivePlanForPerson(1)
	if !ok {
		t.Fatal("expected an active plan")
	}
	if plan.Status != types.PlanAssigned {
		t.Fatalf("expected Assigned, got %q", plan.Status)
	}
	for _, c := range plan.Courses {
		if c.Status != types.CourseAssigned {
			t.Fatalf("expected all courses Assigned, got %q", c.Status)
		}
	}

	// No state change: a second call assigns nothing.
	created, err = plans.AutoCreatePlan(1)
	if err != nil {
		t.Fatalf("AutoCreatePlan repeat: %v", err)
	}
	if created != 0 {
		t.Fatalf("expected 0 on repeat, got %d", created)
	}
}

func TestAutoCreatePlanSkipsCompletedCourses(t *testing.T) {
	data := labFixture()
	// Ava already finished the AI course in an old, completed plan.
	data.DevelopmentPlans = []types.DevelopmentPlan{{
		ID: 1, PersonID: 1, Status: types.PlanCompleted,
		Courses: []types.PlanCourse{{CourseID: 7, Status: types.CourseCompleted}},
	}}
	st := newStore(data)
	plans := NewPlanService(st, nopLog())

	created, err := plans.AutoCreatePlan(1)
	if err != nil {
		t.Fatalf("AutoCreatePlan: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected only the compaction course, got %d", created)
	}
	plan, _ := st.ActivePlanForPerson(1)
	if plan.HasCourse(7) {
		t.Fatal("a course from a completed plan must not be re-assigned")
	}
}

func TestAutoCreatePlanUnknownJob(t *testing.T) {
	data := labFixture()
	data.People = append(data.People, types.Person{ID: 3, Name: "Drifter", Job: "Retired Title", DepartmentID: 0})
	st := newStore(data)
	plans := NewPlanService(st, nopLog())

	created, err := plans.AutoCreatePlan(3)
	if err != nil {
		t.Fatalf("unknown job should fail soft: %v", err)
	}
	if created != 0 {
		t.Fatalf("expected 0, got %d", created)
	}
}

func TestSyncBadgesScenario(t *testing.T) {
	st := newStore(labFixture())
	plans := NewPlanService(st, nopLog())

	if _, err := plans.CreatePlan(1, []int{7}); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	st.QueuePendingBadge(types.OpenBadge{
		ID: "badge-1", PersonID: 1, CourseID: 7, SkillID: 10, LevelAchieved: 3,
		IssueDate: time.Now(),
	})

	report, err := plans.SyncBadges()
	if err != nil {
		t.Fatalf("SyncBadges: %v", err)
	}
	if report.Processed != 1 || report.PlansUpdated != 1 || report.SkillsUpdated != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(report.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", report.Warnings)
	}

	// The only course completed, so the plan is Completed.
	found := false
	for _, plan := range st.PlansForPerson(1) {
		if plan.HasCourse(7) {
			found = true
			if plan.Status != types.PlanCompleted {
				t.Fatalf("expected plan Completed, got %q", plan.Status)
			}
			if plan.Courses[0].Status != types.CourseCompleted {
				t.Fatalf("expected course Completed, got %q", plan.Courses[0].Status)
			}
		}
	}
	if !found {
		t.Fatal("plan disappeared during sync")
	}

	person, _ := st.Person(1)
	level, ok := personLevel(person, 10)
	if !ok || level != 3 {
		t.Fatalf("expected skill 10 at level 3, got %d (present=%v)", level, ok)
	}

	if len(st.PendingBadges()) != 0 {
		t.Fatal("pending queue should be drained")
	}
	if len(st.OpenBadges()) != 1 {
		t.Fatal("processed badge should be committed to the open badge log")
	}
}

func TestSyncBadgesPartialCompletionMarksInProgress(t *testing.T) {
	st := newStore(labFixture())
	plans := NewPlanService(st, nopLog())

	if _, err := plans.CreatePlan(1, []int{7, 8}); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	st.QueuePendingBadge(types.OpenBadge{ID: "badge-2", PersonID: 1, CourseID: 7, SkillID: 10, LevelAchieved: 4})

	if _, err := plans.SyncBadges(); err != nil {
		t.Fatalf("SyncBadges: %v", err)
	}
	plan, ok := st.ActivePlanForPerson(1)
	if !ok {
		t.Fatal("plan should still be active")
	}
	if plan.Status != types.PlanInProgress {
		t.Fatalf("expected In Progress, got %q", plan.Status)
	}
}

func TestSyncBadgesNoPlanAsymmetry(t *testing.T) {
	st := newStore(labFixture())
	plans := NewPlanService(st, nopLog())

	// No plan holds course 8, but the skill update still applies.
	st.QueuePendingBadge(types.OpenBadge{ID: "badge-3", PersonID: 2, CourseID: 8, SkillID: 101, LevelAchieved: 2})

	report, err := plans.SyncBadges()
	if err != nil {
		t.Fatalf("SyncBadges: %v", err)
	}
	if report.PlansUpdated != 0 || report.SkillsUpdated != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "not in any plan") {
		t.Fatalf("expected a skipped-plan warning, got %v", report.Warnings)
	}
	person, _ := st.Person(2)
	if level, ok := personLevel(person, 101); !ok || level != 2 {
		t.Fatalf("skill update must apply despite missing plan, got %d (present=%v)", level, ok)
	}
}

func TestUpdateCourseFields(t *testing.T) {
	st := newStore(labFixture())
	plans := NewPlanService(st, nopLog())

	if _, err := plans.CreatePlan(1, []int{7}); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	plan, _ := st.ActivePlanForPerson(1)

	due := time.Now().AddDate(0, 1, 0)
	priority := types.PriorityHigh
	notes := "Audit prerequisite."
	err := plans.UpdateCourseFields(plan.ID, 7, CourseFieldsUpdate{
		Priority:     &priority,
		DueDate:      &due,
		ManagerNotes: &notes,
	})
	if err != nil {
		t.Fatalf("UpdateCourseFields: %v", err)
	}

	plan, _ = st.ActivePlanForPerson(1)
	c := plan.Courses[0]
	if c.Priority != types.PriorityHigh || c.ManagerNotes != notes || c.DueDate == nil {
		t.Fatalf("fields not merged: %+v", c)
	}
	if c.Status != types.CourseAssigned {
		t.Fatalf("status must not change, got %q", c.Status)
	}

	if err := plans.UpdateCourseFields(plan.ID, 99, CourseFieldsUpdate{}); err == nil {
		t.Fatal("expected error for unknown course")
	}
	if err := plans.UpdateCourseFields(999, 7, CourseFieldsUpdate{}); err == nil {
		t.Fatal("expected error for unknown plan")
	}
}

func TestHubStats(t *testing.T) {
	overdue := time.Now().AddDate(0, 0, -1)
	data := labFixture()
	data.DevelopmentPlans = []types.DevelopmentPlan{
		{ID: 1, PersonID: 1, Status: types.PlanInProgress, Courses: []types.PlanCourse{
			{CourseID: 7, Status: types.CourseCompleted},
			{CourseID: 8, Status: types.CourseAssigned, DueDate: &overdue},
		}},
		// Completed plans are excluded from hub stats.
		{ID: 2, PersonID: 2, Status: types.PlanCompleted, Courses: []types.PlanCourse{
			{CourseID: 1, Status: types.CourseCompleted},
		}},
	}
	st := newStore(data)
	plans := NewPlanService(st, nopLog())

	stats := plans.HubStats()
	if stats.TotalCourses != 2 || stats.CompletedCourses != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.CompletionRatePct != 50 {
		t.Fatalf("expected 50%%, got %d", stats.CompletionRatePct)
	}
	if stats.OverdueCourses != 1 {
		t.Fatalf("expected 1 overdue, got %d", stats.OverdueCourses)
	}
}

func TestPlanDetailsJoin(t *testing.T) {
	st := newStore(labFixture())
	plans := NewPlanService(st, nopLog())

	if _, err := plans.CreatePlan(1, []int{7}); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	details := plans.PlanDetails()
	if len(details) != 1 {
		t.Fatalf("expected 1 plan detail, got %d", len(details))
	}
	d := details[0]
	if d.Person.ID != 1 {
		t.Fatalf("expected person 1, got %d", d.Person.ID)
	}
	if d.Courses[0].CourseTitle != "AI in the Lab" || d.Courses[0].SkillName != "AI for Labs" {
		t.Fatalf("join incomplete: %+v", d.Courses[0])
	}
}

func personLevel(p types.Person, skillID int) (int, bool) {
	for _, s := range p.Skills {
		if s.SkillID == skillID {
			return s.Level, true
		}
	}
	return 0, false
}
