package types

import "time"

type PlanStatus string

const (
	PlanAssigned   PlanStatus = "Assigned"
	PlanInProgress PlanStatus = "In Progress"
	PlanCompleted  PlanStatus = "Completed"
)

type CourseStatus string

const (
	CourseAssigned  CourseStatus = "Assigned"
	CourseCompleted CourseStatus = "Completed"
)

type CoursePriority string

const (
	PriorityHigh   CoursePriority = "High"
	PriorityMedium CoursePriority = "Medium"
	PriorityLow    CoursePriority = "Low"
)

type PlanCourse struct {
	CourseID     int            `json:"course_id" yaml:"course_id"`
	Status       CourseStatus   `json:"status" yaml:"status"`
	Priority     CoursePriority `json:"priority,omitempty" yaml:"priority"`
	DueDate      *time.Time     `json:"dueDate,omitempty" yaml:"due_date"`
	ManagerNotes string         `json:"managerNotes,omitempty" yaml:"manager_notes"`
}

// DevelopmentPlan holds a person's assigned training courses. At most one
// non-Completed plan exists per person; the store enforces the invariant
// at insert time and merge logic preserves it.
type DevelopmentPlan struct {
	ID          int          `json:"plan_id" yaml:"plan_id"`
	PersonID    int          `json:"person_id" yaml:"person_id"`
	Courses     []PlanCourse `json:"courses" yaml:"courses"`
	Status      PlanStatus   `json:"status" yaml:"status"`
	CreatedDate time.Time    `json:"createdDate" yaml:"created_date"`
}

// Active reports whether the plan still has work outstanding.
func (p DevelopmentPlan) Active() bool {
	return p.Status != PlanCompleted
}

// HasCourse reports whether the plan already contains the given course.
func (p DevelopmentPlan) HasCourse(courseID int) bool {
	for _, c := range p.Courses {
		if c.CourseID == courseID {
			return true
		}
	}
	return false
}
