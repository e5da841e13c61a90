package store

import (
	"fmt"

	"github.com/labtrack/labtrack-backend/internal/types"
)

// Plan primitives. The merge logic that keeps plans idempotent lives in
// services.PlanService; the store only guards the structural invariant
// that a person never holds two active plans at once.

func (s *Store) Plans() []types.DevelopmentPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.DevelopmentPlan, len(s.plans))
	for i, p := range s.plans {
		out[i] = copyPlan(p)
	}
	return out
}

func (s *Store) PlansForPerson(personID int) []types.DevelopmentPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []types.DevelopmentPlan
	for _, p := range s.plans {
		if p.PersonID == personID {
			out = append(out, copyPlan(p))
		}
	}
	return out
}

// ActivePlanForPerson returns the person's non-Completed plan, if any.
func (s *Store) ActivePlanForPerson(personID int) (types.DevelopmentPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.plans {
		if p.PersonID == personID && p.Active() {
			return copyPlan(p), true
		}
	}
	return types.DevelopmentPlan{}, false
}

// InsertPlan assigns the next id and appends. Inserting an active plan for
// a person who already has one violates the one-active-plan invariant and
// is rejected; callers merge into the existing plan instead.
func (s *Store) InsertPlan(plan types.DevelopmentPlan) (types.DevelopmentPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if plan.Active() {
		for _, existing := range s.plans {
			if existing.PersonID == plan.PersonID && existing.Active() {
				return types.DevelopmentPlan{}, fmt.Errorf(
					"person %d already has active plan %d", plan.PersonID, existing.ID)
			}
		}
	}
	maxID := 0
	for _, existing := range s.plans {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	plan.ID = maxID + 1
	s.plans = append(s.plans, copyPlan(plan))
	return plan, nil
}

// SavePlan replaces the stored plan with the same id.
func (s *Store) SavePlan(plan types.DevelopmentPlan) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plans {
		if s.plans[i].ID == plan.ID {
			s.plans[i] = copyPlan(plan)
			return true
		}
	}
	s.log.Warn("SavePlan: unknown plan", "plan_id", plan.ID)
	return false
}

func copyPlan(p types.DevelopmentPlan) types.DevelopmentPlan {
	courses := make([]types.PlanCourse, len(p.Courses))
	for i, c := range p.Courses {
		if c.DueDate != nil {
			due := *c.DueDate
			c.DueDate = &due
		}
		courses[i] = c
	}
	p.Courses = courses
	return p
}
