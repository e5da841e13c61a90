package services

import (
	"testing"

	"github.com/labtrack/labtrack-backend/internal/types"
)

func TestNataMatrixDefaultsAndCounts(t *testing.T) {
	data := labFixture()
	data.Competencies = []types.Competency{
		{ID: 1, PersonID: 1, SkillID: 101, AuthorizationStatus: types.StatusAuthorized},
		{ID: 2, PersonID: 2, SkillID: 101, AuthorizationStatus: types.StatusAuthorized},
		{ID: 3, PersonID: 1, SkillID: 102, AuthorizationStatus: types.StatusInTraining},
	}
	st := newStore(data)
	ns := NewNataService(st, nopLog())

	matrix := ns.Matrix()
	if len(matrix.Technicians) != 2 {
		t.Fatalf("expected 2 technicians, got %d", len(matrix.Technicians))
	}
	// Sorted by name: Ava before Ben.
	if matrix.Technicians[0].Name != "Ava Stone" {
		t.Fatalf("expected Ava Stone first, got %q", matrix.Technicians[0].Name)
	}
	if len(matrix.Methods) != 3 {
		t.Fatalf("expected 3 methods, got %d", len(matrix.Methods))
	}
	// Category sort puts Concrete (PCC) before Soils & Aggregates, then
	// method code within category.
	if matrix.Methods[0].Name != "Compressive Strength" {
		t.Fatalf("expected Compressive Strength first, got %q", matrix.Methods[0].Name)
	}
	if matrix.Methods[1].Name != "Sieve Analysis" || matrix.Methods[2].Name != "Standard Compaction" {
		t.Fatalf("unexpected soils ordering: %q, %q", matrix.Methods[1].Name, matrix.Methods[2].Name)
	}

	if got := matrix.Statuses[2][102]; got != types.StatusNotAuthorized {
		t.Fatalf("missing competency must default to Not Authorized, got %q", got)
	}
	if matrix.MethodAuthorizedCounts[101] != 2 {
		t.Fatalf("expected 2 authorized for 101, got %d", matrix.MethodAuthorizedCounts[101])
	}
	if matrix.TechnicianAuthorizedCounts[1] != 1 {
		t.Fatalf("expected 1 authorization for Ava, got %d", matrix.TechnicianAuthorizedCounts[1])
	}
}

func TestNataKPIs(t *testing.T) {
	data := labFixture()
	data.Competencies = []types.Competency{
		{ID: 1, PersonID: 1, SkillID: 101, AuthorizationStatus: types.StatusAuthorized},
		{ID: 2, PersonID: 2, SkillID: 101, AuthorizationStatus: types.StatusAuthorized},
		{ID: 3, PersonID: 1, SkillID: 102, AuthorizationStatus: types.StatusInTraining},
	}
	st := newStore(data)
	ns := NewNataService(st, nopLog())

	kpis := ns.KPIs()
	if kpis.TotalTechnicians != 2 || kpis.TotalMethods != 3 {
		t.Fatalf("unexpected totals: %+v", kpis)
	}
	// 2 authorized of 6 cells rounds to 33.
	if kpis.AuthorizationRatePct != 33 {
		t.Fatalf("expected 33%%, got %d", kpis.AuthorizationRatePct)
	}
	if kpis.InTrainingCount != 1 {
		t.Fatalf("expected 1 in training, got %d", kpis.InTrainingCount)
	}
}

func TestNataKPIsNoCells(t *testing.T) {
	data := labFixture()
	for i := range data.People {
		data.People[i].IsTechnician = false
	}
	st := newStore(data)
	ns := NewNataService(st, nopLog())

	kpis := ns.KPIs()
	if kpis.AuthorizationRatePct != 0 {
		t.Fatalf("zero cells must give a 0%% rate, got %d", kpis.AuthorizationRatePct)
	}
}
