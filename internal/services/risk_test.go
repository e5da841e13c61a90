package services

import (
	"strings"
	"testing"
	"time"

	"github.com/labtrack/labtrack-backend/internal/types"
)

func TestMethodRiskTiering(t *testing.T) {
	data := labFixture()
	// 101: two authorized -> no entry. 102: one authorized -> Medium.
	// 103: none authorized -> High.
	data.Competencies = []types.Competency{
		{ID: 1, PersonID: 1, SkillID: 101, AuthorizationStatus: types.StatusAuthorized},
		{ID: 2, PersonID: 2, SkillID: 101, AuthorizationStatus: types.StatusAuthorized},
		{ID: 3, PersonID: 1, SkillID: 102, AuthorizationStatus: types.StatusAuthorized},
		{ID: 4, PersonID: 2, SkillID: 102, AuthorizationStatus: types.StatusInTraining},
		{ID: 5, PersonID: 2, SkillID: 103, AuthorizationStatus: types.StatusNotAuthorized},
	}
	st := newStore(data)
	rs := NewRiskService(st, nopLog())

	risks := rs.MethodRisks()
	if len(risks) != 2 {
		t.Fatalf("expected 2 risk entries, got %d", len(risks))
	}
	// High sorts before Medium.
	if risks[0].Level != types.RiskHigh || risks[0].MethodName != "Compressive Strength" {
		t.Fatalf("expected High for Compressive Strength first, got %+v", risks[0])
	}
	if risks[1].Level != types.RiskMedium || risks[1].MethodName != "Sieve Analysis" {
		t.Fatalf("expected Medium for Sieve Analysis, got %+v", risks[1])
	}
	if !strings.Contains(risks[1].Details, "Ava Stone") {
		t.Fatalf("Medium risk must name the single authorized technician: %q", risks[1].Details)
	}
	for _, r := range risks {
		if r.MethodName == "Standard Compaction" {
			t.Fatal("two authorized technicians must produce no risk entry")
		}
	}
}

func TestMethodRisksSortedAlphabeticallyWithinTier(t *testing.T) {
	st := newStore(labFixture()) // no competencies: every method is High
	rs := NewRiskService(st, nopLog())

	risks := rs.MethodRisks()
	if len(risks) != 3 {
		t.Fatalf("expected 3 High entries, got %d", len(risks))
	}
	for i := 1; i < len(risks); i++ {
		if risks[i].MethodName < risks[i-1].MethodName {
			t.Fatalf("entries not alphabetical: %q before %q", risks[i-1].MethodName, risks[i].MethodName)
		}
	}
}

func TestExpiryForecastBuckets(t *testing.T) {
	now := time.Now()
	assessed := func(monthsUntilExpiry int) *time.Time {
		// expiry = assessed + 2 years, so walk back from the target.
		d := now.AddDate(-2, monthsUntilExpiry, 0)
		return &d
	}
	data := labFixture()
	data.Competencies = []types.Competency{
		{ID: 1, PersonID: 1, SkillID: 101, AuthorizationStatus: types.StatusAuthorized, CompetencyAssessedDate: assessed(2)},
		{ID: 2, PersonID: 2, SkillID: 101, AuthorizationStatus: types.StatusAuthorized, CompetencyAssessedDate: assessed(4)},
		{ID: 3, PersonID: 1, SkillID: 102, AuthorizationStatus: types.StatusAuthorized, CompetencyAssessedDate: assessed(8)},
		// Expired: excluded from the forecast.
		{ID: 4, PersonID: 2, SkillID: 102, AuthorizationStatus: types.StatusAuthorized, CompetencyAssessedDate: assessed(-1)},
		// Not authorized: ignored regardless of dates.
		{ID: 5, PersonID: 2, SkillID: 103, AuthorizationStatus: types.StatusInTraining, CompetencyAssessedDate: assessed(2)},
		// Authorized but never assessed: ignored.
		{ID: 6, PersonID: 1, SkillID: 103, AuthorizationStatus: types.StatusAuthorized},
	}
	st := newStore(data)
	rs := NewRiskService(st, nopLog())

	buckets := rs.ExpiryForecast()
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	if buckets[0].Expiring != 1 {
		t.Fatalf("0-3 months: expected 1, got %d", buckets[0].Expiring)
	}
	if buckets[1].Expiring != 1 {
		t.Fatalf("3-6 months: expected 1, got %d", buckets[1].Expiring)
	}
	if buckets[2].Expiring != 1 {
		t.Fatalf("6-12 months: expected 1, got %d", buckets[2].Expiring)
	}
}
