package services

import (
	"math"
	"strings"
	"testing"

	"github.com/labtrack/labtrack-backend/internal/types"
)

func TestAnalyzeProjectStaffingFTE(t *testing.T) {
	data := labFixture()
	data.ProductivityBenchmarks = map[string]float64{"Earthworks": 10}
	st := newStore(data)
	rs := NewReadinessService(st, nopLog())

	analysis := rs.AnalyzeProject(ProjectAnalysisRequest{
		ProjectName: "Highway Upgrade",
		Staffing: []ProjectStaffingInput{
			{Category: "Earthworks", EstTests: 955, MainTests: "Field Density, CBR", StaffType: "Field Tech"},
			{Category: "Unbenchmarked", EstTests: 400, StaffType: "Lab Tech"},
		},
	})

	if len(analysis.StaffingTable) != 2 {
		t.Fatalf("expected 2 staffing rows, got %d", len(analysis.StaffingTable))
	}
	row := analysis.StaffingTable[0]
	want := 955.0 / (10 * 80)
	if math.Abs(row.StaffRequiredFTE-want) > 1e-9 {
		t.Fatalf("expected FTE %f, got %f", want, row.StaffRequiredFTE)
	}
	// Missing benchmark falls back to the default rate.
	if analysis.StaffingTable[1].Productivity != defaultProductivity {
		t.Fatalf("expected default productivity, got %f", analysis.StaffingTable[1].Productivity)
	}
}

func TestAnalyzeProjectRiskGrading(t *testing.T) {
	data := labFixture()
	data.Competencies = []types.Competency{
		// 101: two authorized -> Low. 102: one authorized -> Medium.
		// 103: none authorized, one in training -> High.
		{ID: 1, PersonID: 1, SkillID: 101, AuthorizationStatus: types.StatusAuthorized},
		{ID: 2, PersonID: 2, SkillID: 101, AuthorizationStatus: types.StatusAuthorized},
		{ID: 3, PersonID: 1, SkillID: 102, AuthorizationStatus: types.StatusAuthorized},
		{ID: 4, PersonID: 2, SkillID: 103, AuthorizationStatus: types.StatusInTraining},
	}
	st := newStore(data)
	rs := NewReadinessService(st, nopLog())

	analysis := rs.AnalyzeProject(ProjectAnalysisRequest{
		ProjectName:         "Bridge Works",
		CriticalTestMethods: []string{"Standard Compaction", "Sieve Analysis", "Compressive Strength"},
	})
	if len(analysis.Risks) != 3 {
		t.Fatalf("expected 3 risks, got %d", len(analysis.Risks))
	}
	byMethod := make(map[string]types.ProjectRisk)
	for _, r := range analysis.Risks {
		byMethod[r.TestMethod] = r
	}
	if byMethod["Standard Compaction"].Level != types.RiskLow {
		t.Fatalf("expected Low for Standard Compaction, got %q", byMethod["Standard Compaction"].Level)
	}
	medium := byMethod["Sieve Analysis"]
	if medium.Level != types.RiskMedium {
		t.Fatalf("expected Medium for Sieve Analysis, got %q", medium.Level)
	}
	if !strings.Contains(medium.Details, "Ava Stone") {
		t.Fatalf("Medium risk must name the sole authorized technician: %q", medium.Details)
	}
	high := byMethod["Compressive Strength"]
	if high.Level != types.RiskHigh {
		t.Fatalf("expected High for Compressive Strength, got %q", high.Level)
	}
	if !strings.Contains(high.Mitigation, "Ben Reid") {
		t.Fatalf("High risk with a trainee should fast-track them: %q", high.Mitigation)
	}
	if analysis.OverallRisk != types.RiskHigh {
		t.Fatalf("overall risk must be the worst tier, got %q", analysis.OverallRisk)
	}
}

func TestAnalyzeProjectUnknownMethodSkipped(t *testing.T) {
	st := newStore(labFixture())
	rs := NewReadinessService(st, nopLog())

	analysis := rs.AnalyzeProject(ProjectAnalysisRequest{
		CriticalTestMethods: []string{"Quantum Flux Calibration"},
	})
	if len(analysis.Risks) != 0 {
		t.Fatalf("unresolvable method names must be skipped, got %+v", analysis.Risks)
	}
	if analysis.OverallRisk != types.RiskLow {
		t.Fatalf("no risks means Low overall, got %q", analysis.OverallRisk)
	}
}

func TestSaveBenchmarks(t *testing.T) {
	st := newStore(labFixture())
	rs := NewReadinessService(st, nopLog())

	rs.SaveBenchmarks(map[string]float64{"Concrete": 12})
	if got := rs.Benchmarks()["Concrete"]; got != 12 {
		t.Fatalf("expected saved benchmark 12, got %f", got)
	}
}
