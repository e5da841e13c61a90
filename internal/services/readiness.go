package services

import (
	"fmt"
	"time"

	"github.com/labtrack/labtrack-backend/internal/fuzzy"
	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

// projectWorkDays assumes a four-month delivery window at twenty work
// days per month.
const projectWorkDays = 80

// defaultProductivity covers categories with no saved benchmark, in
// tests per technician per day.
const defaultProductivity = 10

type ProjectStaffingInput struct {
	Category  string `json:"category"`
	EstTests  int    `json:"estTests"`
	MainTests string `json:"mainTests"`
	StaffType string `json:"staffType"`
}

type ProjectAnalysisRequest struct {
	ProjectName         string                 `json:"projectName"`
	Staffing            []ProjectStaffingInput `json:"staffing"`
	CriticalTestMethods []string               `json:"criticalTestMethods"`
}

// ReadinessService estimates project staffing in FTEs and assesses
// coverage risk for the project's critical test methods against live
// competency data.
type ReadinessService interface {
	AnalyzeProject(req ProjectAnalysisRequest) types.ProjectRiskAnalysis
	Benchmarks() map[string]float64
	SaveBenchmarks(benchmarks map[string]float64)
}

type readinessService struct {
	store *store.Store
	log   *logger.Logger
}

func NewReadinessService(st *store.Store, baseLog *logger.Logger) ReadinessService {
	return &readinessService{
		store: st,
		log:   baseLog.With("service", "ReadinessService"),
	}
}

func (rs *readinessService) AnalyzeProject(req ProjectAnalysisRequest) types.ProjectRiskAnalysis {
	benchmarks := rs.store.Benchmarks()
	staffing := make([]types.StaffingRow, 0, len(req.Staffing))
	totalFTE := 0.0
	for _, in := range req.Staffing {
		productivity, ok := benchmarks[in.Category]
		if !ok || productivity <= 0 {
			productivity = defaultProductivity
		}
		fte := float64(in.EstTests) / (productivity * projectWorkDays)
		totalFTE += fte
		staffing = append(staffing, types.StaffingRow{
			Category:         in.Category,
			EstTests:         in.EstTests,
			MainTests:        in.MainTests,
			StaffType:        in.StaffType,
			Productivity:     productivity,
			StaffRequiredFTE: fte,
		})
	}

	risks := rs.methodCoverageRisks(req.CriticalTestMethods)
	overall := types.RiskLow
	highs, mediums := 0, 0
	for _, r := range risks {
		switch r.Level {
		case types.RiskHigh:
			highs++
		case types.RiskMedium:
			mediums++
		}
	}
	if highs > 0 {
		overall = types.RiskHigh
	} else if mediums > 0 {
		overall = types.RiskMedium
	}

	return types.ProjectRiskAnalysis{
		ProjectName: req.ProjectName,
		ExecutiveSummary: fmt.Sprintf(
			"This project requires ~%.1f technical FTEs over 4 months. Coverage analysis of %d critical test methods found %d high and %d medium risks.",
			totalFTE, len(risks), highs, mediums),
		StaffingTable:   staffing,
		OverallRisk:     overall,
		Risks:           risks,
		Recommendations: staffingRecommendations(),
		GeneratedAt:     time.Now(),
	}
}

// methodCoverageRisks resolves each named method against the NATA skill
// list via fuzzy matching and grades coverage from live competencies.
// Unresolvable names are logged and skipped rather than failing the
// whole analysis.
func (rs *readinessService) methodCoverageRisks(methodNames []string) []types.ProjectRisk {
	var methods []types.Skill
	for _, s := range rs.store.Skills() {
		if s.IsNataTestMethod {
			methods = append(methods, s)
		}
	}
	docs := make([][]string, len(methods))
	for i, m := range methods {
		docs[i] = []string{m.Name}
	}
	searcher := fuzzy.NewSearcher(fuzzy.DefaultTolerance, fuzzy.Key{Name: "name", Weight: 1})

	competencies := rs.store.Competencies()
	people := rs.store.People()
	var technicians []types.Person
	for _, p := range people {
		if p.IsTechnician {
			technicians = append(technicians, p)
		}
	}

	var risks []types.ProjectRisk
	for _, name := range methodNames {
		results := searcher.Search(name, docs)
		if len(results) == 0 || results[0].Score >= highConfidence {
			rs.log.Warn("Critical test method not recognized", "method", name)
			continue
		}
		method := methods[results[0].Index]

		var authorized, inTraining []types.Competency
		for _, c := range competencies {
			if c.SkillID != method.ID {
				continue
			}
			switch c.AuthorizationStatus {
			case types.StatusAuthorized:
				authorized = append(authorized, c)
			case types.StatusInTraining:
				inTraining = append(inTraining, c)
			}
		}
		risks = append(risks, rs.gradeCoverage(method, authorized, inTraining, technicians))
	}
	return risks
}

func (rs *readinessService) gradeCoverage(method types.Skill, authorized, inTraining []types.Competency, technicians []types.Person) types.ProjectRisk {
	switch len(authorized) {
	case 0:
		mitigation := "Immediately assign a senior technician to begin training at least two team members."
		if len(inTraining) > 0 {
			if trainee, ok := rs.store.Person(inTraining[0].PersonID); ok {
				mitigation = fmt.Sprintf("Prioritize and fast-track the assessment for %s, who is already in training.", trainee.Name)
			}
		}
		return types.ProjectRisk{
			Level:      types.RiskHigh,
			TestMethod: method.Name,
			Details:    "There are no technicians currently authorized for this critical test method.",
			Mitigation: mitigation,
		}
	case 1:
		holder, _ := rs.store.Person(authorized[0].PersonID)
		mitigation := "Hire an additional technician with this skill."
		for _, t := range technicians {
			if t.ID != holder.ID {
				mitigation = fmt.Sprintf("Begin cross-training %s on this method to provide backup coverage.", t.Name)
				break
			}
		}
		return types.ProjectRisk{
			Level:      types.RiskMedium,
			TestMethod: method.Name,
			Details:    fmt.Sprintf("Only one technician (%s) is authorized, creating a single point of failure risk.", holder.Name),
			Mitigation: mitigation,
		}
	default:
		return types.ProjectRisk{
			Level:      types.RiskLow,
			TestMethod: method.Name,
			Details:    fmt.Sprintf("%d technicians are authorized, providing adequate coverage.", len(authorized)),
			Mitigation: "No immediate action required. Monitor project workload to ensure availability.",
		}
	}
}

func staffingRecommendations() []string {
	return []string{
		"Resource peaks are anticipated during simultaneous asphalt and concrete placement weeks, requiring careful scheduling.",
		"Batching material tests (e.g. PSDs, Atterbergs) is recommended to balance laboratory workload.",
		"An on-site lab setup should be evaluated against sample transport times and costs for efficiency.",
		"Total labour costs can be estimated by applying hourly rates to the total FTE requirement.",
	}
}

func (rs *readinessService) Benchmarks() map[string]float64 {
	return rs.store.Benchmarks()
}

func (rs *readinessService) SaveBenchmarks(benchmarks map[string]float64) {
	rs.store.SetBenchmarks(benchmarks)
	rs.log.Info("Productivity benchmarks saved", "categories", len(benchmarks))
}
