package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

// competencyValidityYears is the fixed validity of an authorization
// after its assessment date. Policy constant.
const competencyValidityYears = 2

// RiskService derives single-point-of-failure risk per test method and
// forecasts upcoming authorization expiries.
type RiskService interface {
	MethodRisks() []types.MethodRisk
	ExpiryForecast() []types.ExpiryBucket
}

type riskService struct {
	store *store.Store
	log   *logger.Logger
}

func NewRiskService(st *store.Store, baseLog *logger.Logger) RiskService {
	return &riskService{
		store: st,
		log:   baseLog.With("service", "RiskService"),
	}
}

// MethodRisks flags every NATA test method with fewer than two
// authorized technicians. High risks sort before Medium, alphabetical
// by method name within each tier.
func (rs *riskService) MethodRisks() []types.MethodRisk {
	competencies := rs.store.Competencies()
	var out []types.MethodRisk
	for _, skill := range rs.store.Skills() {
		if !skill.IsNataTestMethod {
			continue
		}
		var authorized []types.Competency
		for _, c := range competencies {
			if c.SkillID == skill.ID && c.AuthorizationStatus == types.StatusAuthorized {
				authorized = append(authorized, c)
			}
		}
		switch len(authorized) {
		case 0:
			out = append(out, types.MethodRisk{
				Level:      types.RiskHigh,
				MethodName: skill.Name,
				Details:    "No technicians are authorized for this test.",
			})
		case 1:
			name := fmt.Sprintf("person %d", authorized[0].PersonID)
			if p, ok := rs.store.Person(authorized[0].PersonID); ok {
				name = p.Name
			}
			out = append(out, types.MethodRisk{
				Level:      types.RiskMedium,
				MethodName: skill.Name,
				Details:    fmt.Sprintf("Only one technician (%s) is authorized, creating a single point of failure.", name),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level == types.RiskHigh
		}
		return out[i].MethodName < out[j].MethodName
	})
	return out
}

// ExpiryForecast buckets authorized competencies by projected expiry,
// two years from assessment. Already-expired authorizations are left
// out; they surface as non-authorized elsewhere, not double-counted
// here.
func (rs *riskService) ExpiryForecast() []types.ExpiryBucket {
	buckets := []types.ExpiryBucket{
		{Name: "0-3 Months"},
		{Name: "3-6 Months"},
		{Name: "6-12 Months"},
	}
	now := time.Now()
	for _, c := range rs.store.Competencies() {
		if c.AuthorizationStatus != types.StatusAuthorized || c.CompetencyAssessedDate == nil {
			continue
		}
		expiry := c.CompetencyAssessedDate.AddDate(competencyValidityYears, 0, 0)
		if !expiry.After(now) {
			continue
		}
		switch {
		case expiry.Before(now.AddDate(0, 3, 0)):
			buckets[0].Expiring++
		case expiry.Before(now.AddDate(0, 6, 0)):
			buckets[1].Expiring++
		case expiry.Before(now.AddDate(0, 12, 0)):
			buckets[2].Expiring++
		}
	}
	return buckets
}
