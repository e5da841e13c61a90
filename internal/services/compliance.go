package services

import (
	"math"
	"sort"
	"time"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

// labCohortDepartment names the department whose members form the
// compliance cohort. A string filter, not a flag.
const labCohortDepartment = "Lab Staff"

// expiryWarningWindow is how far ahead a badge expiry counts as
// Expiring rather than Compliant.
const expiryWarningWindow = 30 * 24 * time.Hour

// ComplianceService builds the badge-expiry status grid for the lab
// cohort. NATA test methods are excluded: those follow the
// authorization model, not badge expiry.
type ComplianceService interface {
	Matrix() types.ComplianceMatrix
	KPIs() types.ComplianceKPIs
	AtRiskStaff() []types.AtRiskPerson
}

type complianceService struct {
	store *store.Store
	log   *logger.Logger
}

func NewComplianceService(st *store.Store, baseLog *logger.Logger) ComplianceService {
	return &complianceService{
		store: st,
		log:   baseLog.With("service", "ComplianceService"),
	}
}

func (cs *complianceService) cohort() []types.Person {
	var deptID int
	found := false
	for _, d := range cs.store.Departments() {
		if d.Name == labCohortDepartment {
			deptID = d.ID
			found = true
			break
		}
	}
	if !found {
		cs.log.Warn("Compliance cohort department missing", "department", labCohortDepartment)
		return nil
	}
	var out []types.Person
	for _, p := range cs.store.People() {
		if p.DepartmentID == deptID {
			out = append(out, p)
		}
	}
	return out
}

// requiredSkillSet resolves the person's job title to an occupation and
// returns its required skill ids. No matching occupation means an empty
// set, which renders every cell N/A for that person.
func (cs *complianceService) requiredSkillSet(p types.Person) map[int]bool {
	occ, ok := cs.store.OccupationByTitle(p.Job)
	if !ok {
		return nil
	}
	out := make(map[int]bool, len(occ.RequiredSkills))
	for _, id := range occ.RequiredSkills {
		out[id] = true
	}
	return out
}

// Matrix joins cohort people against the union of their occupations'
// non-NATA required skills. Columns order AI-flagged skills first, then
// alphabetical, which snapshot consumers depend on.
func (cs *complianceService) Matrix() types.ComplianceMatrix {
	people := cs.cohort()
	required := make(map[int]map[int]bool, len(people))
	columnSet := make(map[int]bool)
	for _, p := range people {
		req := cs.requiredSkillSet(p)
		required[p.ID] = req
		for id := range req {
			columnSet[id] = true
		}
	}

	var columns []types.Skill
	for id := range columnSet {
		skill, ok := cs.store.Skill(id)
		if !ok || skill.IsNataTestMethod {
			continue
		}
		columns = append(columns, skill)
	}
	sort.Slice(columns, func(i, j int) bool {
		if columns[i].IsAISkill != columns[j].IsAISkill {
			return columns[i].IsAISkill
		}
		return columns[i].Name < columns[j].Name
	})

	badges := cs.store.IssuedBadges()
	now := time.Now()
	cells := make(map[int]map[int]types.ComputedBadge, len(people))
	for _, p := range people {
		row := make(map[int]types.ComputedBadge, len(columns))
		for _, skill := range columns {
			cell := types.ComputedBadge{Person: p, Skill: skill, Status: types.BadgeNotApplicable}
			if required[p.ID][skill.ID] {
				cell.Status, cell.Badge = badgeStatus(badges, p.ID, skill.ID, now)
			}
			row[skill.ID] = cell
		}
		cells[p.ID] = row
	}

	return types.ComplianceMatrix{Skills: columns, People: people, Cells: cells}
}

func badgeStatus(badges []types.IssuedBadge, personID, skillID int, now time.Time) (types.BadgeStatus, *types.IssuedBadge) {
	for i := range badges {
		b := badges[i]
		if b.PersonID != personID || b.SkillID != skillID {
			continue
		}
		switch {
		case b.ExpiryDate.Before(now):
			return types.BadgeMissing, &b
		case b.ExpiryDate.Before(now.Add(expiryWarningWindow)):
			return types.BadgeExpiring, &b
		default:
			return types.BadgeCompliant, &b
		}
	}
	return types.BadgeMissing, nil
}

// KPIs folds over the matrix. Overall compliance excludes N/A cells and
// is a vacuous 100% when nothing is required.
func (cs *complianceService) KPIs() types.ComplianceKPIs {
	matrix := cs.Matrix()
	kpis := types.ComplianceKPIs{BadgesIssued: len(cs.store.IssuedBadges())}

	requiredCells, compliantCells := 0, 0
	atRisk := make(map[int]bool)
	for personID, row := range matrix.Cells {
		for _, cell := range row {
			if cell.Status == types.BadgeNotApplicable {
				continue
			}
			requiredCells++
			switch cell.Status {
			case types.BadgeCompliant:
				compliantCells++
			case types.BadgeExpiring:
				atRisk[personID] = true
			}
			if cell.Skill.IsAISkill {
				kpis.AIRequiredCount++
				if cell.Status == types.BadgeCompliant {
					kpis.AIReadyCount++
				}
			}
		}
	}
	if requiredCells == 0 {
		kpis.OverallCompliancePct = 100
	} else {
		kpis.OverallCompliancePct = int(math.Round(float64(compliantCells) / float64(requiredCells) * 100))
	}
	kpis.AtRiskPeopleCount = len(atRisk)
	return kpis
}

// AtRiskStaff lists cohort members holding at least one Expiring cell,
// with the affected skill names, ordered by person name.
func (cs *complianceService) AtRiskStaff() []types.AtRiskPerson {
	matrix := cs.Matrix()
	var out []types.AtRiskPerson
	for _, p := range matrix.People {
		var expiring []string
		for _, skill := range matrix.Skills {
			if cell, ok := matrix.Cells[p.ID][skill.ID]; ok && cell.Status == types.BadgeExpiring {
				expiring = append(expiring, skill.Name)
			}
		}
		if len(expiring) > 0 {
			out = append(out, types.AtRiskPerson{Person: p, ExpiringSkills: expiring})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Person.Name < out[j].Person.Name })
	return out
}
