package services

import (
	"math"
	"sort"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

// NataService builds the technician x test-method authorization views.
type NataService interface {
	Matrix() types.NataMatrix
	KPIs() types.NataKPIs
}

type nataService struct {
	store *store.Store
	log   *logger.Logger
}

func NewNataService(st *store.Store, baseLog *logger.Logger) NataService {
	return &nataService{
		store: st,
		log:   baseLog.With("service", "NataService"),
	}
}

// Matrix lists technicians by name against test methods ordered by
// category then method code. Cells without a competency record default
// to Not Authorized.
func (ns *nataService) Matrix() types.NataMatrix {
	var technicians []types.Person
	for _, p := range ns.store.People() {
		if p.IsTechnician {
			technicians = append(technicians, p)
		}
	}
	sort.Slice(technicians, func(i, j int) bool { return technicians[i].Name < technicians[j].Name })

	var methods []types.Skill
	for _, s := range ns.store.Skills() {
		if s.IsNataTestMethod {
			methods = append(methods, s)
		}
	}
	sort.Slice(methods, func(i, j int) bool {
		if methods[i].Category != methods[j].Category {
			return methods[i].Category < methods[j].Category
		}
		return methods[i].MethodCode < methods[j].MethodCode
	})

	statusByPair := make(map[int]map[int]types.AuthorizationStatus)
	for _, c := range ns.store.Competencies() {
		if statusByPair[c.PersonID] == nil {
			statusByPair[c.PersonID] = make(map[int]types.AuthorizationStatus)
		}
		statusByPair[c.PersonID][c.SkillID] = c.AuthorizationStatus
	}

	matrix := types.NataMatrix{
		Technicians:                technicians,
		Methods:                    methods,
		Statuses:                   make(map[int]map[int]types.AuthorizationStatus, len(technicians)),
		MethodAuthorizedCounts:     make(map[int]int, len(methods)),
		TechnicianAuthorizedCounts: make(map[int]int, len(technicians)),
	}
	for _, tech := range technicians {
		row := make(map[int]types.AuthorizationStatus, len(methods))
		for _, method := range methods {
			status := types.StatusNotAuthorized
			if s, ok := statusByPair[tech.ID][method.ID]; ok {
				status = s
			}
			row[method.ID] = status
			if status == types.StatusAuthorized {
				matrix.MethodAuthorizedCounts[method.ID]++
				matrix.TechnicianAuthorizedCounts[tech.ID]++
			}
		}
		matrix.Statuses[tech.ID] = row
	}
	return matrix
}

// KPIs summarize the matrix. The authorization rate is over all cells
// and defined as 0 when there are none.
func (ns *nataService) KPIs() types.NataKPIs {
	matrix := ns.Matrix()
	kpis := types.NataKPIs{
		TotalTechnicians: len(matrix.Technicians),
		TotalMethods:     len(matrix.Methods),
	}
	cells := kpis.TotalTechnicians * kpis.TotalMethods
	if cells == 0 {
		return kpis
	}
	authorized := 0
	for _, row := range matrix.Statuses {
		for _, status := range row {
			switch status {
			case types.StatusAuthorized:
				authorized++
			case types.StatusInTraining:
				kpis.InTrainingCount++
			}
		}
	}
	kpis.AuthorizationRatePct = int(math.Round(float64(authorized) / float64(cells) * 100))
	return kpis
}
