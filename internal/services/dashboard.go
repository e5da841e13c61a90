package services

import (
	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

// HeatmapGroupBy selects the row grouping for the skills heat map.
type HeatmapGroupBy string

const (
	GroupByJob        HeatmapGroupBy = "job"
	GroupByDepartment HeatmapGroupBy = "department"
)

// heatmapSkillLimit caps the heat map columns to the first skills of
// the taxonomy.
const heatmapSkillLimit = 15

// DashboardService serves the headline metrics and the skills heat map.
type DashboardService interface {
	Metrics() types.DashboardMetrics
	Heatmap(groupBy HeatmapGroupBy) types.Heatmap
}

type dashboardService struct {
	store *store.Store
	log   *logger.Logger
}

func NewDashboardService(st *store.Store, baseLog *logger.Logger) DashboardService {
	return &dashboardService{
		store: st,
		log:   baseLog.With("service", "DashboardService"),
	}
}

func (ds *dashboardService) Metrics() types.DashboardMetrics {
	metrics := types.DashboardMetrics{
		TotalEmployees:   len(ds.store.People()),
		TotalSkills:      len(ds.store.Skills()),
		TotalOccupations: len(ds.store.Occupations()),
	}
	for _, plan := range ds.store.Plans() {
		if plan.Status == types.PlanInProgress {
			metrics.ActivePlans++
		}
	}
	return metrics
}

// Heatmap counts holders of each skill per group. Groups are occupation
// titles, or department names with people in unknown departments folded
// into Unassigned.
func (ds *dashboardService) Heatmap(groupBy HeatmapGroupBy) types.Heatmap {
	skills := ds.store.Skills()
	if len(skills) > heatmapSkillLimit {
		skills = skills[:heatmapSkillLimit]
	}
	topSkills := make(map[int]bool, len(skills))
	for _, s := range skills {
		topSkills[s.ID] = true
	}

	deptNames := make(map[int]string)
	for _, d := range ds.store.Departments() {
		deptNames[d.ID] = d.Name
	}

	var groups []string
	seen := make(map[string]bool)
	addGroup := func(name string) {
		if !seen[name] {
			seen[name] = true
			groups = append(groups, name)
		}
	}
	people := ds.store.People()
	if groupBy == GroupByDepartment {
		for _, d := range ds.store.Departments() {
			addGroup(d.Name)
		}
		for _, p := range people {
			addGroup(ds.departmentGroup(deptNames, p))
		}
	} else {
		for _, o := range ds.store.Occupations() {
			addGroup(o.Title)
		}
	}

	counts := make(map[string]map[int]int, len(groups))
	for _, g := range groups {
		counts[g] = make(map[int]int, len(skills))
	}
	maxValue := 0
	for _, p := range people {
		group := p.Job
		if groupBy == GroupByDepartment {
			group = ds.departmentGroup(deptNames, p)
		}
		row, ok := counts[group]
		if !ok {
			// Job titles with no matching occupation have no row.
			continue
		}
		for _, ps := range p.Skills {
			if !topSkills[ps.SkillID] {
				continue
			}
			row[ps.SkillID]++
			if row[ps.SkillID] > maxValue {
				maxValue = row[ps.SkillID]
			}
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}
	return types.Heatmap{Skills: skills, Groups: groups, Counts: counts, MaxValue: maxValue}
}

func (ds *dashboardService) departmentGroup(deptNames map[int]string, p types.Person) string {
	if name, ok := deptNames[p.DepartmentID]; ok {
		return name
	}
	return "Unassigned"
}
