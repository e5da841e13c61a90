package types

import "time"

// Derived read-only views. Each is recomputed in full from the current
// entity snapshot; none of these carry state of their own.

// ComplianceMatrix is the per-person badge status grid for the lab
// cohort. Columns exclude NATA test methods, which follow the
// authorization model instead of badge expiry.
type ComplianceMatrix struct {
	Skills []Skill                 `json:"skills"`
	People []Person                `json:"people"`
	Cells  map[int]map[int]ComputedBadge `json:"cells"` // person id -> skill id
}

type ComplianceKPIs struct {
	OverallCompliancePct int `json:"overallCompliancePct"`
	AIReadyCount         int `json:"aiReadyCount"`
	AIRequiredCount      int `json:"aiRequiredCount"`
	AtRiskPeopleCount    int `json:"atRiskPeopleCount"`
	BadgesIssued         int `json:"badgesIssued"`
}

// AtRiskPerson lists the expiring skill names for one cohort member.
type AtRiskPerson struct {
	Person         Person   `json:"person"`
	ExpiringSkills []string `json:"expiringSkills"`
}

// NataMatrix is the technician x test-method authorization grid.
type NataMatrix struct {
	Technicians []Person                           `json:"technicians"`
	Methods     []Skill                            `json:"methods"`
	Statuses    map[int]map[int]AuthorizationStatus `json:"statuses"` // person id -> skill id
	MethodAuthorizedCounts map[int]int             `json:"methodAuthorizedCounts"` // skill id -> count
	TechnicianAuthorizedCounts map[int]int         `json:"technicianAuthorizedCounts"` // person id -> count
}

type NataKPIs struct {
	TotalTechnicians    int `json:"totalTechnicians"`
	TotalMethods        int `json:"totalMethods"`
	AuthorizationRatePct int `json:"authorizationRatePct"`
	InTrainingCount     int `json:"inTrainingCount"`
}

// SkillAggregate summarizes one skill across the workforce. Skills
// nobody holds are omitted from aggregate views.
type SkillAggregate struct {
	Skill          Skill   `json:"skill"`
	EmployeeCount  int     `json:"employeeCount"`
	AvgProficiency float64 `json:"avgProficiency"`
}

type DashboardMetrics struct {
	TotalEmployees   int `json:"totalEmployees"`
	TotalSkills      int `json:"totalSkills"`
	TotalOccupations int `json:"totalOccupations"`
	ActivePlans      int `json:"activePlans"`
}

// Heatmap counts holders of each of the first skills per group, where a
// group is either a job title or a department name.
type Heatmap struct {
	Skills   []Skill                   `json:"skills"`
	Groups   []string                  `json:"groups"`
	Counts   map[string]map[int]int    `json:"counts"` // group -> skill id -> holders
	MaxValue int                       `json:"maxValue"`
}

type HubStats struct {
	TotalCourses      int `json:"totalCourses"`
	CompletedCourses  int `json:"completedCourses"`
	CompletionRatePct int `json:"completionRatePct"`
	OverdueCourses    int `json:"overdueCourses"`
}

// PlanCourseDetail joins one plan entry with its course and skill.
type PlanCourseDetail struct {
	PlanCourse
	CourseTitle string `json:"courseTitle"`
	Provider    string `json:"provider"`
	SkillName   string `json:"skillName"`
	Overdue     bool   `json:"overdue"`
}

type PlanDetail struct {
	Plan    DevelopmentPlan    `json:"plan"`
	Person  Person             `json:"person"`
	Courses []PlanCourseDetail `json:"courses"`
}

// BadgeSyncReport summarizes one sync pass over pending open badges.
// Warnings carry the fail-soft cases, the badge whose plan update was
// skipped included.
type BadgeSyncReport struct {
	Processed     int      `json:"processed"`
	PlansUpdated  int      `json:"plansUpdated"`
	SkillsUpdated int      `json:"skillsUpdated"`
	Warnings      []string `json:"warnings,omitempty"`
}

// StaffingRow is one category line of a project staffing estimate.
type StaffingRow struct {
	Category         string  `json:"category"`
	EstTests         int     `json:"estTests"`
	MainTests        string  `json:"mainTests"`
	StaffType        string  `json:"staffType"`
	Productivity     float64 `json:"productivity"`
	StaffRequiredFTE float64 `json:"staffRequiredFTE"`
}

type ProjectRisk struct {
	Level      RiskLevel `json:"level"`
	TestMethod string    `json:"testMethod"`
	Details    string    `json:"details"`
	Mitigation string    `json:"mitigation"`
}

type ProjectRiskAnalysis struct {
	ProjectName      string        `json:"projectName"`
	ExecutiveSummary string        `json:"executiveSummary"`
	StaffingTable    []StaffingRow `json:"staffingTable"`
	OverallRisk      RiskLevel     `json:"overallRisk"`
	Risks            []ProjectRisk `json:"risks"`
	Recommendations  []string      `json:"recommendations"`
	GeneratedAt      time.Time     `json:"generatedAt"`
}
