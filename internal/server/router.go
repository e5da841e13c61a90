package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/handlers"
	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/middleware"
)

type RouterConfig struct {
	Log               *logger.Logger
	PersonHandler     *handlers.PersonHandler
	DepartmentHandler *handlers.DepartmentHandler
	OccupationHandler *handlers.OccupationHandler
	CompetencyHandler *handlers.CompetencyHandler
	BadgeHandler      *handlers.BadgeHandler
	CourseHandler     *handlers.CourseHandler
	PlanHandler       *handlers.PlanHandler
	AnalysisHandler   *handlers.AnalysisHandler
	ComplianceHandler *handlers.ComplianceHandler
	NataHandler       *handlers.NataHandler
	DashboardHandler  *handlers.DashboardHandler
	ReadinessHandler  *handlers.ReadinessHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// People
		api.GET("/people", cfg.PersonHandler.ListPeople)
		api.POST("/people", cfg.PersonHandler.CreatePerson)
		api.GET("/people/:id", cfg.PersonHandler.GetPerson)
		api.PATCH("/people/:id/department", cfg.PersonHandler.UpdateDepartment)
		api.PATCH("/people/:id/skills", cfg.PersonHandler.UpsertSkill)

		// Departments
		api.GET("/departments", cfg.DepartmentHandler.ListDepartments)
		api.POST("/departments", cfg.DepartmentHandler.CreateDepartment)
		api.PATCH("/departments/:id", cfg.DepartmentHandler.UpdateDepartment)
		api.DELETE("/departments/:id", cfg.DepartmentHandler.DeleteDepartment)

		// Skills & occupations
		api.GET("/skills", cfg.OccupationHandler.ListSkills)
		api.GET("/skills/external", cfg.OccupationHandler.ListExternalSkills)
		api.GET("/occupations", cfg.OccupationHandler.ListOccupations)
		api.POST("/occupations", cfg.OccupationHandler.CreateOccupation)
		api.PATCH("/occupations/:id", cfg.OccupationHandler.UpdateOccupation)
		api.DELETE("/occupations/:id", cfg.OccupationHandler.DeleteOccupation)

		// Competencies & evidence
		api.GET("/competencies", cfg.CompetencyHandler.ListCompetencies)
		api.POST("/competencies", cfg.CompetencyHandler.CreateCompetency)
		api.PATCH("/competencies/:id", cfg.CompetencyHandler.UpdateCompetency)
		api.GET("/competencies/:id/evidence", cfg.CompetencyHandler.ListEvidence)
		api.POST("/competencies/:id/evidence", cfg.CompetencyHandler.AddEvidence)

		// Badges
		api.GET("/badges/issued", cfg.BadgeHandler.ListIssuedBadges)
		api.POST("/badges/issued", cfg.BadgeHandler.IssueBadge)
		api.GET("/badges/open", cfg.BadgeHandler.ListOpenBadges)
		api.POST("/badges/open", cfg.BadgeHandler.QueueOpenBadge)
		api.POST("/badges/sync", cfg.BadgeHandler.SyncBadges)

		// Courses
		api.GET("/courses", cfg.CourseHandler.ListCourses)
		api.POST("/courses", cfg.CourseHandler.CreateCourse)

		// Development plans
		api.GET("/plans", cfg.PlanHandler.ListPlans)
		api.POST("/plans", cfg.PlanHandler.CreatePlan)
		api.POST("/plans/auto/:id", cfg.PlanHandler.AutoCreatePlan)
		api.PATCH("/plans/:id/courses/:courseId", cfg.PlanHandler.UpdateCourseFields)
		api.GET("/plans/stats", cfg.PlanHandler.HubStats)

		// Analysis
		api.GET("/analysis/gaps/:personId/:occupationId", cfg.AnalysisHandler.AnalyzeOccupation)
		api.POST("/analysis/extract", cfg.AnalysisHandler.ExtractSkills)
		api.POST("/analysis/job-description", cfg.AnalysisHandler.AnalyzeJobDescription)
		api.POST("/analysis/assign-gaps", cfg.AnalysisHandler.AssignGapCourses)
		api.GET("/analysis/aggregate-skills", cfg.AnalysisHandler.AggregateSkills)

		// Compliance dashboard
		api.GET("/compliance/matrix", cfg.ComplianceHandler.Matrix)
		api.GET("/compliance/kpis", cfg.ComplianceHandler.KPIs)
		api.GET("/compliance/at-risk", cfg.ComplianceHandler.AtRiskStaff)
		api.GET("/compliance/method-risks", cfg.ComplianceHandler.MethodRisks)
		api.GET("/compliance/expiry-forecast", cfg.ComplianceHandler.ExpiryForecast)

		// NATA management
		api.GET("/nata/matrix", cfg.NataHandler.Matrix)
		api.GET("/nata/kpis", cfg.NataHandler.KPIs)

		// Dashboard
		api.GET("/dashboard/metrics", cfg.DashboardHandler.Metrics)
		api.GET("/dashboard/heatmap", cfg.DashboardHandler.Heatmap)

		// Project readiness
		api.POST("/readiness/analyze", cfg.ReadinessHandler.AnalyzeProject)
		api.GET("/readiness/benchmarks", cfg.ReadinessHandler.GetBenchmarks)
		api.PUT("/readiness/benchmarks", cfg.ReadinessHandler.SaveBenchmarks)
	}

	return router
}
