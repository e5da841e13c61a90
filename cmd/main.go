package main

import (
	"fmt"
	"os"

	"github.com/labtrack/labtrack-backend/internal/handlers"
	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/server"
	"github.com/labtrack/labtrack-backend/internal/services"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	port := utils.GetEnv("PORT", "8080", log)
	seedData := utils.GetEnv("SEED_DATA", "true", log)

	// Store
	log.Info("Setting up entity store from main...")
	var st *store.Store
	if seedData == "true" {
		st, err = store.NewFromSeed(log)
		if err != nil {
			log.Fatal("Seed dataset load failed", "error", err)
		}
	} else {
		st = store.New(log)
	}

	// Services
	log.Info("Setting up Services from main...")
	planService := services.NewPlanService(st, log)
	gapService := services.NewGapService(st, planService, log)
	extractionService := services.NewExtractionService(st, gapService, log)
	complianceService := services.NewComplianceService(st, log)
	riskService := services.NewRiskService(st, log)
	nataService := services.NewNataService(st, log)
	dashboardService := services.NewDashboardService(st, log)
	readinessService := services.NewReadinessService(st, log)

	// Handlers
	log.Info("Setting up Handlers from main...")
	personHandler := handlers.NewPersonHandler(log, st)
	departmentHandler := handlers.NewDepartmentHandler(log, st)
	occupationHandler := handlers.NewOccupationHandler(log, st)
	competencyHandler := handlers.NewCompetencyHandler(log, st)
	badgeHandler := handlers.NewBadgeHandler(log, st, planService)
	courseHandler := handlers.NewCourseHandler(log, st)
	planHandler := handlers.NewPlanHandler(log, st, planService)
	analysisHandler := handlers.NewAnalysisHandler(log, gapService, extractionService)
	complianceHandler := handlers.NewComplianceHandler(log, complianceService, riskService)
	nataHandler := handlers.NewNataHandler(log, nataService)
	dashboardHandler := handlers.NewDashboardHandler(log, dashboardService)
	readinessHandler := handlers.NewReadinessHandler(log, readinessService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		Log:               log,
		PersonHandler:     personHandler,
		DepartmentHandler: departmentHandler,
		OccupationHandler: occupationHandler,
		CompetencyHandler: competencyHandler,
		BadgeHandler:      badgeHandler,
		CourseHandler:     courseHandler,
		PlanHandler:       planHandler,
		AnalysisHandler:   analysisHandler,
		ComplianceHandler: complianceHandler,
		NataHandler:       nataHandler,
		DashboardHandler:  dashboardHandler,
		ReadinessHandler:  readinessHandler,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
