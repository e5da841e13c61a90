package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/services"
)

type DashboardHandler struct {
	log       *logger.Logger
	dashboard services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboard services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:       log.With("handler", "DashboardHandler"),
		dashboard: dashboard,
	}
}

func (h *DashboardHandler) Metrics(c *gin.Context) {
	RespondOK(c, gin.H{"metrics": h.dashboard.Metrics()})
}

func (h *DashboardHandler) Heatmap(c *gin.Context) {
	groupBy := services.GroupByJob
	if c.Query("groupBy") == string(services.GroupByDepartment) {
		groupBy = services.GroupByDepartment
	}
	RespondOK(c, gin.H{"heatmap": h.dashboard.Heatmap(groupBy)})
}
