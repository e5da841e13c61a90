package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/services"
)

type ReadinessHandler struct {
	log       *logger.Logger
	readiness services.ReadinessService
}

func NewReadinessHandler(log *logger.Logger, readiness services.ReadinessService) *ReadinessHandler {
	return &ReadinessHandler{
		log:       log.With("handler", "ReadinessHandler"),
		readiness: readiness,
	}
}

// AnalyzeProject estimates staffing FTEs and grades coverage risk for
// the project's critical test methods.
func (h *ReadinessHandler) AnalyzeProject(c *gin.Context) {
	var req services.ProjectAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	RespondOK(c, gin.H{"analysis": h.readiness.AnalyzeProject(req)})
}

func (h *ReadinessHandler) GetBenchmarks(c *gin.Context) {
	RespondOK(c, gin.H{"benchmarks": h.readiness.Benchmarks()})
}

func (h *ReadinessHandler) SaveBenchmarks(c *gin.Context) {
	var req map[string]float64
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	h.readiness.SaveBenchmarks(req)
	RespondOK(c, gin.H{"saved": true})
}
