package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/services"
)

// ComplianceHandler serves the compliance dashboard: the badge status
// matrix, its KPIs, and the proactive risk and expiry views.
type ComplianceHandler struct {
	log        *logger.Logger
	compliance services.ComplianceService
	risks      services.RiskService
}

func NewComplianceHandler(log *logger.Logger, compliance services.ComplianceService, risks services.RiskService) *ComplianceHandler {
	return &ComplianceHandler{
		log:        log.With("handler", "ComplianceHandler"),
		compliance: compliance,
		risks:      risks,
	}
}

func (h *ComplianceHandler) Matrix(c *gin.Context) {
	RespondOK(c, gin.H{"matrix": h.compliance.Matrix()})
}

func (h *ComplianceHandler) KPIs(c *gin.Context) {
	RespondOK(c, gin.H{"kpis": h.compliance.KPIs()})
}

func (h *ComplianceHandler) AtRiskStaff(c *gin.Context) {
	RespondOK(c, gin.H{"atRisk": h.compliance.AtRiskStaff()})
}

func (h *ComplianceHandler) MethodRisks(c *gin.Context) {
	RespondOK(c, gin.H{"risks": h.risks.MethodRisks()})
}

func (h *ComplianceHandler) ExpiryForecast(c *gin.Context) {
	RespondOK(c, gin.H{"forecast": h.risks.ExpiryForecast()})
}
