package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/services"
)

type NataHandler struct {
	log  *logger.Logger
	nata services.NataService
}

func NewNataHandler(log *logger.Logger, nata services.NataService) *NataHandler {
	return &NataHandler{
		log:  log.With("handler", "NataHandler"),
		nata: nata,
	}
}

func (h *NataHandler) Matrix(c *gin.Context) {
	RespondOK(c, gin.H{"matrix": h.nata.Matrix()})
}

func (h *NataHandler) KPIs(c *gin.Context) {
	RespondOK(c, gin.H{"kpis": h.nata.KPIs()})
}
