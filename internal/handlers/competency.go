package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

type CompetencyHandler struct {
	log   *logger.Logger
	store *store.Store
}

func NewCompetencyHandler(log *logger.Logger, st *store.Store) *CompetencyHandler {
	return &CompetencyHandler{
		log:   log.With("handler", "CompetencyHandler"),
		store: st,
	}
}

func (h *CompetencyHandler) ListCompetencies(c *gin.Context) {
	RespondOK(c, gin.H{"competencies": h.store.Competencies()})
}

func (h *CompetencyHandler) CreateCompetency(c *gin.Context) {
	var req types.Competency
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	comp, ok := h.store.AddCompetency(req)
	if !ok {
		RespondError(c, http.StatusBadRequest, "competency_rejected",
			fmt.Errorf("skill must be a NATA test method with no existing record for this person"))
		return
	}
	RespondOK(c, gin.H{"competency": comp})
}

func (h *CompetencyHandler) UpdateCompetency(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_competency_id", err)
		return
	}
	var req struct {
		TrainingCompleteDate   *time.Time                 `json:"trainingCompleteDate"`
		CompetencyAssessedDate *time.Time                 `json:"competencyAssessedDate"`
		AssessedBy             *string                    `json:"assessedBy"`
		AuthorizationStatus    *types.AuthorizationStatus `json:"authorizationStatus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ok := h.store.UpdateCompetency(id, store.CompetencyUpdate{
		TrainingCompleteDate:   req.TrainingCompleteDate,
		CompetencyAssessedDate: req.CompetencyAssessedDate,
		AssessedBy:             req.AssessedBy,
		AuthorizationStatus:    req.AuthorizationStatus,
	})
	if !ok {
		RespondError(c, http.StatusNotFound, "competency_not_found", fmt.Errorf("competency %d not found", id))
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *CompetencyHandler) ListEvidence(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_competency_id", err)
		return
	}
	RespondOK(c, gin.H{"evidence": h.store.EvidenceForCompetency(id)})
}

func (h *CompetencyHandler) AddEvidence(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_competency_id", err)
		return
	}
	var req struct {
		Record string `json:"record"`
		Author string `json:"author"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ev, ok := h.store.AddEvidence(id, req.Record, req.Author)
	if !ok {
		RespondError(c, http.StatusNotFound, "competency_not_found", fmt.Errorf("competency %d not found", id))
		return
	}
	RespondOK(c, gin.H{"evidence": ev})
}
