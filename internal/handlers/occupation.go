package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

type OccupationHandler struct {
	log   *logger.Logger
	store *store.Store
}

func NewOccupationHandler(log *logger.Logger, st *store.Store) *OccupationHandler {
	return &OccupationHandler{
		log:   log.With("handler", "OccupationHandler"),
		store: st,
	}
}

func (h *OccupationHandler) ListOccupations(c *gin.Context) {
	RespondOK(c, gin.H{"occupations": h.store.Occupations()})
}

func (h *OccupationHandler) ListSkills(c *gin.Context) {
	RespondOK(c, gin.H{"skills": h.store.Skills()})
}

// ListExternalSkills serves the taxonomy candidates offered when
// composing a new occupation.
func (h *OccupationHandler) ListExternalSkills(c *gin.Context) {
	RespondOK(c, gin.H{"externalSkills": h.store.ExternalSkills()})
}

// CreateOccupation resolves external skill candidates against the
// internal taxonomy and creates the occupation with the deduplicated
// required set.
func (h *OccupationHandler) CreateOccupation(c *gin.Context) {
	var req struct {
		Title            string                `json:"title"`
		Description      string                `json:"description"`
		ExternalSkills   []types.ExternalSkill `json:"externalSkills"`
		InternalSkillIDs []int                 `json:"internalSkillIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Title == "" {
		RespondError(c, http.StatusBadRequest, "missing_title", fmt.Errorf("title is required"))
		return
	}
	occ := h.store.AddSkillsAndOccupation(req.Title, req.Description, req.ExternalSkills, req.InternalSkillIDs)
	RespondOK(c, gin.H{"occupation": occ})
}

func (h *OccupationHandler) UpdateOccupation(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_occupation_id", err)
		return
	}
	var req struct {
		Title          *string `json:"title"`
		Description    *string `json:"description"`
		RequiredSkills *[]int  `json:"required_skills"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ok := h.store.UpdateOccupation(id, store.OccupationUpdate{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
	})
	if !ok {
		RespondError(c, http.StatusNotFound, "occupation_not_found", fmt.Errorf("occupation %d not found", id))
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *OccupationHandler) DeleteOccupation(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_occupation_id", err)
		return
	}
	if !h.store.DeleteOccupation(id) {
		RespondError(c, http.StatusNotFound, "occupation_not_found", fmt.Errorf("occupation %d not found", id))
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
