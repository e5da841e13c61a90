package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/services"
	"github.com/labtrack/labtrack-backend/internal/types"
)

type AnalysisHandler struct {
	log        *logger.Logger
	gaps       services.GapService
	extraction services.ExtractionService
}

func NewAnalysisHandler(log *logger.Logger, gaps services.GapService, extraction services.ExtractionService) *AnalysisHandler {
	return &AnalysisHandler{
		log:        log.With("handler", "AnalysisHandler"),
		gaps:       gaps,
		extraction: extraction,
	}
}

// AnalyzeOccupation compares one person against one occupation's
// required skill set.
func (h *AnalysisHandler) AnalyzeOccupation(c *gin.Context) {
	personID, err := pathInt(c, "personId")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_person_id", err)
		return
	}
	occupationID, err := pathInt(c, "occupationId")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_occupation_id", err)
		return
	}
	result, err := h.gaps.AnalyzeOccupation(personID, occupationID)
	if err != nil {
		RespondError(c, http.StatusNotFound, "analysis_failed", err)
		return
	}
	RespondOK(c, gin.H{"analysis": result})
}

// ExtractSkills resolves free text, e.g. extracted from an uploaded
// project plan, to internal skill records.
func (h *AnalysisHandler) ExtractSkills(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	RespondOK(c, gin.H{"skills": h.extraction.ExtractSkills(req.Text)})
}

// AnalyzeJobDescription treats the skills found in the text as the
// required set for the given person.
func (h *AnalysisHandler) AnalyzeJobDescription(c *gin.Context) {
	var req struct {
		PersonID int    `json:"person_id"`
		Text     string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	result, err := h.extraction.AnalyzeJobDescription(req.Text, req.PersonID)
	if err != nil {
		RespondError(c, http.StatusNotFound, "analysis_failed", err)
		return
	}
	RespondOK(c, gin.H{"analysis": result})
}

// AssignGapCourses bulk-assigns courses covering the given gap skills.
func (h *AnalysisHandler) AssignGapCourses(c *gin.Context) {
	var req struct {
		PersonID  int           `json:"person_id"`
		SkillGaps []types.Skill `json:"skillGaps"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	added, err := h.gaps.AssignGapCourses(req.PersonID, req.SkillGaps)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "assign_failed", err)
		return
	}
	RespondOK(c, gin.H{"coursesAdded": added})
}

func (h *AnalysisHandler) AggregateSkills(c *gin.Context) {
	RespondOK(c, gin.H{"aggregates": h.gaps.AggregateSkills()})
}
