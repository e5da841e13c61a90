package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/services"
	"github.com/labtrack/labtrack-backend/internal/store"
)

type PlanHandler struct {
	log         *logger.Logger
	store       *store.Store
	planService services.PlanService
}

func NewPlanHandler(log *logger.Logger, st *store.Store, planService services.PlanService) *PlanHandler {
	return &PlanHandler{
		log:         log.With("handler", "PlanHandler"),
		store:       st,
		planService: planService,
	}
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	RespondOK(c, gin.H{"plans": h.planService.PlanDetails()})
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req struct {
		PersonID  int   `json:"person_id"`
		CourseIDs []int `json:"course_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	added, err := h.planService.CreatePlan(req.PersonID, req.CourseIDs)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_plan_failed", err)
		return
	}
	RespondOK(c, gin.H{"coursesAdded": added})
}

// AutoCreatePlan assigns courses covering the person's missing required
// skills, skipping anything already assigned or completed.
func (h *PlanHandler) AutoCreatePlan(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_person_id", err)
		return
	}
	created, err := h.planService.AutoCreatePlan(id)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "auto_create_failed", err)
		return
	}
	RespondOK(c, gin.H{"createdCount": created})
}

func (h *PlanHandler) UpdateCourseFields(c *gin.Context) {
	planID, err := pathInt(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_plan_id", err)
		return
	}
	courseID, err := pathInt(c, "courseId")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_course_id", err)
		return
	}
	var req services.CourseFieldsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.planService.UpdateCourseFields(planID, courseID, req); err != nil {
		RespondError(c, http.StatusNotFound, "update_failed", err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *PlanHandler) HubStats(c *gin.Context) {
	RespondOK(c, gin.H{"stats": h.planService.HubStats()})
}
