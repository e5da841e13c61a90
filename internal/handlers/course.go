package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
)

type CourseHandler struct {
	log   *logger.Logger
	store *store.Store
}

func NewCourseHandler(log *logger.Logger, st *store.Store) *CourseHandler {
	return &CourseHandler{
		log:   log.With("handler", "CourseHandler"),
		store: st,
	}
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	RespondOK(c, gin.H{"courses": h.store.Courses()})
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req struct {
		Title           string `json:"title"`
		Provider        string `json:"provider"`
		ProvidesSkillID int    `json:"provides_skill_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	course, ok := h.store.AddCourse(req.Title, req.Provider, req.ProvidesSkillID)
	if !ok {
		RespondError(c, http.StatusBadRequest, "course_rejected",
			fmt.Errorf("title and a known skill are required"))
		return
	}
	RespondOK(c, gin.H{"course": course})
}
