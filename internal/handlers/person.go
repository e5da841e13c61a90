package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

type PersonHandler struct {
	log   *logger.Logger
	store *store.Store
}

func NewPersonHandler(log *logger.Logger, st *store.Store) *PersonHandler {
	return &PersonHandler{
		log:   log.With("handler", "PersonHandler"),
		store: st,
	}
}

func (h *PersonHandler) ListPeople(c *gin.Context) {
	RespondOK(c, gin.H{"people": h.store.People()})
}

func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_person_id", err)
		return
	}
	person, ok := h.store.Person(id)
	if !ok {
		RespondError(c, http.StatusNotFound, "person_not_found", fmt.Errorf("person %d not found", id))
		return
	}
	RespondOK(c, gin.H{"person": person})
}

func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req types.Person
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	person, ok := h.store.AddPerson(req)
	if !ok {
		RespondError(c, http.StatusBadRequest, "missing_required_fields",
			fmt.Errorf("name and job are required"))
		return
	}
	RespondOK(c, gin.H{"person": person})
}

func (h *PersonHandler) UpdateDepartment(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_person_id", err)
		return
	}
	var req struct {
		DepartmentID int `json:"department_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if !h.store.UpdatePersonDepartment(id, req.DepartmentID) {
		RespondError(c, http.StatusNotFound, "person_not_found", fmt.Errorf("person %d not found", id))
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *PersonHandler) UpsertSkill(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_person_id", err)
		return
	}
	var req types.PersonSkill
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Level < 1 || req.Level > 5 {
		RespondError(c, http.StatusBadRequest, "invalid_level", fmt.Errorf("level must be 1..5"))
		return
	}
	if !h.store.UpsertPersonSkill(id, req.SkillID, req.Level) {
		RespondError(c, http.StatusNotFound, "person_not_found", fmt.Errorf("person %d not found", id))
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func pathInt(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}
