package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

type DepartmentHandler struct {
	log   *logger.Logger
	store *store.Store
}

func NewDepartmentHandler(log *logger.Logger, st *store.Store) *DepartmentHandler {
	return &DepartmentHandler{
		log:   log.With("handler", "DepartmentHandler"),
		store: st,
	}
}

func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	RespondOK(c, gin.H{"departments": h.store.Departments()})
}

func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	dept, ok := h.store.AddDepartment(req.Name)
	if !ok {
		RespondError(c, http.StatusBadRequest, "empty_name", fmt.Errorf("department name is required"))
		return
	}
	RespondOK(c, gin.H{"department": dept})
}

func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_department_id", err)
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if !h.store.UpdateDepartment(id, req.Name) {
		RespondError(c, http.StatusNotFound, "department_not_found", fmt.Errorf("department %d not found", id))
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_department_id", err)
		return
	}
	if id == types.UnassignedDepartmentID {
		RespondError(c, http.StatusBadRequest, "sentinel_department",
			fmt.Errorf("the Unassigned department cannot be deleted"))
		return
	}
	if !h.store.DeleteDepartment(id) {
		RespondError(c, http.StatusNotFound, "department_not_found", fmt.Errorf("department %d not found", id))
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
