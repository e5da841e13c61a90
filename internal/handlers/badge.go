package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/services"
	"github.com/labtrack/labtrack-backend/internal/store"
	"github.com/labtrack/labtrack-backend/internal/types"
)

type BadgeHandler struct {
	log         *logger.Logger
	store       *store.Store
	planService services.PlanService
}

func NewBadgeHandler(log *logger.Logger, st *store.Store, planService services.PlanService) *BadgeHandler {
	return &BadgeHandler{
		log:         log.With("handler", "BadgeHandler"),
		store:       st,
		planService: planService,
	}
}

func (h *BadgeHandler) ListIssuedBadges(c *gin.Context) {
	RespondOK(c, gin.H{"issuedBadges": h.store.IssuedBadges()})
}

func (h *BadgeHandler) ListOpenBadges(c *gin.Context) {
	RespondOK(c, gin.H{
		"openBadges":    h.store.OpenBadges(),
		"pendingBadges": h.store.PendingBadges(),
	})
}

func (h *BadgeHandler) IssueBadge(c *gin.Context) {
	var req struct {
		PersonID   int       `json:"person_id"`
		SkillID    int       `json:"skill_id"`
		IssueDate  time.Time `json:"issueDate"`
		ExpiryDate time.Time `json:"expiryDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.IssueDate.IsZero() {
		req.IssueDate = time.Now()
	}
	badge, ok := h.store.IssueBadge(req.PersonID, req.SkillID, req.IssueDate, req.ExpiryDate)
	if !ok {
		RespondError(c, http.StatusBadRequest, "badge_rejected", nil)
		return
	}
	RespondOK(c, gin.H{"badge": badge})
}

// QueueOpenBadge accepts a microcredential notification from the course
// provider. It sits in the pending queue until the next sync.
func (h *BadgeHandler) QueueOpenBadge(c *gin.Context) {
	var req types.OpenBadge
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.IssueDate.IsZero() {
		req.IssueDate = time.Now()
	}
	h.store.QueuePendingBadge(req)
	RespondOK(c, gin.H{"queued": true})
}

// SyncBadges drains the pending queue, completing plan courses and
// upgrading skill levels. The report carries fail-soft warnings.
func (h *BadgeHandler) SyncBadges(c *gin.Context) {
	report, err := h.planService.SyncBadges()
	if err != nil {
		h.log.Error("SyncBadges failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "sync_failed", err)
		return
	}
	RespondOK(c, gin.H{"report": report})
}
