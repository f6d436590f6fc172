package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
	"github.com/zvitapp/zvit-status-engine/internal/service/urgent"
)

type UrgentHandler struct {
	urgent *urgent.Manager
	clock  domain.Clock
}

func NewUrgentHandler(manager *urgent.Manager, clock domain.Clock) *UrgentHandler {
	return &UrgentHandler{urgent: manager, clock: clock}
}

type createUrgentRequest struct {
	DeadlineMinutes int    `json:"deadlineMinutes"`
	Message         string `json:"message"`
}

type createUrgentResponse struct {
	SessionID       string    `json:"sessionId"`
	RequestedAt     time.Time `json:"requestedAt"`
	ExpiresAt       time.Time `json:"expiresAt"`
	Message         string    `json:"message,omitempty"`
	NotifiedMembers int       `json:"notifiedMembers"`
}

// HandleCreate serves POST /api/v1/groups/:groupId/urgent.
func (h *UrgentHandler) HandleCreate(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req createUrgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.urgent.Create(c.Request.Context(), c.Param("groupId"), caller, req.DeadlineMinutes, req.Message, h.clock.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createUrgentResponse{
		SessionID:       result.Session.ID,
		RequestedAt:     result.Session.RequestedAt,
		ExpiresAt:       result.Session.ExpiresAt,
		Message:         result.Session.Message,
		NotifiedMembers: result.NotifiedCount,
	})
}

// HandleEnd serves DELETE /api/v1/groups/:groupId/urgent.
func (h *UrgentHandler) HandleEnd(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.urgent.End(c.Request.Context(), c.Param("groupId"), caller, h.clock.Now()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ended"})
}
