package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
	"github.com/zvitapp/zvit-status-engine/internal/service/dashboard"
	"github.com/zvitapp/zvit-status-engine/internal/service/urgent"
)

type StatusHandler struct {
	dashboard *dashboard.Service
	clock     domain.Clock
}

func NewStatusHandler(dashboardService *dashboard.Service, clock domain.Clock) *StatusHandler {
	return &StatusHandler{dashboard: dashboardService, clock: clock}
}

type memberStatusResponse struct {
	UserID            string     `json:"userId"`
	Name              string     `json:"name"`
	Role              string     `json:"role"`
	Color             string     `json:"color"`
	ColorHex          string     `json:"colorHex"`
	Percentage        *float64   `json:"percentage"`
	LastReportAt      *time.Time `json:"lastReportAt,omitempty"`
	UrgentRespondedAt *time.Time `json:"urgentRespondedAt,omitempty"`
}

type urgentSessionResponse struct {
	Active           bool       `json:"active"`
	SessionID        string     `json:"sessionId,omitempty"`
	RequestedAt      *time.Time `json:"requestedAt,omitempty"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"`
	Message          string     `json:"message,omitempty"`
	RequestedByName  string     `json:"requestedByName,omitempty"`
	TotalMembers     int        `json:"totalMembers"`
	RespondedCount   int        `json:"respondedCount"`
	RemainingSeconds int64      `json:"remainingSeconds"`
}

type groupStatusesResponse struct {
	GroupID          string                 `json:"groupId"`
	GroupName        string                 `json:"groupName"`
	Timezone         string                 `json:"timezone"`
	ServerTime       time.Time              `json:"serverTime"`
	PreviousReportAt *time.Time             `json:"previousReportAt,omitempty"`
	NextReportAt     *time.Time             `json:"nextReportAt,omitempty"`
	Members          []memberStatusResponse `json:"members"`
	UrgentSession    urgentSessionResponse  `json:"urgentSession"`
}

// HandleGroupStatuses serves GET /api/v1/groups/:groupId/statuses.
func (h *StatusHandler) HandleGroupStatuses(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	board, err := h.dashboard.ComputeGroupStatuses(c.Request.Context(), c.Param("groupId"), caller, h.clock.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGroupStatusesResponse(board))
}

func toGroupStatusesResponse(board *dashboard.GroupStatuses) groupStatusesResponse {
	resp := groupStatusesResponse{
		GroupID:          board.GroupID,
		GroupName:        board.GroupName,
		Timezone:         board.Timezone,
		ServerTime:       board.ServerTime,
		PreviousReportAt: board.PreviousReportAt,
		NextReportAt:     board.NextReportAt,
		Members:          make([]memberStatusResponse, 0, len(board.Members)),
		UrgentSession:    toUrgentSessionResponse(board.Urgent),
	}
	for _, row := range board.Members {
		resp.Members = append(resp.Members, memberStatusResponse{
			UserID:            row.UserID,
			Name:              row.Name,
			Role:              row.Role.String(),
			Color:             string(row.Color),
			ColorHex:          row.ColorHex,
			Percentage:        row.Percentage,
			LastReportAt:      row.LastReportAt,
			UrgentRespondedAt: row.UrgentRespondedAt,
		})
	}
	return resp
}

func toUrgentSessionResponse(progress urgent.Progress) urgentSessionResponse {
	return urgentSessionResponse{
		Active:           progress.Active,
		SessionID:        progress.SessionID,
		RequestedAt:      progress.RequestedAt,
		ExpiresAt:        progress.ExpiresAt,
		Message:          progress.Message,
		RequestedByName:  progress.RequestedByName,
		TotalMembers:     progress.TotalMembers,
		RespondedCount:   progress.RespondedCount,
		RemainingSeconds: progress.RemainingSeconds,
	}
}
