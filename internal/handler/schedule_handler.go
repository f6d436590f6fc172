package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
	"github.com/zvitapp/zvit-status-engine/internal/service/group"
)

type ScheduleHandler struct {
	groups *group.Service
}

func NewScheduleHandler(groupService *group.Service) *ScheduleHandler {
	return &ScheduleHandler{groups: groupService}
}

type updateScheduleRequest struct {
	ScheduleType      string   `json:"scheduleType" binding:"required"`
	FixedTimes        []string `json:"fixedTimes" binding:"max=5"`
	IntervalStartTime string   `json:"intervalStartTime"`
	IntervalMinutes   int      `json:"intervalMinutes"`
}

// HandleUpdateSchedule serves PUT /api/v1/groups/:groupId/schedule.
func (h *ScheduleHandler) HandleUpdateSchedule(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req updateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := domain.ScheduleConfig{
		Type:              domain.ScheduleType(req.ScheduleType),
		FixedTimes:        req.FixedTimes,
		IntervalStartTime: req.IntervalStartTime,
		IntervalMinutes:   req.IntervalMinutes,
	}

	if err := h.groups.UpdateSchedule(c.Request.Context(), c.Param("groupId"), caller, cfg); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
