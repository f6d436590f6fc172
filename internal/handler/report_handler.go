package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
	"github.com/zvitapp/zvit-status-engine/internal/service/report"
)

type ReportHandler struct {
	reports *report.Service
	clock   domain.Clock
}

func NewReportHandler(reportService *report.Service, clock domain.Clock) *ReportHandler {
	return &ReportHandler{reports: reportService, clock: clock}
}

type submitReportRequest struct {
	GroupID    string `json:"groupId" binding:"required"`
	ReportType string `json:"reportType" binding:"required"`
	SimpleOK   *bool  `json:"simpleOk"`
	Comment    string `json:"comment" binding:"max=500"`
	Field1     string `json:"field1" binding:"max=500"`
	Field2     string `json:"field2" binding:"max=500"`
	Field3     string `json:"field3" binding:"max=500"`
	Field4     string `json:"field4" binding:"max=500"`
	Field5     string `json:"field5" binding:"max=500"`
}

type reportResponse struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"groupId"`
	UserID      string    `json:"userId"`
	ReportType  string    `json:"reportType"`
	SimpleOK    *bool     `json:"simpleOk,omitempty"`
	Comment     string    `json:"comment,omitempty"`
	Field1      string    `json:"field1,omitempty"`
	Field2      string    `json:"field2,omitempty"`
	Field3      string    `json:"field3,omitempty"`
	Field4      string    `json:"field4,omitempty"`
	Field5      string    `json:"field5,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// HandleSubmit serves POST /api/v1/reports.
func (h *ReportHandler) HandleSubmit(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req submitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.reports.Submit(c.Request.Context(), report.SubmitInput{
		GroupID:    req.GroupID,
		UserID:     caller,
		ReportType: domain.ReportType(req.ReportType),
		SimpleOK:   req.SimpleOK,
		Comment:    req.Comment,
		Field1:     req.Field1,
		Field2:     req.Field2,
		Field3:     req.Field3,
		Field4:     req.Field4,
		Field5:     req.Field5,
	}, h.clock.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toReportResponse(created))
}

// HandleGroupReports serves GET /api/v1/groups/:groupId/reports.
func (h *ReportHandler) HandleGroupReports(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	reports, err := h.reports.ListGroupReports(c.Request.Context(), c.Param("groupId"), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": toReportResponses(reports)})
}

// HandleUserReports serves GET /api/v1/groups/:groupId/members/:userId/reports.
func (h *ReportHandler) HandleUserReports(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	reports, err := h.reports.ListUserReports(c.Request.Context(), c.Param("groupId"), c.Param("userId"), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": toReportResponses(reports)})
}

func toReportResponse(r *domain.Report) reportResponse {
	return reportResponse{
		ID:          r.ID,
		GroupID:     r.GroupID,
		UserID:      r.UserID,
		ReportType:  string(r.ReportType),
		SimpleOK:    r.SimpleOK,
		Comment:     r.Comment,
		Field1:      r.Field1,
		Field2:      r.Field2,
		Field3:      r.Field3,
		Field4:      r.Field4,
		Field5:      r.Field5,
		SubmittedAt: r.SubmittedAt,
	}
}

func toReportResponses(reports []domain.Report) []reportResponse {
	out := make([]reportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, toReportResponse(&reports[i]))
	}
	return out
}
