// Package report handles report submission and retrieval.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
	"github.com/zvitapp/zvit-status-engine/internal/service/urgent"
)

type Service struct {
	groups  domain.GroupStore
	members domain.MemberStore
	reports domain.ReportStore
	urgent  *urgent.Manager
}

func NewService(groups domain.GroupStore, members domain.MemberStore, reports domain.ReportStore, urgentManager *urgent.Manager) *Service {
	return &Service{
		groups:  groups,
		members: members,
		reports: reports,
		urgent:  urgentManager,
	}
}

// SubmitInput is a report submission. SimpleOK is required for SIMPLE
// reports; the free-form fields belong to EXTENDED ones.
type SubmitInput struct {
	GroupID    string
	UserID     string
	ReportType domain.ReportType
	SimpleOK   *bool
	Comment    string
	Field1     string
	Field2     string
	Field3     string
	Field4     string
	Field5     string
}

// Submit stores the report and, when an urgent session is live, records it
// as the member's response. Response bookkeeping failures are logged and do
// not fail the submission.
func (s *Service) Submit(ctx context.Context, input SubmitInput, now time.Time) (*domain.Report, error) {
	switch input.ReportType {
	case domain.ReportSimple:
		if input.SimpleOK == nil {
			return nil, domain.ErrInvalidReport
		}
	case domain.ReportExtended:
	default:
		return nil, domain.ErrInvalidReport
	}

	group, err := s.groups.FindGroup(ctx, input.GroupID)
	if err != nil {
		return nil, fmt.Errorf("find group: %w", err)
	}

	member, err := s.members.FindMember(ctx, input.GroupID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}

	report := &domain.Report{
		ID:          uuid.NewString(),
		GroupID:     input.GroupID,
		UserID:      input.UserID,
		ReportType:  input.ReportType,
		SimpleOK:    input.SimpleOK,
		Comment:     input.Comment,
		Field1:      input.Field1,
		Field2:      input.Field2,
		Field3:      input.Field3,
		Field4:      input.Field4,
		Field5:      input.Field5,
		SubmittedAt: now,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}

	if err := s.urgent.RecordResponseIfActive(ctx, group, member.Role, input.UserID, report.ID, now); err != nil {
		slog.WarnContext(ctx, "failed to record urgent response",
			slog.String("groupId", input.GroupID),
			slog.String("userId", input.UserID),
			slog.String("reportId", report.ID),
			slog.String("error", err.Error()),
		)
	}

	slog.InfoContext(ctx, "report submitted",
		slog.String("groupId", input.GroupID),
		slog.String("userId", input.UserID),
		slog.String("reportId", report.ID),
		slog.String("type", string(input.ReportType)),
	)
	return report, nil
}

// ListGroupReports returns every report in the group. Admin rights
// required: the full feed exposes other members' submissions.
func (s *Service) ListGroupReports(ctx context.Context, groupID, requesterID string) ([]domain.Report, error) {
	member, err := s.members.FindMember(ctx, groupID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}
	if !member.Role.HasAdminRights() {
		return nil, domain.ErrNotAuthorized
	}
	return s.reports.ListGroupReports(ctx, groupID)
}

// ListUserReports returns one member's reports in the group. Members may
// read their own history; anyone else's requires admin rights.
func (s *Service) ListUserReports(ctx context.Context, groupID, userID, requesterID string) ([]domain.Report, error) {
	member, err := s.members.FindMember(ctx, groupID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}
	if requesterID != userID && !member.Role.HasAdminRights() {
		return nil, domain.ErrNotAuthorized
	}
	return s.reports.ListUserReports(ctx, groupID, userID)
}
