// Package dashboard assembles the per-group status board: one classified
// row per member plus the live urgent session, evaluated at a single
// instant.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
	"github.com/zvitapp/zvit-status-engine/internal/service/schedule"
	"github.com/zvitapp/zvit-status-engine/internal/service/status"
	"github.com/zvitapp/zvit-status-engine/internal/service/urgent"
)

type Service struct {
	groups    domain.GroupStore
	members   domain.MemberStore
	reports   domain.ReportStore
	responses domain.UrgentResponseStore
	urgent    *urgent.Manager
}

func NewService(
	groups domain.GroupStore,
	members domain.MemberStore,
	reports domain.ReportStore,
	responses domain.UrgentResponseStore,
	urgentManager *urgent.Manager,
) *Service {
	return &Service{
		groups:    groups,
		members:   members,
		reports:   reports,
		responses: responses,
		urgent:    urgentManager,
	}
}

// MemberStatus is one classified row of the board.
type MemberStatus struct {
	UserID            string
	Name              string
	Role              domain.Role
	Color             domain.ColorState
	ColorHex          string
	Percentage        *float64
	LastReportAt      *time.Time
	UrgentRespondedAt *time.Time
}

// GroupStatuses is the full board for one group.
type GroupStatuses struct {
	GroupID          string
	GroupName        string
	Timezone         string
	ServerTime       time.Time
	PreviousReportAt *time.Time
	NextReportAt     *time.Time
	Members          []MemberStatus
	Urgent           urgent.Progress
}

// ComputeGroupStatuses builds the board as seen by the requester, who must
// be an accepted member. The schedule cycle is computed once, in the
// group's timezone, and shared by every row.
func (s *Service) ComputeGroupStatuses(ctx context.Context, groupID, requesterID string, now time.Time) (*GroupStatuses, error) {
	group, err := s.groups.FindGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("find group: %w", err)
	}
	if _, err := s.members.FindMember(ctx, groupID, requesterID); err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}

	localNow := now.In(group.Location())
	cfg := group.Schedule()

	var previous, next *time.Time
	if prev, ok := schedule.Previous(cfg, localNow); ok {
		previous = &prev
	}
	if nxt, ok := schedule.Next(cfg, localNow); ok {
		next = &nxt
	}

	members, err := s.members.AcceptedMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	progress, err := s.urgent.Progress(ctx, group, now)
	if err != nil {
		return nil, fmt.Errorf("urgent progress: %w", err)
	}

	board := &GroupStatuses{
		GroupID:          group.ID,
		GroupName:        group.Name,
		Timezone:         group.Location().String(),
		ServerTime:       localNow,
		PreviousReportAt: previous,
		NextReportAt:     next,
		Members:          make([]MemberStatus, 0, len(members)),
		Urgent:           progress,
	}

	for _, member := range members {
		row, err := s.memberRow(ctx, member, previous, next, localNow, progress)
		if err != nil {
			return nil, err
		}
		board.Members = append(board.Members, row)
	}

	return board, nil
}

func (s *Service) memberRow(
	ctx context.Context,
	member domain.GroupMember,
	previous, next *time.Time,
	now time.Time,
	progress urgent.Progress,
) (MemberStatus, error) {
	var lastReportAt *time.Time
	last, err := s.reports.LastReport(ctx, member.GroupID, member.UserID)
	if err != nil {
		return MemberStatus{}, fmt.Errorf("last report for %s: %w", member.UserID, err)
	}
	if last != nil {
		lastReportAt = &last.SubmittedAt
	}

	band := status.Classify(member.Role, lastReportAt, previous, next, now)

	row := MemberStatus{
		UserID:       member.UserID,
		Role:         member.Role,
		Color:        band.Color,
		ColorHex:     band.Color.Hex(),
		Percentage:   band.Percentage,
		LastReportAt: lastReportAt,
	}
	if member.User != nil {
		row.Name = member.User.Name
	}

	if progress.Active {
		response, err := s.responses.FindBySessionAndUser(ctx, progress.SessionID, member.UserID)
		if err != nil {
			return MemberStatus{}, fmt.Errorf("urgent response for %s: %w", member.UserID, err)
		}
		if response != nil {
			row.UrgentRespondedAt = &response.RespondedAt
		}
	}

	return row, nil
}
