package domain

import "errors"

var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrNotMember           = errors.New("not a member of this group")
	ErrNotAuthorized       = errors.New("admin rights required")
	ErrNoActiveSession     = errors.New("no active urgent session")
	ErrUrgentSessionActive = errors.New("urgent session already active")
	ErrInvalidDeadline     = errors.New("deadline must be between 5 and 120 minutes")
	ErrMessageTooLong      = errors.New("message exceeds 200 characters")
	ErrInvalidSchedule     = errors.New("invalid schedule configuration")
	ErrInvalidReport       = errors.New("invalid report payload")
)
