package domain

import (
	"time"
)

// Role is a member's role within a group.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleModer  Role = "MODER"
	RoleMember Role = "MEMBER"
)

func (r Role) String() string {
	return string(r)
}

// HasAdminRights reports whether the role may perform admin-only group
// operations (urgent sessions, schedule settings). Compliance exemption is
// narrower: only RoleAdmin is exempt, see the status classifier.
func (r Role) HasAdminRights() bool {
	return r == RoleAdmin || r == RoleModer
}

// MemberState is the join-request state of a group member.
type MemberState string

const (
	MemberAccepted MemberState = "ACCEPTED"
	MemberPending  MemberState = "PENDING"
	MemberRejected MemberState = "REJECTED"
)

type User struct {
	ID                   string    `gorm:"primaryKey;size:36"`
	Name                 string    `gorm:"size:100;not null"`
	NotificationsEnabled bool      `gorm:"default:true"`
	FCMToken             string    `gorm:"size:512"`
	FCMTokenWeb          string    `gorm:"size:512"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

type GroupMember struct {
	ID       string      `gorm:"primaryKey;size:36"`
	GroupID  string      `gorm:"size:36;not null;index:idx_member_group_user,unique"`
	UserID   string      `gorm:"size:36;not null;index:idx_member_group_user,unique"`
	Role     Role        `gorm:"size:10;not null"`
	State    MemberState `gorm:"size:10;not null"`
	JoinedAt time.Time   `gorm:"autoCreateTime"`

	User *User `gorm:"foreignKey:UserID"`
}

func (GroupMember) TableName() string {
	return "group_members"
}
