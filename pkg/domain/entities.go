package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RecordMeta captures identifiers and audit fields shared across entities.
type RecordMeta struct {
	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt time.Time `bun:",soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// EnsureID assigns a UUID when the struct is about to be persisted.
func (m *RecordMeta) EnsureID() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
}

// Member statuses.
const (
	MemberStatusActive    = "Active"
	MemberStatusInactive  = "Inactive"
	MemberStatusNotAccess = "NotAccessYet"
)

// ProjectMember is a user's membership in a project, scoped to an account.
type ProjectMember struct {
	bun.BaseModel `bun:"table:project_members"`
	RecordMeta

	Username    string `bun:",notnull,unique:project_member_identity" json:"username"`
	ProjectID   int    `bun:",notnull,unique:project_member_identity" json:"project_id"`
	AccountID   int    `bun:",notnull,unique:project_member_identity" json:"account_id"`
	DisplayName string `bun:",nullzero" json:"display_name"`
	AvatarID    string `bun:",nullzero" json:"avatar_id"`
	Status      string `bun:",nullzero" json:"status"`
}

// Name returns the display name, falling back to the username.
func (m ProjectMember) Name() string {
	if name := strings.TrimSpace(m.DisplayName); name != "" {
		return name
	}
	return m.Username
}
