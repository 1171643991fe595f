package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-projectlinks/pkg/domain"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/store"
	"github.com/google/uuid"
)

type MemberRepository struct {
	base baseMemoryRepo[domain.ProjectMember]
}

var _ store.ProjectMemberRepository = (*MemberRepository)(nil)

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{
		base: newBaseMemoryRepo("project_member", func(m *domain.ProjectMember) *domain.RecordMeta { return &m.RecordMeta }),
	}
}

func (r *MemberRepository) Create(ctx context.Context, record *domain.ProjectMember) error {
	if record == nil {
		return store.ErrNotFound
	}
	if strings.TrimSpace(record.Username) == "" {
		return errors.New("member username is required")
	}
	r.base.mu.Lock()
	defer r.base.mu.Unlock()
	for _, existing := range r.base.records {
		if !sameIdentity(&existing, record.Username, record.ProjectID, record.AccountID) {
			continue
		}
		if existing.DeletedAt.IsZero() {
			return fmt.Errorf("member %s already exists in project %d", record.Username, record.ProjectID)
		}
		// removed rows are restored in place
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		record.DeletedAt = time.Time{}
		break
	}
	return r.base.createLocked(record)
}

func (r *MemberRepository) Update(ctx context.Context, record *domain.ProjectMember) error {
	return r.base.update(ctx, record)
}

func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProjectMember, error) {
	return r.base.getByID(ctx, id, false)
}

func (r *MemberRepository) GetByUsername(ctx context.Context, username string, projectID, accountID int) (*domain.ProjectMember, error) {
	return r.base.find(ctx, func(m *domain.ProjectMember) bool {
		return sameIdentity(m, username, projectID, accountID)
	})
}

func (r *MemberRepository) List(ctx context.Context, opts store.ListOptions) (store.ListResult[domain.ProjectMember], error) {
	return r.base.list(ctx, opts, nil)
}

func (r *MemberRepository) ListByProject(ctx context.Context, projectID, accountID int, opts store.ListOptions) (store.ListResult[domain.ProjectMember], error) {
	return r.base.list(ctx, opts, func(m *domain.ProjectMember) bool {
		return m.ProjectID == projectID && m.AccountID == accountID
	})
}

func (r *MemberRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.base.softDelete(ctx, id)
}

func sameIdentity(m *domain.ProjectMember, username string, projectID, accountID int) bool {
	return m.ProjectID == projectID &&
		m.AccountID == accountID &&
		strings.EqualFold(m.Username, username)
}
