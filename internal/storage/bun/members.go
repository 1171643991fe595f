package bunrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-projectlinks/pkg/domain"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/store"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type MemberRepository struct {
	base baseRepository[domain.ProjectMember]
}

var _ store.ProjectMemberRepository = (*MemberRepository)(nil)

func NewMemberRepository(db *bun.DB) *MemberRepository {
	handlers := repository.ModelHandlers[*domain.ProjectMember]{
		NewRecord: func() *domain.ProjectMember { return &domain.ProjectMember{} },
		GetID:     func(m *domain.ProjectMember) uuid.UUID { return m.ID },
		SetID: func(m *domain.ProjectMember, id uuid.UUID) {
			m.ID = id
		},
		GetIdentifier: func() string { return "username" },
		GetIdentifierValue: func(m *domain.ProjectMember) string {
			return fmt.Sprintf("%d/%d/%s", m.AccountID, m.ProjectID, m.Username)
		},
	}
	return &MemberRepository{
		base: newBaseRepository[domain.ProjectMember](db, handlers, func(m *domain.ProjectMember) *domain.RecordMeta { return &m.RecordMeta }),
	}
}

// Create inserts member. A soft-deleted row with the same identity is
// restored in place, since the identity is unique across deleted rows too.
func (r *MemberRepository) Create(ctx context.Context, member *domain.ProjectMember) error {
	removed, err := r.base.get(ctx,
		withUsername(member.Username),
		withProject(member.ProjectID, member.AccountID),
		repository.SelectDeletedOnly(),
	)
	if errors.Is(err, store.ErrNotFound) {
		return r.base.create(ctx, member)
	}
	if err != nil {
		return err
	}
	member.ID = removed.ID
	member.CreatedAt = removed.CreatedAt
	member.DeletedAt = time.Time{}
	return r.base.update(ctx, member, repository.UpdateDeletedOnly())
}

func (r *MemberRepository) Update(ctx context.Context, member *domain.ProjectMember) error {
	return r.base.update(ctx, member)
}

func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProjectMember, error) {
	return r.base.getByID(ctx, id, false)
}

func (r *MemberRepository) GetByUsername(ctx context.Context, username string, projectID, accountID int) (*domain.ProjectMember, error) {
	return r.base.get(ctx,
		withUsername(username),
		withProject(projectID, accountID),
		withoutDeleted(),
	)
}

func (r *MemberRepository) List(ctx context.Context, opts store.ListOptions) (store.ListResult[domain.ProjectMember], error) {
	return r.base.list(ctx, opts)
}

func (r *MemberRepository) ListByProject(ctx context.Context, projectID, accountID int, opts store.ListOptions) (store.ListResult[domain.ProjectMember], error) {
	return r.base.list(ctx, opts, withProject(projectID, accountID))
}

func (r *MemberRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.base.softDelete(ctx, id)
}
