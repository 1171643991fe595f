package storage

import (
	"context"
	"database/sql"

	bunrepo "github.com/goliatone/go-projectlinks/internal/storage/bun"
	"github.com/goliatone/go-projectlinks/internal/storage/memory"
	"github.com/goliatone/go-projectlinks/pkg/domain"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/store"
	persistence "github.com/goliatone/go-persistence-bun"
	"github.com/uptrace/bun"
)

// Providers exposes all repositories needed by services.
type Providers struct {
	Members     store.ProjectMemberRepository
	Transaction store.TransactionManager
}

type Option func(*Providers)

// WithMemberRepository overrides the member repository.
func WithMemberRepository(repo store.ProjectMemberRepository) Option {
	return func(p *Providers) {
		if repo != nil {
			p.Members = repo
		}
	}
}

// NewMemoryProviders returns repositories backed by in-memory maps.
func NewMemoryProviders(opts ...Option) Providers {
	providers := Providers{
		Members:     memory.NewMemberRepository(),
		Transaction: &store.NopTransactionManager{},
	}
	for _, opt := range opts {
		opt(&providers)
	}
	return providers
}

// NewBunProviders wires Bun-backed repositories using go-repository-bun.
// The caller is responsible for creating the *bun.DB instance (potentially
// via go-persistence-bun) and managing its lifecycle.
func NewBunProviders(db *bun.DB, opts ...Option) Providers {
	if db == nil {
		panic("storage: bun DB is required")
	}

	// Register models so go-persistence-bun migrations can pick them up.
	persistence.RegisterModel(
		(*domain.ProjectMember)(nil),
	)

	providers := Providers{
		Members:     bunrepo.NewMemberRepository(db),
		Transaction: &bunTxManager{db: db},
	}

	for _, opt := range opts {
		opt(&providers)
	}
	return providers
}

// CreateSchema creates the tables backing the Bun repositories when missing.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*domain.ProjectMember)(nil)).IfNotExists().Exec(ctx)
	return err
}

type bunTxManager struct {
	db *bun.DB
}

func (m *bunTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(bunrepo.WithTx(ctx, tx))
	})
}
