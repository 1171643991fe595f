package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-projectlinks/pkg/domain"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/store"
)

func TestMemberRepositoryMemory(t *testing.T) {
	repo := NewMemberRepository()
	ctx := context.Background()

	member := &domain.ProjectMember{
		Username:    "jdoe",
		ProjectID:   42,
		AccountID:   1,
		DisplayName: "Jane Doe",
	}
	if err := repo.Create(ctx, member); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByUsername(ctx, "JDoe", 42, 1)
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if got.DisplayName != "Jane Doe" {
		t.Fatalf("expected Jane Doe, got %s", got.DisplayName)
	}

	if _, err := repo.GetByUsername(ctx, "jdoe", 43, 1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not found for other project, got %v", err)
	}

	result, err := repo.ListByProject(ctx, 42, 1, store.ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("expected total 1, got %d", result.Total)
	}
}

func TestMemberRepositoryRejectsDuplicates(t *testing.T) {
	repo := NewMemberRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.ProjectMember{Username: "jdoe", ProjectID: 1, AccountID: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, &domain.ProjectMember{Username: "jdoe", ProjectID: 1, AccountID: 1}); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := repo.Create(ctx, &domain.ProjectMember{Username: "jdoe", ProjectID: 2, AccountID: 1}); err != nil {
		t.Fatalf("expected membership in another project to be allowed: %v", err)
	}
}

func TestMemberRepositorySoftDeleteHidesMember(t *testing.T) {
	repo := NewMemberRepository()
	ctx := context.Background()

	member := &domain.ProjectMember{Username: "jdoe", ProjectID: 1, AccountID: 1}
	if err := repo.Create(ctx, member); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.SoftDelete(ctx, member.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if _, err := repo.GetByUsername(ctx, "jdoe", 1, 1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if _, err := repo.GetByID(ctx, member.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected GetByID not found after delete, got %v", err)
	}
	all, err := repo.List(ctx, store.ListOptions{IncludeSoftDeleted: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if all.Total != 1 {
		t.Fatalf("expected deleted record when including soft deleted, got %d", all.Total)
	}
}

func TestMemberRepositoryCreateRestoresRemoved(t *testing.T) {
	repo := NewMemberRepository()
	ctx := context.Background()

	member := &domain.ProjectMember{Username: "jdoe", ProjectID: 1, AccountID: 1, AvatarID: "old"}
	if err := repo.Create(ctx, member); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.SoftDelete(ctx, member.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	again := &domain.ProjectMember{Username: "JDoe", ProjectID: 1, AccountID: 1, AvatarID: "new"}
	if err := repo.Create(ctx, again); err != nil {
		t.Fatalf("re-create after delete: %v", err)
	}
	if again.ID != member.ID {
		t.Fatalf("expected removed row %s to be restored, got %s", member.ID, again.ID)
	}

	got, err := repo.GetByUsername(ctx, "jdoe", 1, 1)
	if err != nil {
		t.Fatalf("get after re-create: %v", err)
	}
	if got.AvatarID != "new" {
		t.Fatalf("expected restored row to carry new avatar, got %q", got.AvatarID)
	}

	all, err := repo.List(ctx, store.ListOptions{IncludeSoftDeleted: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if all.Total != 1 {
		t.Fatalf("expected a single row, got %d", all.Total)
	}
}
