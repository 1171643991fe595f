package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-projectlinks/internal/storage/memory"
	"github.com/goliatone/go-projectlinks/internal/templates"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/logger"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/store"
	"github.com/goliatone/go-projectlinks/pkg/members"
)

func newTestCatalog(t *testing.T) (*Catalog, *members.Service, *templates.Renderer) {
	t.Helper()
	svc, err := members.New(members.Dependencies{
		Repository: memory.NewMemberRepository(),
		Logger:     &logger.Nop{},
	})
	if err != nil {
		t.Fatalf("members service: %v", err)
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	cat, err := NewCatalog(Dependencies{Members: svc, Templates: renderer})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat, svc, renderer
}

func TestCatalogMemberCommands(t *testing.T) {
	ctx := context.Background()
	cat, svc, _ := newTestCatalog(t)

	input := members.MemberInput{Username: "jdoe", ProjectID: 42, AccountID: 1, DisplayName: "Jane"}
	if err := cat.SaveMember.Execute(ctx, MemberUpsert{MemberInput: input}); err != nil {
		t.Fatalf("save member: %v", err)
	}
	if err := cat.SaveMember.Execute(ctx, MemberUpsert{MemberInput: input}); err == nil {
		t.Fatal("expected duplicate save without allow_update to fail")
	}

	input.DisplayName = "Jane Doe"
	if err := cat.SaveMember.Execute(ctx, MemberUpsert{MemberInput: input, AllowUpdate: true}); err != nil {
		t.Fatalf("update member: %v", err)
	}
	member, err := svc.FindMemberByUsername(ctx, "jdoe", 42, 1)
	if err != nil {
		t.Fatalf("find member: %v", err)
	}
	if member.DisplayName != "Jane Doe" {
		t.Fatalf("expected updated display name, got %s", member.DisplayName)
	}

	if err := cat.RemoveMember.Execute(ctx, MemberRemove{Username: "jdoe", ProjectID: 42, AccountID: 1}); err != nil {
		t.Fatalf("remove member: %v", err)
	}
	if _, err := svc.FindMemberByUsername(ctx, "jdoe", 42, 1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected member removed, got %v", err)
	}
}

func TestCatalogRegisterReport(t *testing.T) {
	ctx := context.Background()
	cat, _, renderer := newTestCatalog(t)

	if err := cat.RegisterReport.Execute(ctx, ReportTemplate{Code: "email", Locale: "en"}); err == nil {
		t.Fatal("expected missing body error")
	}
	err := cat.RegisterReport.Execute(ctx, ReportTemplate{
		Code:     "email",
		Locale:   "en",
		Body:     "{{ mailto(email) }}",
		Required: []string{"email"},
	})
	if err != nil {
		t.Fatalf("register report: %v", err)
	}

	result, err := renderer.Render(ctx, templates.RenderRequest{
		Code: "email",
		Data: map[string]any{"email": "a@b.com"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result.Output != "mailto:a@b.com" {
		t.Fatalf("unexpected output %q", result.Output)
	}
}

func TestNewCatalogRequiresDependencies(t *testing.T) {
	if _, err := NewCatalog(Dependencies{}); err == nil {
		t.Fatal("expected error without members service")
	}
}
