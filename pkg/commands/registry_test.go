package commands

import (
	"context"
	"testing"

	"github.com/goliatone/go-projectlinks/internal/storage/memory"
	"github.com/goliatone/go-projectlinks/pkg/members"
	"github.com/goliatone/go-projectlinks/pkg/reporting"
)

func TestRegistryWiresCatalog(t *testing.T) {
	svc, err := members.New(members.Dependencies{Repository: memory.NewMemberRepository()})
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	reports, err := reporting.NewTemplates(reporting.TemplateOptions{})
	if err != nil {
		t.Fatalf("templates: %v", err)
	}

	reg, err := New(Dependencies{Members: svc, Reports: reports})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	err = reg.SaveMember.Execute(context.Background(), MemberUpsert{
		MemberInput: members.MemberInput{Username: "jdoe", ProjectID: 42, AccountID: 1},
	})
	if err != nil {
		t.Fatalf("save member: %v", err)
	}
	if _, err := svc.FindMemberByUsername(context.Background(), "jdoe", 42, 1); err != nil {
		t.Fatalf("expected saved member: %v", err)
	}
}

func TestRegistryRequiresServices(t *testing.T) {
	if _, err := New(Dependencies{}); err == nil {
		t.Fatal("expected error without services")
	}
}
