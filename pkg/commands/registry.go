// Package commands exposes the member directory and report template commands
// to host transports.
package commands

import (
	command "github.com/goliatone/go-command"
	internalcommands "github.com/goliatone/go-projectlinks/internal/commands"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/logger"
	"github.com/goliatone/go-projectlinks/pkg/members"
	"github.com/goliatone/go-projectlinks/pkg/reporting"
)

// Re-export request types so consumers need not import internal packages.
type (
	MemberUpsert   = internalcommands.MemberUpsert
	MemberRemove   = internalcommands.MemberRemove
	ReportTemplate = internalcommands.ReportTemplate
)

// Registry exposes go-command compatible handlers backed by the module services.
type Registry struct {
	Catalog        *internalcommands.Catalog
	SaveMember     command.Commander[MemberUpsert]
	RemoveMember   command.Commander[MemberRemove]
	RegisterReport command.Commander[ReportTemplate]
}

// Dependencies mirror the internal command dependencies but keep them public.
type Dependencies struct {
	Members *members.Service
	Reports *reporting.Templates
	Logger  logger.Logger
}

// New builds the registry using the provided dependencies.
func New(deps Dependencies) (*Registry, error) {
	internalDeps := internalcommands.Dependencies{Logger: deps.Logger}
	if deps.Members != nil {
		internalDeps.Members = deps.Members
	}
	if deps.Reports != nil {
		internalDeps.Templates = deps.Reports.Renderer()
	}
	catalog, err := internalcommands.NewCatalog(internalDeps)
	if err != nil {
		return nil, err
	}
	return &Registry{
		Catalog:        catalog,
		SaveMember:     catalog.SaveMember,
		RemoveMember:   catalog.RemoveMember,
		RegisterReport: catalog.RegisterReport,
	}, nil
}
