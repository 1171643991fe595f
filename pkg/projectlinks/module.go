// Package projectlinks assembles the link, fragment and reporting services
// behind a single module facade.
package projectlinks

import (
	i18n "github.com/goliatone/go-i18n"
	"github.com/goliatone/go-projectlinks/internal/di"
	"github.com/goliatone/go-projectlinks/pkg/commands"
	"github.com/goliatone/go-projectlinks/pkg/config"
	"github.com/goliatone/go-projectlinks/pkg/fragments"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/logger"
	"github.com/goliatone/go-projectlinks/pkg/members"
	"github.com/goliatone/go-projectlinks/pkg/reporting"
	"github.com/goliatone/go-projectlinks/pkg/site"
	"github.com/goliatone/go-projectlinks/pkg/storage"
)

// ModuleOptions configure the module facade.
type ModuleOptions struct {
	Config     config.Config
	Storage    storage.Providers
	Logger     logger.Logger
	Translator i18n.Translator
	Fallbacks  i18n.FallbackResolver
	Helpers    map[string]any
}

// Module bundles the container and exposes high-level accessors.
type Module struct {
	container *di.Container
}

// NewModule assembles repositories, services, the fragment builder and commands.
// A zero Config uses config.Defaults and nil collaborators use in-memory or
// built-in implementations.
func NewModule(opts ModuleOptions) (*Module, error) {
	container, err := di.New(di.Options{
		Config:     opts.Config,
		Storage:    opts.Storage,
		Logger:     opts.Logger,
		Translator: opts.Translator,
		Fallbacks:  opts.Fallbacks,
		Helpers:    opts.Helpers,
	})
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Site returns the site context described by the configuration.
func (m *Module) Site() site.Context {
	if m == nil || m.container == nil {
		return site.Context{}
	}
	return site.FromConfig(m.container.Config.Site)
}

// Members returns the member directory service.
func (m *Module) Members() *members.Service {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Members
}

// Fragments returns the HTML fragment builder.
func (m *Module) Fragments() *fragments.Builder {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Fragments
}

// Reports returns the report template set.
func (m *Module) Reports() *reporting.Templates {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Reports
}

// Commands returns the go-command registry.
func (m *Module) Commands() *commands.Registry {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Commands
}

// Config returns the effective module configuration.
func (m *Module) Config() config.Config {
	if m == nil || m.container == nil {
		return config.Config{}
	}
	return m.container.Config
}

// Container returns the internal DI container.
// This is exposed for advanced use cases like direct storage access.
func (m *Module) Container() *di.Container {
	if m == nil {
		return nil
	}
	return m.container
}
