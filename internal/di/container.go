package di

import (
	"reflect"

	i18n "github.com/goliatone/go-i18n"
	"github.com/goliatone/go-projectlinks/pkg/assets"
	"github.com/goliatone/go-projectlinks/pkg/commands"
	"github.com/goliatone/go-projectlinks/pkg/config"
	"github.com/goliatone/go-projectlinks/pkg/fragments"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/logger"
	"github.com/goliatone/go-projectlinks/pkg/members"
	"github.com/goliatone/go-projectlinks/pkg/reporting"
	"github.com/goliatone/go-projectlinks/pkg/storage"
	"github.com/goliatone/go-projectlinks/pkg/tooltip"
)

// Options configure the DI container.
type Options struct {
	Config     config.Config
	Storage    storage.Providers
	Logger     logger.Logger
	Translator i18n.Translator
	Fallbacks  i18n.FallbackResolver
	Helpers    map[string]any
}

// Container wires repositories, services, the fragment builder and commands.
type Container struct {
	Config     config.Config
	Storage    storage.Providers
	Translator i18n.Translator
	Members    *members.Service
	Avatars    *assets.AvatarResolver
	Icons      *assets.IconSet
	Tooltips   *tooltip.Helper
	Fragments  *fragments.Builder
	Reports    *reporting.Templates
	Commands   *commands.Registry
}

func isZeroConfig(cfg config.Config) bool {
	return reflect.ValueOf(cfg).IsZero()
}

// New constructs the container using the supplied options.
func New(opts Options) (*Container, error) {
	cfg := opts.Config
	if isZeroConfig(cfg) {
		cfg = config.Defaults()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	providers := opts.Storage
	if providers.Members == nil {
		providers = storage.NewMemoryProviders()
	}

	lgr := logger.OrNop(opts.Logger)

	translator := opts.Translator
	if translator == nil {
		var err error
		translator, err = assets.NewTranslator(cfg.Localization.DefaultLocale)
		if err != nil {
			return nil, err
		}
	}

	memberSvc, err := members.New(members.Dependencies{
		Repository:  providers.Members,
		Transaction: providers.Transaction,
		Logger:      lgr,
	})
	if err != nil {
		return nil, err
	}

	reports, err := reporting.NewTemplates(reporting.TemplateOptions{
		Translator:    translator,
		DefaultLocale: cfg.Localization.DefaultLocale,
		Fallbacks:     opts.Fallbacks,
		Helpers:       opts.Helpers,
	})
	if err != nil {
		return nil, err
	}

	avatars := assets.NewAvatarResolver(cfg.Storage)
	icons := assets.NewIconSet(translator, cfg.Localization.DefaultLocale)
	tooltips := tooltip.New(cfg.Tooltip.ID)

	builder := fragments.New(fragments.Dependencies{
		Members:    memberSvc,
		Avatars:    avatars,
		Tooltips:   tooltips,
		Icons:      icons,
		Logger:     lgr,
		NameLimit:  cfg.Display.NameLimit,
		AvatarSize: cfg.Storage.DefaultAvatarSize,
	})

	cmdRegistry, err := commands.New(commands.Dependencies{
		Members: memberSvc,
		Reports: reports,
		Logger:  lgr,
	})
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:     cfg,
		Storage:    providers,
		Translator: translator,
		Members:    memberSvc,
		Avatars:    avatars,
		Icons:      icons,
		Tooltips:   tooltips,
		Fragments:  builder,
		Reports:    reports,
		Commands:   cmdRegistry,
	}, nil
}
