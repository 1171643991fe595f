package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/goliatone/go-projectlinks/pkg/commands"
	"github.com/goliatone/go-projectlinks/pkg/config"
	"github.com/goliatone/go-projectlinks/pkg/fragments"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/logger"
	"github.com/goliatone/go-projectlinks/pkg/links"
	"github.com/goliatone/go-projectlinks/pkg/members"
	"github.com/goliatone/go-projectlinks/pkg/projectlinks"
	"github.com/goliatone/go-projectlinks/pkg/reporting"
	"github.com/goliatone/go-projectlinks/pkg/storage"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"go.uber.org/zap"
)

type runFlags struct {
	baseURL   string
	accountID int
	locale    string
	storage   string
}

func main() {
	flags := new(runFlags)
	rootCmd := &cobra.Command{
		Use:   "projectlinks [--base-url url] [--account id] [--locale code] [--storage memory|sqlite]",
		Short: "Render sample project links, member fragments and report cells",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}
	rootCmd.Flags().StringVar(&flags.baseURL, "base-url", "https://demo.projectlinks.test/", "tenant site URL")
	rootCmd.Flags().IntVar(&flags.accountID, "account", 1, "tenant account id")
	rootCmd.Flags().StringVar(&flags.locale, "locale", "en", "locale used for icon labels")
	rootCmd.Flags().StringVar(&flags.storage, "storage", "sqlite", "member directory backend (memory or sqlite)")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, flags *runFlags) error {
	cfg, err := config.Load(map[string]any{
		"site": map[string]any{
			"base_url":   flags.baseURL,
			"account_id": flags.accountID,
			"locale":     flags.locale,
		},
		"storage":      map[string]any{"mode": "file"},
		"localization": map[string]any{"default_locale": flags.locale},
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zl, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("zap: %w", err)
	}
	defer zl.Sync()
	lgr := logger.NewZap(zl)

	providers := storage.NewMemoryProviders()
	if flags.storage == "sqlite" {
		sqldb, err := sql.Open(sqliteshim.DriverName(), "file::memory:")
		if err != nil {
			return fmt.Errorf("open sqlite: %w", err)
		}
		sqldb.SetMaxOpenConns(1)
		db := bun.NewDB(sqldb, sqlitedialect.New())
		defer db.Close()

		if err := storage.CreateSchema(ctx, db); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		providers = storage.NewBunProviders(db)
	}

	module, err := projectlinks.NewModule(projectlinks.ModuleOptions{
		Config:  cfg,
		Storage: providers,
		Logger:  lgr,
	})
	if err != nil {
		return fmt.Errorf("module: %w", err)
	}

	registry := module.Commands()
	err = registry.SaveMember.Execute(ctx, commands.MemberUpsert{
		MemberInput: members.MemberInput{
			Username:    "jdoe",
			ProjectID:   42,
			AccountID:   cfg.Site.AccountID,
			DisplayName: "Jane Doe",
			AvatarID:    "a1b2c3",
		},
	})
	if err != nil {
		return fmt.Errorf("seed member: %w", err)
	}
	err = registry.RegisterReport.Execute(ctx, commands.ReportTemplate{
		Code:     "bug.cell",
		Locale:   "en",
		Body:     `{{ t(locale, "project.type.bug") }} {{ project_link(site, "Project-Bug", key, "DEMO", 42) }}`,
		Required: []string{"key"},
	})
	if err != nil {
		return fmt.Errorf("register report: %w", err)
	}

	sc := module.Site()
	builder := module.Fragments()
	reports := module.Reports()

	fmt.Println("Links")
	fmt.Println(" ", links.ProjectFullLink(sc, 42))
	fmt.Println(" ", links.BugPreviewFullLink(sc, 7, "DEMO"))
	fmt.Println(" ", links.PageFullLink(sc, 42, "docs/intro"))
	fmt.Println(" ", links.StandupDashboardLink(sc))
	fmt.Printf("  missing id: %q\n", links.ProjectFullLink(sc, 0))

	fmt.Println("Fragments")
	frag, err := builder.ProjectMemberHTMLLinkByUsername(ctx, sc, 42, "jdoe", true)
	if err != nil {
		return fmt.Errorf("member fragment: %w", err)
	}
	fmt.Println(" ", frag.String())
	missing, err := builder.ProjectMemberHTMLLinkByUsername(ctx, sc, 42, "ghost", true)
	if err != nil {
		return fmt.Errorf("member fragment: %w", err)
	}
	fmt.Printf("  unknown member: %v\n", missing == nil)
	item := builder.ProjectItemHTMLLinkAndTooltip(sc, fragments.ProjectItem{
		ProjectShortName: "DEMO",
		ProjectID:        42,
		Summary:          "Login fails on Safari",
		Type:             links.TypeBug,
		TypeID:           "7",
	})
	fmt.Println(" ", item.String())
	if plain, err := item.PlainText(); err == nil {
		fmt.Println(" ", plain)
	}

	fmt.Println("Report expressions")
	row := reporting.Fields{"email": "jane@example.com", "key": 7, "short_name": "DEMO"}
	exprs := []reporting.Expression{
		reporting.NewMailExpression("email"),
		reporting.LinkExpression{Site: sc, Type: links.TypeBug, IDField: "key", ShortNameField: "short_name"},
		reporting.TemplateExpression{Templates: reports, Code: "bug.cell", Fields: []string{"key"}, Site: sc},
		reporting.NewMailExpression("phone"),
	}
	for _, expr := range exprs {
		out, err := expr.Evaluate(row)
		if err != nil {
			fmt.Printf("  %T: error: %v\n", expr, err)
			continue
		}
		fmt.Printf("  %T: %s\n", expr, out)
	}
	return nil
}
