package commands

import (
	"context"
	"errors"
	"strings"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-projectlinks/internal/templates"
	"github.com/goliatone/go-projectlinks/pkg/domain"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/logger"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/store"
	"github.com/goliatone/go-projectlinks/pkg/members"
)

// Catalog exposes go-command compatible handlers for host transports.
type Catalog struct {
	SaveMember     command.Commander[MemberUpsert]
	RemoveMember   command.Commander[MemberRemove]
	RegisterReport command.Commander[ReportTemplate]
}

type memberService interface {
	FindMemberByUsername(ctx context.Context, username string, projectID, accountID int) (*domain.ProjectMember, error)
	Save(ctx context.Context, input members.MemberInput) (*domain.ProjectMember, error)
	Remove(ctx context.Context, username string, projectID, accountID int) error
}

type templateRegistry interface {
	Register(templates ...templates.Template)
}

// Dependencies wires services into the command catalog.
type Dependencies struct {
	Members   memberService
	Templates templateRegistry
	Logger    logger.Logger
}

// NewCatalog builds the command catalog using the supplied dependencies.
func NewCatalog(deps Dependencies) (*Catalog, error) {
	if deps.Members == nil {
		return nil, errors.New("commands: members service is required")
	}
	if deps.Templates == nil {
		return nil, errors.New("commands: template registry is required")
	}
	if deps.Logger == nil {
		deps.Logger = &logger.Nop{}
	}

	return &Catalog{
		SaveMember:     memberUpsertCommand{svc: deps.Members, logger: deps.Logger},
		RemoveMember:   memberRemoveCommand{svc: deps.Members},
		RegisterReport: reportTemplateCommand{registry: deps.Templates},
	}, nil
}

// MemberUpsert wraps member input with an overwrite flag.
type MemberUpsert struct {
	members.MemberInput
	AllowUpdate bool `json:"allow_update"`
}

type memberUpsertCommand struct {
	svc    memberService
	logger logger.Logger
}

func (c memberUpsertCommand) Execute(ctx context.Context, msg MemberUpsert) error {
	input := msg.MemberInput
	_, err := c.svc.FindMemberByUsername(ctx, input.Username, input.ProjectID, input.AccountID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if err == nil && !msg.AllowUpdate {
		return errors.New("commands: project member already exists")
	}
	member, err := c.svc.Save(ctx, input)
	if err != nil {
		return err
	}
	c.logger.Debug("save member command handled",
		logger.F("username", member.Username),
		logger.F("project_id", member.ProjectID),
	)
	return nil
}

// MemberRemove identifies the membership to remove.
type MemberRemove struct {
	Username  string `json:"username"`
	ProjectID int    `json:"project_id"`
	AccountID int    `json:"account_id"`
}

type memberRemoveCommand struct {
	svc memberService
}

func (c memberRemoveCommand) Execute(ctx context.Context, msg MemberRemove) error {
	return c.svc.Remove(ctx, msg.Username, msg.ProjectID, msg.AccountID)
}

// ReportTemplate registers a report column template.
type ReportTemplate struct {
	Code     string   `json:"code"`
	Locale   string   `json:"locale"`
	Body     string   `json:"body"`
	Required []string `json:"required"`
}

type reportTemplateCommand struct {
	registry templateRegistry
}

func (c reportTemplateCommand) Execute(_ context.Context, msg ReportTemplate) error {
	msg.Code = strings.TrimSpace(msg.Code)
	msg.Locale = strings.TrimSpace(msg.Locale)
	if msg.Code == "" || msg.Locale == "" {
		return errors.New("commands: report template code and locale are required")
	}
	if strings.TrimSpace(msg.Body) == "" {
		return errors.New("commands: report template body is required")
	}
	c.registry.Register(templates.Template{
		Code:     msg.Code,
		Locale:   msg.Locale,
		Body:     msg.Body,
		Required: msg.Required,
	})
	return nil
}
