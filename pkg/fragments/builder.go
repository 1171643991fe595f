// Package fragments composes the small HTML snippets used to reference project
// members and items inside pages, activity streams and notifications.
package fragments

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-projectlinks/pkg/assets"
	"github.com/goliatone/go-projectlinks/pkg/config"
	"github.com/goliatone/go-projectlinks/pkg/domain"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/logger"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/store"
	"github.com/goliatone/go-projectlinks/pkg/links"
	"github.com/goliatone/go-projectlinks/pkg/site"
	"github.com/goliatone/go-projectlinks/pkg/tooltip"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MemberFinder resolves a member of a project.
type MemberFinder interface {
	FindMemberByUsername(ctx context.Context, username string, projectID, accountID int) (*domain.ProjectMember, error)
}

// AvatarResolver maps an avatar id to an image URL.
type AvatarResolver interface {
	AvatarPath(sc site.Context, avatarID string, size int) string
}

// TooltipHelper renders hover handlers.
type TooltipHelper interface {
	ID() string
	UserHover(sc site.Context, username string) string
	ProjectHover(sc site.Context, itemType, typeID string) string
	MouseLeave() string
}

// IconResolver resolves the icon shown before a project item.
type IconResolver interface {
	Lookup(t links.EntityType) (assets.Icon, bool)
	Label(icon assets.Icon, locale string) string
}

// Dependencies wires collaborators into the builder. Only Members is needed
// for username lookups; the rest fall back to the defaults.
type Dependencies struct {
	Members    MemberFinder
	Avatars    AvatarResolver
	Tooltips   TooltipHelper
	Icons      IconResolver
	Logger     logger.Logger
	NameLimit  int
	AvatarSize int
}

// MemberLink carries the member data rendered by ProjectMemberHTMLLink.
type MemberLink struct {
	ProjectID   int
	Username    string
	DisplayName string
	AvatarID    string
}

// ProjectItem carries the item data rendered by ProjectItemHTMLLinkAndTooltip.
type ProjectItem struct {
	ProjectShortName string
	ProjectID        int
	Summary          string
	Type             links.EntityType
	TypeID           string
}

var errMembersRequired = errors.New("fragments: member finder is required")

// Builder composes member and project item fragments.
type Builder struct {
	members    MemberFinder
	avatars    AvatarResolver
	tooltips   TooltipHelper
	icons      IconResolver
	logger     logger.Logger
	nameLimit  int
	avatarSize int
}

// New builds a fragment builder.
func New(deps Dependencies) *Builder {
	defaults := config.Defaults()
	b := &Builder{
		members:    deps.Members,
		avatars:    deps.Avatars,
		tooltips:   deps.Tooltips,
		icons:      deps.Icons,
		logger:     logger.OrNop(deps.Logger),
		nameLimit:  deps.NameLimit,
		avatarSize: deps.AvatarSize,
	}
	if b.avatars == nil {
		b.avatars = assets.NewAvatarResolver(defaults.Storage)
	}
	if b.tooltips == nil {
		b.tooltips = tooltip.New(defaults.Tooltip.ID)
	}
	if b.icons == nil {
		b.icons = assets.NewIconSet(nil, defaults.Localization.DefaultLocale)
	}
	if b.nameLimit <= 0 {
		b.nameLimit = defaults.Display.NameLimit
	}
	if b.avatarSize <= 0 {
		b.avatarSize = defaults.Storage.DefaultAvatarSize
	}
	return b
}

// ProjectMemberHTMLLink renders the member avatar followed by a link to the
// member's profile. With withTooltip the link opens the user preview on hover.
func (b *Builder) ProjectMemberHTMLLink(sc site.Context, member MemberLink, withTooltip bool) *Fragment {
	avatar := element(atom.Img,
		attr("src", b.avatars.AvatarPath(sc, member.AvatarID, b.avatarSize)),
		attr("alt", ""),
	)

	name := strings.TrimSpace(member.DisplayName)
	if name == "" {
		name = member.Username
	}
	anchor := b.anchor(links.ProjectMemberFullLink(sc, member.ProjectID, member.Username))
	anchor.AppendChild(text(trim(name, b.nameLimit)))
	if withTooltip {
		setAttr(anchor, "onmouseover", b.tooltips.UserHover(sc, member.Username))
		setAttr(anchor, "onmouseleave", b.tooltips.MouseLeave())
	}

	return NewFragment(avatar, nbsp(), anchor)
}

// ProjectMemberHTMLLinkByUsername looks the member up within the site's
// account and renders ProjectMemberHTMLLink. An unknown member, a blank
// username or a missing project yields a nil fragment and a nil error.
func (b *Builder) ProjectMemberHTMLLinkByUsername(ctx context.Context, sc site.Context, projectID int, username string, withTooltip bool) (*Fragment, error) {
	if b.members == nil {
		return nil, errMembersRequired
	}
	if strings.TrimSpace(username) == "" || projectID <= 0 {
		b.logger.Debug("member link skipped, lookup incomplete",
			logger.F("username", username),
			logger.F("project_id", projectID),
		)
		return nil, nil
	}
	member, err := b.members.FindMemberByUsername(ctx, username, projectID, sc.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			b.logger.Debug("member link skipped, member not found",
				logger.F("username", username),
				logger.F("project_id", projectID),
			)
			return nil, nil
		}
		return nil, err
	}
	if member == nil {
		return nil, nil
	}
	return b.ProjectMemberHTMLLink(sc, MemberLink{
		ProjectID:   projectID,
		Username:    member.Username,
		DisplayName: member.Name(),
		AvatarID:    member.AvatarID,
	}, withTooltip), nil
}

// ProjectItemHTMLLinkAndTooltip renders the item type icon followed by a link
// to the item that opens its preview on hover.
func (b *Builder) ProjectItemHTMLLinkAndTooltip(sc site.Context, item ProjectItem) *Fragment {
	frag := NewFragment()
	if icon, ok := b.icons.Lookup(item.Type); ok {
		frag.Append(b.iconNode(icon, sc.Locale), nbsp())
	}

	anchor := b.anchor(links.ProjectItemLink(sc, item.ProjectShortName, item.ProjectID, item.Type, item.TypeID))
	anchor.AppendChild(text(item.Summary))
	setAttr(anchor, "onmouseover", b.tooltips.ProjectHover(sc, string(item.Type), item.TypeID))
	setAttr(anchor, "onmouseleave", b.tooltips.MouseLeave())

	return frag.Append(anchor)
}

func (b *Builder) anchor(href string) *html.Node {
	a := element(atom.A, attr("id", "tag"+b.tooltips.ID()))
	if href != "" {
		setAttr(a, "href", href)
	}
	return a
}

func (b *Builder) iconNode(icon assets.Icon, locale string) *html.Node {
	span := element(atom.Span,
		attr("class", "v-icon"),
		attr("style", "font-family: "+assets.FontFamily+";"),
		attr("title", b.icons.Label(icon, locale)),
	)
	span.AppendChild(text(string(icon.Glyph)))
	return span
}
