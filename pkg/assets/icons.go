package assets

import (
	"strings"

	i18n "github.com/goliatone/go-i18n"
	"github.com/goliatone/go-projectlinks/pkg/links"
)

// FontFamily is the icon font the glyphs belong to.
const FontFamily = "FontAwesome"

// Icon describes the glyph shown next to a project item.
type Icon struct {
	Glyph    rune
	LabelKey string
	Label    string
}

// IconSet resolves icons and their localized labels.
type IconSet struct {
	icons         map[links.EntityType]Icon
	translator    i18n.Translator
	defaultLocale string
}

// NewIconSet returns the standard project icons. translator may be nil, in
// which case labels are the built-in English names.
func NewIconSet(translator i18n.Translator, defaultLocale string) *IconSet {
	icons := make(map[links.EntityType]Icon, len(defaultIcons))
	for t, icon := range defaultIcons {
		icons[t] = icon
	}
	if strings.TrimSpace(defaultLocale) == "" {
		defaultLocale = "en"
	}
	return &IconSet{
		icons:         icons,
		translator:    translator,
		defaultLocale: defaultLocale,
	}
}

// Lookup returns the icon registered for t.
func (s *IconSet) Lookup(t links.EntityType) (Icon, bool) {
	if s == nil {
		return Icon{}, false
	}
	icon, ok := s.icons[t]
	return icon, ok
}

// Label returns the localized label of icon.
func (s *IconSet) Label(icon Icon, locale string) string {
	if s == nil || s.translator == nil || icon.LabelKey == "" {
		return icon.Label
	}
	if strings.TrimSpace(locale) == "" {
		locale = s.defaultLocale
	}
	text, err := s.translator.Translate(locale, icon.LabelKey)
	if err != nil || text == "" || text == icon.LabelKey {
		return icon.Label
	}
	return text
}

var defaultIcons = map[links.EntityType]Icon{
	links.TypeProject:   {Glyph: '\uf0b1', LabelKey: "project.type.project", Label: "Project"},
	links.TypeBug:       {Glyph: '\uf188', LabelKey: "project.type.bug", Label: "Bug"},
	links.TypeTask:      {Glyph: '\uf14a', LabelKey: "project.type.task", Label: "Task"},
	links.TypeMilestone: {Glyph: '\uf11e', LabelKey: "project.type.milestone", Label: "Milestone"},
	links.TypeRisk:      {Glyph: '\uf071', LabelKey: "project.type.risk", Label: "Risk"},
	links.TypeMessage:   {Glyph: '\uf075', LabelKey: "project.type.message", Label: "Message"},
	links.TypePage:      {Glyph: '\uf0f6', LabelKey: "project.type.page", Label: "Page"},
	links.TypeClient:    {Glyph: '\uf19c', LabelKey: "project.type.client", Label: "Client"},
	links.TypeComponent: {Glyph: '\uf12e', LabelKey: "project.type.component", Label: "Component"},
	links.TypeVersion:   {Glyph: '\uf017', LabelKey: "project.type.version", Label: "Version"},
	links.TypeRole:      {Glyph: '\uf21b', LabelKey: "project.type.role", Label: "Role"},
	links.TypeMember:    {Glyph: '\uf007', LabelKey: "project.type.member", Label: "Member"},
}
