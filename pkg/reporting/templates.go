package reporting

import (
	i18n "github.com/goliatone/go-i18n"
	"github.com/goliatone/go-projectlinks/internal/templates"
	gotemplate "github.com/goliatone/go-template"
)

// TemplateOptions configures the report template renderer.
type TemplateOptions struct {
	Translator    i18n.Translator
	DefaultLocale string
	Fallbacks     i18n.FallbackResolver
	Helpers       map[string]any
	// LocaleKey names the data key holding the resolved locale. Defaults to "locale".
	LocaleKey string
	// OnMissing picks the text "t" emits for an untranslated key.
	OnMissing     i18n.MissingTranslationHandler
	EngineOptions []gotemplate.Option
}

// Templates holds the report column templates used by TemplateExpression.
// The mailto, project_link and member_link helpers are always available, and
// "t" when a translator is configured.
type Templates struct {
	renderer *templates.Renderer
}

// NewTemplates builds the template set.
func NewTemplates(opts TemplateOptions) (*Templates, error) {
	renderer, err := templates.NewRenderer(
		templates.WithTranslator(opts.Translator),
		templates.WithDefaultLocale(opts.DefaultLocale),
		templates.WithFallbackResolver(opts.Fallbacks),
		templates.WithHelperFuncs(opts.Helpers),
		templates.WithLocaleKey(opts.LocaleKey),
		templates.WithMissingTranslationHandler(opts.OnMissing),
		templates.WithEngineOptions(opts.EngineOptions...),
	)
	if err != nil {
		return nil, err
	}
	return &Templates{renderer: renderer}, nil
}

// Register adds a named template for locale.
func (t *Templates) Register(code, locale, body string, required ...string) {
	if t == nil {
		return
	}
	t.renderer.Register(templates.Template{
		Code:     code,
		Locale:   locale,
		Body:     body,
		Required: required,
	})
}

// Renderer returns the underlying renderer.
func (t *Templates) Renderer() *templates.Renderer {
	if t == nil {
		return nil
	}
	return t.renderer
}
