package templates

import (
	"context"
	"fmt"
	"strings"
	"sync"

	i18n "github.com/goliatone/go-i18n"
	gotemplate "github.com/goliatone/go-template"
)

// Renderer evaluates report templates, either registered by code with
// locale-aware fallbacks or passed inline.
type Renderer struct {
	renderer      *gotemplate.Engine
	registry      *registry
	helpers       *helperRegistry
	translator    i18n.Translator
	fallbacks     i18n.FallbackResolver
	defaultLocale string
	localeKey     string
	renderMu      sync.Mutex
}

// RenderRequest names a registered template by Code, or carries an inline
// Source. Required lists data paths that must be present (dot separated).
type RenderRequest struct {
	Code     string
	Source   string
	Locale   string
	Data     map[string]any
	Required []string
}

// RenderResult holds the rendered output and the locale that was used.
type RenderResult struct {
	Output       string
	Locale       string
	UsedFallback bool
}

type rendererOptions struct {
	translator     i18n.Translator
	defaultLocale  string
	fallbacks      i18n.FallbackResolver
	helperFuncs    []map[string]any
	engineOpts     []gotemplate.Option
	missingHandler i18n.MissingTranslationHandler
	localeKey      string
}

// Option configures the renderer.
type Option func(*rendererOptions)

// WithTranslator exposes the "t" translation helper to templates.
func WithTranslator(translator i18n.Translator) Option {
	return func(ro *rendererOptions) {
		ro.translator = translator
	}
}

// WithDefaultLocale overrides the locale used when requests do not provide one.
func WithDefaultLocale(locale string) Option {
	return func(ro *rendererOptions) {
		ro.defaultLocale = locale
	}
}

// WithFallbackResolver wires a locale fallback resolver (e.g., es-MX -> es -> en).
func WithFallbackResolver(resolver i18n.FallbackResolver) Option {
	return func(ro *rendererOptions) {
		ro.fallbacks = resolver
	}
}

// WithHelperFuncs registers additional helper functions with the renderer.
func WithHelperFuncs(funcs map[string]any) Option {
	return func(ro *rendererOptions) {
		if len(funcs) == 0 {
			return
		}
		ro.helperFuncs = append(ro.helperFuncs, funcs)
	}
}

// WithEngineOptions forwards options directly to go-template.
func WithEngineOptions(opts ...gotemplate.Option) Option {
	return func(ro *rendererOptions) {
		ro.engineOpts = append(ro.engineOpts, opts...)
	}
}

// WithLocaleKey customizes the key injected into the data map to expose the locale.
func WithLocaleKey(key string) Option {
	return func(ro *rendererOptions) {
		if key == "" {
			return
		}
		ro.localeKey = key
	}
}

// WithMissingTranslationHandler customizes how go-i18n helpers surface missing keys.
func WithMissingTranslationHandler(handler i18n.MissingTranslationHandler) Option {
	return func(ro *rendererOptions) {
		ro.missingHandler = handler
	}
}

// NewRenderer builds the renderer with the link helpers registered.
func NewRenderer(opts ...Option) (*Renderer, error) {
	settings := rendererOptions{
		localeKey: "locale",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}

	defaultLocale := strings.TrimSpace(settings.defaultLocale)
	if defaultLocale == "" && settings.translator != nil {
		if provider, ok := settings.translator.(interface{ DefaultLocale() string }); ok {
			defaultLocale = provider.DefaultLocale()
		}
	}
	if defaultLocale == "" {
		defaultLocale = "en"
	}

	engineOpts := []gotemplate.Option{
		gotemplate.WithBaseDir("."),
	}
	engineOpts = append(engineOpts, settings.engineOpts...)

	engine, err := gotemplate.NewRenderer(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRendererConfig, err)
	}

	r := &Renderer{
		renderer:      engine,
		registry:      newRegistry(),
		helpers:       newHelperRegistry(engine),
		translator:    settings.translator,
		fallbacks:     settings.fallbacks,
		defaultLocale: defaultLocale,
		localeKey:     settings.localeKey,
	}

	r.helpers.Register(defaultHelperFuncs())
	if r.translator != nil {
		r.helpers.Register(i18n.TemplateHelpers(r.translator, i18n.HelperConfig{
			LocaleKey:         r.localeKey,
			TemplateHelperKey: "t",
			OnMissing:         settings.missingHandler,
		}))
	}
	for _, funcs := range settings.helperFuncs {
		r.helpers.Register(funcs)
	}

	return r, nil
}

// Register loads named templates. A later template with the same code and
// locale replaces the earlier one.
func (r *Renderer) Register(templates ...Template) {
	if r == nil {
		return
	}
	for _, tpl := range templates {
		r.registry.Upsert(tpl)
	}
}

// RegisterHelpers adds helper functions to the underlying engine.
func (r *Renderer) RegisterHelpers(funcs map[string]any) {
	if r == nil {
		return
	}
	r.helpers.Register(funcs)
}

// HasHelper reports whether name is available to templates.
func (r *Renderer) HasHelper(name string) bool {
	if r == nil {
		return false
	}
	return r.helpers.Has(name)
}

// Render resolves the template and evaluates it against req.Data.
func (r *Renderer) Render(ctx context.Context, req RenderRequest) (RenderResult, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return RenderResult{}, err
		}
	}
	if r == nil {
		return RenderResult{}, ErrRendererConfig
	}

	source := req.Source
	required := uniqueStrings(req.Required)
	locale := strings.TrimSpace(req.Locale)
	if locale == "" {
		locale = r.defaultLocale
	}

	switch {
	case strings.TrimSpace(source) != "":
	case strings.TrimSpace(req.Code) != "":
		variant, resolved, err := r.registry.Resolve(req.Code, r.localeChain(req.Locale))
		if err != nil {
			return RenderResult{}, fmt.Errorf("%w: %s", err, req.Code)
		}
		source = variant.Body
		locale = resolved
		if len(required) == 0 {
			required = variant.Required
		}
	default:
		return RenderResult{}, ErrInvalidRenderRequest
	}

	payload := cloneData(req.Data)
	payload[r.localeKey] = locale

	if err := validateRequired(required, payload); err != nil {
		return RenderResult{}, err
	}

	r.renderMu.Lock()
	out, err := r.renderer.RenderString(source, payload)
	r.renderMu.Unlock()
	if err != nil {
		return RenderResult{}, fmt.Errorf("templates: render %s: %w", nameOf(req), err)
	}

	return RenderResult{
		Output:       out,
		Locale:       locale,
		UsedFallback: req.Code != "" && req.Source == "" && !strings.EqualFold(locale, strings.TrimSpace(req.Locale)),
	}, nil
}

func (r *Renderer) localeChain(requested string) []string {
	chain := make([]string, 0, 4)
	appendUnique := func(locale string) {
		if locale == "" {
			return
		}
		for _, existing := range chain {
			if strings.EqualFold(existing, locale) {
				return
			}
		}
		chain = append(chain, locale)
	}

	appendUnique(requested)
	if r.fallbacks != nil {
		for _, fb := range r.fallbacks.Resolve(requested) {
			appendUnique(fb)
		}
	}
	appendUnique(r.defaultLocale)
	appendUnique("en")
	return chain
}

func nameOf(req RenderRequest) string {
	if req.Code != "" {
		return req.Code
	}
	return "inline template"
}
