package templates

import (
	"strings"
	"sync"
)

// Template is a named report column template in one locale.
type Template struct {
	Code     string
	Locale   string
	Body     string
	Required []string
}

type definitionEntry struct {
	code     string
	required []string
	variants map[string]Template // locale -> variant
}

type registry struct {
	mu          sync.RWMutex
	definitions map[string]*definitionEntry
}

func newRegistry() *registry {
	return &registry{
		definitions: make(map[string]*definitionEntry),
	}
}

func (r *registry) Upsert(tpl Template) {
	if tpl.Code == "" || tpl.Locale == "" {
		return
	}

	codeKey := normalizeKey(tpl.Code)
	localeKey := normalizeKey(tpl.Locale)

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.definitions[codeKey]
	if !ok {
		entry = &definitionEntry{
			code:     tpl.Code,
			variants: make(map[string]Template),
		}
		r.definitions[codeKey] = entry
	}

	// Required fields are shared by every locale of a code; the latest
	// non-empty list wins.
	required := uniqueStrings(tpl.Required)
	if len(required) == 0 {
		required = entry.required
	} else {
		entry.required = required
	}
	tpl.Required = required
	entry.variants[localeKey] = tpl
}

func (r *registry) Resolve(code string, locales []string) (Template, string, error) {
	if code == "" {
		return Template{}, "", ErrTemplateNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry := r.definitions[normalizeKey(code)]
	if entry == nil || len(entry.variants) == 0 {
		return Template{}, "", ErrTemplateNotFound
	}

	seen := make(map[string]struct{}, len(locales))
	for _, candidate := range locales {
		locKey := normalizeKey(candidate)
		if locKey == "" {
			continue
		}
		if _, ok := seen[locKey]; ok {
			continue
		}
		seen[locKey] = struct{}{}
		if variant, ok := entry.variants[locKey]; ok {
			if len(variant.Required) == 0 {
				variant.Required = entry.required
			}
			return variant, candidate, nil
		}
	}
	return Template{}, "", ErrTemplateNotFound
}

func normalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
