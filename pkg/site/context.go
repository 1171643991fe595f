// Package site carries the per-request tenant context used to build absolute links.
package site

import (
	"strings"

	"github.com/goliatone/go-projectlinks/pkg/config"
)

// DefaultURLPrefix is the client-side router marker placed between the base URL
// and an entity path.
const DefaultURLPrefix = "#"

// Context is resolved once per request and never mutated afterwards.
type Context struct {
	BaseURL   string
	URLPrefix string
	AccountID int
	TimeZone  string
	Locale    string
}

// New returns a context for baseURL using the default prefix.
func New(baseURL string) Context {
	return Context{
		BaseURL:   baseURL,
		URLPrefix: DefaultURLPrefix,
	}
}

// FromConfig builds a context from the site section of the module config.
func FromConfig(cfg config.SiteConfig) Context {
	ctx := Context{
		BaseURL:   strings.TrimSpace(cfg.BaseURL),
		URLPrefix: cfg.URLPrefix,
		AccountID: cfg.AccountID,
		TimeZone:  cfg.TimeZone,
		Locale:    cfg.Locale,
	}
	if ctx.URLPrefix == "" {
		ctx.URLPrefix = DefaultURLPrefix
	}
	return ctx
}

// WithAccount returns a copy bound to accountID.
func (c Context) WithAccount(accountID int) Context {
	c.AccountID = accountID
	return c
}

// WithLocale returns a copy bound to locale.
func (c Context) WithLocale(locale string) Context {
	c.Locale = locale
	return c
}

// Link joins the base URL, the router prefix, and path.
func (c Context) Link(path string) string {
	return c.BaseURL + c.prefix() + path
}

// Raw joins the base URL and path without the router prefix. Used for static
// resources served by the site itself.
func (c Context) Raw(path string) string {
	return c.BaseURL + path
}

func (c Context) prefix() string {
	if c.URLPrefix == "" {
		return DefaultURLPrefix
	}
	return c.URLPrefix
}
