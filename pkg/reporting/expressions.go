package reporting

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-projectlinks/internal/templates"
	"github.com/goliatone/go-projectlinks/pkg/links"
	"github.com/goliatone/go-projectlinks/pkg/site"
)

// SimpleFieldExpression renders the text of one field.
type SimpleFieldExpression struct {
	Field string
}

// Evaluate returns the field value as text.
func (e SimpleFieldExpression) Evaluate(params Parameters) (string, error) {
	return fieldText(params, e.Field)
}

// MailExpression renders a field holding an email address as a mailto URI.
type MailExpression struct {
	SimpleFieldExpression
}

// NewMailExpression returns a mail expression reading field.
func NewMailExpression(field string) MailExpression {
	return MailExpression{SimpleFieldExpression{Field: field}}
}

// Evaluate returns "mailto:" followed by the field value.
func (e MailExpression) Evaluate(params Parameters) (string, error) {
	address, err := e.SimpleFieldExpression.Evaluate(params)
	if err != nil {
		return "", err
	}
	return "mailto:" + address, nil
}

// LinkExpression renders the absolute link of a project item whose id is held
// in IDField. ProjectIDField and ShortNameField are read when present.
type LinkExpression struct {
	Site           site.Context
	Type           links.EntityType
	IDField        string
	ProjectIDField string
	ShortNameField string
}

// Evaluate returns the item link. An unresolvable item yields "".
func (e LinkExpression) Evaluate(params Parameters) (string, error) {
	id, err := fieldText(params, e.IDField)
	if err != nil {
		return "", err
	}
	var projectID int
	if e.ProjectIDField != "" {
		raw, err := fieldText(params, e.ProjectIDField)
		if err != nil {
			return "", err
		}
		if projectID, err = strconv.Atoi(strings.TrimSpace(raw)); err != nil {
			return "", fmt.Errorf("reporting: field %q is not a project id: %w", e.ProjectIDField, err)
		}
	}
	var shortName string
	if e.ShortNameField != "" {
		if shortName, err = fieldText(params, e.ShortNameField); err != nil {
			return "", err
		}
	}
	if e.Type == links.TypeMember {
		return links.ProjectMemberFullLink(e.Site, projectID, id), nil
	}
	return links.ProjectItemLink(e.Site, shortName, projectID, e.Type, id), nil
}

// TemplateExpression renders a template against the listed fields. The site
// context is exposed as "site" for the link helpers.
type TemplateExpression struct {
	Templates *Templates
	Source    string
	Code      string
	Locale    string
	Fields    []string
	Site      site.Context
}

// Evaluate renders the template. Every listed field must be present.
func (e TemplateExpression) Evaluate(params Parameters) (string, error) {
	if e.Templates == nil || e.Templates.renderer == nil {
		return "", templates.ErrRendererConfig
	}
	data := make(map[string]any, len(e.Fields)+1)
	for _, field := range e.Fields {
		value, err := fieldValue(params, field)
		if err != nil {
			return "", err
		}
		data[field] = value
	}
	data[templates.SiteKey] = e.Site

	result, err := e.Templates.renderer.Render(context.Background(), templates.RenderRequest{
		Code:   e.Code,
		Source: e.Source,
		Locale: e.Locale,
		Data:   data,
	})
	if err != nil {
		return "", err
	}
	return result.Output, nil
}
