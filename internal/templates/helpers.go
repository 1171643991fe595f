package templates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-projectlinks/pkg/links"
	"github.com/goliatone/go-projectlinks/pkg/site"
)

// SiteKey is the data key the link helpers read the site context from when
// it is not passed explicitly.
const SiteKey = "site"

func defaultHelperFuncs() map[string]any {
	return map[string]any{
		"mailto":       mailto,
		"project_link": projectLink,
		"member_link":  memberLink,
	}
}

// mailto(address)
func mailto(args ...any) string {
	for _, arg := range args {
		if value := stringFromTemplateValue(arg); value != "" {
			return "mailto:" + value
		}
	}
	return ""
}

// project_link(site, type, type_id, short_name, project_id)
func projectLink(args ...any) string {
	sc, rest, ok := siteArg(args)
	if !ok || len(rest) < 2 {
		return ""
	}
	itemType := links.EntityType(stringFromTemplateValue(rest[0]))
	typeID := stringFromTemplateValue(rest[1])
	var shortName string
	var projectID int
	if len(rest) > 2 {
		shortName = stringFromTemplateValue(rest[2])
	}
	if len(rest) > 3 {
		projectID = intFromTemplateValue(rest[3])
	}
	return links.ProjectItemLink(sc, shortName, projectID, itemType, typeID)
}

// member_link(site, project_id, username)
func memberLink(args ...any) string {
	sc, rest, ok := siteArg(args)
	if !ok || len(rest) < 2 {
		return ""
	}
	return links.ProjectMemberFullLink(sc, intFromTemplateValue(rest[0]), stringFromTemplateValue(rest[1]))
}

func siteArg(args []any) (site.Context, []any, bool) {
	if len(args) == 0 {
		return site.Context{}, nil, false
	}
	switch v := args[0].(type) {
	case site.Context:
		return v, args[1:], true
	case *site.Context:
		if v == nil {
			return site.Context{}, nil, false
		}
		return *v, args[1:], true
	case string:
		return site.New(v), args[1:], true
	}
	return site.Context{}, nil, false
}

func stringFromTemplateValue(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func intFromTemplateValue(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
