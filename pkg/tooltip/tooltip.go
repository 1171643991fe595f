// Package tooltip produces the client-side handlers that open hover previews.
package tooltip

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-projectlinks/pkg/site"
	"github.com/google/uuid"
)

// DefaultID is the id of the tooltip container element on the page.
const DefaultID = "mycollabtip"

// handlerNamespace scopes deterministic handler ids.
var handlerNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("projectlinks/tooltip"))

// Helper renders hover handlers for a given site.
type Helper struct {
	id string
}

// New returns a helper bound to the container id. An empty id uses DefaultID.
func New(id string) *Helper {
	id = strings.TrimSpace(id)
	if id == "" {
		id = DefaultID
	}
	return &Helper{id: id}
}

// ID returns the tooltip container id. Anchors use "tag" + ID.
func (h *Helper) ID() string {
	if h == nil || h.id == "" {
		return DefaultID
	}
	return h.id
}

// UserHover opens the user preview for username.
func (h *Helper) UserHover(sc site.Context, username string) string {
	uid := handlerID("user", username)
	return call("showUserTooltip", h.ID(), uid, username, sc.BaseURL, sc.TimeZone, sc.Locale)
}

// ProjectHover opens the preview of a project item.
func (h *Helper) ProjectHover(sc site.Context, itemType, typeID string) string {
	uid := handlerID(itemType, typeID)
	return call("showProjectTooltip", h.ID(), uid, itemType, typeID, sc.BaseURL, sc.TimeZone, sc.Locale)
}

// MouseLeave closes the open preview.
func (h *Helper) MouseLeave() string {
	return call("crossoverTooltip", h.ID())
}

// handlerID is stable for a given subject so rendered markup stays deterministic.
func handlerID(kind, subject string) string {
	return uuid.NewSHA1(handlerNamespace, []byte(kind+"\x00"+subject)).String()
}

func call(fn string, args ...string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = "'" + jsEscaper.Replace(arg) + "'"
	}
	return fmt.Sprintf("return %s(%s);", fn, strings.Join(quoted, ","))
}

var jsEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"<", `\u003c`,
	">", `\u003e`,
)
