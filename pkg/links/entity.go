package links

import "strings"

// EntityType names the kind of project resource a link points at.
type EntityType string

const (
	TypeProject   EntityType = "Project"
	TypeBug       EntityType = "Project-Bug"
	TypeTask      EntityType = "Project-Task"
	TypeMilestone EntityType = "Project-Milestone"
	TypeRisk      EntityType = "Project-Risk"
	TypeMessage   EntityType = "Project-Message"
	TypePage      EntityType = "Project-Page"
	TypeClient    EntityType = "Project-Client"
	TypeComponent EntityType = "Project-Component"
	TypeVersion   EntityType = "Project-Version"
	TypeRole      EntityType = "Project-Role"
	TypeMember    EntityType = "Project-Member"
)

// ParseEntityType matches s against the known types, ignoring case.
func ParseEntityType(s string) (EntityType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range entityTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

var entityTypes = []EntityType{
	TypeProject, TypeBug, TypeTask, TypeMilestone, TypeRisk, TypeMessage,
	TypePage, TypeClient, TypeComponent, TypeVersion, TypeRole, TypeMember,
}

// EntityReference identifies a project resource. ID is textual so the same
// reference can carry numeric ids, issue keys, page paths and usernames.
type EntityReference struct {
	Type EntityType
	ID   string
}
