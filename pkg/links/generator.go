package links

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-projectlinks/pkg/site"
)

func full(sc site.Context, path string) string {
	if path == "" {
		return ""
	}
	return sc.Link(path)
}

// ProjectFullLink links to the project dashboard.
func ProjectFullLink(sc site.Context, projectID int) string {
	return full(sc, projectPath(projectID))
}

// ComponentPreviewFullLink links to a bug component.
func ComponentPreviewFullLink(sc site.Context, projectID, componentID int) string {
	return full(sc, compositePath(pathComponentPreview, projectID, componentID))
}

// BugVersionPreviewFullLink links to a bug version.
func BugVersionPreviewFullLink(sc site.Context, projectID, versionID int) string {
	return full(sc, compositePath(pathVersionPreview, projectID, versionID))
}

// RolePreviewFullLink links to a project role.
func RolePreviewFullLink(sc site.Context, projectID, roleID int) string {
	return full(sc, compositePath(pathRolePreview, projectID, roleID))
}

// ProjectMemberFullLink links to a member's profile within a project.
func ProjectMemberFullLink(sc site.Context, projectID int, username string) string {
	return full(sc, namedPath(pathMemberPreview, projectID, username))
}

// BugPreviewFullLink links to a bug by its per-project key, e.g. PRJ-12.
func BugPreviewFullLink(sc site.Context, bugKey int, projectShortName string) string {
	return full(sc, keyPath(pathBugPreview, bugKey, projectShortName))
}

// TaskPreviewFullLink links to a task by its per-project key.
func TaskPreviewFullLink(sc site.Context, taskKey int, projectShortName string) string {
	return full(sc, keyPath(pathTaskPreview, taskKey, projectShortName))
}

// MessagePreviewFullLink links to a project message.
func MessagePreviewFullLink(sc site.Context, projectID, messageID int) string {
	return full(sc, compositePath(pathMessagePreview, projectID, messageID))
}

// RiskPreviewFullLink links to a project risk.
func RiskPreviewFullLink(sc site.Context, projectID, riskID int) string {
	return full(sc, compositePath(pathRiskPreview, projectID, riskID))
}

// MilestonePreviewFullLink links to a milestone.
func MilestonePreviewFullLink(sc site.Context, projectID, milestoneID int) string {
	return full(sc, compositePath(pathMilestonePreview, projectID, milestoneID))
}

// ClientPreviewFullLink links to a client account.
func ClientPreviewFullLink(sc site.Context, clientID int) string {
	if absent(clientID) {
		return ""
	}
	return full(sc, pathClientPreview+itoa(clientID))
}

// PageFolderFullLink links to a folder of wiki pages.
func PageFolderFullLink(sc site.Context, projectID int, folderPath string) string {
	return full(sc, namedPath(pathPageList, projectID, folderPath))
}

// PageFullLink links to a single wiki page.
func PageFullLink(sc site.Context, projectID int, pagePath string) string {
	return full(sc, namedPath(pathPagePreview, projectID, pagePath))
}

func StandupDashboardLink(sc site.Context) string    { return sc.Link(pathStandupReport) }
func HoursWeeklyReportLink(sc site.Context) string   { return sc.Link(pathWeeklyReport) }
func TimesheetReportLink(sc site.Context) string     { return sc.Link(pathTimesheet) }
func UsersWorkloadReportLink(sc site.Context) string { return sc.Link(pathWorkloadReport) }

// ProjectItemLink links to an item of the given type. typeID holds the issue
// key for bugs and tasks, the page path for pages, and the numeric id for the
// remaining types. Unknown types and malformed ids yield "".
func ProjectItemLink(sc site.Context, projectShortName string, projectID int, itemType EntityType, typeID string) string {
	typeID = strings.TrimSpace(typeID)
	if typeID == "" || typeID == "null" {
		return ""
	}
	if itemType == TypePage {
		return PageFullLink(sc, projectID, typeID)
	}
	id, err := strconv.Atoi(typeID)
	if err != nil {
		return ""
	}
	switch itemType {
	case TypeProject:
		return ProjectFullLink(sc, id)
	case TypeBug:
		return BugPreviewFullLink(sc, id, projectShortName)
	case TypeTask:
		return TaskPreviewFullLink(sc, id, projectShortName)
	case TypeMilestone:
		return MilestonePreviewFullLink(sc, projectID, id)
	case TypeRisk:
		return RiskPreviewFullLink(sc, projectID, id)
	case TypeMessage:
		return MessagePreviewFullLink(sc, projectID, id)
	case TypeComponent:
		return ComponentPreviewFullLink(sc, projectID, id)
	case TypeVersion:
		return BugVersionPreviewFullLink(sc, projectID, id)
	case TypeRole:
		return RolePreviewFullLink(sc, projectID, id)
	case TypeClient:
		return ClientPreviewFullLink(sc, id)
	}
	return ""
}

// EntityFullLink resolves ref within a project. Members are addressed by
// username; every other type follows ProjectItemLink.
func EntityFullLink(sc site.Context, projectShortName string, projectID int, ref EntityReference) string {
	if ref.Type == TypeMember {
		return ProjectMemberFullLink(sc, projectID, ref.ID)
	}
	return ProjectItemLink(sc, projectShortName, projectID, ref.Type, ref.ID)
}
