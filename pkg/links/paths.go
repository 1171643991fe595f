package links

// Router paths, relative to the site URL prefix.
const (
	pathProject          = "project/"
	pathComponentPreview = "project/component/preview/"
	pathVersionPreview   = "project/version/preview/"
	pathRolePreview      = "project/role/preview/"
	pathMemberPreview    = "project/user/preview/"
	pathBugPreview       = "project/bug/preview/"
	pathTaskPreview      = "project/task/preview/"
	pathMessagePreview   = "project/message/preview/"
	pathRiskPreview      = "project/risk/preview/"
	pathMilestonePreview = "project/milestone/preview/"
	pathClientPreview    = "project/client/preview/"
	pathPageList         = "project/page/list/"
	pathPagePreview      = "project/page/preview/"

	pathStandupReport  = "project/reports/standup/"
	pathWeeklyReport   = "project/reports/weeklytiming/"
	pathTimesheet      = "project/reports/timesheet/"
	pathWorkloadReport = "project/reports/usersworkload/"
)

func projectPath(projectID int) string {
	if absent(projectID) {
		return ""
	}
	return pathProject + itoa(projectID)
}

func compositePath(prefix string, projectID, subID int) string {
	if absent(projectID, subID) {
		return ""
	}
	return prefix + EncodeSegment(itoa(projectID), itoa(subID))
}

func namedPath(prefix string, projectID int, name string) string {
	if absent(projectID) || blank(name) {
		return ""
	}
	return prefix + EncodeSegment(itoa(projectID), name)
}

func keyPath(prefix string, key int, shortName string) string {
	if absent(key) || blank(shortName) {
		return ""
	}
	return prefix + shortName + "-" + itoa(key)
}
