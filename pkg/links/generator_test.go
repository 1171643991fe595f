package links

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goliatone/go-projectlinks/pkg/site"
)

var testSite = site.New("https://x.io/")

func TestProjectFullLink(t *testing.T) {
	got := ProjectFullLink(testSite, 42)
	if got != "https://x.io/#project/42" {
		t.Fatalf("unexpected link %q", got)
	}
	if !strings.Contains(got, "project/42") {
		t.Fatalf("expected project/42 in %q", got)
	}
}

func TestGeneratorsReturnEmptyForAbsentIdentifiers(t *testing.T) {
	cases := map[string]string{
		"project":        ProjectFullLink(testSite, 0),
		"component":      ComponentPreviewFullLink(testSite, 1, 0),
		"component-pid":  ComponentPreviewFullLink(testSite, 0, 1),
		"version":        BugVersionPreviewFullLink(testSite, 0, 3),
		"role":           RolePreviewFullLink(testSite, 1, -1),
		"member":         ProjectMemberFullLink(testSite, 1, ""),
		"member-pid":     ProjectMemberFullLink(testSite, 0, "jdoe"),
		"bug":            BugPreviewFullLink(testSite, 0, "PRJ"),
		"bug-short":      BugPreviewFullLink(testSite, 5, " "),
		"task":           TaskPreviewFullLink(testSite, 0, "PRJ"),
		"message":        MessagePreviewFullLink(testSite, 1, 0),
		"risk":           RiskPreviewFullLink(testSite, 0, 9),
		"milestone":      MilestonePreviewFullLink(testSite, 0, 0),
		"client":         ClientPreviewFullLink(testSite, 0),
		"page-folder":    PageFolderFullLink(testSite, 1, ""),
		"page":           PageFullLink(testSite, 0, "docs/intro"),
		"item-null":      ProjectItemLink(testSite, "PRJ", 1, TypeBug, "null"),
		"item-empty":     ProjectItemLink(testSite, "PRJ", 1, TypeRisk, ""),
		"item-malformed": ProjectItemLink(testSite, "PRJ", 1, TypeRisk, "abc"),
		"item-unknown":   ProjectItemLink(testSite, "PRJ", 1, EntityType("Crm-Lead"), "4"),
	}
	for name, got := range cases {
		if got != "" {
			t.Errorf("%s: expected empty link, got %q", name, got)
		}
	}
}

func TestPathTemplates(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"component", ComponentPreviewFullLink(testSite, 42, 7), "https://x.io/#project/component/preview/42%2F7"},
		{"version", BugVersionPreviewFullLink(testSite, 42, 7), "https://x.io/#project/version/preview/42%2F7"},
		{"role", RolePreviewFullLink(testSite, 42, 7), "https://x.io/#project/role/preview/42%2F7"},
		{"member", ProjectMemberFullLink(testSite, 42, "jdoe"), "https://x.io/#project/user/preview/42%2Fjdoe"},
		{"bug", BugPreviewFullLink(testSite, 12, "PRJ"), "https://x.io/#project/bug/preview/PRJ-12"},
		{"task", TaskPreviewFullLink(testSite, 3, "PRJ"), "https://x.io/#project/task/preview/PRJ-3"},
		{"message", MessagePreviewFullLink(testSite, 42, 5), "https://x.io/#project/message/preview/42%2F5"},
		{"risk", RiskPreviewFullLink(testSite, 42, 5), "https://x.io/#project/risk/preview/42%2F5"},
		{"milestone", MilestonePreviewFullLink(testSite, 42, 5), "https://x.io/#project/milestone/preview/42%2F5"},
		{"client", ClientPreviewFullLink(testSite, 8), "https://x.io/#project/client/preview/8"},
		{"page-folder", PageFolderFullLink(testSite, 42, "docs"), "https://x.io/#project/page/list/42%2Fdocs"},
		{"page", PageFullLink(testSite, 42, "docs/intro page"), "https://x.io/#project/page/preview/42%2Fdocs%2Fintro%20page"},
		{"standup", StandupDashboardLink(testSite), "https://x.io/#project/reports/standup/"},
		{"weekly", HoursWeeklyReportLink(testSite), "https://x.io/#project/reports/weeklytiming/"},
		{"timesheet", TimesheetReportLink(testSite), "https://x.io/#project/reports/timesheet/"},
		{"workload", UsersWorkloadReportLink(testSite), "https://x.io/#project/reports/usersworkload/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, tc.got)
			}
		})
	}
}

func TestProjectItemLinkDispatch(t *testing.T) {
	cases := []struct {
		itemType EntityType
		typeID   string
		want     string
	}{
		{TypeProject, "42", ProjectFullLink(testSite, 42)},
		{TypeBug, "12", BugPreviewFullLink(testSite, 12, "PRJ")},
		{TypeTask, "3", TaskPreviewFullLink(testSite, 3, "PRJ")},
		{TypeMilestone, "5", MilestonePreviewFullLink(testSite, 42, 5)},
		{TypeRisk, "5", RiskPreviewFullLink(testSite, 42, 5)},
		{TypeMessage, "5", MessagePreviewFullLink(testSite, 42, 5)},
		{TypeComponent, "5", ComponentPreviewFullLink(testSite, 42, 5)},
		{TypeVersion, "5", BugVersionPreviewFullLink(testSite, 42, 5)},
		{TypeRole, "5", RolePreviewFullLink(testSite, 42, 5)},
		{TypeClient, "5", ClientPreviewFullLink(testSite, 5)},
		{TypePage, "docs/intro", PageFullLink(testSite, 42, "docs/intro")},
	}
	for _, tc := range cases {
		got := ProjectItemLink(testSite, "PRJ", 42, tc.itemType, tc.typeID)
		if got == "" || got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.itemType, tc.want, got)
		}
	}
}

func TestEntityFullLinkMember(t *testing.T) {
	got := EntityFullLink(testSite, "PRJ", 42, EntityReference{Type: TypeMember, ID: "jdoe"})
	if got != ProjectMemberFullLink(testSite, 42, "jdoe") {
		t.Fatalf("unexpected member link %q", got)
	}
}

func TestLinksAreDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if RiskPreviewFullLink(testSite, 42, 5) != RiskPreviewFullLink(testSite, 42, 5) {
			t.Fatal("expected identical output for identical input")
		}
	}
}

func TestCustomURLPrefix(t *testing.T) {
	sc := site.Context{BaseURL: "https://x.io/app/", URLPrefix: "#!/"}
	if got := ProjectFullLink(sc, 1); got != "https://x.io/app/#!/project/1" {
		t.Fatalf("unexpected link %q", got)
	}
}

func TestDecodeSegment(t *testing.T) {
	parts, err := DecodeSegment(EncodeSegment("42", "docs/intro page"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(parts, []string{"42", "docs/intro page"}) {
		t.Fatalf("unexpected parts %v", parts)
	}
	if _, err := DecodeSegment("%zz"); err == nil {
		t.Fatal("expected error for malformed escape")
	}
}

func TestParseEntityType(t *testing.T) {
	got, ok := ParseEntityType("project-bug")
	if !ok || got != TypeBug {
		t.Fatalf("expected TypeBug, got %q ok=%v", got, ok)
	}
	if _, ok := ParseEntityType("Crm-Lead"); ok {
		t.Fatal("expected unknown type")
	}
}
