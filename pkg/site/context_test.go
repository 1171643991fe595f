package site

import (
	"testing"

	"github.com/goliatone/go-projectlinks/pkg/config"
)

func TestLinkUsesRouterPrefix(t *testing.T) {
	sc := New("https://x.io/")
	if got := sc.Link("project/42"); got != "https://x.io/#project/42" {
		t.Fatalf("unexpected link %q", got)
	}
	if got := sc.Raw("assets/logo.png"); got != "https://x.io/assets/logo.png" {
		t.Fatalf("unexpected raw link %q", got)
	}

	sc.URLPrefix = ""
	if got := sc.Link("project/42"); got != "https://x.io/#project/42" {
		t.Fatalf("expected default prefix, got %q", got)
	}
}

func TestFromConfig(t *testing.T) {
	sc := FromConfig(config.SiteConfig{
		BaseURL:   " https://tenant.example.com/ ",
		URLPrefix: "#!",
		AccountID: 9,
		TimeZone:  "Europe/Madrid",
		Locale:    "es",
	})
	if sc.BaseURL != "https://tenant.example.com/" || sc.AccountID != 9 {
		t.Fatalf("unexpected context %+v", sc)
	}
	if got := sc.Link("project/1"); got != "https://tenant.example.com/#!project/1" {
		t.Fatalf("unexpected link %q", got)
	}

	other := sc.WithAccount(2).WithLocale("en")
	if other.AccountID != 2 || other.Locale != "en" {
		t.Fatalf("unexpected copy %+v", other)
	}
	if sc.AccountID != 9 || sc.Locale != "es" {
		t.Fatal("With* must not mutate the receiver")
	}
}
