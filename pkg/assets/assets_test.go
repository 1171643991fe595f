package assets

import (
	"testing"

	"github.com/goliatone/go-projectlinks/pkg/config"
	"github.com/goliatone/go-projectlinks/pkg/links"
	"github.com/goliatone/go-projectlinks/pkg/site"
)

func TestAvatarPathFileStorage(t *testing.T) {
	r := NewAvatarResolver(config.StorageConfig{Mode: config.StorageModeFile})
	sc := site.New("https://x.io/")

	if got := r.AvatarPath(sc, "abc", 16); got != "https://x.io/file/avatar/abc_16.png" {
		t.Fatalf("unexpected avatar path %q", got)
	}
	if got := r.AvatarPath(sc, "", 32); got != "https://x.io/assets/icons/default_user_avatar_32.png" {
		t.Fatalf("unexpected default avatar %q", got)
	}
	if got := r.AvatarPath(sc, "abc", 0); got != "https://x.io/file/avatar/abc_16.png" {
		t.Fatalf("expected default size, got %q", got)
	}
}

func TestAvatarPathS3Storage(t *testing.T) {
	r := NewAvatarResolver(config.StorageConfig{
		Mode:              config.StorageModeS3,
		BucketURL:         "https://bucket.s3.amazonaws.com",
		CustomPath:        "/tenant-1/",
		DefaultAvatarSize: 48,
	})
	sc := site.New("https://x.io/")

	if got := r.AvatarPath(sc, "abc", 0); got != "https://bucket.s3.amazonaws.com/tenant-1/avatar/abc_48.png" {
		t.Fatalf("unexpected s3 avatar path %q", got)
	}
	if got := r.AvatarPath(sc, "", 16); got != "https://x.io/assets/icons/default_user_avatar_16.png" {
		t.Fatalf("expected site default avatar, got %q", got)
	}
}

func TestIconSetLabels(t *testing.T) {
	translator, err := NewTranslator("en")
	if err != nil {
		t.Fatalf("translator: %v", err)
	}
	icons := NewIconSet(translator, "en")

	icon, ok := icons.Lookup(links.TypeBug)
	if !ok {
		t.Fatal("expected bug icon")
	}
	if icon.Glyph != '\uf188' {
		t.Fatalf("unexpected glyph %U", icon.Glyph)
	}
	if got := icons.Label(icon, "es"); got != "Error" {
		t.Fatalf("expected spanish label, got %q", got)
	}
	if got := icons.Label(icon, ""); got != "Bug" {
		t.Fatalf("expected default locale label, got %q", got)
	}
}

func TestIconSetWithoutTranslator(t *testing.T) {
	icons := NewIconSet(nil, "")
	icon, _ := icons.Lookup(links.TypeMilestone)
	if got := icons.Label(icon, "fr"); got != "Milestone" {
		t.Fatalf("expected built-in label, got %q", got)
	}
	if _, ok := icons.Lookup(links.EntityType("Crm-Lead")); ok {
		t.Fatal("expected unknown type miss")
	}
}
