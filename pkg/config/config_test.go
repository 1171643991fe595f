package config

import (
	"strings"
	"testing"
)

func TestLoadFromMap(t *testing.T) {
	input := map[string]any{
		"site": map[string]any{
			"base_url":   "https://x.io/",
			"account_id": 7,
		},
		"storage": map[string]any{
			"mode":       "s3",
			"bucket_url": "https://avatars.s3.amazonaws.com/",
		},
	}

	cfg, err := Load(input)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Site.BaseURL != "https://x.io/" {
		t.Fatalf("expected base url, got %s", cfg.Site.BaseURL)
	}
	if cfg.Site.AccountID != 7 {
		t.Fatalf("expected account 7, got %d", cfg.Site.AccountID)
	}
	if cfg.Storage.Mode != StorageModeS3 {
		t.Fatalf("expected s3 mode, got %s", cfg.Storage.Mode)
	}
	if cfg.Site.URLPrefix != "#" {
		t.Fatalf("expected default url prefix, got %q", cfg.Site.URLPrefix)
	}
	if cfg.Display.NameLimit != 30 {
		t.Fatalf("expected name limit 30, got %d", cfg.Display.NameLimit)
	}
}

func TestLoadFromStruct(t *testing.T) {
	input := Config{
		Site:    SiteConfig{BaseURL: "https://tenant.example.com/"},
		Display: DisplayConfig{NameLimit: 12},
	}

	cfg, err := Load(input)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Display.NameLimit != 12 {
		t.Fatalf("expected name limit 12, got %d", cfg.Display.NameLimit)
	}
	if cfg.Storage.Mode != StorageModeFile {
		t.Fatalf("expected file storage by default, got %s", cfg.Storage.Mode)
	}
	if cfg.Tooltip.ID == "" {
		t.Fatalf("expected default tooltip id")
	}
}

func TestLoadRejectsS3WithoutBucket(t *testing.T) {
	_, err := Load(map[string]any{
		"storage": map[string]any{"mode": "S3"},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "bucket_url") {
		t.Fatalf("expected bucket_url error, got %v", err)
	}
}

func TestValidateUnknownStorageMode(t *testing.T) {
	cfg := Defaults()
	cfg.Storage.Mode = "ftp"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown storage mode")
	}
}

func TestLoadUnsupportedInput(t *testing.T) {
	if _, err := Load(42); err == nil {
		t.Fatal("expected error for unsupported input")
	}
}
