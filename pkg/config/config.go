package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-config/cfgx"
)

// Storage modes understood by the avatar resolver.
const (
	StorageModeFile = "file"
	StorageModeS3   = "s3"
)

// Config captures module-level configuration knobs. Feature packages (links,
// fragments, assets, tooltip) pull from these nested structs.
type Config struct {
	Site         SiteConfig         `mapstructure:"site" json:"site"`
	Storage      StorageConfig      `mapstructure:"storage" json:"storage"`
	Tooltip      TooltipConfig      `mapstructure:"tooltip" json:"tooltip"`
	Display      DisplayConfig      `mapstructure:"display" json:"display"`
	Localization LocalizationConfig `mapstructure:"localization" json:"localization"`
}

// SiteConfig describes the tenant site used to build absolute links.
type SiteConfig struct {
	BaseURL   string `mapstructure:"base_url" json:"base_url"`
	URLPrefix string `mapstructure:"url_prefix" json:"url_prefix"`
	AccountID int    `mapstructure:"account_id" json:"account_id"`
	TimeZone  string `mapstructure:"time_zone" json:"time_zone"`
	Locale    string `mapstructure:"locale" json:"locale"`
}

// StorageConfig selects where avatar images are served from.
type StorageConfig struct {
	Mode              string `mapstructure:"mode" json:"mode"`
	BucketURL         string `mapstructure:"bucket_url" json:"bucket_url"`
	CustomPath        string `mapstructure:"custom_path" json:"custom_path"`
	DefaultAvatarSize int    `mapstructure:"default_avatar_size" json:"default_avatar_size"`
}

// TooltipConfig names the client-side tooltip container.
type TooltipConfig struct {
	ID string `mapstructure:"id" json:"id"`
}

// DisplayConfig limits rendered labels.
type DisplayConfig struct {
	NameLimit int `mapstructure:"name_limit" json:"name_limit"`
}

// LocalizationConfig controls the default locale for labels.
type LocalizationConfig struct {
	DefaultLocale string `mapstructure:"default_locale" json:"default_locale"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Site: SiteConfig{
			URLPrefix: "#",
			TimeZone:  "UTC",
			Locale:    "en",
		},
		Storage: StorageConfig{
			Mode:              StorageModeFile,
			DefaultAvatarSize: 16,
		},
		Tooltip: TooltipConfig{
			ID: "mycollabtip",
		},
		Display: DisplayConfig{
			NameLimit: 30,
		},
		Localization: LocalizationConfig{DefaultLocale: "en"},
	}
}

// Validate ensures required fields are present and sane.
func (c *Config) Validate() error {
	if c.Localization.DefaultLocale == "" {
		return errors.New("localization.default_locale is required")
	}
	switch c.Storage.Mode {
	case StorageModeFile:
	case StorageModeS3:
		if strings.TrimSpace(c.Storage.BucketURL) == "" {
			return errors.New("storage.bucket_url is required when storage.mode is s3")
		}
	default:
		return fmt.Errorf("storage.mode must be %q or %q, got %q", StorageModeFile, StorageModeS3, c.Storage.Mode)
	}
	if c.Storage.DefaultAvatarSize <= 0 {
		return fmt.Errorf("storage.default_avatar_size must be > 0")
	}
	if c.Display.NameLimit <= 0 {
		return fmt.Errorf("display.name_limit must be > 0")
	}
	if strings.TrimSpace(c.Tooltip.ID) == "" {
		return errors.New("tooltip.id is required")
	}
	return nil
}

// Load decodes arbitrary input (struct, map, cfg struct) using cfgx helpers.
// When cfgx.Build yields zero values we fall back to a lightweight decoder.
func Load(input any, opts ...LoadOption) (Config, error) {
	settings := loadOptions{}
	for _, opt := range opts {
		opt(&settings)
	}

	cfg, err := cfgx.Build(input, settings.buildOpts...)
	if err != nil {
		return Config{}, err
	}

	if isZero(cfg) {
		if err := decodeFallback(input, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOption lets callers amend cfgx build options.
type LoadOption func(*loadOptions)

type loadOptions struct {
	buildOpts []cfgx.Option[Config]
}

// WithBuildOptions forwards cfgx options (duration hooks, preprocessors, etc.).
func WithBuildOptions(opts ...cfgx.Option[Config]) LoadOption {
	return func(lo *loadOptions) {
		lo.buildOpts = append(lo.buildOpts, opts...)
	}
}

func (c Config) withDefaults() Config {
	defaults := Defaults()

	if c.Site.URLPrefix == "" {
		c.Site.URLPrefix = defaults.Site.URLPrefix
	}
	if c.Site.TimeZone == "" {
		c.Site.TimeZone = defaults.Site.TimeZone
	}
	if c.Site.Locale == "" {
		c.Site.Locale = defaults.Site.Locale
	}
	if c.Storage.Mode == "" {
		c.Storage.Mode = defaults.Storage.Mode
	}
	c.Storage.Mode = strings.ToLower(strings.TrimSpace(c.Storage.Mode))
	if c.Storage.DefaultAvatarSize == 0 {
		c.Storage.DefaultAvatarSize = defaults.Storage.DefaultAvatarSize
	}
	if c.Tooltip.ID == "" {
		c.Tooltip.ID = defaults.Tooltip.ID
	}
	if c.Display.NameLimit == 0 {
		c.Display.NameLimit = defaults.Display.NameLimit
	}
	if c.Localization.DefaultLocale == "" {
		c.Localization.DefaultLocale = defaults.Localization.DefaultLocale
	}
	return c
}

func isZero(cfg Config) bool {
	return reflect.DeepEqual(cfg, Config{})
}

func decodeFallback(input any, cfg *Config) error {
	switch v := input.(type) {
	case nil:
		return nil
	case Config:
		*cfg = v
		return nil
	case *Config:
		if v != nil {
			*cfg = *v
		}
		return nil
	case map[string]any:
		return decodeMap(v, cfg)
	default:
		return fmt.Errorf("unsupported config input type: %T", input)
	}
}

func decodeMap(input map[string]any, cfg *Config) error {
	if input == nil {
		return nil
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, cfg)
}
