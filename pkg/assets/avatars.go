package assets

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-projectlinks/pkg/config"
	"github.com/goliatone/go-projectlinks/pkg/site"
)

// AvatarResolver maps avatar ids to image URLs according to the storage mode.
type AvatarResolver struct {
	mode        string
	bucketURL   string
	customPath  string
	defaultSize int
}

// NewAvatarResolver builds a resolver from the storage section of the config.
func NewAvatarResolver(cfg config.StorageConfig) *AvatarResolver {
	r := &AvatarResolver{
		mode:        strings.ToLower(strings.TrimSpace(cfg.Mode)),
		bucketURL:   withTrailingSlash(cfg.BucketURL),
		customPath:  strings.Trim(cfg.CustomPath, "/"),
		defaultSize: cfg.DefaultAvatarSize,
	}
	if r.mode == "" {
		r.mode = config.StorageModeFile
	}
	if r.defaultSize <= 0 {
		r.defaultSize = 16
	}
	return r
}

// AvatarPath returns the image URL for avatarID at size pixels. Members
// without an avatar get the bundled default image.
func (r *AvatarResolver) AvatarPath(sc site.Context, avatarID string, size int) string {
	if size <= 0 {
		size = r.defaultSize
	}
	px := strconv.Itoa(size)
	avatarID = strings.TrimSpace(avatarID)
	if avatarID == "" {
		return sc.Raw("assets/icons/default_user_avatar_" + px + ".png")
	}
	key := "avatar/" + avatarID + "_" + px + ".png"
	if r.mode == config.StorageModeS3 {
		return r.resourcePath(key)
	}
	return sc.Raw("file/" + key)
}

func (r *AvatarResolver) resourcePath(key string) string {
	if r.customPath != "" {
		key = r.customPath + "/" + key
	}
	return r.bucketURL + key
}

func withTrailingSlash(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
