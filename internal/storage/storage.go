package storage

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

const objectScheme = "s3"

// FileStorage defines the object storage operations the API needs.
type FileStorage interface {
	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading/viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
}

// MediaResolver turns a stored media reference (video_url, thumbnail, image)
// into a URL a browser can load.
type MediaResolver interface {
	Resolve(ctx context.Context, ref string) string
}

type mediaResolver struct {
	storage FileStorage
	expiry  time.Duration
	log     logrus.FieldLogger
}

// NewMediaResolver returns a resolver that presigns object keys through
// storage. A nil storage yields a pass-through resolver.
func NewMediaResolver(storage FileStorage, expiry time.Duration, log logrus.FieldLogger) MediaResolver {
	if expiry <= 0 {
		expiry = DefaultPresignedURLExpiry
	}
	return &mediaResolver{storage: storage, expiry: expiry, log: log}
}

// Resolve leaves absolute URLs (http, https, data, ...) untouched. "s3://key"
// and bare keys are presigned against the configured bucket. Any presign
// failure falls back to the reference as given.
func (r *mediaResolver) Resolve(ctx context.Context, ref string) string {
	key, ok := objectKey(ref)
	if !ok || r.storage == nil {
		return ref
	}

	signed, err := r.storage.GeneratePresignedDownloadURL(ctx, key, r.expiry)
	if err != nil {
		if r.log != nil {
			r.log.WithError(err).WithField("object_key", key).Warn("media presign failed")
		}
		return ref
	}
	return signed
}

// objectKey extracts the storage key from ref, reporting false when ref is
// already a loadable URL.
func objectKey(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "//") {
		return "", false
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", false
	}
	switch {
	case u.Scheme == "":
		return strings.TrimPrefix(ref, "/"), true
	case strings.EqualFold(u.Scheme, objectScheme):
		key := strings.TrimPrefix(ref[len(objectScheme)+len("://"):], "/")
		return key, key != ""
	default:
		return "", false
	}
}
