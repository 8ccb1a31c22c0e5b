// Package media wraps the hosted media store used for blog cover images.
// Two backends exist: the ImageKit REST API and an S3 bucket fronted by a
// public base URL. Callers only see the Store interface.
package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/maatiworld/maati-world-backend/config"
)

// BlogFolder is the fixed logical folder cover images are stored under.
const BlogFolder = "/Blogger"

// Descriptor describes a stored media object.
type Descriptor struct {
	FileID string `json:"fileId"`
	URL    string `json:"url"`
	Name   string `json:"name"`
}

// Store is the upload adapter over the hosted media endpoint.
type Store interface {
	Upload(ctx context.Context, fileName string, content []byte, folder string) (*Descriptor, error)
	Delete(ctx context.Context, fileID string) error
}

// FileIDFromURL extracts the store-side file identifier from a stored
// media URL by taking the trailing path segment. This is the contract
// with the media store's URL shape; if the store ever changes how it
// forms URLs, this is the one place that breaks.
func FileIDFromURL(raw string) string {
	raw = strings.TrimSuffix(raw, "/")
	idx := strings.LastIndex(raw, "/")
	if idx < 0 || idx == len(raw)-1 {
		return ""
	}
	return raw[idx+1:]
}

// NewFromConfig builds the media backend selected by MEDIA_BACKEND.
func NewFromConfig(ctx context.Context, cfg map[string]string) (Store, error) {
	backend := config.GetString(cfg, "MEDIA_BACKEND", "imagekit")
	switch backend {
	case "imagekit":
		return NewImageKit(
			config.GetString(cfg, "IMAGEKIT_PUBLIC_KEY", ""),
			config.GetString(cfg, "IMAGEKIT_PRIVATE_KEY", ""),
			config.GetString(cfg, "IMAGEKIT_URL_ENDPOINT", ""),
		), nil
	case "s3":
		return NewS3Store(ctx,
			config.GetString(cfg, "S3_BUCKET", ""),
			config.GetString(cfg, "S3_REGION", "us-east-1"),
			config.GetString(cfg, "S3_PUBLIC_BASE_URL", ""),
		)
	default:
		return nil, fmt.Errorf("unknown media backend %q", backend)
	}
}
