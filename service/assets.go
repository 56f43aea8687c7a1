package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"
)

// Presigner signs object download links.
type Presigner interface {
	Bucket() string
	PresignedGetURL(ctx context.Context, key string, expiry time.Duration, downloadName string) (string, error)
}

// AssetLinks turns the image and PDF URLs stored in content into links a browser can follow.
// Ordinary http(s) URLs pass through unchanged. s3://bucket/key URLs for the configured
// bucket become presigned links; any other s3 URL, or any s3 URL when no bucket is
// configured, resolves to "".
type AssetLinks struct {
	presigner Presigner
	ttl       time.Duration
	logger    *slog.Logger
}

// NewAssetLinks creates a resolver. presigner may be nil.
func NewAssetLinks(presigner Presigner, ttl time.Duration, logger *slog.Logger) *AssetLinks {
	return &AssetLinks{presigner: presigner, ttl: ttl, logger: logger}
}

// URL resolves an image or page link.
func (a *AssetLinks) URL(raw string) string {
	return a.resolve(raw, "")
}

// Download resolves a file link; fileName becomes the suggested download name for S3 objects.
func (a *AssetLinks) Download(raw, fileName string) string {
	return a.resolve(raw, fileName)
}

func (a *AssetLinks) resolve(raw, fileName string) string {
	if !strings.HasPrefix(raw, "s3://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || a.presigner == nil || u.Host != a.presigner.Bucket() {
		a.logger.Warn("unresolvable asset url", "url", raw)
		return ""
	}
	key := strings.TrimPrefix(u.Path, "/")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	signed, err := a.presigner.PresignedGetURL(ctx, key, a.ttl, fileName)
	if err != nil {
		a.logger.Error("presign asset url", "key", key, "error", err)
		return ""
	}
	return signed
}
