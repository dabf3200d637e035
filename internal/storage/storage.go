// Package storage keeps the BL and OCST documents attached to deliveries.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	"github.com/fuelsquad/manquants_app/internal/platform/config"
	"github.com/google/uuid"
)

// New returns the document store selected by configuration.
func New(ctx context.Context, cfg *config.Config) (portsrepo.DocumentStore, error) {
	switch cfg.DocumentStorage {
	case config.StorageGCS:
		return NewGCSStore(ctx, cfg.GCSBucket, cfg.GCSCredentialsFile)
	case config.StorageLocal, "":
		return NewLocalStore(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unknown document storage %q", cfg.DocumentStorage)
	}
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// objectName builds a collision-free object name that keeps the original
// file name readable, e.g. "bl_3f2a..._BL 123.pdf" -> "bl_3f2a..._BL_123.pdf".
func objectName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "document"
	}
	return uuid.NewString() + "_" + base
}
