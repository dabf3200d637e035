package repositories

import (
	"context"
	"io"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
)

// DocumentStore persists uploaded delivery documents.
type DocumentStore interface {
	// Save stores the content under a name derived from name and returns its reference.
	Save(ctx context.Context, name string, contentType string, content io.Reader) (*domain.StoredDocument, error)
	// Open streams a stored document. The caller closes the reader.
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	// Delete removes a stored document.
	Delete(ctx context.Context, ref string) error
}
