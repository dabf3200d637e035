package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
)

const localRefPrefix = "local://"

// LocalStore writes documents under a directory of the local filesystem.
type LocalStore struct {
	dir string
}

var _ portsrepo.DocumentStore = (*LocalStore)(nil)

// NewLocalStore creates dir if needed and returns a store rooted there.
func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes content to a new file and returns its reference.
func (s *LocalStore) Save(ctx context.Context, name string, contentType string, content io.Reader) (*domain.StoredDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	object := objectName(name)
	f, err := os.OpenFile(filepath.Join(s.dir, object), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("create document file: %w", err)
	}
	size, copyErr := io.Copy(f, content)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("write document file: %w", errors.Join(copyErr, closeErr))
	}
	return &domain.StoredDocument{
		Ref:         localRefPrefix + object,
		Name:        name,
		ContentType: contentType,
		Size:        size,
	}, nil
}

// Open returns a reader over a stored document.
func (s *LocalStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := s.path(ref)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewNotFoundError("document not found")
		}
		return nil, fmt.Errorf("open document: %w", err)
	}
	return f, nil
}

// Delete removes the file behind ref.
func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file, err := s.path(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return apperrors.NewNotFoundError("document not found")
		}
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// path maps a local reference to its file, refusing anything outside dir.
func (s *LocalStore) path(ref string) (string, error) {
	object, ok := strings.CutPrefix(ref, localRefPrefix)
	if !ok || object == "" || object != filepath.Base(object) {
		return "", apperrors.NewValidationError("invalid document reference")
	}
	return filepath.Join(s.dir, object), nil
}
