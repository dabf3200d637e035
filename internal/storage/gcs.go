package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gcs "google.golang.org/api/storage/v1"
)

const gcsRefPrefix = "gs://"

// GCSStore keeps documents in a Google Cloud Storage bucket.
type GCSStore struct {
	bucket  string
	service *gcs.Service
}

var _ portsrepo.DocumentStore = (*GCSStore)(nil)

// NewGCSStore connects to bucket. Without a credentials file it relies on
// Application Default Credentials.
func NewGCSStore(ctx context.Context, bucket, credentialsFile string) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs bucket is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile), option.WithScopes(gcs.DevstorageReadWriteScope))
	} else {
		client, err := google.DefaultClient(ctx, gcs.DevstorageReadWriteScope)
		if err != nil {
			return nil, fmt.Errorf("find default google credentials: %w", err)
		}
		opts = append(opts, option.WithHTTPClient(client))
	}

	service, err := gcs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSStore{bucket: bucket, service: service}, nil
}

// Save uploads content as a new object.
func (s *GCSStore) Save(ctx context.Context, name string, contentType string, content io.Reader) (*domain.StoredDocument, error) {
	object := &gcs.Object{Name: objectName(name), ContentType: contentType}
	stored, err := s.service.Objects.Insert(s.bucket, object).
		Media(content, googleapi.ContentType(contentType)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("upload document to bucket %s: %w", s.bucket, err)
	}
	return &domain.StoredDocument{
		Ref:         gcsRefPrefix + s.bucket + "/" + stored.Name,
		Name:        name,
		ContentType: contentType,
		Size:        int64(stored.Size),
	}, nil
}

// Open downloads an object.
func (s *GCSStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	object, err := s.object(ref)
	if err != nil {
		return nil, err
	}
	resp, err := s.service.Objects.Get(s.bucket, object).Context(ctx).Download()
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundError("document not found")
		}
		return nil, fmt.Errorf("download document: %w", err)
	}
	return resp.Body, nil
}

// Delete removes an object from the bucket.
func (s *GCSStore) Delete(ctx context.Context, ref string) error {
	object, err := s.object(ref)
	if err != nil {
		return err
	}
	if err := s.service.Objects.Delete(s.bucket, object).Context(ctx).Do(); err != nil {
		if isNotFound(err) {
			return apperrors.NewNotFoundError("document not found")
		}
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// object extracts the object name of a gs:// reference in this store's bucket.
func (s *GCSStore) object(ref string) (string, error) {
	rest, ok := strings.CutPrefix(ref, gcsRefPrefix)
	if !ok {
		return "", apperrors.NewValidationError("invalid document reference")
	}
	bucket, object, ok := strings.Cut(rest, "/")
	if !ok || bucket != s.bucket || object == "" {
		return "", apperrors.NewValidationError("invalid document reference")
	}
	return object, nil
}

func isNotFound(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}
