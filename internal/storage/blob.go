package storage

import (
	"context"
	"io"
	"sync"
	"time"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	apperrors "github.com/estudiomov/linkgate/internal/errors"

	// Register portable blob drivers so buckets open by URL, matching the
	// configured STORAGE_URL_PREFIX.
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Object is a fetched blob: the caller owns Reader and must close it.
type Object struct {
	Reader      io.ReadCloser
	Size        int64
	ContentType string
}

// BlobStore exposes the object-storage primitives the service consumes:
// upload, raw download, and signed-URL generation, addressed by
// (bucket, path). The buckets themselves are an opaque external concern.
type BlobStore interface {
	Upload(ctx context.Context, bucket, path string, r io.Reader, contentType string) error
	Download(ctx context.Context, bucket, path string) (*Object, error)
	SignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)
	Close() error
}

// bucketStore implements BlobStore on gocloud.dev/blob. Buckets are opened
// lazily as urlPrefix+name and cached for the store's lifetime.
type bucketStore struct {
	urlPrefix string

	mu      sync.Mutex
	buckets map[string]*blob.Bucket
}

// NewBucketStore creates a BlobStore opening buckets under the given
// gocloud.dev URL prefix (e.g., "s3://", "file:///var/data/", "mem://").
func NewBucketStore(urlPrefix string) BlobStore {
	return &bucketStore{
		urlPrefix: urlPrefix,
		buckets:   make(map[string]*blob.Bucket),
	}
}

// bucket returns the cached bucket handle for name, opening it on first use.
func (s *bucketStore) bucket(ctx context.Context, name string) (*blob.Bucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.buckets[name]; ok {
		return b, nil
	}

	b, err := blob.OpenBucket(ctx, s.urlPrefix+name)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open bucket "+name)
	}
	s.buckets[name] = b
	return b, nil
}

// Upload writes the reader's bytes to (bucket, path) with the given content type.
func (s *bucketStore) Upload(ctx context.Context, bucket, path string, r io.Reader, contentType string) error {
	b, err := s.bucket(ctx, bucket)
	if err != nil {
		return err
	}

	w, err := b.NewWriter(ctx, path, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return apperrors.Wrap(err, "failed to open blob writer")
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return apperrors.Wrap(err, "failed to write blob")
	}
	if err := w.Close(); err != nil {
		return apperrors.Wrap(err, "failed to finish blob upload")
	}
	return nil
}

// Download opens a reader on (bucket, path). A missing object maps to
// ErrNotFound; everything else is an upstream failure the caller reports
// generically.
func (s *bucketStore) Download(ctx context.Context, bucket, path string) (*Object, error) {
	b, err := s.bucket(ctx, bucket)
	if err != nil {
		return nil, err
	}

	r, err := b.NewReader(ctx, path, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "blob "+bucket+"/"+path)
		}
		return nil, apperrors.Wrap(err, "failed to read blob")
	}

	return &Object{
		Reader:      r,
		Size:        r.Size(),
		ContentType: r.ContentType(),
	}, nil
}

// SignedURL returns a time-limited URL for (bucket, path). Not every driver
// supports signing; the error is surfaced as-is for the handler to report.
func (s *bucketStore) SignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error) {
	b, err := s.bucket(ctx, bucket)
	if err != nil {
		return "", err
	}

	url, err := b.SignedURL(ctx, path, &blob.SignedURLOptions{Expiry: ttl})
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign blob URL")
	}
	return url, nil
}

// Close releases every opened bucket handle.
func (s *bucketStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for name, b := range s.buckets {
		if err := b.Close(); err != nil && firstErr == nil {
			firstErr = apperrors.Wrap(err, "failed to close bucket "+name)
		}
		delete(s.buckets, name)
	}
	return firstErr
}
