// Package mocks provides mock implementations for testing link use cases.
package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	linksDomain "github.com/estudiomov/linkgate/internal/links/domain"
	"github.com/estudiomov/linkgate/internal/storage"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// MockLinkRepository is a mock implementation of LinkRepository for testing.
type MockLinkRepository struct {
	mock.Mock
}

// Create mocks the Create method of LinkRepository.
func (m *MockLinkRepository) Create(ctx context.Context, link *linksDomain.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

// GetByToken mocks the GetByToken method of LinkRepository.
func (m *MockLinkRepository) GetByToken(ctx context.Context, token string) (*linksDomain.Link, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linksDomain.Link), args.Error(1)
}

// GetCurrentByTarget mocks the GetCurrentByTarget method of LinkRepository.
func (m *MockLinkRepository) GetCurrentByTarget(
	ctx context.Context,
	alvoID uuid.UUID,
	tipo linksDomain.LinkType,
	now time.Time,
) (*linksDomain.Link, error) {
	args := m.Called(ctx, alvoID, tipo, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linksDomain.Link), args.Error(1)
}

// DeleteByTarget mocks the DeleteByTarget method of LinkRepository.
func (m *MockLinkRepository) DeleteByTarget(
	ctx context.Context,
	alvoID uuid.UUID,
	tipo linksDomain.LinkType,
) error {
	args := m.Called(ctx, alvoID, tipo)
	return args.Error(0)
}

// DeleteExpired mocks the DeleteExpired method of LinkRepository.
func (m *MockLinkRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// CountExpired mocks the CountExpired method of LinkRepository.
func (m *MockLinkRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockTrabalhoRepository is a mock implementation of TrabalhoRepository for testing.
type MockTrabalhoRepository struct {
	mock.Mock
}

// GetProjection mocks the GetProjection method of TrabalhoRepository.
func (m *MockTrabalhoRepository) GetProjection(
	ctx context.Context,
	id uuid.UUID,
) (*trabalhosDomain.Projection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trabalhosDomain.Projection), args.Error(1)
}

// GetArquivos mocks the GetArquivos method of TrabalhoRepository.
func (m *MockTrabalhoRepository) GetArquivos(
	ctx context.Context,
	id uuid.UUID,
) ([]trabalhosDomain.Arquivo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trabalhosDomain.Arquivo), args.Error(1)
}

// MockBlobStore is a mock implementation of storage.BlobStore for testing.
type MockBlobStore struct {
	mock.Mock
}

// Upload mocks the Upload method of BlobStore.
func (m *MockBlobStore) Upload(
	ctx context.Context,
	bucket, path string,
	r io.Reader,
	contentType string,
) error {
	args := m.Called(ctx, bucket, path, r, contentType)
	return args.Error(0)
}

// Download mocks the Download method of BlobStore.
func (m *MockBlobStore) Download(ctx context.Context, bucket, path string) (*storage.Object, error) {
	args := m.Called(ctx, bucket, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Object), args.Error(1)
}

// SignedURL mocks the SignedURL method of BlobStore.
func (m *MockBlobStore) SignedURL(
	ctx context.Context,
	bucket, path string,
	ttl time.Duration,
) (string, error) {
	args := m.Called(ctx, bucket, path, ttl)
	return args.String(0), args.Error(1)
}

// Close mocks the Close method of BlobStore.
func (m *MockBlobStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
