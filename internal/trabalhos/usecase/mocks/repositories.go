// Package mocks provides mock implementations for testing trabalho use cases.
package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/estudiomov/linkgate/internal/storage"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

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

// SetArquivos mocks the SetArquivos method of TrabalhoRepository.
func (m *MockTrabalhoRepository) SetArquivos(
	ctx context.Context,
	id uuid.UUID,
	arquivos []trabalhosDomain.Arquivo,
) error {
	args := m.Called(ctx, id, arquivos)
	return args.Error(0)
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

// MockTrabalhoUseCase is a mock implementation of TrabalhoUseCase for testing
// HTTP handlers.
type MockTrabalhoUseCase struct {
	mock.Mock
}

// AddArquivo mocks the AddArquivo method of TrabalhoUseCase.
func (m *MockTrabalhoUseCase) AddArquivo(
	ctx context.Context,
	trabalhoID uuid.UUID,
	nome, contentType string,
	r io.Reader,
) (*trabalhosDomain.Arquivo, error) {
	args := m.Called(ctx, trabalhoID, nome, contentType, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trabalhosDomain.Arquivo), args.Error(1)
}

// SignedArquivoURL mocks the SignedArquivoURL method of TrabalhoUseCase.
func (m *MockTrabalhoUseCase) SignedArquivoURL(
	ctx context.Context,
	trabalhoID uuid.UUID,
	fileID string,
) (string, error) {
	args := m.Called(ctx, trabalhoID, fileID)
	return args.String(0), args.Error(1)
}
