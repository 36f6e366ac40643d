package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	linksDomain "github.com/estudiomov/linkgate/internal/links/domain"
	"github.com/estudiomov/linkgate/internal/storage"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// MockLinkUseCase is a mock implementation of LinkUseCase for testing
// decorators and HTTP handlers.
type MockLinkUseCase struct {
	mock.Mock
}

// Resolve mocks the Resolve method of LinkUseCase.
func (m *MockLinkUseCase) Resolve(ctx context.Context, token string) (*linksDomain.Resolution, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linksDomain.Resolution), args.Error(1)
}

// Download mocks the Download method of LinkUseCase.
func (m *MockLinkUseCase) Download(
	ctx context.Context,
	token, fileID string,
) (*storage.Object, *trabalhosDomain.Arquivo, error) {
	args := m.Called(ctx, token, fileID)
	var (
		object  *storage.Object
		arquivo *trabalhosDomain.Arquivo
	)
	if args.Get(0) != nil {
		object = args.Get(0).(*storage.Object)
	}
	if args.Get(1) != nil {
		arquivo = args.Get(1).(*trabalhosDomain.Arquivo)
	}
	return object, arquivo, args.Error(2)
}

// Regenerate mocks the Regenerate method of LinkUseCase.
func (m *MockLinkUseCase) Regenerate(
	ctx context.Context,
	alvoID uuid.UUID,
	tipo linksDomain.LinkType,
	briefingURL string,
	confirm bool,
) (*linksDomain.IssuedLink, error) {
	args := m.Called(ctx, alvoID, tipo, briefingURL, confirm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linksDomain.IssuedLink), args.Error(1)
}

// CurrentLink mocks the CurrentLink method of LinkUseCase.
func (m *MockLinkUseCase) CurrentLink(
	ctx context.Context,
	alvoID uuid.UUID,
	tipo linksDomain.LinkType,
) (*linksDomain.Link, error) {
	args := m.Called(ctx, alvoID, tipo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linksDomain.Link), args.Error(1)
}

// CleanupExpired mocks the CleanupExpired method of LinkUseCase.
func (m *MockLinkUseCase) CleanupExpired(
	ctx context.Context,
	olderThan time.Duration,
	dryRun bool,
) (int64, error) {
	args := m.Called(ctx, olderThan, dryRun)
	return args.Get(0).(int64), args.Error(1)
}
