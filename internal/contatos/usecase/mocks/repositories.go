// Package mocks provides hand written test doubles for the contatos use case layer.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/estudiomov/linkgate/internal/contatos/domain"
)

// MockContatoRepository is a mock implementation of usecase.ContatoRepository.
type MockContatoRepository struct {
	mock.Mock
}

func (m *MockContatoRepository) Create(ctx context.Context, contato *domain.Contato) error {
	args := m.Called(ctx, contato)
	return args.Error(0)
}

// MockContatoUseCase is a mock implementation of usecase.ContatoUseCase.
type MockContatoUseCase struct {
	mock.Mock
}

func (m *MockContatoUseCase) Submit(ctx context.Context, nome, email, telefone, documento, cep, mensagem string) (*domain.Contato, error) {
	args := m.Called(ctx, nome, email, telefone, documento, cep, mensagem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contato), args.Error(1)
}
