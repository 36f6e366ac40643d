// Package usecase implements the business logic for contact submissions.
package usecase

import (
	"context"

	"github.com/estudiomov/linkgate/internal/contatos/domain"
)

// ContatoRepository defines the persistence contract for contact submissions.
type ContatoRepository interface {
	Create(ctx context.Context, contato *domain.Contato) error
}

// ContatoUseCase defines the business operations for contact submissions.
type ContatoUseCase interface {
	Submit(ctx context.Context, nome, email, telefone, documento, cep, mensagem string) (*domain.Contato, error)
}
