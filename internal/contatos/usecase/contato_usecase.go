package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/estudiomov/linkgate/internal/contatos/domain"
)

type contatoUseCase struct {
	repo ContatoRepository
}

// NewContatoUseCase creates a new contact use case.
func NewContatoUseCase(repo ContatoRepository) ContatoUseCase {
	return &contatoUseCase{repo: repo}
}

// Submit records an inbound contact request.
func (c *contatoUseCase) Submit(ctx context.Context, nome, email, telefone, documento, cep, mensagem string) (*domain.Contato, error) {
	contato := &domain.Contato{
		ID:        uuid.Must(uuid.NewV7()),
		Nome:      nome,
		Email:     email,
		Telefone:  telefone,
		Documento: documento,
		CEP:       cep,
		Mensagem:  mensagem,
		CriadoEm:  time.Now().UTC(),
	}

	if err := c.repo.Create(ctx, contato); err != nil {
		return nil, err
	}

	return contato, nil
}
