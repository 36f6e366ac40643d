package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/estudiomov/linkgate/internal/contatos/domain"
)

// ContatoResponse is the payload returned after a contact submission is accepted.
type ContatoResponse struct {
	ID       uuid.UUID `json:"id"`
	Nome     string    `json:"nome"`
	Email    string    `json:"email"`
	CriadoEm time.Time `json:"criado_em"`
}

// MapContatoToResponse maps a domain contact to its response payload.
func MapContatoToResponse(contato *domain.Contato) ContatoResponse {
	return ContatoResponse{
		ID:       contato.ID,
		Nome:     contato.Nome,
		Email:    contato.Email,
		CriadoEm: contato.CriadoEm,
	}
}
