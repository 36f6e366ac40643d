// Package domain defines the contact submission entity.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contato is one contact-form submission from the public site.
type Contato struct {
	ID        uuid.UUID
	Nome      string
	Email     string
	Telefone  string
	Documento string
	CEP       string
	Mensagem  string
	CriadoEm  time.Time
}
