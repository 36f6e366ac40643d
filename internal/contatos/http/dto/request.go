// Package dto contains request and response payloads for the contatos HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"
	"github.com/jellydator/validation/is"

	customvalidation "github.com/estudiomov/linkgate/internal/validation"
)

// ContatoRequest is the payload for submitting a contact request.
type ContatoRequest struct {
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Documento string `json:"documento"`
	CEP       string `json:"cep"`
	Mensagem  string `json:"mensagem"`
}

// Validate validates the contact request fields.
func (c ContatoRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Nome, validation.Required, validation.Length(2, 120)),
		validation.Field(&c.Email, validation.Required, is.Email),
		validation.Field(&c.Telefone, customvalidation.BRPhone),
		validation.Field(&c.Documento, customvalidation.CPFOrCNPJ),
		validation.Field(&c.CEP, customvalidation.CEP),
		validation.Field(&c.Mensagem, validation.Required, validation.Length(1, 4000)),
	)
}
