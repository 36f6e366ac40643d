// Package dto provides data transfer objects for trabalho HTTP responses.
package dto

import (
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// ArquivoResponse represents an attached file descriptor in admin API
// responses.
type ArquivoResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
	URL  string `json:"url"`
	Tipo string `json:"tipo"`
}

// MapArquivoToResponse converts a domain file descriptor to an API response.
func MapArquivoToResponse(arquivo *trabalhosDomain.Arquivo) ArquivoResponse {
	return ArquivoResponse{
		ID:   arquivo.ID,
		Nome: arquivo.Nome,
		URL:  arquivo.URL,
		Tipo: arquivo.Tipo,
	}
}

// SignedURLResponse carries a short-lived signed URL for one file.
type SignedURLResponse struct {
	URL string `json:"url"`
}
