// Package usecase implements business logic for trabalho file management:
// attaching deliverables to a trabalho and minting short-lived signed
// preview URLs.
package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"

	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// TrabalhoRepository defines the interface for trabalho persistence
// operations.
type TrabalhoRepository interface {
	GetProjection(ctx context.Context, id uuid.UUID) (*trabalhosDomain.Projection, error)
	GetArquivos(ctx context.Context, id uuid.UUID) ([]trabalhosDomain.Arquivo, error)
	SetArquivos(ctx context.Context, id uuid.UUID, arquivos []trabalhosDomain.Arquivo) error
}

// TrabalhoUseCase defines the interface for trabalho file management.
type TrabalhoUseCase interface {
	// AddArquivo uploads a deliverable to blob storage and appends its
	// descriptor to the trabalho's file list.
	AddArquivo(ctx context.Context, trabalhoID uuid.UUID, nome, contentType string, r io.Reader) (*trabalhosDomain.Arquivo, error)
	// SignedArquivoURL mints a short-lived signed URL for one listed file.
	SignedArquivoURL(ctx context.Context, trabalhoID uuid.UUID, fileID string) (string, error)
}
