package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/estudiomov/linkgate/internal/database"
	apperrors "github.com/estudiomov/linkgate/internal/errors"
	"github.com/estudiomov/linkgate/internal/storage"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// trabalhoUseCase implements the TrabalhoUseCase interface.
type trabalhoUseCase struct {
	txManager     database.TxManager
	trabalhoRepo  TrabalhoRepository
	blobStore     storage.BlobStore
	defaultBucket string
	signedURLTTL  time.Duration
}

// NewTrabalhoUseCase creates a new trabalho use case.
func NewTrabalhoUseCase(
	txManager database.TxManager,
	trabalhoRepo TrabalhoRepository,
	blobStore storage.BlobStore,
	defaultBucket string,
	signedURLTTL time.Duration,
) TrabalhoUseCase {
	return &trabalhoUseCase{
		txManager:     txManager,
		trabalhoRepo:  trabalhoRepo,
		blobStore:     blobStore,
		defaultBucket: defaultBucket,
		signedURLTTL:  signedURLTTL,
	}
}

// AddArquivo uploads the deliverable under finais/<trabalho>/ in the default
// bucket and appends its descriptor. The list update runs in a transaction
// so concurrent attachments don't drop each other's descriptors; the blob
// write happens first since an orphaned blob is harmless while a dangling
// descriptor is not.
func (t *trabalhoUseCase) AddArquivo(
	ctx context.Context,
	trabalhoID uuid.UUID,
	nome, contentType string,
	r io.Reader,
) (*trabalhosDomain.Arquivo, error) {
	nome = sanitizeFilename(nome)
	if nome == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "filename is required")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Existence check before touching the blob store.
	if _, err := t.trabalhoRepo.GetArquivos(ctx, trabalhoID); err != nil {
		return nil, err
	}

	fileID := uuid.NewString()
	blobPath := fmt.Sprintf("finais/%s/%s_%s", trabalhoID, fileID, nome)

	if err := t.blobStore.Upload(ctx, t.defaultBucket, blobPath, r, contentType); err != nil {
		return nil, err
	}

	arquivo := trabalhosDomain.Arquivo{
		ID:   fileID,
		Nome: nome,
		URL:  t.defaultBucket + "/" + blobPath,
		Tipo: contentType,
	}

	err := t.txManager.WithTx(ctx, func(txCtx context.Context) error {
		arquivos, err := t.trabalhoRepo.GetArquivos(txCtx, trabalhoID)
		if err != nil {
			return err
		}
		return t.trabalhoRepo.SetArquivos(txCtx, trabalhoID, append(arquivos, arquivo))
	})
	if err != nil {
		return nil, err
	}

	return &arquivo, nil
}

// SignedArquivoURL mints a signed URL for a listed file. The fileID is
// bounded to the trabalho's descriptor list the same way the download gate
// bounds it.
func (t *trabalhoUseCase) SignedArquivoURL(
	ctx context.Context,
	trabalhoID uuid.UUID,
	fileID string,
) (string, error) {
	arquivos, err := t.trabalhoRepo.GetArquivos(ctx, trabalhoID)
	if err != nil {
		return "", err
	}

	for _, arquivo := range arquivos {
		if arquivo.ID != fileID {
			continue
		}
		bucket, blobPath, err := storage.ParseLocator(arquivo.URL, t.defaultBucket)
		if err != nil {
			return "", apperrors.Wrap(err, "failed to parse file locator")
		}
		return t.blobStore.SignedURL(ctx, bucket, blobPath, t.signedURLTTL)
	}

	return "", trabalhosDomain.ErrArquivoNotFound
}

// sanitizeFilename keeps only the base name and rejects path traversal.
func sanitizeFilename(nome string) string {
	nome = path.Base(strings.ReplaceAll(nome, "\\", "/"))
	if nome == "." || nome == "/" {
		return ""
	}
	return nome
}
