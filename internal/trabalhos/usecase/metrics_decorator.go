package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/estudiomov/linkgate/internal/metrics"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// trabalhoUseCaseWithMetrics decorates TrabalhoUseCase with metrics
// instrumentation.
type trabalhoUseCaseWithMetrics struct {
	next    TrabalhoUseCase
	metrics metrics.BusinessMetrics
}

// NewTrabalhoUseCaseWithMetrics wraps a TrabalhoUseCase with metrics recording.
func NewTrabalhoUseCaseWithMetrics(useCase TrabalhoUseCase, m metrics.BusinessMetrics) TrabalhoUseCase {
	return &trabalhoUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// AddArquivo records metrics for file attachment.
func (t *trabalhoUseCaseWithMetrics) AddArquivo(
	ctx context.Context,
	trabalhoID uuid.UUID,
	nome, contentType string,
	r io.Reader,
) (*trabalhosDomain.Arquivo, error) {
	start := time.Now()
	arquivo, err := t.next.AddArquivo(ctx, trabalhoID, nome, contentType, r)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "trabalhos", "file_attach", status)
	t.metrics.RecordDuration(ctx, "trabalhos", "file_attach", time.Since(start), status)

	return arquivo, err
}

// SignedArquivoURL records metrics for signed URL minting.
func (t *trabalhoUseCaseWithMetrics) SignedArquivoURL(
	ctx context.Context,
	trabalhoID uuid.UUID,
	fileID string,
) (string, error) {
	start := time.Now()
	signedURL, err := t.next.SignedArquivoURL(ctx, trabalhoID, fileID)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "trabalhos", "file_signed_url", status)
	t.metrics.RecordDuration(ctx, "trabalhos", "file_signed_url", time.Since(start), status)

	return signedURL, err
}
