package usecase

import (
	"context"
	"time"

	"github.com/estudiomov/linkgate/internal/contatos/domain"
	"github.com/estudiomov/linkgate/internal/metrics"
)

// contatoUseCaseWithMetrics decorates ContatoUseCase with metrics instrumentation.
type contatoUseCaseWithMetrics struct {
	next    ContatoUseCase
	metrics metrics.BusinessMetrics
}

// NewContatoUseCaseWithMetrics wraps a ContatoUseCase with metrics recording.
func NewContatoUseCaseWithMetrics(useCase ContatoUseCase, m metrics.BusinessMetrics) ContatoUseCase {
	return &contatoUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Submit records metrics for contact submissions.
func (c *contatoUseCaseWithMetrics) Submit(
	ctx context.Context,
	nome, email, telefone, documento, cep, mensagem string,
) (*domain.Contato, error) {
	start := time.Now()
	contato, err := c.next.Submit(ctx, nome, email, telefone, documento, cep, mensagem)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "contatos", "contact_submit", status)
	c.metrics.RecordDuration(ctx, "contatos", "contact_submit", time.Since(start), status)

	return contato, err
}
