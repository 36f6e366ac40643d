package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	linksDomain "github.com/estudiomov/linkgate/internal/links/domain"
	"github.com/estudiomov/linkgate/internal/metrics"
	"github.com/estudiomov/linkgate/internal/storage"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// linkUseCaseWithMetrics decorates LinkUseCase with metrics instrumentation.
type linkUseCaseWithMetrics struct {
	next    LinkUseCase
	metrics metrics.BusinessMetrics
}

// NewLinkUseCaseWithMetrics wraps a LinkUseCase with metrics recording.
func NewLinkUseCaseWithMetrics(useCase LinkUseCase, m metrics.BusinessMetrics) LinkUseCase {
	return &linkUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Resolve records metrics for token resolution.
func (l *linkUseCaseWithMetrics) Resolve(ctx context.Context, token string) (*linksDomain.Resolution, error) {
	start := time.Now()
	resolution, err := l.next.Resolve(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	l.metrics.RecordOperation(ctx, "links", "link_resolve", status)
	l.metrics.RecordDuration(ctx, "links", "link_resolve", time.Since(start), status)

	return resolution, err
}

// Download records metrics for gated file delivery.
func (l *linkUseCaseWithMetrics) Download(
	ctx context.Context,
	token, fileID string,
) (*storage.Object, *trabalhosDomain.Arquivo, error) {
	start := time.Now()
	object, arquivo, err := l.next.Download(ctx, token, fileID)

	status := "success"
	if err != nil {
		status = "error"
	}

	l.metrics.RecordOperation(ctx, "links", "file_download", status)
	l.metrics.RecordDuration(ctx, "links", "file_download", time.Since(start), status)

	return object, arquivo, err
}

// Regenerate records metrics for link regeneration.
func (l *linkUseCaseWithMetrics) Regenerate(
	ctx context.Context,
	alvoID uuid.UUID,
	tipo linksDomain.LinkType,
	briefingURL string,
	confirm bool,
) (*linksDomain.IssuedLink, error) {
	start := time.Now()
	issued, err := l.next.Regenerate(ctx, alvoID, tipo, briefingURL, confirm)

	status := "success"
	if err != nil {
		status = "error"
	}

	l.metrics.RecordOperation(ctx, "links", "link_regenerate", status)
	l.metrics.RecordDuration(ctx, "links", "link_regenerate", time.Since(start), status)

	return issued, err
}

// CurrentLink records metrics for current link lookups.
func (l *linkUseCaseWithMetrics) CurrentLink(
	ctx context.Context,
	alvoID uuid.UUID,
	tipo linksDomain.LinkType,
) (*linksDomain.Link, error) {
	start := time.Now()
	link, err := l.next.CurrentLink(ctx, alvoID, tipo)

	status := "success"
	if err != nil {
		status = "error"
	}

	l.metrics.RecordOperation(ctx, "links", "link_current", status)
	l.metrics.RecordDuration(ctx, "links", "link_current", time.Since(start), status)

	return link, err
}

// CleanupExpired records metrics for expired link cleanup.
func (l *linkUseCaseWithMetrics) CleanupExpired(
	ctx context.Context,
	olderThan time.Duration,
	dryRun bool,
) (int64, error) {
	start := time.Now()
	count, err := l.next.CleanupExpired(ctx, olderThan, dryRun)

	status := "success"
	if err != nil {
		status = "error"
	}

	l.metrics.RecordOperation(ctx, "links", "link_cleanup", status)
	l.metrics.RecordDuration(ctx, "links", "link_cleanup", time.Since(start), status)

	return count, err
}
