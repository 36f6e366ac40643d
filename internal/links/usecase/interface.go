// Package usecase defines the interfaces and implementations for tokenized
// link business logic. Use cases orchestrate operations between link and
// trabalho repositories and the blob store to implement resolution, gated
// file delivery, and atomic link regeneration.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	linksDomain "github.com/estudiomov/linkgate/internal/links/domain"
	"github.com/estudiomov/linkgate/internal/storage"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// LinkRepository defines the interface for Link persistence operations.
type LinkRepository interface {
	Create(ctx context.Context, link *linksDomain.Link) error
	GetByToken(ctx context.Context, token string) (*linksDomain.Link, error)
	GetCurrentByTarget(ctx context.Context, alvoID uuid.UUID, tipo linksDomain.LinkType, now time.Time) (*linksDomain.Link, error)
	DeleteByTarget(ctx context.Context, alvoID uuid.UUID, tipo linksDomain.LinkType) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
	CountExpired(ctx context.Context, before time.Time) (int64, error)
}

// TrabalhoRepository defines the interface for trabalho read operations used
// during resolution and file delivery.
type TrabalhoRepository interface {
	GetProjection(ctx context.Context, id uuid.UUID) (*trabalhosDomain.Projection, error)
	GetArquivos(ctx context.Context, id uuid.UUID) ([]trabalhosDomain.Arquivo, error)
}

// LinkUseCase defines the interface for tokenized link business logic.
type LinkUseCase interface {
	// Resolve validates a token and returns either a redirect instruction
	// (briefing) or the public-safe projection of a trabalho.
	Resolve(ctx context.Context, token string) (*linksDomain.Resolution, error)
	// Download re-validates a token and streams one file of the linked
	// trabalho. The caller owns the returned object's reader.
	Download(ctx context.Context, token, fileID string) (*storage.Object, *trabalhosDomain.Arquivo, error)
	// Regenerate atomically replaces every link for the target with a fresh
	// one. With confirm false it fails with ErrActiveLinkExists while a
	// valid link is still live.
	Regenerate(ctx context.Context, alvoID uuid.UUID, tipo linksDomain.LinkType, briefingURL string, confirm bool) (*linksDomain.IssuedLink, error)
	// CurrentLink returns the newest unexpired link for the target.
	CurrentLink(ctx context.Context, alvoID uuid.UUID, tipo linksDomain.LinkType) (*linksDomain.Link, error)
	// CleanupExpired removes links expired for longer than olderThan. With
	// dryRun it only counts what would be removed.
	CleanupExpired(ctx context.Context, olderThan time.Duration, dryRun bool) (int64, error)
}
