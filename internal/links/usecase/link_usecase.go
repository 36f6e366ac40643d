package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/estudiomov/linkgate/internal/database"
	apperrors "github.com/estudiomov/linkgate/internal/errors"
	linksDomain "github.com/estudiomov/linkgate/internal/links/domain"
	"github.com/estudiomov/linkgate/internal/storage"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// linkUseCase implements the LinkUseCase interface.
type linkUseCase struct {
	txManager     database.TxManager
	linkRepo      LinkRepository
	trabalhoRepo  TrabalhoRepository
	blobStore     storage.BlobStore
	defaultBucket string
	validity      time.Duration
	baseURL       string
	pathPrefix    string
}

// NewLinkUseCase creates a new link use case. baseURL and pathPrefix compose
// the shareable URL handed back by Regenerate; validity is the fixed window
// applied to every issued link.
func NewLinkUseCase(
	txManager database.TxManager,
	linkRepo LinkRepository,
	trabalhoRepo TrabalhoRepository,
	blobStore storage.BlobStore,
	defaultBucket string,
	validity time.Duration,
	baseURL string,
	pathPrefix string,
) LinkUseCase {
	return &linkUseCase{
		txManager:     txManager,
		linkRepo:      linkRepo,
		trabalhoRepo:  trabalhoRepo,
		blobStore:     blobStore,
		defaultBucket: defaultBucket,
		validity:      validity,
		baseURL:       baseURL,
		pathPrefix:    pathPrefix,
	}
}

// Resolve validates a token and materializes its target. Expiration is
// checked before target lookup, so an expired link reports ErrLinkExpired
// even when its trabalho has since been removed.
func (l *linkUseCase) Resolve(ctx context.Context, token string) (*linksDomain.Resolution, error) {
	link, err := l.linkRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if link.Expired(time.Now().UTC()) {
		return nil, linksDomain.ErrLinkExpired
	}

	switch link.Tipo {
	case linksDomain.LinkTypeBriefing:
		return &linksDomain.Resolution{
			Tipo:        linksDomain.LinkTypeBriefing,
			RedirectURL: link.URL,
		}, nil
	case linksDomain.LinkTypeTrabalho:
		projection, err := l.trabalhoRepo.GetProjection(ctx, link.AlvoID)
		if err != nil {
			return nil, err
		}
		return &linksDomain.Resolution{
			Tipo:     linksDomain.LinkTypeTrabalho,
			Trabalho: projection,
		}, nil
	default:
		return nil, linksDomain.ErrInvalidLinkType
	}
}

// Download re-runs full token validation and fetches one file from blob
// storage. Possession of a fileID never bypasses the link checks; a briefing
// token carries no files and reports the trabalho as missing.
func (l *linkUseCase) Download(
	ctx context.Context,
	token, fileID string,
) (*storage.Object, *trabalhosDomain.Arquivo, error) {
	link, err := l.linkRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	if link.Expired(time.Now().UTC()) {
		return nil, nil, linksDomain.ErrLinkExpired
	}

	if link.Tipo != linksDomain.LinkTypeTrabalho {
		return nil, nil, trabalhosDomain.ErrTrabalhoNotFound
	}

	arquivos, err := l.trabalhoRepo.GetArquivos(ctx, link.AlvoID)
	if err != nil {
		return nil, nil, err
	}

	var arquivo *trabalhosDomain.Arquivo
	for i := range arquivos {
		if arquivos[i].ID == fileID {
			arquivo = &arquivos[i]
			break
		}
	}
	if arquivo == nil {
		return nil, nil, trabalhosDomain.ErrArquivoNotFound
	}

	bucket, path, err := storage.ParseLocator(arquivo.URL, l.defaultBucket)
	if err != nil {
		return nil, nil, apperrors.Wrap(linksDomain.ErrDownloadFailed, err.Error())
	}

	object, err := l.blobStore.Download(ctx, bucket, path)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, trabalhosDomain.ErrArquivoNotFound
		}
		return nil, nil, apperrors.Wrap(linksDomain.ErrDownloadFailed, err.Error())
	}

	// The stored descriptor wins over whatever the blob driver guessed.
	if arquivo.Tipo != "" {
		object.ContentType = arquivo.Tipo
	} else if object.ContentType == "" {
		object.ContentType = "application/octet-stream"
	}

	return object, arquivo, nil
}

// Regenerate replaces every link for (alvoID, tipo) with a fresh token
// inside a single transaction, so concurrent resolutions observe either the
// old link or the new one, never neither.
func (l *linkUseCase) Regenerate(
	ctx context.Context,
	alvoID uuid.UUID,
	tipo linksDomain.LinkType,
	briefingURL string,
	confirm bool,
) (*linksDomain.IssuedLink, error) {
	if !tipo.Valid() {
		return nil, linksDomain.ErrInvalidLinkType
	}

	switch tipo {
	case linksDomain.LinkTypeTrabalho:
		if _, err := l.trabalhoRepo.GetProjection(ctx, alvoID); err != nil {
			return nil, err
		}
	case linksDomain.LinkTypeBriefing:
		if briefingURL == "" {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "briefing links require a destination url")
		}
	}

	now := time.Now().UTC()

	if !confirm {
		_, err := l.linkRepo.GetCurrentByTarget(ctx, alvoID, tipo, now)
		if err == nil {
			return nil, linksDomain.ErrActiveLinkExists
		}
		if !errors.Is(err, linksDomain.ErrLinkNotFound) {
			return nil, err
		}
	}

	expiraEm := now.Add(l.validity)
	link := &linksDomain.Link{
		Token:    uuid.NewString(),
		Tipo:     tipo,
		AlvoID:   alvoID,
		URL:      briefingURL,
		CriadoEm: now,
		ExpiraEm: &expiraEm,
	}

	err := l.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := l.linkRepo.DeleteByTarget(txCtx, alvoID, tipo); err != nil {
			return err
		}
		return l.linkRepo.Create(txCtx, link)
	})
	if err != nil {
		return nil, err
	}

	return &linksDomain.IssuedLink{
		Token:    link.Token,
		URL:      l.baseURL + l.pathPrefix + link.Token,
		CriadoEm: link.CriadoEm,
		ExpiraEm: expiraEm,
	}, nil
}

// CurrentLink returns the newest unexpired link for the target.
func (l *linkUseCase) CurrentLink(
	ctx context.Context,
	alvoID uuid.UUID,
	tipo linksDomain.LinkType,
) (*linksDomain.Link, error) {
	return l.linkRepo.GetCurrentByTarget(ctx, alvoID, tipo, time.Now().UTC())
}

// CleanupExpired removes links whose expiration is at least olderThan in the
// past. dryRun only reports the count.
func (l *linkUseCase) CleanupExpired(
	ctx context.Context,
	olderThan time.Duration,
	dryRun bool,
) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	if dryRun {
		return l.linkRepo.CountExpired(ctx, cutoff)
	}
	return l.linkRepo.DeleteExpired(ctx, cutoff)
}
