package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/estudiomov/linkgate/internal/database"
	apperrors "github.com/estudiomov/linkgate/internal/errors"
	linksDomain "github.com/estudiomov/linkgate/internal/links/domain"
)

// MySQLLinkRepository implements Link persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLLinkRepository struct {
	db *sql.DB
}

// NewMySQLLinkRepository creates a new MySQL Link repository.
func NewMySQLLinkRepository(db *sql.DB) *MySQLLinkRepository {
	return &MySQLLinkRepository{db: db}
}

// Create inserts a new Link using BINARY(16) for the target id.
func (m *MySQLLinkRepository) Create(ctx context.Context, link *linksDomain.Link) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO unique_links (token, tipo, alvo_id, url, criado_em, expira_em)
			  VALUES (?, ?, ?, ?, ?, ?)`

	alvoID, err := link.AlvoID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal alvo id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		link.Token,
		string(link.Tipo),
		alvoID,
		nullString(link.URL),
		link.CriadoEm,
		link.ExpiraEm,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create link")
	}
	return nil
}

// GetByToken retrieves a Link by its token. Returns ErrLinkNotFound if no
// row matches; expiration is the caller's concern.
func (m *MySQLLinkRepository) GetByToken(ctx context.Context, token string) (*linksDomain.Link, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT token, tipo, alvo_id, url, criado_em, expira_em
			  FROM unique_links WHERE token = ?`

	return scanMySQLLink(querier.QueryRowContext(ctx, query, token))
}

// GetCurrentByTarget returns the newest unexpired link for (alvo_id, tipo),
// or ErrLinkNotFound.
func (m *MySQLLinkRepository) GetCurrentByTarget(
	ctx context.Context,
	alvoID uuid.UUID,
	tipo linksDomain.LinkType,
	now time.Time,
) (*linksDomain.Link, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT token, tipo, alvo_id, url, criado_em, expira_em
			  FROM unique_links
			  WHERE alvo_id = ? AND tipo = ? AND (expira_em IS NULL OR expira_em > ?)
			  ORDER BY criado_em DESC
			  LIMIT 1`

	binID, err := alvoID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal alvo id")
	}

	return scanMySQLLink(querier.QueryRowContext(ctx, query, binID, string(tipo), now))
}

// DeleteByTarget removes every link for (alvo_id, tipo), valid or not.
func (m *MySQLLinkRepository) DeleteByTarget(
	ctx context.Context,
	alvoID uuid.UUID,
	tipo linksDomain.LinkType,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM unique_links WHERE alvo_id = ? AND tipo = ?`

	binID, err := alvoID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal alvo id")
	}

	if _, err := querier.ExecContext(ctx, query, binID, string(tipo)); err != nil {
		return apperrors.Wrap(err, "failed to delete links for target")
	}
	return nil
}

// DeleteExpired removes links whose expira_em is before the cutoff.
func (m *MySQLLinkRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM unique_links WHERE expira_em IS NOT NULL AND expira_em < ?`

	result, err := querier.ExecContext(ctx, query, before)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired links")
	}
	return result.RowsAffected()
}

// CountExpired counts links whose expira_em is before the cutoff.
func (m *MySQLLinkRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM unique_links WHERE expira_em IS NOT NULL AND expira_em < ?`

	var count int64
	if err := querier.QueryRowContext(ctx, query, before).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count expired links")
	}
	return count, nil
}

// scanMySQLLink maps a unique_links row, unmarshaling the BINARY(16) target id.
func scanMySQLLink(row *sql.Row) (*linksDomain.Link, error) {
	var (
		link     linksDomain.Link
		tipo     string
		rawAlvo  []byte
		url      sql.NullString
		expiraEm sql.NullTime
	)

	err := row.Scan(&link.Token, &tipo, &rawAlvo, &url, &link.CriadoEm, &expiraEm)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, linksDomain.ErrLinkNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get link")
	}

	if link.AlvoID, err = uuid.FromBytes(rawAlvo); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal alvo id")
	}

	link.Tipo = linksDomain.LinkType(tipo)
	link.URL = url.String
	if expiraEm.Valid {
		link.ExpiraEm = &expiraEm.Time
	}
	return &link, nil
}
