// Package repository implements unique_links persistence for PostgreSQL and MySQL.
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

// PostgreSQLLinkRepository implements Link persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLLinkRepository struct {
	db *sql.DB
}

// NewPostgreSQLLinkRepository creates a new PostgreSQL Link repository.
func NewPostgreSQLLinkRepository(db *sql.DB) *PostgreSQLLinkRepository {
	return &PostgreSQLLinkRepository{db: db}
}

// Create inserts a new Link. The token value is the primary key; collisions
// surface as a database error.
func (p *PostgreSQLLinkRepository) Create(ctx context.Context, link *linksDomain.Link) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO unique_links (token, tipo, alvo_id, url, criado_em, expira_em)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		link.Token,
		string(link.Tipo),
		link.AlvoID,
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
func (p *PostgreSQLLinkRepository) GetByToken(ctx context.Context, token string) (*linksDomain.Link, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT token, tipo, alvo_id, url, criado_em, expira_em
			  FROM unique_links WHERE token = $1`

	return scanLink(querier.QueryRowContext(ctx, query, token))
}

// GetCurrentByTarget returns the newest unexpired link for (alvo_id, tipo),
// or ErrLinkNotFound. This is the pure query backing the admin "current
// link" view; no server-side state is held.
func (p *PostgreSQLLinkRepository) GetCurrentByTarget(
	ctx context.Context,
	alvoID uuid.UUID,
	tipo linksDomain.LinkType,
	now time.Time,
) (*linksDomain.Link, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT token, tipo, alvo_id, url, criado_em, expira_em
			  FROM unique_links
			  WHERE alvo_id = $1 AND tipo = $2 AND (expira_em IS NULL OR expira_em > $3)
			  ORDER BY criado_em DESC
			  LIMIT 1`

	return scanLink(querier.QueryRowContext(ctx, query, alvoID, string(tipo), now))
}

// DeleteByTarget removes every link for (alvo_id, tipo), valid or not. The
// issuer runs this before inserting a replacement so at most one active link
// exists per target.
func (p *PostgreSQLLinkRepository) DeleteByTarget(
	ctx context.Context,
	alvoID uuid.UUID,
	tipo linksDomain.LinkType,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM unique_links WHERE alvo_id = $1 AND tipo = $2`

	if _, err := querier.ExecContext(ctx, query, alvoID, string(tipo)); err != nil {
		return apperrors.Wrap(err, "failed to delete links for target")
	}
	return nil
}

// DeleteExpired removes links whose expira_em is before the cutoff and
// returns how many rows went away. Readers already treat them as invalid;
// this is operator hygiene, not enforcement.
func (p *PostgreSQLLinkRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM unique_links WHERE expira_em IS NOT NULL AND expira_em < $1`

	result, err := querier.ExecContext(ctx, query, before)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired links")
	}
	return result.RowsAffected()
}

// CountExpired counts links whose expira_em is before the cutoff (dry-run
// support for the cleanup command).
func (p *PostgreSQLLinkRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*) FROM unique_links WHERE expira_em IS NOT NULL AND expira_em < $1`

	var count int64
	if err := querier.QueryRowContext(ctx, query, before).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count expired links")
	}
	return count, nil
}

// scanLink maps a unique_links row into the domain entity.
func scanLink(row *sql.Row) (*linksDomain.Link, error) {
	var (
		link     linksDomain.Link
		tipo     string
		url      sql.NullString
		expiraEm sql.NullTime
	)

	err := row.Scan(&link.Token, &tipo, &link.AlvoID, &url, &link.CriadoEm, &expiraEm)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, linksDomain.ErrLinkNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get link")
	}

	link.Tipo = linksDomain.LinkType(tipo)
	link.URL = url.String
	if expiraEm.Valid {
		link.ExpiraEm = &expiraEm.Time
	}
	return &link, nil
}

// nullString maps "" to NULL for optional text columns.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
