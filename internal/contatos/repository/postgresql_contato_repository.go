// Package repository implements contact submission persistence for
// PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"

	"github.com/estudiomov/linkgate/internal/contatos/domain"
	"github.com/estudiomov/linkgate/internal/database"
	apperrors "github.com/estudiomov/linkgate/internal/errors"
)

// PostgreSQLContatoRepository implements contact persistence for PostgreSQL.
type PostgreSQLContatoRepository struct {
	db *sql.DB
}

// NewPostgreSQLContatoRepository creates a new PostgreSQL contact repository.
func NewPostgreSQLContatoRepository(db *sql.DB) *PostgreSQLContatoRepository {
	return &PostgreSQLContatoRepository{db: db}
}

// Create inserts a new contact submission.
func (p *PostgreSQLContatoRepository) Create(ctx context.Context, contato *domain.Contato) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO contatos (id, nome, email, telefone, documento, cep, mensagem, criado_em)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		contato.ID,
		contato.Nome,
		contato.Email,
		nullString(contato.Telefone),
		nullString(contato.Documento),
		nullString(contato.CEP),
		contato.Mensagem,
		contato.CriadoEm,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create contato")
	}
	return nil
}

// nullString maps an empty string to NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
