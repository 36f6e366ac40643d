package repository

import (
	"context"
	"database/sql"

	"github.com/estudiomov/linkgate/internal/contatos/domain"
	"github.com/estudiomov/linkgate/internal/database"
	apperrors "github.com/estudiomov/linkgate/internal/errors"
)

// MySQLContatoRepository implements contact persistence for MySQL. Uses
// BINARY(16) for the row id.
type MySQLContatoRepository struct {
	db *sql.DB
}

// NewMySQLContatoRepository creates a new MySQL contact repository.
func NewMySQLContatoRepository(db *sql.DB) *MySQLContatoRepository {
	return &MySQLContatoRepository{db: db}
}

// Create inserts a new contact submission.
func (m *MySQLContatoRepository) Create(ctx context.Context, contato *domain.Contato) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO contatos (id, nome, email, telefone, documento, cep, mensagem, criado_em)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := contato.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal contato id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
