// Package repository implements trabalho persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/estudiomov/linkgate/internal/database"
	apperrors "github.com/estudiomov/linkgate/internal/errors"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// PostgreSQLTrabalhoRepository implements trabalho reads and file-list updates
// for PostgreSQL. Uses native UUID types with transaction support via
// database.GetTx().
type PostgreSQLTrabalhoRepository struct {
	db *sql.DB
}

// NewPostgreSQLTrabalhoRepository creates a new PostgreSQL trabalho repository.
func NewPostgreSQLTrabalhoRepository(db *sql.DB) *PostgreSQLTrabalhoRepository {
	return &PostgreSQLTrabalhoRepository{db: db}
}

// GetProjection loads the public-safe view of a trabalho, joining the client
// name. Internal costing columns are never selected. Returns
// ErrTrabalhoNotFound if the row doesn't exist.
func (p *PostgreSQLTrabalhoRepository) GetProjection(
	ctx context.Context,
	id uuid.UUID,
) (*trabalhosDomain.Projection, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT t.id, t.titulo, t.descricao, t.data_conclusao, t.arquivos_finais, c.nome_ou_razao
			  FROM trabalhos t
			  LEFT JOIN clientes c ON c.id = t.cliente_id
			  WHERE t.id = $1`

	var (
		projection    trabalhosDomain.Projection
		descricao     sql.NullString
		dataConclusao sql.NullTime
		arquivosRaw   []byte
		clienteNome   sql.NullString
	)

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&projection.ID,
		&projection.Titulo,
		&descricao,
		&dataConclusao,
		&arquivosRaw,
		&clienteNome,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trabalhosDomain.ErrTrabalhoNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get trabalho")
	}

	projection.Descricao = descricao.String
	if dataConclusao.Valid {
		projection.DataConclusao = &dataConclusao.Time
	}
	if clienteNome.Valid {
		projection.Cliente = &trabalhosDomain.Cliente{NomeOuRazao: clienteNome.String}
	}

	projection.ArquivosFinais = []trabalhosDomain.Arquivo{}
	if len(arquivosRaw) > 0 {
		if err := json.Unmarshal(arquivosRaw, &projection.ArquivosFinais); err != nil {
			return nil, apperrors.Wrap(err, "failed to decode arquivos_finais")
		}
	}

	return &projection, nil
}

// GetArquivos loads only the file descriptor list of a trabalho.
func (p *PostgreSQLTrabalhoRepository) GetArquivos(
	ctx context.Context,
	id uuid.UUID,
) ([]trabalhosDomain.Arquivo, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT arquivos_finais FROM trabalhos WHERE id = $1`

	var raw []byte
	if err := querier.QueryRowContext(ctx, query, id).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trabalhosDomain.ErrTrabalhoNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get arquivos")
	}

	arquivos := []trabalhosDomain.Arquivo{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &arquivos); err != nil {
			return nil, apperrors.Wrap(err, "failed to decode arquivos_finais")
		}
	}
	return arquivos, nil
}

// SetArquivos replaces the file descriptor list of a trabalho. Returns
// ErrTrabalhoNotFound when no row matches.
func (p *PostgreSQLTrabalhoRepository) SetArquivos(
	ctx context.Context,
	id uuid.UUID,
	arquivos []trabalhosDomain.Arquivo,
) error {
	querier := database.GetTx(ctx, p.db)

	raw, err := json.Marshal(arquivos)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode arquivos_finais")
	}

	query := `UPDATE trabalhos SET arquivos_finais = $1 WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, raw, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update arquivos")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read update result")
	}
	if affected == 0 {
		return trabalhosDomain.ErrTrabalhoNotFound
	}
	return nil
}
