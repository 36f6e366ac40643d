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

// MySQLTrabalhoRepository implements trabalho reads and file-list updates for
// MySQL. Uses BINARY(16) for UUIDs with transaction support via
// database.GetTx().
type MySQLTrabalhoRepository struct {
	db *sql.DB
}

// NewMySQLTrabalhoRepository creates a new MySQL trabalho repository.
func NewMySQLTrabalhoRepository(db *sql.DB) *MySQLTrabalhoRepository {
	return &MySQLTrabalhoRepository{db: db}
}

// GetProjection loads the public-safe view of a trabalho, joining the client
// name. Returns ErrTrabalhoNotFound if the row doesn't exist.
func (m *MySQLTrabalhoRepository) GetProjection(
	ctx context.Context,
	id uuid.UUID,
) (*trabalhosDomain.Projection, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT t.id, t.titulo, t.descricao, t.data_conclusao, t.arquivos_finais, c.nome_ou_razao
			  FROM trabalhos t
			  LEFT JOIN clientes c ON c.id = t.cliente_id
			  WHERE t.id = ?`

	binID, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal trabalho id")
	}

	var (
		projection    trabalhosDomain.Projection
		rawID         []byte
		descricao     sql.NullString
		dataConclusao sql.NullTime
		arquivosRaw   []byte
		clienteNome   sql.NullString
	)

	err = querier.QueryRowContext(ctx, query, binID).Scan(
		&rawID,
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

	if projection.ID, err = uuid.FromBytes(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal trabalho id")
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
func (m *MySQLTrabalhoRepository) GetArquivos(
	ctx context.Context,
	id uuid.UUID,
) ([]trabalhosDomain.Arquivo, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT arquivos_finais FROM trabalhos WHERE id = ?`

	binID, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal trabalho id")
	}

	var raw []byte
	if err := querier.QueryRowContext(ctx, query, binID).Scan(&raw); err != nil {
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
func (m *MySQLTrabalhoRepository) SetArquivos(
	ctx context.Context,
	id uuid.UUID,
	arquivos []trabalhosDomain.Arquivo,
) error {
	querier := database.GetTx(ctx, m.db)

	binID, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal trabalho id")
	}

	raw, err := json.Marshal(arquivos)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode arquivos_finais")
	}

	query := `UPDATE trabalhos SET arquivos_finais = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, raw, binID)
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
