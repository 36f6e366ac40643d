package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estudiomov/linkgate/internal/contatos/domain"
)

func TestMySQLContatoRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewMySQLContatoRepository(db)
	contato := &domain.Contato{
		ID:       uuid.Must(uuid.NewV7()),
		Nome:     "Maria Silva",
		Email:    "maria@example.com",
		CEP:      "01310-100",
		Mensagem: "Quero um orçamento.",
		CriadoEm: time.Now().UTC(),
	}

	idBytes, err := contato.ID.MarshalBinary()
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO contatos`).
		WithArgs(
			idBytes,
			contato.Nome,
			contato.Email,
			nullString(""),
			nullString(""),
			nullString(contato.CEP),
			contato.Mensagem,
			contato.CriadoEm,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), contato))
	assert.NoError(t, mock.ExpectationsWereMet())
}
