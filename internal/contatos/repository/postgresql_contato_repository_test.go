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

func TestPostgreSQLContatoRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPostgreSQLContatoRepository(db)
	contato := &domain.Contato{
		ID:        uuid.Must(uuid.NewV7()),
		Nome:      "Maria Silva",
		Email:     "maria@example.com",
		Telefone:  "(11) 98765-4321",
		Documento: "529.982.247-25",
		CEP:       "01310-100",
		Mensagem:  "Quero um orçamento para um clipe.",
		CriadoEm:  time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO contatos`).
		WithArgs(
			contato.ID,
			contato.Nome,
			contato.Email,
			nullString(contato.Telefone),
			nullString(contato.Documento),
			nullString(contato.CEP),
			contato.Mensagem,
			contato.CriadoEm,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), contato))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLContatoRepository_Create_OptionalFieldsAsNull(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPostgreSQLContatoRepository(db)
	contato := &domain.Contato{
		ID:       uuid.Must(uuid.NewV7()),
		Nome:     "João",
		Email:    "joao@example.com",
		Mensagem: "Olá",
		CriadoEm: time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO contatos`).
		WithArgs(
			contato.ID,
			contato.Nome,
			contato.Email,
			nullString(""),
			nullString(""),
			nullString(""),
			contato.Mensagem,
			contato.CriadoEm,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), contato))
	assert.NoError(t, mock.ExpectationsWereMet())
}
