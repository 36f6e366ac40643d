package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estudiomov/linkgate/internal/contatos/domain"
	"github.com/estudiomov/linkgate/internal/contatos/usecase/mocks"
)

func newTestRouter(useCase *mocks.MockContatoUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewContatoHandler(useCase, logger)

	router := gin.New()
	router.POST("/v1/contato", handler.SubmitHandler)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestContatoHandler_SubmitHandler(t *testing.T) {
	t.Run("AcceptsSubmission", func(t *testing.T) {
		useCase := &mocks.MockContatoUseCase{}
		router := newTestRouter(useCase)

		contato := &domain.Contato{
			ID:       uuid.Must(uuid.NewV7()),
			Nome:     "Maria Silva",
			Email:    "maria@example.com",
			CriadoEm: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		}
		useCase.On("Submit", mock.Anything, "Maria Silva", "maria@example.com", "(11) 98765-4321", "529.982.247-25", "01310-100", "Quero um orçamento.").
			Return(contato, nil)

		resp := postJSON(t, router, "/v1/contato", gin.H{
			"nome":      "Maria Silva",
			"email":     "maria@example.com",
			"telefone":  "(11) 98765-4321",
			"documento": "529.982.247-25",
			"cep":       "01310-100",
			"mensagem":  "Quero um orçamento.",
		})

		assert.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Body.String(), contato.ID.String())
		useCase.AssertExpectations(t)
	})

	t.Run("RejectsMissingRequiredFields", func(t *testing.T) {
		useCase := &mocks.MockContatoUseCase{}
		router := newTestRouter(useCase)

		resp := postJSON(t, router, "/v1/contato", gin.H{
			"email":    "maria@example.com",
			"mensagem": "Olá",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		useCase.AssertNotCalled(t, "Submit")
	})

	t.Run("RejectsInvalidDocument", func(t *testing.T) {
		useCase := &mocks.MockContatoUseCase{}
		router := newTestRouter(useCase)

		resp := postJSON(t, router, "/v1/contato", gin.H{
			"nome":      "Maria Silva",
			"email":     "maria@example.com",
			"documento": "111.111.111-11",
			"mensagem":  "Olá",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		useCase.AssertNotCalled(t, "Submit")
	})

	t.Run("RejectsMalformedJSON", func(t *testing.T) {
		useCase := &mocks.MockContatoUseCase{}
		router := newTestRouter(useCase)

		req := httptest.NewRequest(http.MethodPost, "/v1/contato", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("UseCaseFailure", func(t *testing.T) {
		useCase := &mocks.MockContatoUseCase{}
		router := newTestRouter(useCase)

		useCase.On("Submit", mock.Anything, "Maria", "maria@example.com", "", "", "", "Olá").
			Return(nil, assert.AnError)

		resp := postJSON(t, router, "/v1/contato", gin.H{
			"nome":     "Maria",
			"email":    "maria@example.com",
			"mensagem": "Olá",
		})

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}
