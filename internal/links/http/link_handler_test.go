package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	linksDomain "github.com/estudiomov/linkgate/internal/links/domain"
	"github.com/estudiomov/linkgate/internal/links/usecase/mocks"
	"github.com/estudiomov/linkgate/internal/storage"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

const (
	testBaseURL    = "https://estudiomov.example"
	testPathPrefix = "/link/"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockLinkUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockLinkUseCase{}
	t.Cleanup(func() { mockUseCase.AssertExpectations(t) })

	handler := NewLinkHandler(mockUseCase, testBaseURL, testPathPrefix, slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := gin.New()
	router.GET("/resolve-link", handler.ResolveHandler)
	router.GET("/download-file", handler.DownloadHandler)
	router.POST("/v1/links", handler.RegenerateHandler)
	router.GET("/v1/links/current", handler.CurrentLinkHandler)
	return router, mockUseCase
}

func TestLinkHandler_ResolveHandler(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resolve-link", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Token não fornecido"}`, w.Body.String())
	})

	t.Run("TrabalhoProjection", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)
		trabalhoID := uuid.Must(uuid.NewV7())

		mockUseCase.On("Resolve", mock.Anything, "abc").Return(&linksDomain.Resolution{
			Tipo: linksDomain.LinkTypeTrabalho,
			Trabalho: &trabalhosDomain.Projection{
				ID:             trabalhoID,
				Titulo:         "Vídeo X",
				ArquivosFinais: []trabalhosDomain.Arquivo{},
				Cliente:        &trabalhosDomain.Cliente{NomeOuRazao: "ACME"},
			},
		}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resolve-link?token=abc", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"type":"trabalho"`)
		assert.Contains(t, w.Body.String(), `"titulo":"Vídeo X"`)
		assert.Contains(t, w.Body.String(), `"clientes":{"nome_ou_razao":"ACME"}`)
	})

	t.Run("BriefingRedirect", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("Resolve", mock.Anything, "abc").Return(&linksDomain.Resolution{
			Tipo:        linksDomain.LinkTypeBriefing,
			RedirectURL: "https://forms.example/brief",
		}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resolve-link?token=abc", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"type":"redirect","url":"https://forms.example/brief"}`, w.Body.String())
	})

	t.Run("Expired", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("Resolve", mock.Anything, "old").Return(nil, linksDomain.ErrLinkExpired)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resolve-link?token=old", nil))

		assert.Equal(t, http.StatusGone, w.Code)
		assert.JSONEq(t, `{"error":"Este link expirou"}`, w.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("Resolve", mock.Anything, "missing").Return(nil, linksDomain.ErrLinkNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resolve-link?token=missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Link não encontrado"}`, w.Body.String())
	})
}

func TestLinkHandler_DownloadHandler(t *testing.T) {
	t.Run("MissingParams", func(t *testing.T) {
		router, _ := newTestRouter(t)

		for _, target := range []string{"/download-file", "/download-file?token=abc", "/download-file?fileId=f1"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Token e fileId são obrigatórios"}`, w.Body.String())
		}
	})

	t.Run("StreamsAttachment", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("Download", mock.Anything, "abc", "f1").Return(
			&storage.Object{
				Reader:      io.NopCloser(strings.NewReader("video-bytes")),
				Size:        11,
				ContentType: "video/mp4",
			},
			&trabalhosDomain.Arquivo{ID: "f1", Nome: "corte final.mp4", Tipo: "video/mp4"},
			nil,
		)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download-file?token=abc&fileId=f1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "video-bytes", w.Body.String())
		assert.Equal(t, "video/mp4", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="corte%20final.mp4"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "private, max-age=3600", w.Header().Get("Cache-Control"))
	})

	t.Run("ExpiredIsForbidden", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("Download", mock.Anything, "old", "f1").
			Return(nil, nil, linksDomain.ErrLinkExpired)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download-file?token=old&fileId=f1", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Link expirado"}`, w.Body.String())
	})

	t.Run("FileNotFound", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("Download", mock.Anything, "abc", "f999").
			Return(nil, nil, trabalhosDomain.ErrArquivoNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download-file?token=abc&fileId=f999", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Arquivo não encontrado"}`, w.Body.String())
	})

	t.Run("BlobFailure", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("Download", mock.Anything, "abc", "f1").
			Return(nil, nil, linksDomain.ErrDownloadFailed)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/download-file?token=abc&fileId=f1", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Erro ao baixar arquivo"}`, w.Body.String())
	})
}

func TestLinkHandler_RegenerateHandler(t *testing.T) {
	alvoID := uuid.Must(uuid.NewV7())

	t.Run("IssuesLink", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)
		now := time.Now().UTC()

		mockUseCase.On("Regenerate", mock.Anything, alvoID, linksDomain.LinkTypeTrabalho, "", true).
			Return(&linksDomain.IssuedLink{
				Token:    "fresh-token",
				URL:      testBaseURL + testPathPrefix + "fresh-token",
				CriadoEm: now,
				ExpiraEm: now.Add(7 * 24 * time.Hour),
			}, nil)

		body := `{"alvo_id":"` + alvoID.String() + `","tipo":"trabalho","confirm":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/links", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"fresh-token"`)
		assert.Contains(t, w.Body.String(), testBaseURL+testPathPrefix+"fresh-token")
	})

	t.Run("ConflictCarriesCurrentLink", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("Regenerate", mock.Anything, alvoID, linksDomain.LinkTypeTrabalho, "", false).
			Return(nil, linksDomain.ErrActiveLinkExists)
		mockUseCase.On("CurrentLink", mock.Anything, alvoID, linksDomain.LinkTypeTrabalho).
			Return(&linksDomain.Link{
				Token:    "live-token",
				Tipo:     linksDomain.LinkTypeTrabalho,
				AlvoID:   alvoID,
				CriadoEm: time.Now().UTC(),
			}, nil)

		body := `{"alvo_id":"` + alvoID.String() + `","tipo":"trabalho"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/links", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"live-token"`)
		assert.Contains(t, w.Body.String(), testBaseURL+testPathPrefix+"live-token")
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		router, _ := newTestRouter(t)

		body := `{"alvo_id":"not-a-uuid","tipo":"orcamento"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/links", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("BriefingWithoutURL", func(t *testing.T) {
		router, _ := newTestRouter(t)

		body := `{"alvo_id":"` + alvoID.String() + `","tipo":"briefing"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/links", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/links", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLinkHandler_CurrentLinkHandler(t *testing.T) {
	alvoID := uuid.Must(uuid.NewV7())

	t.Run("Found", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)
		expiraEm := time.Now().UTC().Add(48 * time.Hour)

		mockUseCase.On("CurrentLink", mock.Anything, alvoID, linksDomain.LinkTypeTrabalho).
			Return(&linksDomain.Link{
				Token:    "live-token",
				Tipo:     linksDomain.LinkTypeTrabalho,
				AlvoID:   alvoID,
				ExpiraEm: &expiraEm,
			}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/links/current?alvo_id="+alvoID.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"live-token"`)
	})

	t.Run("NoValidLink", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("CurrentLink", mock.Anything, alvoID, linksDomain.LinkTypeTrabalho).
			Return(nil, linksDomain.ErrLinkNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/links/current?alvo_id="+alvoID.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("InvalidTipo", func(t *testing.T) {
		router, _ := newTestRouter(t)

		target := "/v1/links/current?alvo_id=" + alvoID.String() + "&tipo=orcamento"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MissingAlvoID", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/links/current", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
