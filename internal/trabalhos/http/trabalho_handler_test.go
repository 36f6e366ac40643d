package http

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
	"github.com/estudiomov/linkgate/internal/trabalhos/usecase/mocks"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockTrabalhoUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockTrabalhoUseCase{}
	t.Cleanup(func() { mockUseCase.AssertExpectations(t) })

	handler := NewTrabalhoHandler(mockUseCase, slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := gin.New()
	router.POST("/v1/trabalhos/:id/arquivos", handler.AddArquivoHandler)
	router.GET("/v1/trabalhos/:id/arquivos/:fileId/url", handler.SignedURLHandler)
	return router, mockUseCase
}

func multipartBody(t *testing.T, field, filename, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestTrabalhoHandler_AddArquivoHandler(t *testing.T) {
	trabalhoID := uuid.Must(uuid.NewV7())

	t.Run("AttachesFile", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("AddArquivo", mock.Anything, trabalhoID, "final.mp4", "video/mp4", mock.Anything).
			Return(&trabalhosDomain.Arquivo{
				ID:   uuid.NewString(),
				Nome: "final.mp4",
				URL:  "briefings/finais/" + trabalhoID.String() + "/final.mp4",
				Tipo: "video/mp4",
			}, nil)

		body, contentType := multipartBody(t, "arquivo", "final.mp4", "video/mp4", "bytes")
		req := httptest.NewRequest(http.MethodPost, "/v1/trabalhos/"+trabalhoID.String()+"/arquivos", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"nome":"final.mp4"`)
	})

	t.Run("MissingFileField", func(t *testing.T) {
		router, _ := newTestRouter(t)

		body, contentType := multipartBody(t, "other", "final.mp4", "video/mp4", "bytes")
		req := httptest.NewRequest(http.MethodPost, "/v1/trabalhos/"+trabalhoID.String()+"/arquivos", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InvalidTrabalhoID", func(t *testing.T) {
		router, _ := newTestRouter(t)

		body, contentType := multipartBody(t, "arquivo", "final.mp4", "video/mp4", "bytes")
		req := httptest.NewRequest(http.MethodPost, "/v1/trabalhos/not-a-uuid/arquivos", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("TrabalhoMissing", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("AddArquivo", mock.Anything, trabalhoID, "final.mp4", "video/mp4", mock.Anything).
			Return(nil, trabalhosDomain.ErrTrabalhoNotFound)

		body, contentType := multipartBody(t, "arquivo", "final.mp4", "video/mp4", "bytes")
		req := httptest.NewRequest(http.MethodPost, "/v1/trabalhos/"+trabalhoID.String()+"/arquivos", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTrabalhoHandler_SignedURLHandler(t *testing.T) {
	trabalhoID := uuid.Must(uuid.NewV7())

	t.Run("ReturnsSignedURL", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("SignedArquivoURL", mock.Anything, trabalhoID, "f1").
			Return("https://signed.example/f1?sig=abc", nil)

		target := "/v1/trabalhos/" + trabalhoID.String() + "/arquivos/f1/url"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"url":"https://signed.example/f1?sig=abc"}`, w.Body.String())
	})

	t.Run("FileMissing", func(t *testing.T) {
		router, mockUseCase := newTestRouter(t)

		mockUseCase.On("SignedArquivoURL", mock.Anything, trabalhoID, "missing").
			Return("", trabalhosDomain.ErrArquivoNotFound)

		target := "/v1/trabalhos/" + trabalhoID.String() + "/arquivos/missing/url"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
