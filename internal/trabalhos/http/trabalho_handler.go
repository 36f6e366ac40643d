// Package http provides HTTP handlers for admin trabalho file management.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/estudiomov/linkgate/internal/errors"
	"github.com/estudiomov/linkgate/internal/httputil"
	"github.com/estudiomov/linkgate/internal/trabalhos/http/dto"
	trabalhosUseCase "github.com/estudiomov/linkgate/internal/trabalhos/usecase"
)

// TrabalhoHandler handles HTTP requests for trabalho file management.
type TrabalhoHandler struct {
	trabalhoUseCase trabalhosUseCase.TrabalhoUseCase
	logger          *slog.Logger
}

// NewTrabalhoHandler creates a new trabalho handler.
func NewTrabalhoHandler(trabalhoUseCase trabalhosUseCase.TrabalhoUseCase, logger *slog.Logger) *TrabalhoHandler {
	return &TrabalhoHandler{
		trabalhoUseCase: trabalhoUseCase,
		logger:          logger,
	}
}

// AddArquivoHandler attaches a deliverable to a trabalho.
// POST /v1/trabalhos/:id/arquivos (multipart, field "arquivo") - Requires the
// admin API key. Returns 201 with the new file descriptor.
func (h *TrabalhoHandler) AddArquivoHandler(c *gin.Context) {
	trabalhoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid trabalho id: %w", err), h.logger)
		return
	}

	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("multipart field %q is required: %w", "arquivo", err), h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.Wrap(err, "failed to open uploaded file"), h.logger)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			h.logger.Warn("failed to close uploaded file", slog.Any("error", err))
		}
	}()

	arquivo, err := h.trabalhoUseCase.AddArquivo(
		c.Request.Context(),
		trabalhoID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapArquivoToResponse(arquivo))
}

// SignedURLHandler mints a short-lived signed URL for one attached file.
// GET /v1/trabalhos/:id/arquivos/:fileId/url - Requires the admin API key.
func (h *TrabalhoHandler) SignedURLHandler(c *gin.Context) {
	trabalhoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid trabalho id: %w", err), h.logger)
		return
	}

	signedURL, err := h.trabalhoUseCase.SignedArquivoURL(c.Request.Context(), trabalhoID, c.Param("fileId"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.SignedURLResponse{URL: signedURL})
}
