// Package http provides HTTP handlers for contact submissions.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estudiomov/linkgate/internal/contatos/http/dto"
	contatosUseCase "github.com/estudiomov/linkgate/internal/contatos/usecase"
	"github.com/estudiomov/linkgate/internal/httputil"
	customValidation "github.com/estudiomov/linkgate/internal/validation"
)

// ContatoHandler handles HTTP requests for the public contact form.
type ContatoHandler struct {
	contatoUseCase contatosUseCase.ContatoUseCase
	logger         *slog.Logger
}

// NewContatoHandler creates a new contact handler.
func NewContatoHandler(contatoUseCase contatosUseCase.ContatoUseCase, logger *slog.Logger) *ContatoHandler {
	return &ContatoHandler{contatoUseCase: contatoUseCase, logger: logger}
}

// SubmitHandler records an inbound contact request.
// POST /v1/contato - Public, rate limited.
// Returns 201 with the stored submission id.
func (h *ContatoHandler) SubmitHandler(c *gin.Context) {
	var req dto.ContatoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	contato, err := h.contatoUseCase.Submit(
		c.Request.Context(),
		req.Nome,
		req.Email,
		req.Telefone,
		req.Documento,
		req.CEP,
		req.Mensagem,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapContatoToResponse(contato))
}
