// Package httputil provides HTTP utility functions for request and response
// handling. The public surface speaks the viewer's contract (Portuguese
// single-field error payloads); the admin surface uses structured JSON
// errors.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/estudiomov/linkgate/internal/errors"
	linksDomain "github.com/estudiomov/linkgate/internal/links/domain"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// PublicError is the single-field payload the public endpoints return on
// failure. The viewer and the mobile app both key on the exact message.
type PublicError struct {
	Error string `json:"error"`
}

// ErrorResponse represents a structured admin API error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// RespondResolveError maps resolution failures to the public contract:
// 404 for missing links and targets, 410 for expiration, 400 for corrupt
// stored types, 500 otherwise.
func RespondResolveError(c *gin.Context, err error, logger *slog.Logger) {
	var statusCode int
	var message string

	switch {
	case apperrors.Is(err, linksDomain.ErrLinkNotFound):
		statusCode = http.StatusNotFound
		message = "Link não encontrado"
	case apperrors.Is(err, trabalhosDomain.ErrTrabalhoNotFound):
		statusCode = http.StatusNotFound
		message = "Trabalho não encontrado"
	case apperrors.Is(err, linksDomain.ErrLinkExpired):
		statusCode = http.StatusGone
		message = "Este link expirou"
	case apperrors.Is(err, linksDomain.ErrInvalidLinkType):
		statusCode = http.StatusBadRequest
		message = "Tipo de link inválido"
	default:
		statusCode = http.StatusInternalServerError
		message = "Erro interno do servidor"
	}

	logPublicError(c, logger, statusCode, err)
	c.JSON(statusCode, PublicError{Error: message})
}

// RespondDownloadError maps file delivery failures to the public contract.
// Expiration is 403 here, not 410: the gate refuses rather than reporting a
// gone resource.
func RespondDownloadError(c *gin.Context, err error, logger *slog.Logger) {
	var statusCode int
	var message string

	switch {
	case apperrors.Is(err, linksDomain.ErrLinkExpired):
		statusCode = http.StatusForbidden
		message = "Link expirado"
	case apperrors.Is(err, linksDomain.ErrLinkNotFound):
		statusCode = http.StatusNotFound
		message = "Link não encontrado"
	case apperrors.Is(err, trabalhosDomain.ErrTrabalhoNotFound):
		statusCode = http.StatusNotFound
		message = "Trabalho não encontrado"
	case apperrors.Is(err, trabalhosDomain.ErrArquivoNotFound):
		statusCode = http.StatusNotFound
		message = "Arquivo não encontrado"
	case apperrors.Is(err, linksDomain.ErrDownloadFailed):
		statusCode = http.StatusInternalServerError
		message = "Erro ao baixar arquivo"
	default:
		statusCode = http.StatusInternalServerError
		message = "Erro interno"
	}

	logPublicError(c, logger, statusCode, err)
	c.JSON(statusCode, PublicError{Error: message})
}

// RespondMissingParam writes the 400 payload for an absent required query
// parameter.
func RespondMissingParam(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, PublicError{Error: message})
}

func logPublicError(c *gin.Context, logger *slog.Logger, statusCode int, err error) {
	if logger == nil {
		return
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error("request failed",
			slog.String("path", c.FullPath()),
			slog.Int("status_code", statusCode),
			slog.Any("error", err),
		)
		return
	}
	logger.Warn("request rejected",
		slog.String("path", c.FullPath()),
		slog.Int("status_code", statusCode),
		slog.Any("error", err),
	)
}

// HandleErrorGin maps domain errors to HTTP status codes for the admin API.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var errorResponse ErrorResponse

	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		errorResponse = ErrorResponse{
			Error:   "not_found",
			Message: "The requested resource was not found",
		}

	case apperrors.Is(err, apperrors.ErrConflict):
		statusCode = http.StatusConflict
		errorResponse = ErrorResponse{
			Error:   "conflict",
			Message: "A conflict occurred with existing data",
		}

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusUnprocessableEntity
		errorResponse = ErrorResponse{
			Error:   "invalid_input",
			Message: err.Error(),
		}

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		errorResponse = ErrorResponse{
			Error:   "unauthorized",
			Message: "Authentication is required",
		}

	case apperrors.Is(err, apperrors.ErrUnsupportedType):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{
			Error:   "unsupported_type",
			Message: err.Error(),
		}

	default:
		// Unknown and upstream errors stay opaque to the client.
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		}
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON
// or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	})
}

// HandleValidationErrorGin writes a 422 Unprocessable Entity response for
// validation errors.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}
