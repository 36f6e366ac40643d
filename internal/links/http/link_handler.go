// Package http provides HTTP handlers for the public link surface and the
// admin link issuer.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/estudiomov/linkgate/internal/errors"
	"github.com/estudiomov/linkgate/internal/httputil"
	linksDomain "github.com/estudiomov/linkgate/internal/links/domain"
	"github.com/estudiomov/linkgate/internal/links/http/dto"
	linksUseCase "github.com/estudiomov/linkgate/internal/links/usecase"
	customValidation "github.com/estudiomov/linkgate/internal/validation"
)

// LinkHandler handles HTTP requests for token resolution, gated file
// delivery, and admin link management.
type LinkHandler struct {
	linkUseCase linksUseCase.LinkUseCase
	baseURL     string
	pathPrefix  string
	logger      *slog.Logger
}

// NewLinkHandler creates a new link handler. baseURL and pathPrefix compose
// the shareable URL shown in admin responses.
func NewLinkHandler(
	linkUseCase linksUseCase.LinkUseCase,
	baseURL string,
	pathPrefix string,
	logger *slog.Logger,
) *LinkHandler {
	return &LinkHandler{
		linkUseCase: linkUseCase,
		baseURL:     baseURL,
		pathPrefix:  pathPrefix,
		logger:      logger,
	}
}

// ResolveHandler resolves a bearer token to its target.
// GET /resolve-link?token=<string> - Public, rate limited.
// Returns 200 with a redirect instruction or a trabalho projection.
func (h *LinkHandler) ResolveHandler(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		httputil.RespondMissingParam(c, "Token não fornecido")
		return
	}

	resolution, err := h.linkUseCase.Resolve(c.Request.Context(), token)
	if err != nil {
		httputil.RespondResolveError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapResolutionToResponse(resolution))
}

// DownloadHandler streams one file of the linked trabalho.
// GET /download-file?token=<string>&fileId=<string> - Public, rate limited.
// Returns 200 with the raw bytes as an attachment.
func (h *LinkHandler) DownloadHandler(c *gin.Context) {
	token := c.Query("token")
	fileID := c.Query("fileId")
	if token == "" || fileID == "" {
		httputil.RespondMissingParam(c, "Token e fileId são obrigatórios")
		return
	}

	object, arquivo, err := h.linkUseCase.Download(c.Request.Context(), token, fileID)
	if err != nil {
		httputil.RespondDownloadError(c, err, h.logger)
		return
	}
	defer func() {
		if err := object.Reader.Close(); err != nil {
			h.logger.Warn("failed to close blob reader", slog.Any("error", err))
		}
	}()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", url.PathEscape(arquivo.Nome)),
		"Cache-Control":       "private, max-age=3600",
	}

	c.DataFromReader(http.StatusOK, object.Size, object.ContentType, object.Reader, extraHeaders)
}

// RegenerateHandler replaces the target's links with a fresh one.
// POST /v1/links - Requires the admin API key.
// Returns 201 with the issued link, or 409 carrying the current link when a
// valid one exists and the request did not confirm the replacement.
func (h *LinkHandler) RegenerateHandler(c *gin.Context) {
	var req dto.RegenerateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	alvoID, err := uuid.Parse(req.AlvoID)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	tipo := linksDomain.LinkType(req.Tipo)

	issued, err := h.linkUseCase.Regenerate(c.Request.Context(), alvoID, tipo, req.URL, req.Confirm)
	if err != nil {
		if apperrors.Is(err, linksDomain.ErrActiveLinkExists) {
			h.respondConflict(c, alvoID, tipo)
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapIssuedLinkToResponse(issued))
}

// CurrentLinkHandler returns the newest unexpired link for a target.
// GET /v1/links/current?alvo_id=<uuid>&tipo=<string> - Requires the admin API key.
func (h *LinkHandler) CurrentLinkHandler(c *gin.Context) {
	alvoID, err := uuid.Parse(c.Query("alvo_id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid alvo_id: %w", err), h.logger)
		return
	}

	tipo := linksDomain.LinkType(c.DefaultQuery("tipo", string(linksDomain.LinkTypeTrabalho)))
	if !tipo.Valid() {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid tipo %q", tipo), h.logger)
		return
	}

	link, err := h.linkUseCase.CurrentLink(c.Request.Context(), alvoID, tipo)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLinkToResponse(link, h.shareURL(link.Token)))
}

// respondConflict writes the 409 payload carrying the link that blocked the
// regeneration. A lookup failure here degrades to the generic conflict body.
func (h *LinkHandler) respondConflict(c *gin.Context, alvoID uuid.UUID, tipo linksDomain.LinkType) {
	current, err := h.linkUseCase.CurrentLink(c.Request.Context(), alvoID, tipo)
	if err != nil {
		httputil.HandleErrorGin(c, linksDomain.ErrActiveLinkExists, h.logger)
		return
	}

	c.JSON(http.StatusConflict, dto.ConflictResponse{
		Error:   "conflict",
		Message: "A valid link already exists for this target; repeat with confirm to replace it",
		Current: dto.MapLinkToResponse(current, h.shareURL(current.Token)),
	})
}

func (h *LinkHandler) shareURL(token string) string {
	return h.baseURL + h.pathPrefix + token
}
