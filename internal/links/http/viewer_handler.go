package http

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/estudiomov/linkgate/internal/errors"
	linksDomain "github.com/estudiomov/linkgate/internal/links/domain"
	linksUseCase "github.com/estudiomov/linkgate/internal/links/usecase"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var viewerTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// ViewerHandler serves the public client-facing page at /link/:token. It
// resolves the token server-side and renders a redirect, an error state with
// a contact fallback, or the trabalho file list.
type ViewerHandler struct {
	linkUseCase     linksUseCase.LinkUseCase
	contactEmail    string
	contactWhatsApp string
	logger          *slog.Logger
}

// NewViewerHandler creates a new viewer handler.
func NewViewerHandler(
	linkUseCase linksUseCase.LinkUseCase,
	contactEmail string,
	contactWhatsApp string,
	logger *slog.Logger,
) *ViewerHandler {
	return &ViewerHandler{
		linkUseCase:     linkUseCase,
		contactEmail:    contactEmail,
		contactWhatsApp: contactWhatsApp,
		logger:          logger,
	}
}

// trabalhoView is the template payload for a resolved trabalho.
type trabalhoView struct {
	Titulo        string
	Descricao     string
	DataConclusao *time.Time
	Cliente       *trabalhosDomain.Cliente
	Arquivos      []arquivoView
}

type arquivoView struct {
	Nome        string
	DownloadURL string
}

// errorView is the template payload for every failure state.
type errorView struct {
	Title           string
	Message         string
	ContactEmail    string
	ContactWhatsApp string
}

// PageHandler renders the viewer page.
// GET /link/:token - Public, rate limited.
func (h *ViewerHandler) PageHandler(c *gin.Context) {
	token := c.Param("token")

	resolution, err := h.linkUseCase.Resolve(c.Request.Context(), token)
	if err != nil {
		h.renderError(c, err)
		return
	}

	if resolution.Tipo == linksDomain.LinkTypeBriefing {
		c.Redirect(http.StatusFound, resolution.RedirectURL)
		return
	}

	trabalho := resolution.Trabalho
	view := trabalhoView{
		Titulo:        trabalho.Titulo,
		Descricao:     trabalho.Descricao,
		DataConclusao: trabalho.DataConclusao,
		Cliente:       trabalho.Cliente,
		Arquivos:      make([]arquivoView, 0, len(trabalho.ArquivosFinais)),
	}
	for _, arquivo := range trabalho.ArquivosFinais {
		view.Arquivos = append(view.Arquivos, arquivoView{
			Nome: arquivo.Nome,
			DownloadURL: fmt.Sprintf("/download-file?token=%s&fileId=%s",
				url.QueryEscape(token), url.QueryEscape(arquivo.ID)),
		})
	}

	h.renderTemplate(c, http.StatusOK, "trabalho", view)
}

// renderError maps resolution failures to the viewer's localized copy. The
// raw error payload never reaches the page; every state offers the contact
// fallback.
func (h *ViewerHandler) renderError(c *gin.Context, err error) {
	var statusCode int
	view := errorView{
		ContactEmail:    h.contactEmail,
		ContactWhatsApp: h.contactWhatsApp,
	}

	switch {
	case apperrors.Is(err, linksDomain.ErrLinkExpired):
		statusCode = http.StatusGone
		view.Title = "Este link expirou"
		view.Message = "O prazo de acesso a este conteúdo terminou. Solicite um novo link."
	case apperrors.Is(err, linksDomain.ErrLinkNotFound),
		apperrors.Is(err, trabalhosDomain.ErrTrabalhoNotFound):
		statusCode = http.StatusNotFound
		view.Title = "Link não encontrado"
		view.Message = "Este link não existe ou foi substituído. Confira o endereço recebido."
	default:
		statusCode = http.StatusInternalServerError
		view.Title = "Algo deu errado"
		view.Message = "Não foi possível carregar este conteúdo agora. Tente novamente em instantes."
		h.logger.Error("viewer resolution failed", slog.Any("error", err))
	}

	h.renderTemplate(c, statusCode, "error", view)
}

func (h *ViewerHandler) renderTemplate(c *gin.Context, statusCode int, name string, data any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(statusCode)
	if err := viewerTemplates.ExecuteTemplate(c.Writer, name, data); err != nil {
		h.logger.Error("failed to render viewer template",
			slog.String("template", name),
			slog.Any("error", err),
		)
	}
}
