package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authService "github.com/estudiomov/linkgate/internal/auth/service"
	"github.com/estudiomov/linkgate/internal/config"
	contatosHTTP "github.com/estudiomov/linkgate/internal/contatos/http"
	contatosMocks "github.com/estudiomov/linkgate/internal/contatos/usecase/mocks"
	linksDomain "github.com/estudiomov/linkgate/internal/links/domain"
	linksHTTP "github.com/estudiomov/linkgate/internal/links/http"
	linksMocks "github.com/estudiomov/linkgate/internal/links/usecase/mocks"
	trabalhosHTTP "github.com/estudiomov/linkgate/internal/trabalhos/http"
	trabalhosMocks "github.com/estudiomov/linkgate/internal/trabalhos/usecase/mocks"
)

type serverMocks struct {
	linkUseCase     *linksMocks.MockLinkUseCase
	trabalhoUseCase *trabalhosMocks.MockTrabalhoUseCase
	contatoUseCase  *contatosMocks.MockContatoUseCase
}

func newTestServer(t *testing.T, cfg *config.Config) (*Server, *serverMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	m := &serverMocks{
		linkUseCase:     &linksMocks.MockLinkUseCase{},
		trabalhoUseCase: &trabalhosMocks.MockTrabalhoUseCase{},
		contatoUseCase:  &contatosMocks.MockContatoUseCase{},
	}

	linkHandler := linksHTTP.NewLinkHandler(m.linkUseCase, cfg.PublicBaseURL, cfg.LinkPathPrefix, logger)
	viewerHandler := linksHTTP.NewViewerHandler(m.linkUseCase, cfg.ContactEmail, cfg.ContactWhatsAppURL, logger)
	trabalhoHandler := trabalhosHTTP.NewTrabalhoHandler(m.trabalhoUseCase, logger)
	contatoHandler := contatosHTTP.NewContatoHandler(m.contatoUseCase, logger)

	server := NewServer(
		cfg,
		linkHandler,
		viewerHandler,
		trabalhoHandler,
		contatoHandler,
		authService.NewAPIKeyService(),
		nil,
		logger,
	)
	return server, m
}

func baseConfig() *config.Config {
	return &config.Config{
		ServerHost:       "127.0.0.1",
		ServerPort:       8080,
		PublicBaseURL:    "https://estudiomov.com.br",
		LinkPathPrefix:   "/link/",
		ContactEmail:     "contato@estudiomov.com.br",
		CORSAllowOrigins: "*",
	}
}

func TestServer_Routes(t *testing.T) {
	t.Run("HealthEndpoint", func(t *testing.T) {
		server, _ := newTestServer(t, baseConfig())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "healthy")
	})

	t.Run("ReadyEndpoint", func(t *testing.T) {
		server, _ := newTestServer(t, baseConfig())

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		resp := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("PublicResolveIsReachable", func(t *testing.T) {
		server, m := newTestServer(t, baseConfig())
		m.linkUseCase.On("Resolve", mock.Anything, "tok").
			Return(&linksDomain.Resolution{Tipo: linksDomain.LinkTypeBriefing, RedirectURL: "https://example.com/briefing"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/resolve-link?token=tok", nil)
		resp := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "redirect")
	})

	t.Run("CORSHeadersOnPublicSurface", func(t *testing.T) {
		server, _ := newTestServer(t, baseConfig())

		req := httptest.NewRequest(http.MethodGet, "/resolve-link", nil)
		req.Header.Set("Origin", "https://frontend.example.com")
		resp := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(resp, req)

		assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("AdminRoutesRequireKey", func(t *testing.T) {
		server, m := newTestServer(t, baseConfig())

		req := httptest.NewRequest(http.MethodPost, "/v1/links", nil)
		resp := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		m.linkUseCase.AssertNotCalled(t, "Regenerate")
	})

	t.Run("AdminRouteAcceptsValidKey", func(t *testing.T) {
		service := authService.NewAPIKeyService()
		plainKey, hashedKey, err := service.GenerateKey()
		require.NoError(t, err)

		cfg := baseConfig()
		cfg.AdminAPIKeyHash = hashedKey
		server, m := newTestServer(t, cfg)

		link := &linksDomain.Link{Token: "tok", Tipo: linksDomain.LinkTypeTrabalho}
		m.linkUseCase.On("CurrentLink", mock.Anything, mock.Anything, linksDomain.LinkTypeTrabalho).
			Return(link, nil)

		req := httptest.NewRequest(
			http.MethodGet,
			"/v1/links/current?alvo_id=0b2f7b6e-3f6e-4a5d-9c1e-6f2f3a4b5c6d",
			nil,
		)
		req.Header.Set("Authorization", "Bearer "+plainKey)
		resp := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("RateLimitAppliesToPublicSurface", func(t *testing.T) {
		cfg := baseConfig()
		cfg.RateLimitEnabled = true
		cfg.RateLimitRequestsPerSec = 0.001
		cfg.RateLimitBurst = 1
		server, m := newTestServer(t, cfg)

		m.linkUseCase.On("Resolve", mock.Anything, "tok").
			Return(&linksDomain.Resolution{Tipo: linksDomain.LinkTypeBriefing, RedirectURL: "https://example.com"}, nil)

		first := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/resolve-link?token=tok", nil)
		req.RemoteAddr = "10.1.1.1:5000"
		server.GetHandler().ServeHTTP(first, req)
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		req2 := httptest.NewRequest(http.MethodGet, "/resolve-link?token=tok", nil)
		req2.RemoteAddr = "10.1.1.1:5000"
		server.GetHandler().ServeHTTP(second, req2)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})
}

func TestMetricsServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("NoMetricsRouteWithoutProvider", func(t *testing.T) {
		server := NewMetricsServer("127.0.0.1", 8081, logger, nil)

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		resp := httptest.NewRecorder()
		server.GetHandler().ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "Single",
			input:    "https://estudiomov.com.br",
			expected: []string{"https://estudiomov.com.br"},
		},
		{
			name:     "MultipleWithWhitespace",
			input:    " https://a.example.com , https://b.example.com ",
			expected: []string{"https://a.example.com", "https://b.example.com"},
		},
		{
			name:     "SkipsEmptyParts",
			input:    "https://a.example.com,,",
			expected: []string{"https://a.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseOrigins(tt.input))
		})
	}
}
