// Package app provides the dependency injection container that assembles the
// application components.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authService "github.com/estudiomov/linkgate/internal/auth/service"
	"github.com/estudiomov/linkgate/internal/config"
	contatosHTTP "github.com/estudiomov/linkgate/internal/contatos/http"
	contatosRepository "github.com/estudiomov/linkgate/internal/contatos/repository"
	contatosUseCase "github.com/estudiomov/linkgate/internal/contatos/usecase"
	"github.com/estudiomov/linkgate/internal/database"
	"github.com/estudiomov/linkgate/internal/http"
	linksHTTP "github.com/estudiomov/linkgate/internal/links/http"
	linksRepository "github.com/estudiomov/linkgate/internal/links/repository"
	linksUseCase "github.com/estudiomov/linkgate/internal/links/usecase"
	"github.com/estudiomov/linkgate/internal/metrics"
	"github.com/estudiomov/linkgate/internal/storage"
	trabalhosHTTP "github.com/estudiomov/linkgate/internal/trabalhos/http"
	trabalhosRepository "github.com/estudiomov/linkgate/internal/trabalhos/repository"
	trabalhosUseCase "github.com/estudiomov/linkgate/internal/trabalhos/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	blobStore       storage.BlobStore
	apiKeyService   authService.APIKeyService
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Repositories
	linkRepo     linksUseCase.LinkRepository
	trabalhoRepo trabalhosUseCase.TrabalhoRepository
	contatoRepo  contatosUseCase.ContatoRepository

	// Use Cases
	linkUseCase     linksUseCase.LinkUseCase
	trabalhoUseCase trabalhosUseCase.TrabalhoUseCase
	contatoUseCase  contatosUseCase.ContatoUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	blobStoreInit       sync.Once
	apiKeyServiceInit   sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	linkRepoInit        sync.Once
	trabalhoRepoInit    sync.Once
	contatoRepoInit     sync.Once
	linkUseCaseInit     sync.Once
	trabalhoUseCaseInit sync.Once
	contatoUseCaseInit  sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["txManager"] = fmt.Errorf("failed to get database for tx manager: %w", err)
			return
		}
		c.txManager = database.NewTxManager(db)
	})
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// BlobStore returns the blob storage client.
func (c *Container) BlobStore() storage.BlobStore {
	c.blobStoreInit.Do(func() {
		c.blobStore = storage.NewBucketStore(c.config.StorageURLPrefix)
	})
	return c.blobStore
}

// APIKeyService returns the admin API key service.
func (c *Container) APIKeyService() authService.APIKeyService {
	c.apiKeyServiceInit.Do(func() {
		c.apiKeyService = authService.NewAPIKeyService()
	})
	return c.apiKeyService
}

// MetricsProvider returns the OpenTelemetry metrics provider.
// Returns nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = fmt.Errorf("failed to create metrics provider: %w", err)
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// Returns a no-op implementation when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = fmt.Errorf("failed to create business metrics: %w", err)
			return
		}
		c.businessMetrics = bm
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// LinkRepository returns the link repository instance.
func (c *Container) LinkRepository() (linksUseCase.LinkRepository, error) {
	c.linkRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["linkRepo"] = fmt.Errorf("failed to get database for link repository: %w", err)
			return
		}

		// Select the appropriate repository based on the database driver
		switch c.config.DBDriver {
		case "mysql":
			c.linkRepo = linksRepository.NewMySQLLinkRepository(db)
		case "postgres":
			c.linkRepo = linksRepository.NewPostgreSQLLinkRepository(db)
		default:
			c.initErrors["linkRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["linkRepo"]; exists {
		return nil, storedErr
	}
	return c.linkRepo, nil
}

// TrabalhoRepository returns the trabalho repository instance.
func (c *Container) TrabalhoRepository() (trabalhosUseCase.TrabalhoRepository, error) {
	c.trabalhoRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["trabalhoRepo"] = fmt.Errorf("failed to get database for trabalho repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.trabalhoRepo = trabalhosRepository.NewMySQLTrabalhoRepository(db)
		case "postgres":
			c.trabalhoRepo = trabalhosRepository.NewPostgreSQLTrabalhoRepository(db)
		default:
			c.initErrors["trabalhoRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["trabalhoRepo"]; exists {
		return nil, storedErr
	}
	return c.trabalhoRepo, nil
}

// ContatoRepository returns the contact repository instance.
func (c *Container) ContatoRepository() (contatosUseCase.ContatoRepository, error) {
	c.contatoRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["contatoRepo"] = fmt.Errorf("failed to get database for contato repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.contatoRepo = contatosRepository.NewMySQLContatoRepository(db)
		case "postgres":
			c.contatoRepo = contatosRepository.NewPostgreSQLContatoRepository(db)
		default:
			c.initErrors["contatoRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["contatoRepo"]; exists {
		return nil, storedErr
	}
	return c.contatoRepo, nil
}

// LinkUseCase returns the link use case instance.
func (c *Container) LinkUseCase() (linksUseCase.LinkUseCase, error) {
	c.linkUseCaseInit.Do(func() {
		useCase, err := c.initLinkUseCase()
		if err != nil {
			c.initErrors["linkUseCase"] = err
			return
		}
		c.linkUseCase = useCase
	})
	if storedErr, exists := c.initErrors["linkUseCase"]; exists {
		return nil, storedErr
	}
	return c.linkUseCase, nil
}

// TrabalhoUseCase returns the trabalho use case instance.
func (c *Container) TrabalhoUseCase() (trabalhosUseCase.TrabalhoUseCase, error) {
	c.trabalhoUseCaseInit.Do(func() {
		useCase, err := c.initTrabalhoUseCase()
		if err != nil {
			c.initErrors["trabalhoUseCase"] = err
			return
		}
		c.trabalhoUseCase = useCase
	})
	if storedErr, exists := c.initErrors["trabalhoUseCase"]; exists {
		return nil, storedErr
	}
	return c.trabalhoUseCase, nil
}

// ContatoUseCase returns the contact use case instance.
func (c *Container) ContatoUseCase() (contatosUseCase.ContatoUseCase, error) {
	c.contatoUseCaseInit.Do(func() {
		useCase, err := c.initContatoUseCase()
		if err != nil {
			c.initErrors["contatoUseCase"] = err
			return
		}
		c.contatoUseCase = useCase
	})
	if storedErr, exists := c.initErrors["contatoUseCase"]; exists {
		return nil, storedErr
	}
	return c.contatoUseCase, nil
}

// HTTPServer returns the HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance.
// Returns nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.blobStore != nil {
		if err := c.blobStore.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("blob store close: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return errors.Join(shutdownErrors...)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initLinkUseCase creates the link use case with all its dependencies.
func (c *Container) initLinkUseCase() (linksUseCase.LinkUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for link use case: %w", err)
	}

	linkRepo, err := c.LinkRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get link repository for link use case: %w", err)
	}

	trabalhoRepo, err := c.TrabalhoRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get trabalho repository for link use case: %w", err)
	}

	useCase := linksUseCase.NewLinkUseCase(
		txManager,
		linkRepo,
		trabalhoRepo,
		c.BlobStore(),
		c.config.StorageDefaultBucket,
		c.config.LinkValidity,
		c.config.PublicBaseURL,
		c.config.LinkPathPrefix,
	)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}

	return linksUseCase.NewLinkUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initTrabalhoUseCase creates the trabalho use case with all its dependencies.
func (c *Container) initTrabalhoUseCase() (trabalhosUseCase.TrabalhoUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for trabalho use case: %w", err)
	}

	trabalhoRepo, err := c.TrabalhoRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get trabalho repository for trabalho use case: %w", err)
	}

	useCase := trabalhosUseCase.NewTrabalhoUseCase(
		txManager,
		trabalhoRepo,
		c.BlobStore(),
		c.config.StorageDefaultBucket,
		c.config.StorageSignedURLTTL,
	)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}

	return trabalhosUseCase.NewTrabalhoUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initContatoUseCase creates the contact use case with all its dependencies.
func (c *Container) initContatoUseCase() (contatosUseCase.ContatoUseCase, error) {
	contatoRepo, err := c.ContatoRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get contato repository for contato use case: %w", err)
	}

	useCase := contatosUseCase.NewContatoUseCase(contatoRepo)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}

	return contatosUseCase.NewContatoUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	linkUseCase, err := c.LinkUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get link use case for http server: %w", err)
	}

	trabalhoUseCase, err := c.TrabalhoUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get trabalho use case for http server: %w", err)
	}

	contatoUseCase, err := c.ContatoUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get contato use case for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	linkHandler := linksHTTP.NewLinkHandler(
		linkUseCase,
		c.config.PublicBaseURL,
		c.config.LinkPathPrefix,
		logger,
	)
	viewerHandler := linksHTTP.NewViewerHandler(
		linkUseCase,
		c.config.ContactEmail,
		c.config.ContactWhatsAppURL,
		logger,
	)
	trabalhoHandler := trabalhosHTTP.NewTrabalhoHandler(trabalhoUseCase, logger)
	contatoHandler := contatosHTTP.NewContatoHandler(contatoUseCase, logger)

	server := http.NewServer(
		c.config,
		linkHandler,
		viewerHandler,
		trabalhoHandler,
		contatoHandler,
		c.APIKeyService(),
		metricsProvider,
		logger,
	)

	return server, nil
}
