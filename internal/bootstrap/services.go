package bootstrap

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/qatalent/jobboard/config"
	"github.com/qatalent/jobboard/internal/data"
	"github.com/qatalent/jobboard/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Directory *service.DirectoryService
	Catalog   *service.CatalogService
	Ledger    *service.LedgerService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	Users        *data.UserRepo
	Jobs         *data.JobRepo
	Applications *data.ApplicationRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, catalogCfg config.CatalogConfig) *serviceRepositories {
	jobs := data.NewJobRepo(db)
	jobs.NullSalaryMatchesMax = catalogCfg.NullSalaryMatchesMax

	return &serviceRepositories{
		Users:        data.NewUserRepo(db),
		Jobs:         jobs,
		Applications: data.NewApplicationRepo(db),
	}
}

func newCatalogService(
	repos *serviceRepositories,
	cfg config.CatalogConfig,
	logger *slog.Logger,
) (*service.CatalogService, error) {
	var fallback *service.FallbackCatalog
	if cfg.FallbackEnabled {
		fb, err := service.NewFallbackCatalog(service.FallbackCatalogOptions{
			Path:                 cfg.FallbackPath,
			NullSalaryMatchesMax: cfg.NullSalaryMatchesMax,
		})
		if err != nil {
			return nil, fmt.Errorf("build fallback catalog: %w", err)
		}
		fallback = fb
	}

	return service.NewCatalogService(service.CatalogServiceOptions{
		Jobs:            repos.Jobs,
		Fallback:        fallback,
		Logger:          logger,
		FallbackEnabled: cfg.FallbackEnabled,
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	}), nil
}

func newLedgerService(repos *serviceRepositories, cfg config.LedgerConfig) *service.LedgerService {
	return service.NewLedgerService(service.LedgerServiceOptions{
		Applications:      repos.Applications,
		Jobs:              repos.Jobs,
		StrictTransitions: cfg.StrictTransitions,
		CoverLetterMaxLen: cfg.CoverLetterMaxLen,
	})
}

// NewServices wires repositories and domain services from loaded configuration.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service deps and config are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	repos := buildRepositories(deps.DB, deps.Config.Catalog)

	authService, err := BuildAuthService(AuthConfig{
		Auth:        deps.Config.Auth,
		RedisClient: deps.RedisClient,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build auth service: %w", err)
	}

	catalogService, err := newCatalogService(repos, deps.Config.Catalog, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	return ServiceContainer{
		Auth:      authService,
		Directory: service.NewDirectoryService(service.DirectoryServiceOptions{Users: repos.Users}),
		Catalog:   catalogService,
		Ledger:    newLedgerService(repos, deps.Config.Ledger),
	}, nil
}
