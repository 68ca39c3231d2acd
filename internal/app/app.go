package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/matchstats"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/team"
	cacherepo "github.com/riskibarqy/matchday/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchday/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchday/internal/platform/cache"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

// Components holds the wired repositories and services shared by the API
// server and the batch commands.
type Components struct {
	DB *sqlx.DB

	Teams   team.Repository
	Players player.Repository
	Matches match.Repository
	Stats   matchstats.Repository

	Resolver *usecase.ResolverService
	Loader   *usecase.LoaderService
	Report   *usecase.ReportService

	Logger *logging.Logger
}

func (c *Components) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

// OpenDB connects to Postgres with OpenTelemetry instrumentation on every
// query.
func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return db, nil
}

// Build wires the full service graph on top of one database connection.
func Build(cfg config.Config, logger *logging.Logger) (*Components, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	var teamRepo team.Repository = postgres.NewTeamRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	statsRepo := postgres.NewMatchStatsRepository(db)

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, store)
	}

	resolver := usecase.NewResolverService(teamRepo, playerRepo, logger)
	loader := usecase.NewLoaderService(resolver, statsRepo, cfg.OnDuplicate, logger)
	report := usecase.NewReportService(teamRepo, matchRepo, statsRepo, store, logger)

	return &Components{
		DB:       db,
		Teams:    teamRepo,
		Players:  playerRepo,
		Matches:  matchRepo,
		Stats:    statsRepo,
		Resolver: resolver,
		Loader:   loader,
		Report:   report,
		Logger:   logger,
	}, nil
}

// NewHTTPServer builds the API server. The caller owns both the server and
// the returned components and closes them on shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, *Components, error) {
	components, err := Build(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(components.Loader, components.Report, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = components.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, components, nil
}
