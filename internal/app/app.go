package app

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/league-insights/internal/config"
	"github.com/riskibarqy/league-insights/internal/domain/league"
	"github.com/riskibarqy/league-insights/internal/domain/matchup"
	"github.com/riskibarqy/league-insights/internal/domain/standings"
	"github.com/riskibarqy/league-insights/internal/domain/team"
	"github.com/riskibarqy/league-insights/internal/domain/transaction"
	"github.com/riskibarqy/league-insights/internal/infrastructure/export"
	"github.com/riskibarqy/league-insights/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-insights/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-insights/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-insights/internal/platform/cache"
	"github.com/riskibarqy/league-insights/internal/platform/id"
	"github.com/riskibarqy/league-insights/internal/platform/logging"
	"github.com/riskibarqy/league-insights/internal/platform/resilience"
	"github.com/riskibarqy/league-insights/internal/usecase"
)

type repositories struct {
	leagues      league.Repository
	teams        team.Repository
	matchups     matchup.Repository
	standings    standings.Repository
	transactions transaction.Repository
}

// NewHTTPServer wires storage, services and the HTTP router into a
// ready-to-run server. The returned cleanup closes the database
// connection when the postgres driver is active.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, errors.New("http server addr cannot be empty")
	}

	repos, db, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if db != nil {
			return db.Close()
		}
		return nil
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	writer, err := export.NewSiteWriter(cfg.ExportOutputDir, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, errors.Wrap(err, "init site writer")
	}

	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.teams, store)
	overviewSvc := usecase.NewOverviewService(
		repos.leagues,
		repos.teams,
		repos.matchups,
		repos.standings,
		repos.transactions,
		store,
		logger,
	)
	exportSvc := usecase.NewExportService(
		overviewSvc,
		leagueSvc,
		writer,
		id.NewUUIDGenerator(),
		cfg.ExportMaxWorkers,
		logger,
	)
	ingestionSvc := usecase.NewIngestionService(
		repos.leagues,
		repos.teams,
		repos.matchups,
		repos.standings,
		repos.transactions,
		store,
		logger,
	)

	handler := httpapi.NewHandler(leagueSvc, overviewSvc, exportSvc, ingestionSvc, logger)
	if db != nil {
		breaker := resilience.NewCircuitBreakerFromConfig(resilience.DefaultCircuitBreakerConfig())
		handler.SetReadinessCheck(databaseReadiness(db, breaker))
	}

	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := connectPostgres(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		if cfg.SeedDemoData {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, nil, errors.Wrap(err, "bootstrap demo data")
			}
		}
		logger.Info("storage ready",
			"driver", cfg.StorageDriver,
			"database", dbNameFromURL(cfg.DBURL),
		)

		return repositories{
			leagues:      postgres.NewLeagueRepository(db),
			teams:        postgres.NewTeamRepository(db),
			matchups:     postgres.NewMatchupRepository(db),
			standings:    postgres.NewStandingsRepository(db),
			transactions: postgres.NewTransactionRepository(db),
		}, db, nil
	default:
		repos := repositories{
			leagues:      memory.NewLeagueRepository(nil),
			teams:        memory.NewTeamRepository(nil),
			matchups:     memory.NewMatchupRepository(nil, nil),
			standings:    memory.NewStandingsRepository(nil),
			transactions: memory.NewTransactionRepository(nil, nil),
		}
		if cfg.SeedDemoData {
			entries, meta := memory.SeedMatchups()
			txns, participants := memory.SeedTransactions()
			repos = repositories{
				leagues:      memory.NewLeagueRepository(memory.SeedLeagues()),
				teams:        memory.NewTeamRepository(memory.SeedTeams()),
				matchups:     memory.NewMatchupRepository(entries, meta),
				standings:    memory.NewStandingsRepository(memory.SeedStandings()),
				transactions: memory.NewTransactionRepository(txns, participants),
			}
		}
		logger.Info("storage ready",
			"driver", config.StorageMemory,
			"seeded", cfg.SeedDemoData,
		)

		return repos, nil, nil
	}
}

func connectPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.ConnectContext(ctx, "postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, errors.Wrap(err, "connect postgres")
	}

	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// databaseReadiness pings the database behind a circuit breaker so a
// down database fails /readyz fast instead of stacking up pings.
func databaseReadiness(db *sqlx.DB, breaker *resilience.CircuitBreaker) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := breaker.Allow(); err != nil {
			return err
		}
		if err := db.PingContext(ctx); err != nil {
			breaker.RecordFailure()
			return err
		}
		breaker.RecordSuccess()
		return nil
	}
}
