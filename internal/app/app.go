package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/gridironclub/cfb-fantasy/external/espn"
	"github.com/gridironclub/cfb-fantasy/internal/config"
	"github.com/gridironclub/cfb-fantasy/internal/domain/scoring"
	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
	"github.com/gridironclub/cfb-fantasy/internal/infrastructure/repository/postgres"
	"github.com/gridironclub/cfb-fantasy/internal/interfaces/httpapi"
	idgen "github.com/gridironclub/cfb-fantasy/internal/platform/id"
	"github.com/gridironclub/cfb-fantasy/internal/platform/logging"
	"github.com/gridironclub/cfb-fantasy/internal/platform/resilience"
	"github.com/gridironclub/cfb-fantasy/internal/usecase"
)

// App holds the wired service graph and the HTTP server.
type App struct {
	cfg    config.Config
	logger *logging.Logger
	db     *sqlx.DB

	httpServer *http.Server

	seasonRepo season.Repository

	seasonRunner     *usecase.SeasonRunner
	reconcileService *usecase.ReconcileService
	syncService      *usecase.ScoreboardSyncService
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := sqlx.Connect("postgres", cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("connect database %s: %w", dbNameFromURL(cfg.DBURL), err)
	}

	seasonRepo := postgres.NewSeasonRepository(db)
	schoolRepo := postgres.NewSchoolRepository(db)
	gameRepo := postgres.NewGameRepository(db)
	pollRepo := postgres.NewPollRepository(db)
	scoringRepo := postgres.NewScoringRepository(db)
	leagueRepo := postgres.NewLeagueRepository(db)
	bonusRepo := postgres.NewEventBonusRepository(db)
	teamRepo := postgres.NewFantasyTeamRepository(db)

	idGen := idgen.NewRandomGenerator()

	weeklyPoints := usecase.NewWeeklyPointsService(
		gameRepo, schoolRepo, pollRepo, scoringRepo,
		idGen, scoring.DefaultRuleSet(), logger,
	)
	eventBonus := usecase.NewEventBonusService(
		gameRepo, leagueRepo, seasonRepo, bonusRepo, idGen, logger,
	)
	teamPoints := usecase.NewTeamPointsService(
		leagueRepo, teamRepo, scoringRepo, bonusRepo, idGen, logger,
	)
	seasonRunner := usecase.NewSeasonRunner(
		weeklyPoints, eventBonus, teamPoints, leagueRepo, logger, cfg.LeagueWorkers,
	)
	reconcileService := usecase.NewReconcileService(
		teamRepo, leagueRepo, logger, cfg.ReconcileWorkers,
	)

	var syncService *usecase.ScoreboardSyncService
	if cfg.ESPNEnabled {
		provider := espn.NewClient(espn.ClientConfig{
			BaseURL:    cfg.ESPNBaseURL,
			Timeout:    cfg.ESPNTimeout,
			MaxRetries: cfg.ESPNMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.ESPNCircuitEnabled,
				FailureThreshold: cfg.ESPNCircuitFailureCount,
				OpenTimeout:      cfg.ESPNCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.ESPNCircuitHalfOpenMaxReq,
			},
		})
		syncService = usecase.NewScoreboardSyncService(
			provider, gameRepo, schoolRepo, seasonRepo, idGen, logger,
		)
	}

	handler := httpapi.NewHandler(
		seasonRunner, reconcileService, syncService,
		seasonRepo, schoolRepo, leagueRepo, teamRepo, scoringRepo, bonusRepo,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		httpServer:       server,
		seasonRepo:       seasonRepo,
		seasonRunner:     seasonRunner,
		reconcileService: reconcileService,
		syncService:      syncService,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	return a.db.Close()
}
