package httpapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gridironclub/cfb-fantasy/internal/domain/eventbonus"
	"github.com/gridironclub/cfb-fantasy/internal/domain/fantasyteam"
	"github.com/gridironclub/cfb-fantasy/internal/domain/league"
	"github.com/gridironclub/cfb-fantasy/internal/domain/school"
	"github.com/gridironclub/cfb-fantasy/internal/domain/scoring"
	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
	"github.com/gridironclub/cfb-fantasy/internal/platform/cache"
	"github.com/gridironclub/cfb-fantasy/internal/platform/logging"
	"github.com/gridironclub/cfb-fantasy/internal/usecase"
)

const standingsCacheTTL = 30 * time.Second

type Handler struct {
	seasonRunner     *usecase.SeasonRunner
	reconcileService *usecase.ReconcileService
	syncService      *usecase.ScoreboardSyncService

	seasonRepo  season.Repository
	schoolRepo  school.Repository
	leagueRepo  league.Repository
	teamRepo    fantasyteam.Repository
	scoringRepo scoring.Repository
	bonusRepo   eventbonus.Repository

	standingsCache *cache.Store[[]standingDTO]

	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(
	seasonRunner *usecase.SeasonRunner,
	reconcileService *usecase.ReconcileService,
	syncService *usecase.ScoreboardSyncService,
	seasonRepo season.Repository,
	schoolRepo school.Repository,
	leagueRepo league.Repository,
	teamRepo fantasyteam.Repository,
	scoringRepo scoring.Repository,
	bonusRepo eventbonus.Repository,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		seasonRunner:     seasonRunner,
		reconcileService: reconcileService,
		syncService:      syncService,
		seasonRepo:       seasonRepo,
		schoolRepo:       schoolRepo,
		leagueRepo:       leagueRepo,
		teamRepo:         teamRepo,
		scoringRepo:      scoringRepo,
		bonusRepo:        bonusRepo,
		standingsCache:   cache.NewStore[[]standingDTO](standingsCacheTTL),
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
