package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
	"github.com/gridironclub/cfb-fantasy/internal/usecase"
)

type recalculateWeekRequest struct {
	SeasonID string `json:"season_id" validate:"required"`
	Week     int    `json:"week" validate:"min=0,max=22"`
	LeagueID string `json:"league_id"`
}

type recalculateSeasonRequest struct {
	SeasonID string `json:"season_id" validate:"required"`
}

type scoreboardSyncRequest struct {
	SeasonYear int    `json:"season_year" validate:"omitempty,min=2000"`
	Date       string `json:"date"`
}

func (h *Handler) RunRecalculateWeekJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecalculateWeekJob")
	defer span.End()

	var req recalculateWeekRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var result usecase.RunWeekResult
	var err error
	if req.LeagueID != "" {
		result, err = h.seasonRunner.RunLeagueWeek(ctx, req.SeasonID, req.LeagueID, req.Week)
	} else {
		result, err = h.seasonRunner.RunWeek(ctx, req.SeasonID, req.Week)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "recalculate week job failed", "season_id", req.SeasonID, "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	if req.LeagueID != "" {
		h.standingsCache.Delete("standings:" + req.LeagueID)
	} else {
		h.standingsCache.DeletePrefix("standings:")
	}
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunRecalculateSeasonJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecalculateSeasonJob")
	defer span.End()

	var req recalculateSeasonRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.seasonRunner.RunSeason(ctx, req.SeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "recalculate season job failed", "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.standingsCache.DeletePrefix("standings:")
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunReconcileJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunReconcileJob")
	defer span.End()

	result, err := h.reconcileService.Reconcile(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "reconcile job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.standingsCache.DeletePrefix("standings:")
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunScoreboardSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunScoreboardSyncJob")
	defer span.End()

	if h.syncService == nil {
		writeError(ctx, w, fmt.Errorf("%w: scoreboard sync is disabled", usecase.ErrDependencyUnavailable))
		return
	}

	var req scoreboardSyncRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", usecase.ErrInvalidInput, req.Date))
			return
		}
		date = parsed
	}
	if req.SeasonYear == 0 {
		req.SeasonYear = season.SeasonYearFor(date)
	}

	result, err := h.syncService.SyncDate(ctx, req.SeasonYear, date)
	if err != nil {
		h.logger.WarnContext(ctx, "scoreboard sync job failed", "season_year", req.SeasonYear, "date", req.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) decodeAndValidate(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validator.Struct(target); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
