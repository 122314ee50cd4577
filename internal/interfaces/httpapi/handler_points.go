package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gridironclub/cfb-fantasy/internal/domain/fantasyteam"
	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
	"github.com/gridironclub/cfb-fantasy/internal/usecase"
)

type schoolDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Mascot     string `json:"mascot,omitempty"`
	Conference string `json:"conference"`
}

type calendarWeekDTO struct {
	Week          string `json:"week"`
	Number        int    `json:"number"`
	ScheduleLabel string `json:"scheduleLabel"`
	Postseason    bool   `json:"postseason"`
}

type schoolWeeklyPointsDTO struct {
	SchoolID         string `json:"schoolId"`
	Week             int    `json:"week"`
	GameID           string `json:"gameId"`
	BasePoints       int    `json:"basePoints"`
	ConferencePoints int    `json:"conferencePoints"`
	FiftyPlusPoints  int    `json:"fiftyPlusPoints"`
	ShutoutPoints    int    `json:"shutoutPoints"`
	Ranked10Points   int    `json:"ranked10Points"`
	Ranked25Points   int    `json:"ranked25Points"`
	TotalPoints      int    `json:"totalPoints"`
}

type leagueDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SeasonID string `json:"seasonId"`
}

type standingDTO struct {
	Rank               int     `json:"rank"`
	TeamID             string  `json:"teamId"`
	Name               string  `json:"name"`
	TotalPoints        float64 `json:"totalPoints"`
	HighPointsWinnings float64 `json:"highPointsWinnings"`
}

type teamWeeklyPointsDTO struct {
	FantasyTeamID      string  `json:"fantasyTeamId"`
	Week               int     `json:"week"`
	Points             float64 `json:"points"`
	IsHighPointsWinner bool    `json:"isHighPointsWinner"`
	HighPointsAmount   float64 `json:"highPointsAmount,omitempty"`
}

type eventBonusDTO struct {
	SchoolID  string  `json:"schoolId"`
	Week      int     `json:"week"`
	BonusType string  `json:"bonusType"`
	Points    float64 `json:"points"`
	GameID    *string `json:"gameId,omitempty"`
}

func (h *Handler) ListSchools(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchools")
	defer span.End()

	schools, err := h.schoolRepo.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list schools failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]schoolDTO, 0, len(schools))
	for _, s := range schools {
		out = append(out, schoolDTO{
			ID:         s.ID,
			Name:       s.Name,
			Mascot:     s.Mascot,
			Conference: s.Conference,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetSeasonCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonCalendar")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	sn, err := h.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if sn == nil {
		writeError(ctx, w, fmt.Errorf("%w: season %s", usecase.ErrNotFound, seasonID))
		return
	}

	weeks := make([]calendarWeekDTO, 0, season.MaxWeek-season.MinWeek+1)
	for week := season.MinWeek; week <= season.MaxWeek; week++ {
		weeks = append(weeks, calendarWeekDTO{
			Week:          season.WeekLabel(week, season.LabelCompact),
			Number:        week,
			ScheduleLabel: season.WeekLabel(week, season.LabelSchedule),
			Postseason:    season.IsPostseason(week),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, weeks)
}

func (h *Handler) ListSchoolWeeklyPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchoolWeeklyPoints")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	week, err := parseWeekPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.scoringRepo.ListBySeasonWeek(ctx, seasonID, week)
	if err != nil {
		h.logger.ErrorContext(ctx, "list school weekly points failed", "season_id", seasonID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]schoolWeeklyPointsDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, schoolWeeklyPointsDTO{
			SchoolID:         row.SchoolID,
			Week:             row.Week,
			GameID:           row.GameID,
			BasePoints:       row.BasePoints,
			ConferencePoints: row.ConferencePoints,
			FiftyPlusPoints:  row.FiftyPlusPoints,
			ShutoutPoints:    row.ShutoutPoints,
			Ranked10Points:   row.Ranked10Points,
			Ranked25Points:   row.Ranked25Points,
			TotalPoints:      row.TotalPoints,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListSchoolSeasonPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchoolSeasonPoints")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	schoolID := strings.TrimSpace(r.PathValue("schoolID"))
	if seasonID == "" || schoolID == "" {
		writeError(ctx, w, fmt.Errorf("%w: season id and school id are required", usecase.ErrInvalidInput))
		return
	}

	rows, err := h.scoringRepo.ListBySchoolSeason(ctx, seasonID, schoolID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list school season points failed", "season_id", seasonID, "school_id", schoolID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]schoolWeeklyPointsDTO, 0, len(rows))
	total := 0
	for _, row := range rows {
		total += row.TotalPoints
		out = append(out, schoolWeeklyPointsDTO{
			SchoolID:         row.SchoolID,
			Week:             row.Week,
			GameID:           row.GameID,
			BasePoints:       row.BasePoints,
			ConferencePoints: row.ConferencePoints,
			FiftyPlusPoints:  row.FiftyPlusPoints,
			ShutoutPoints:    row.ShutoutPoints,
			Ranked10Points:   row.Ranked10Points,
			Ranked25Points:   row.Ranked25Points,
			TotalPoints:      row.TotalPoints,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"schoolId":    schoolID,
		"totalPoints": total,
		"weeks":       out,
	})
}

func (h *Handler) ListLeaguesBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaguesBySeason")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	leagues, err := h.leagueRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]leagueDTO, 0, len(leagues))
	for _, lg := range leagues {
		out = append(out, leagueDTO{ID: lg.ID, Name: lg.Name, SeasonID: lg.SeasonID})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueStandings")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	lg, err := h.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if lg == nil {
		writeError(ctx, w, fmt.Errorf("%w: league %s", usecase.ErrNotFound, leagueID))
		return
	}

	out, err := h.standingsCache.GetOrLoad(ctx, "standings:"+leagueID, func(ctx context.Context) ([]standingDTO, error) {
		return h.loadStandings(ctx, leagueID)
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "load standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) loadStandings(ctx context.Context, leagueID string) ([]standingDTO, error) {
	teams, err := h.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].TotalPoints != teams[j].TotalPoints {
			return teams[i].TotalPoints > teams[j].TotalPoints
		}
		return teams[i].Name < teams[j].Name
	})

	out := make([]standingDTO, 0, len(teams))
	for i, team := range teams {
		out = append(out, standingDTO{
			Rank:               i + 1,
			TeamID:             team.ID,
			Name:               team.Name,
			TotalPoints:        team.TotalPoints,
			HighPointsWinnings: team.HighPointsWinnings,
		})
	}
	return out, nil
}

func (h *Handler) ListTeamWeeklyPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamWeeklyPoints")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	week, err := parseWeekPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.teamRepo.ListWeeklyPointsByLeagueWeek(ctx, leagueID, week)
	if err != nil {
		h.logger.ErrorContext(ctx, "list team weekly points failed", "league_id", leagueID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamWeeklyPointsDTOs(rows))
}

func (h *Handler) GetTeamHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamHistory")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	team, err := h.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if team == nil || team.LeagueID != leagueID {
		writeError(ctx, w, fmt.Errorf("%w: team %s does not belong to league %s", usecase.ErrNotFound, teamID, leagueID))
		return
	}

	rows, err := h.teamRepo.ListWeeklyPointsByTeam(ctx, teamID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list team history failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"teamId":             team.ID,
		"name":               team.Name,
		"totalPoints":        team.TotalPoints,
		"highPointsWinnings": team.HighPointsWinnings,
		"weeks":              teamWeeklyPointsDTOs(rows),
	})
}

func (h *Handler) ListLeagueBonuses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueBonuses")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	lg, err := h.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if lg == nil {
		writeError(ctx, w, fmt.Errorf("%w: league %s", usecase.ErrNotFound, leagueID))
		return
	}

	bonuses, err := h.bonusRepo.ListByLeagueSeason(ctx, leagueID, lg.SeasonID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list league bonuses failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]eventBonusDTO, 0, len(bonuses))
	for _, bonus := range bonuses {
		out = append(out, eventBonusDTO{
			SchoolID:  bonus.SchoolID,
			Week:      bonus.Week,
			BonusType: string(bonus.BonusType),
			Points:    bonus.Points,
			GameID:    bonus.GameID,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func teamWeeklyPointsDTOs(rows []fantasyteam.FantasyTeamWeeklyPoints) []teamWeeklyPointsDTO {
	out := make([]teamWeeklyPointsDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamWeeklyPointsDTO{
			FantasyTeamID:      row.FantasyTeamID,
			Week:               row.Week,
			Points:             row.Points,
			IsHighPointsWinner: row.IsHighPointsWinner,
			HighPointsAmount:   row.HighPointsAmount,
		})
	}
	return out
}

func parseWeekPath(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("week"))
	week, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: week must be a number, got %q", usecase.ErrInvalidInput, raw)
	}
	if week < season.MinWeek || week > season.MaxWeek {
		return 0, fmt.Errorf("%w: week %d is outside the season calendar", usecase.ErrInvalidInput, week)
	}
	return week, nil
}
