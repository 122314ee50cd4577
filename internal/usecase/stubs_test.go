package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/gridironclub/cfb-fantasy/internal/domain/eventbonus"
	"github.com/gridironclub/cfb-fantasy/internal/domain/fantasyteam"
	"github.com/gridironclub/cfb-fantasy/internal/domain/game"
	"github.com/gridironclub/cfb-fantasy/internal/domain/league"
	"github.com/gridironclub/cfb-fantasy/internal/domain/poll"
	"github.com/gridironclub/cfb-fantasy/internal/domain/school"
	"github.com/gridironclub/cfb-fantasy/internal/domain/scoring"
	"github.com/gridironclub/cfb-fantasy/internal/domain/season"
)

type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("id-%d", g.n), nil
}

type stubGameRepository struct {
	games []game.Game
}

func (r *stubGameRepository) GetByID(_ context.Context, id string) (*game.Game, error) {
	for _, g := range r.games {
		if g.ID == id {
			g := g
			return &g, nil
		}
	}
	return nil, nil
}

func (r *stubGameRepository) ListBySeasonWeek(_ context.Context, seasonID string, week int) ([]game.Game, error) {
	var out []game.Game
	for _, g := range r.games {
		if g.SeasonID == seasonID && g.Week == week {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *stubGameRepository) ListCompletedBySeasonWeek(_ context.Context, seasonID string, week int) ([]game.Game, error) {
	var out []game.Game
	for _, g := range r.games {
		if g.SeasonID == seasonID && g.Week == week && g.Completed() {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *stubGameRepository) ListPlayoffBySeason(_ context.Context, seasonID string) ([]game.Game, error) {
	var out []game.Game
	for _, g := range r.games {
		if g.SeasonID == seasonID && g.IsPlayoffGame {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *stubGameRepository) UpsertGames(_ context.Context, games []game.Game) error {
	r.games = append(r.games, games...)
	return nil
}

type stubSchoolRepository struct {
	schools map[string]school.School
	byRef   map[int64]school.School
}

func (r *stubSchoolRepository) GetByID(_ context.Context, id string) (*school.School, error) {
	if s, ok := r.schools[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *stubSchoolRepository) ListByIDs(_ context.Context, ids []string) ([]school.School, error) {
	var out []school.School
	for _, id := range ids {
		if s, ok := r.schools[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSchoolRepository) ListAll(_ context.Context) ([]school.School, error) {
	var out []school.School
	for _, s := range r.schools {
		out = append(out, s)
	}
	return out, nil
}

func (r *stubSchoolRepository) GetByExternalRef(_ context.Context, ref int64) (*school.School, error) {
	if s, ok := r.byRef[ref]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *stubSchoolRepository) UpsertSchools(_ context.Context, schools []school.School) error {
	if r.schools == nil {
		r.schools = make(map[string]school.School)
	}
	for _, s := range schools {
		r.schools[s.ID] = s
	}
	return nil
}

type stubPollRepository struct {
	rankings []poll.Ranking
}

func (r *stubPollRepository) ListBySeasonWeek(_ context.Context, seasonID string, week int) ([]poll.Ranking, error) {
	var out []poll.Ranking
	for _, rk := range r.rankings {
		if rk.SeasonID == seasonID && rk.Week == week {
			out = append(out, rk)
		}
	}
	return out, nil
}

func (r *stubPollRepository) ReplaceWeek(_ context.Context, seasonID string, week int, rankings []poll.Ranking) error {
	kept := r.rankings[:0]
	for _, rk := range r.rankings {
		if rk.SeasonID != seasonID || rk.Week != week {
			kept = append(kept, rk)
		}
	}
	r.rankings = append(kept, rankings...)
	return nil
}

type stubScoringRepository struct {
	rows         []scoring.SchoolWeeklyPoints
	replaceCalls int
}

func (r *stubScoringRepository) ListBySeasonWeek(_ context.Context, seasonID string, week int) ([]scoring.SchoolWeeklyPoints, error) {
	var out []scoring.SchoolWeeklyPoints
	for _, row := range r.rows {
		if row.SeasonID == seasonID && row.Week == week {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubScoringRepository) ListBySchoolSeason(_ context.Context, seasonID, schoolID string) ([]scoring.SchoolWeeklyPoints, error) {
	var out []scoring.SchoolWeeklyPoints
	for _, row := range r.rows {
		if row.SeasonID == seasonID && row.SchoolID == schoolID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubScoringRepository) SumBySchoolWeek(_ context.Context, seasonID string, week int) (map[string]int, error) {
	sums := make(map[string]int)
	for _, row := range r.rows {
		if row.SeasonID == seasonID && row.Week == week {
			sums[row.SchoolID] += row.TotalPoints
		}
	}
	return sums, nil
}

func (r *stubScoringRepository) ReplaceWeek(_ context.Context, seasonID string, week int, rows []scoring.SchoolWeeklyPoints) error {
	r.replaceCalls++
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.SeasonID != seasonID || row.Week != week {
			kept = append(kept, row)
		}
	}
	r.rows = append(kept, rows...)
	return nil
}

type stubLeagueRepository struct {
	leagues  map[string]league.League
	settings map[string]league.Settings
}

func (r *stubLeagueRepository) GetByID(_ context.Context, id string) (*league.League, error) {
	if l, ok := r.leagues[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (r *stubLeagueRepository) ListBySeason(_ context.Context, seasonID string) ([]league.League, error) {
	var out []league.League
	for _, l := range r.leagues {
		if l.SeasonID == seasonID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubLeagueRepository) GetSettings(_ context.Context, leagueID string) (*league.Settings, error) {
	if s, ok := r.settings[leagueID]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *stubLeagueRepository) UpsertSettings(_ context.Context, s league.Settings) error {
	if r.settings == nil {
		r.settings = make(map[string]league.Settings)
	}
	r.settings[s.LeagueID] = s
	return nil
}

type stubSeasonRepository struct {
	seasons map[string]season.Season
	heisman map[string]season.HeismanWinner
}

func (r *stubSeasonRepository) GetByID(_ context.Context, id string) (*season.Season, error) {
	if s, ok := r.seasons[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *stubSeasonRepository) GetByYear(_ context.Context, year int) (*season.Season, error) {
	for _, s := range r.seasons {
		if s.Year == year {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (r *stubSeasonRepository) Upsert(_ context.Context, s season.Season) error {
	if r.seasons == nil {
		r.seasons = make(map[string]season.Season)
	}
	r.seasons[s.ID] = s
	return nil
}

func (r *stubSeasonRepository) GetHeismanWinner(_ context.Context, seasonID string) (*season.HeismanWinner, error) {
	if w, ok := r.heisman[seasonID]; ok {
		return &w, nil
	}
	return nil, nil
}

func (r *stubSeasonRepository) UpsertHeismanWinner(_ context.Context, w season.HeismanWinner) error {
	if r.heisman == nil {
		r.heisman = make(map[string]season.HeismanWinner)
	}
	r.heisman[w.SeasonID] = w
	return nil
}

type stubEventBonusRepository struct {
	rows []eventbonus.LeagueSchoolEventBonus
}

func (r *stubEventBonusRepository) ListByLeagueSeason(_ context.Context, leagueID, seasonID string) ([]eventbonus.LeagueSchoolEventBonus, error) {
	var out []eventbonus.LeagueSchoolEventBonus
	for _, row := range r.rows {
		if row.LeagueID == leagueID && row.SeasonID == seasonID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubEventBonusRepository) ListByLeagueWeek(_ context.Context, leagueID, seasonID string, week int) ([]eventbonus.LeagueSchoolEventBonus, error) {
	var out []eventbonus.LeagueSchoolEventBonus
	for _, row := range r.rows {
		if row.LeagueID == leagueID && row.SeasonID == seasonID && row.Week == week {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubEventBonusRepository) ReplaceLeagueSeason(_ context.Context, leagueID, seasonID string, rows []eventbonus.LeagueSchoolEventBonus) error {
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.LeagueID != leagueID || row.SeasonID != seasonID {
			kept = append(kept, row)
		}
	}
	r.rows = append(kept, rows...)
	return nil
}

type stubFantasyTeamRepository struct {
	teams   map[string]fantasyteam.FantasyTeam
	periods map[string][]fantasyteam.RosterPeriod
	weekly  []fantasyteam.FantasyTeamWeeklyPoints
}

func (r *stubFantasyTeamRepository) GetByID(_ context.Context, id string) (*fantasyteam.FantasyTeam, error) {
	if t, ok := r.teams[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *stubFantasyTeamRepository) ListByLeague(_ context.Context, leagueID string) ([]fantasyteam.FantasyTeam, error) {
	var out []fantasyteam.FantasyTeam
	for _, t := range r.teams {
		if t.LeagueID == leagueID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubFantasyTeamRepository) ListAll(_ context.Context) ([]fantasyteam.FantasyTeam, error) {
	var out []fantasyteam.FantasyTeam
	for _, t := range r.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubFantasyTeamRepository) UpdateAggregates(_ context.Context, teamID string, totalPoints, highPointsWinnings float64) error {
	t, ok := r.teams[teamID]
	if !ok {
		return fmt.Errorf("team %s not found", teamID)
	}
	t.TotalPoints = totalPoints
	t.HighPointsWinnings = highPointsWinnings
	r.teams[teamID] = t
	return nil
}

func (r *stubFantasyTeamRepository) ListRosterPeriods(_ context.Context, teamID string) ([]fantasyteam.RosterPeriod, error) {
	return r.periods[teamID], nil
}

func (r *stubFantasyTeamRepository) ListWeeklyPointsByTeam(_ context.Context, teamID string) ([]fantasyteam.FantasyTeamWeeklyPoints, error) {
	var out []fantasyteam.FantasyTeamWeeklyPoints
	for _, row := range r.weekly {
		if row.FantasyTeamID == teamID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubFantasyTeamRepository) ListWeeklyPointsByLeagueWeek(_ context.Context, leagueID string, week int) ([]fantasyteam.FantasyTeamWeeklyPoints, error) {
	var out []fantasyteam.FantasyTeamWeeklyPoints
	for _, row := range r.weekly {
		if row.LeagueID == leagueID && row.Week == week {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubFantasyTeamRepository) ListWeeksWithPoints(_ context.Context, leagueID string) ([]int, error) {
	seen := make(map[int]struct{})
	var out []int
	for _, row := range r.weekly {
		if row.LeagueID != leagueID {
			continue
		}
		if _, ok := seen[row.Week]; ok {
			continue
		}
		seen[row.Week] = struct{}{}
		out = append(out, row.Week)
	}
	sort.Ints(out)
	return out, nil
}

func (r *stubFantasyTeamRepository) UpsertWeeklyPoints(_ context.Context, rows []fantasyteam.FantasyTeamWeeklyPoints) error {
	for _, row := range rows {
		replaced := false
		for i, existing := range r.weekly {
			if existing.FantasyTeamID == row.FantasyTeamID && existing.Week == row.Week {
				row.IsHighPointsWinner = existing.IsHighPointsWinner
				row.HighPointsAmount = existing.HighPointsAmount
				r.weekly[i] = row
				replaced = true
				break
			}
		}
		if !replaced {
			r.weekly = append(r.weekly, row)
		}
	}
	return nil
}

func (r *stubFantasyTeamRepository) SetHighPoints(_ context.Context, leagueID string, week int, winnerTeamIDs []string, amount float64) error {
	winners := make(map[string]struct{}, len(winnerTeamIDs))
	for _, id := range winnerTeamIDs {
		winners[id] = struct{}{}
	}
	for i, row := range r.weekly {
		if row.LeagueID != leagueID || row.Week != week {
			continue
		}
		if _, ok := winners[row.FantasyTeamID]; ok {
			r.weekly[i].IsHighPointsWinner = true
			r.weekly[i].HighPointsAmount = amount
		} else {
			r.weekly[i].IsHighPointsWinner = false
			r.weekly[i].HighPointsAmount = 0
		}
	}
	return nil
}
