package poll

import "time"

// Ranking is one school's AP-poll position for a season week. Rows only
// exist for ranked schools; absence means unranked.
type Ranking struct {
	ID        string
	SeasonID  string
	Week      int
	SchoolID  string
	Rank      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RankMap indexes rankings by school id for the fallback lookup used when a
// game row carries no rank snapshot of its own.
type RankMap map[string]int

// BuildRankMap collapses a week's rankings into a school -> rank lookup.
func BuildRankMap(rankings []Ranking) RankMap {
	m := make(RankMap, len(rankings))
	for _, r := range rankings {
		if r.Rank > 0 {
			m[r.SchoolID] = r.Rank
		}
	}
	return m
}

// RankOf returns the school's rank and whether it is ranked at all.
func (m RankMap) RankOf(schoolID string) (int, bool) {
	rank, ok := m[schoolID]
	return rank, ok
}
