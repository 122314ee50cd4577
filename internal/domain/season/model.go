package season

import (
	"errors"
	"time"
)

// Season is one playing year of the college football calendar.
type Season struct {
	ID        string
	Year      int
	StartDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Season) Validate() error {
	if s.Year < 1900 {
		return errors.New("season: year out of range")
	}
	return nil
}

// HeismanWinner records the Heisman trophy recipient's school for a season.
// The award is settled once per year and scored at the dedicated award week.
type HeismanWinner struct {
	ID         string
	SeasonID   string
	SchoolID   string
	PlayerName string
	AwardedAt  time.Time
}
