package school

import "fmt"

// ConferenceIndependent is the sentinel conference for schools without a
// conference affiliation. Two independents never play a "conference game".
const ConferenceIndependent = "Independent"

// School is an FBS program that fantasy teams can roster.
type School struct {
	ID         string
	Name       string
	Mascot     string
	Conference string
	// ExternalRef is the scoreboard provider's team id used by the sync job.
	ExternalRef int64
}

func (s School) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("school id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("school name is required")
	}
	return nil
}

func (s School) IsIndependent() bool {
	return s.Conference == "" || s.Conference == ConferenceIndependent
}
