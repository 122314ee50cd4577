package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const scoreboardFixture = `{
  "events": [
    {
      "id": "401628455",
      "date": "2025-12-20T21:00Z",
      "name": "Notre Dame Fighting Irish at Indiana Hoosiers",
      "status": {"type": {"name": "STATUS_FINAL", "state": "post", "completed": true}},
      "competitions": [
        {
          "notes": [{"type": "event", "headline": "CFP First Round - Notre Dame at Indiana"}],
          "competitors": [
            {"id": "84", "homeAway": "home", "score": "17", "curatedRank": {"current": 10}, "team": {"id": "84", "location": "Indiana"}},
            {"id": "87", "homeAway": "away", "score": "27", "curatedRank": {"current": 7}, "team": {"id": "87", "location": "Notre Dame"}}
          ]
        }
      ]
    },
    {
      "id": "401628460",
      "date": "2025-12-20T01:00Z",
      "name": "Ohio State Buckeyes at Tennessee Volunteers",
      "status": {"type": {"name": "STATUS_SCHEDULED", "state": "pre", "completed": false}},
      "competitions": [
        {
          "notes": [],
          "competitors": [
            {"id": "2633", "homeAway": "home", "score": "0", "curatedRank": {"current": 99}, "team": {"id": "2633", "location": "Tennessee"}},
            {"id": "194", "homeAway": "away", "score": "0", "curatedRank": {"current": 6}, "team": {"id": "194", "location": "Ohio State"}}
          ]
        }
      ]
    }
  ]
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Timeout:    2 * time.Second,
	})
	return client, server
}

func TestFetchScoreboard_MapsEvents(t *testing.T) {
	t.Parallel()

	var gotQuery atomic.Value
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query().Get("dates"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scoreboardFixture))
	}))

	date := time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)
	games, err := client.FetchScoreboard(context.Background(), date)
	require.NoError(t, err)
	require.Equal(t, "20251220", gotQuery.Load())
	require.Len(t, games, 2)

	final := games[0]
	require.EqualValues(t, 401628455, final.EventID)
	require.EqualValues(t, 84, final.HomeSchoolRef)
	require.EqualValues(t, 87, final.AwaySchoolRef)
	require.NotNil(t, final.HomeScore)
	require.Equal(t, 17, *final.HomeScore)
	require.NotNil(t, final.AwayScore)
	require.Equal(t, 27, *final.AwayScore)
	require.NotNil(t, final.AwayRank)
	require.Equal(t, 7, *final.AwayRank)
	require.Equal(t, "STATUS_FINAL", final.Status)
	require.Equal(t, "CFP First Round - Notre Dame at Indiana", final.Headline)
	require.True(t, final.KickoffAt.Equal(time.Date(2025, time.December, 20, 21, 0, 0, 0, time.UTC)))

	scheduled := games[1]
	require.Nil(t, scheduled.HomeScore)
	require.Nil(t, scheduled.AwayScore)
	require.Nil(t, scheduled.HomeRank)
	require.NotNil(t, scheduled.AwayRank)
	require.Equal(t, 6, *scheduled.AwayRank)
	require.Equal(t, "Ohio State Buckeyes at Tennessee Volunteers", scheduled.Headline)
}

func TestFetchScoreboard_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events": []}`))
	}))
	client.maxRetries = 1

	games, err := client.FetchScoreboard(context.Background(), time.Date(2025, time.September, 6, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected empty scoreboard, got=%d", len(games))
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got=%d", calls.Load())
	}
}

func TestFetchScoreboard_NonRetryableStatusFailsFast(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	client.maxRetries = 3

	if _, err := client.FetchScoreboard(context.Background(), time.Now()); err == nil {
		t.Fatal("expected error for 404 response")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected single attempt for non-retryable status, got=%d", calls.Load())
	}
}

func TestMapEvent_SkipsMalformedEvents(t *testing.T) {
	t.Parallel()

	if _, ok := mapEvent(scoreboardEvent{ID: "abc"}); ok {
		t.Fatal("non-numeric event id must be skipped")
	}

	event := scoreboardEvent{
		ID:   "42",
		Date: "2025-09-06T19:30Z",
		Competitions: []scoreboardCompetition{{
			Competitors: []scoreboardCompetitor{
				{HomeAway: "home", Score: "21", Team: scoreboardTeamBrief{ID: "333"}},
			},
		}},
	}
	if _, ok := mapEvent(event); ok {
		t.Fatal("event with a single competitor must be skipped")
	}

	event.Competitions[0].Competitors = append(event.Competitions[0].Competitors,
		scoreboardCompetitor{HomeAway: "away", Score: "14", Team: scoreboardTeamBrief{ID: "oops"}})
	if _, ok := mapEvent(event); ok {
		t.Fatal("unparsable away team ref must skip the event")
	}
}
