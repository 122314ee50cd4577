package espn

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/gridironclub/cfb-fantasy/internal/domain/game"
	"github.com/gridironclub/cfb-fantasy/internal/platform/logging"
	"github.com/gridironclub/cfb-fantasy/internal/platform/resilience"
	"github.com/gridironclub/cfb-fantasy/internal/usecase"
)

const (
	defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/college-football"
	// groups=80 restricts the scoreboard to FBS programs.
	defaultGroups     = "80"
	defaultEventLimit = "300"
	scoreboardPath    = "/scoreboard"
	maxResponseBytes  = 6 << 20
)

var errESPNTransient = crerr.New("espn transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the public ESPN college football scoreboard. The feed needs no
// credentials, so resilience is the whole job: circuit breaking, request
// collapsing, and bounded retries with backoff.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ usecase.ScoreboardProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchScoreboard returns every event ESPN lists for the given calendar date.
func (c *Client) FetchScoreboard(ctx context.Context, date time.Time) ([]usecase.ExternalGame, error) {
	query := map[string]string{
		"dates":  date.UTC().Format("20060102"),
		"groups": defaultGroups,
		"limit":  defaultEventLimit,
	}

	var envelope scoreboardEnvelope
	if err := c.doJSON(ctx, scoreboardPath, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch scoreboard date=%s: %w", query["dates"], err)
	}

	games := make([]usecase.ExternalGame, 0, len(envelope.Events))
	for _, event := range envelope.Events {
		mapped, ok := mapEvent(event)
		if !ok {
			c.logger.WarnContext(ctx, "espn event skipped", "event_id", event.ID, "name", event.Name)
			continue
		}
		games = append(games, mapped)
	}
	return games, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "espn circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: scoreboard feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errESPNTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode scoreboard payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errESPNTransient, err)
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errESPNTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: feed status=%d body=%s", errESPNTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := io.Copy(buf, io.LimitReader(body, maxResponseBytes)); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.B...), nil
}

func mapEvent(event scoreboardEvent) (usecase.ExternalGame, bool) {
	eventID, err := strconv.ParseInt(strings.TrimSpace(event.ID), 10, 64)
	if err != nil || eventID <= 0 || len(event.Competitions) == 0 {
		return usecase.ExternalGame{}, false
	}
	competition := event.Competitions[0]
	if len(competition.Competitors) < 2 {
		return usecase.ExternalGame{}, false
	}

	out := usecase.ExternalGame{
		EventID:   eventID,
		Status:    event.Status.Type.Name,
		Headline:  eventHeadline(event),
		KickoffAt: parseEventDate(event.Date),
	}

	started := event.Status.Type.State != "pre"
	var haveHome, haveAway bool
	for _, competitor := range competition.Competitors {
		ref, refErr := strconv.ParseInt(strings.TrimSpace(competitor.Team.ID), 10, 64)
		if refErr != nil || ref <= 0 {
			continue
		}
		score := parseScore(competitor.Score, started)
		rank := parseRank(competitor.CuratedRank.Current)
		switch competitor.HomeAway {
		case "home":
			out.HomeSchoolRef = ref
			out.HomeScore = score
			out.HomeRank = rank
			haveHome = true
		case "away":
			out.AwaySchoolRef = ref
			out.AwayScore = score
			out.AwayRank = rank
			haveAway = true
		}
	}
	if !haveHome || !haveAway {
		return usecase.ExternalGame{}, false
	}
	return out, true
}

// eventHeadline prefers the competition note over the raw event name; the note
// is where ESPN labels bowls and playoff rounds.
func eventHeadline(event scoreboardEvent) string {
	for _, competition := range event.Competitions {
		notes := append([]scoreboardNote(nil), competition.Notes...)
		sort.SliceStable(notes, func(i, j int) bool {
			return notes[i].Type == "event" && notes[j].Type != "event"
		})
		for _, note := range notes {
			if headline := strings.TrimSpace(note.Headline); headline != "" {
				return headline
			}
		}
	}
	return strings.TrimSpace(event.Name)
}

func parseEventDate(value string) time.Time {
	value = strings.TrimSpace(value)
	// ESPN emits minute precision with a literal Z, e.g. 2025-09-06T19:30Z.
	for _, layout := range []string{"2006-01-02T15:04Z07:00", time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func parseScore(value string, started bool) *int {
	if !started {
		return nil
	}
	score, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || score < 0 {
		return nil
	}
	return &score
}

func parseRank(current int) *int {
	if current <= 0 || current >= game.UnrankedSentinel {
		return nil
	}
	rank := current
	return &rank
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
