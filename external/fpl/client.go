package fpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/bootstrap"
	"github.com/riskibarqy/fpl-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/fpl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fpl-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/fpl-dashboard/internal/usecase"
)

const (
	DefaultBaseURL = "https://fantasy.premierleague.com/api"

	bootstrapPath = "/bootstrap-static/"
	fixturesPath  = "/fixtures/"

	maxBodyBytes = 16 << 20
)

var errFPLTransient = crerr.New("fpl transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the public Fantasy Premier League API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.SingleFlight
}

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
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		maxRetries: max(cfg.MaxRetries, 0),
		logger:     logger.Named("fpl"),
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
	}
}

func (c *Client) BreakerState() resilience.CircuitState {
	return c.breaker.State()
}

type bootstrapEnvelope struct {
	Elements     []map[string]any `json:"elements"`
	Teams        []map[string]any `json:"teams"`
	ElementTypes []map[string]any `json:"element_types"`
}

// FetchBootstrap returns the season snapshot with players and teams left as
// generic records so a dropped upstream field stays detectable.
func (c *Client) FetchBootstrap(ctx context.Context) (bootstrap.Payload, error) {
	var payload bootstrapEnvelope
	if err := c.doJSON(ctx, bootstrapPath, &payload); err != nil {
		return bootstrap.Payload{}, fmt.Errorf("fetch bootstrap: %w", err)
	}

	return bootstrap.Payload{
		Elements:     payload.Elements,
		Teams:        payload.Teams,
		ElementTypes: payload.ElementTypes,
	}, nil
}

type fixtureItem struct {
	ID                  int64   `json:"id"`
	Event               *int    `json:"event"`
	TeamH               int64   `json:"team_h"`
	TeamA               int64   `json:"team_a"`
	KickoffTime         *string `json:"kickoff_time"`
	EventDate           *string `json:"event_date"`
	Finished            bool    `json:"finished"`
	FinishedProvisional bool    `json:"finished_provisional"`
	TeamHScore          *int    `json:"team_h_score"`
	TeamAScore          *int    `json:"team_a_score"`
}

func (c *Client) FetchFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	var items []fixtureItem
	if err := c.doJSON(ctx, fixturesPath, &items); err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		out = append(out, mapFixture(item))
	}
	return out, nil
}

func mapFixture(item fixtureItem) fixture.Fixture {
	out := fixture.Fixture{
		ID:                  item.ID,
		HomeTeamID:          item.TeamH,
		AwayTeamID:          item.TeamA,
		Finished:            item.Finished,
		FinishedProvisional: item.FinishedProvisional,
		HomeScore:           item.TeamHScore,
		AwayScore:           item.TeamAScore,
	}
	if item.Event != nil {
		out.Event = *item.Event
	}

	raw := ""
	switch {
	case item.KickoffTime != nil && strings.TrimSpace(*item.KickoffTime) != "":
		raw = *item.KickoffTime
	case item.EventDate != nil:
		raw = *item.EventDate
	}
	out.KickoffAt = parseKickoff(raw)
	return out
}

func parseKickoff(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", time.DateTime, time.DateOnly} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			parsed = parsed.UTC()
			return &parsed
		}
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	fullURL := c.baseURL + path
	// Followers share the leader's result, so only the leader takes a breaker slot.
	out, err, shared := c.flight.Do(path, func() (any, error) {
		var raw []byte
		err := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isCircuitFailure)
		return raw, err
	})
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "fpl circuit breaker rejected request",
			"path", path,
			"state", c.breaker.State(),
			"trips", c.breaker.Trips(),
		)
		return fmt.Errorf("%w: fantasy premier league api is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
	}
	if shared {
		c.logger.DebugContext(ctx, "fpl request shared with concurrent caller", "path", path)
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("%w: unexpected response payload type %T", usecase.ErrDependencyUnavailable, out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode %s payload: %w", usecase.ErrDependencyUnavailable, path, err)
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
		req.Header.Set("user-agent", "fpl-dashboard")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errFPLTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errFPLTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: upstream status=%d body=%s", errFPLTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("upstream status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * time.Second)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("upstream request failed")
	}
	c.logger.WarnContext(ctx, "fpl request failed", "url", fullURL, "attempts", c.maxRetries+1, "error", lastErr)
	return nil, lastErr
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errFPLTransient)
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
