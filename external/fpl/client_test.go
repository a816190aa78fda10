package fpl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/fpl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fpl-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/fpl-dashboard/internal/usecase"
)

const bootstrapBody = `{
  "elements": [
    {"first_name": "Bukayo", "second_name": "Saka", "team": 1, "total_points": 50, "selected_by_percent": "41.2"}
  ],
  "teams": [{"id": 1, "name": "Arsenal", "short_name": "ARS"}],
  "element_types": [{"id": 3, "singular_name": "Midfielder"}]
}`

const fixturesBody = `[
  {"id": 1, "event": 1, "team_h": 1, "team_a": 2, "kickoff_time": "2026-08-14T19:00:00Z",
   "finished": true, "finished_provisional": true, "team_h_score": 2, "team_a_score": 0},
  {"id": 2, "event": null, "team_h": 2, "team_a": 1, "kickoff_time": null,
   "finished": false, "finished_provisional": false, "team_h_score": null, "team_a_score": null}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		BaseURL:        srv.URL + "/",
		Timeout:        2 * time.Second,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestClient_FetchBootstrap(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bootstrap-static/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bootstrapBody))
	}, resilience.CircuitBreakerConfig{})

	got, err := client.FetchBootstrap(context.Background())
	if err != nil {
		t.Fatalf("FetchBootstrap error: %v", err)
	}
	if len(got.Elements) != 1 || len(got.Teams) != 1 || len(got.ElementTypes) != 1 {
		t.Fatalf("unexpected payload sizes: %+v", got)
	}
	if got.Elements[0]["second_name"] != "Saka" {
		t.Fatalf("expected generic element record, got %v", got.Elements[0])
	}
	if got.Teams[0]["name"] != "Arsenal" {
		t.Fatalf("expected team name Arsenal, got %v", got.Teams[0]["name"])
	}
}

func TestClient_FetchFixtures(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(fixturesBody))
	}, resilience.CircuitBreakerConfig{})

	got, err := client.FetchFixtures(context.Background())
	if err != nil {
		t.Fatalf("FetchFixtures error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(got))
	}

	played := got[0]
	if played.KickoffAt == nil || !played.KickoffAt.Equal(time.Date(2026, 8, 14, 19, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected kickoff: %v", played.KickoffAt)
	}
	if played.HomeScore == nil || *played.HomeScore != 2 || played.AwayScore == nil || *played.AwayScore != 0 {
		t.Fatalf("unexpected scores: %v %v", played.HomeScore, played.AwayScore)
	}
	if fixture.DeriveStatus(played) != fixture.StatusFinished {
		t.Fatalf("expected finished status")
	}

	upcoming := got[1]
	if upcoming.KickoffAt != nil || upcoming.HomeScore != nil || upcoming.Event != 0 {
		t.Fatalf("expected unscheduled fixture without kickoff and scores, got %+v", upcoming)
	}
}

func TestClient_NonRetryableStatusWrapsDependencyUnavailable(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "gone", http.StatusNotFound)
	}, resilience.CircuitBreakerConfig{})

	_, err := client.FetchBootstrap(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", calls.Load())
	}
}

func TestClient_DecodeFailureWrapsDependencyUnavailable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}, resilience.CircuitBreakerConfig{})

	if _, err := client.FetchBootstrap(context.Background()); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable on decode failure, got %v", err)
	}
}

func TestClient_BreakerOpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 3; i++ {
		if _, err := client.FetchFixtures(context.Background()); !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("attempt %d: expected ErrDependencyUnavailable, got %v", i, err)
		}
	}

	if calls.Load() != 2 {
		t.Fatalf("expected breaker to stop the third call, upstream saw %d", calls.Load())
	}
	if client.BreakerState() != resilience.CircuitStateOpen {
		t.Fatalf("expected open breaker, got %s", client.BreakerState())
	}
}

func TestClient_HalfOpenBurstClosesBreaker(t *testing.T) {
	t.Parallel()

	var failing atomic.Bool
	failing.Store(true)
	arrived := make(chan struct{}, 8)
	release := make(chan struct{})

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		arrived <- struct{}{}
		<-release
		_, _ = w.Write([]byte(fixturesBody))
	}, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      10 * time.Millisecond,
		HalfOpenMaxReq:   2,
	})

	if _, err := client.FetchFixtures(context.Background()); err == nil {
		t.Fatalf("expected the first call to fail")
	}
	if client.BreakerState() != resilience.CircuitStateOpen {
		t.Fatalf("expected open breaker, got %s", client.BreakerState())
	}

	failing.Store(false)
	time.Sleep(20 * time.Millisecond)

	errCh := make(chan error, 2)
	go func() {
		_, err := client.FetchFixtures(context.Background())
		errCh <- err
	}()
	<-arrived
	go func() {
		_, err := client.FetchFixtures(context.Background())
		errCh <- err
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)

	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			t.Fatalf("concurrent fetch %d: %v", i, err)
		}
	}

	// The burst used one probe, the second probe closes the breaker.
	if _, err := client.FetchFixtures(context.Background()); err != nil {
		t.Fatalf("follow-up fetch: %v", err)
	}
	if client.BreakerState() != resilience.CircuitStateClosed {
		t.Fatalf("expected closed breaker after successful probes, got %s", client.BreakerState())
	}
}

func TestParseKickoff(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"2026-08-14T19:00:00Z": true,
		"2026-08-14T19:00:00":  true,
		"2026-08-14":           true,
		"":                     false,
		"tbc":                  false,
	}
	for raw, ok := range cases {
		if got := parseKickoff(raw); (got != nil) != ok {
			t.Fatalf("parseKickoff(%q) = %v, want parsed=%v", raw, got, ok)
		}
	}
}
