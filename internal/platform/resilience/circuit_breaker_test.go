package resilience

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(threshold, probes int) (*CircuitBreaker, *time.Time) {
	b := NewCircuitBreaker(threshold, 5*time.Second, probes)
	now := time.Date(2026, 8, 14, 19, 30, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestCircuitBreaker_OpensAndRecovers(t *testing.T) {
	b, now := newTestBreaker(2, 1)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if b.Trips() != 1 {
		t.Fatalf("expected one trip, got %d", b.Trips())
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	b, now := newTestBreaker(1, 1)

	b.RecordFailure()
	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe allowed: %v", err)
	}
	b.RecordFailure()

	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
	if b.Trips() != 2 {
		t.Fatalf("expected two trips, got %d", b.Trips())
	}
}

func TestCircuitBreaker_ExecuteSkipsUncountedErrors(t *testing.T) {
	b, _ := newTestBreaker(1, 1)
	notFound := errors.New("not found")

	err := b.Execute(func() error { return notFound }, func(err error) bool {
		return !errors.Is(err, notFound)
	})
	if !errors.Is(err, notFound) {
		t.Fatalf("expected passthrough error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("uncounted error must not trip breaker, got %s", state)
	}

	_ = b.Execute(func() error { return errors.New("timeout") }, nil)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after counted error, got %s", state)
	}
}

func TestCircuitBreaker_NilAllowsEverything(t *testing.T) {
	b := NewCircuitBreakerFromConfig(CircuitBreakerConfig{Enabled: false})
	if b != nil {
		t.Fatalf("expected nil breaker when disabled")
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("nil breaker must allow: %v", err)
	}
	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("nil breaker state should be closed, got %s", state)
	}
}

func TestCircuitBreakerConfig_WithDefaults(t *testing.T) {
	got := CircuitBreakerConfig{Enabled: true, FailureThreshold: 0, OpenTimeout: -time.Second, HalfOpenMaxReq: 3}.WithDefaults()

	if !got.Enabled {
		t.Fatalf("expected Enabled to be preserved")
	}
	if got.FailureThreshold != defaultFailureThreshold {
		t.Fatalf("expected default failure threshold, got %d", got.FailureThreshold)
	}
	if got.OpenTimeout != defaultOpenTimeout {
		t.Fatalf("expected default open timeout, got %s", got.OpenTimeout)
	}
	if got.HalfOpenMaxReq != 3 {
		t.Fatalf("expected explicit half-open limit to be kept, got %d", got.HalfOpenMaxReq)
	}
}
