package resilience

import (
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	b := NewCircuitBreaker(2, time.Minute, 1)

	if err := b.Allow(); err != nil {
		t.Fatalf("closed breaker should allow: %v", err)
	}
	b.RecordFailure()
	b.RecordFailure()

	if b.State() != CircuitStateOpen {
		t.Fatalf("expected open state, got %s", b.State())
	}
	if err := b.Allow(); err != ErrCircuitOpen {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	b := NewCircuitBreaker(1, 10*time.Millisecond, 1)
	now := time.Now()
	b.now = func() time.Time { return now }

	b.RecordFailure()
	if b.State() != CircuitStateOpen {
		t.Fatalf("expected open state, got %s", b.State())
	}

	now = now.Add(20 * time.Millisecond)
	if err := b.Allow(); err != nil {
		t.Fatalf("half-open probe should be allowed: %v", err)
	}
	b.RecordSuccess()

	if b.State() != CircuitStateClosed {
		t.Fatalf("expected closed state, got %s", b.State())
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	b := NewCircuitBreaker(1, 10*time.Millisecond, 1)
	now := time.Now()
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(20 * time.Millisecond)
	if err := b.Allow(); err != nil {
		t.Fatalf("half-open probe should be allowed: %v", err)
	}
	b.RecordFailure()

	if b.State() != CircuitStateOpen {
		t.Fatalf("expected open state, got %s", b.State())
	}
}

func TestNormalizeCircuitBreakerConfig_FillsDefaults(t *testing.T) {
	cfg := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	if cfg.FailureThreshold != 5 || cfg.OpenTimeout != 15*time.Second || cfg.HalfOpenMaxReq != 2 {
		t.Fatalf("unexpected normalized config: %+v", cfg)
	}
}
