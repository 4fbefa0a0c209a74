package resilience

import (
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var ErrCircuitOpen = crerr.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

type Clock interface {
	Now() time.Time
}

// CircuitBreaker stops calls to an upstream after repeated failures and lets
// a limited number of probes through once the open timeout has passed.
type CircuitBreaker struct {
	mu    sync.Mutex
	cfg   CircuitBreakerConfig
	clock Clock

	state          CircuitState
	failures       int
	openedAt       time.Time
	probesInFlight int
	probesPassed   int
}

// NewCircuitBreaker returns nil when cfg is disabled; a nil breaker admits every call.
func NewCircuitBreaker(cfg CircuitBreakerConfig, clock Clock) *CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	return &CircuitBreaker{cfg: cfg.normalized(), clock: clock, state: CircuitStateClosed}
}

// Acquire admits one call. The returned done func must be called exactly once
// with whether the upstream failed.
func (b *CircuitBreaker) Acquire() (done func(failed bool), err error) {
	if b == nil {
		return func(bool) {}, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.clock.Now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return nil, ErrCircuitOpen
		}
		b.state, b.probesInFlight, b.probesPassed = CircuitStateHalfOpen, 0, 0
	}

	probe := b.state == CircuitStateHalfOpen
	if probe {
		if b.probesInFlight >= b.cfg.HalfOpenProbes {
			return nil, ErrCircuitOpen
		}
		b.probesInFlight++
	}

	var once sync.Once
	return func(failed bool) {
		once.Do(func() { b.record(probe, failed) })
	}, nil
}

func (b *CircuitBreaker) record(probe, failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if probe && b.probesInFlight > 0 {
		b.probesInFlight--
	}

	switch {
	case failed && (probe || b.state == CircuitStateHalfOpen):
		b.open()
	case failed:
		b.failures++
		if b.state == CircuitStateClosed && b.failures >= b.cfg.FailureThreshold {
			b.open()
		}
	case b.state == CircuitStateHalfOpen:
		b.probesPassed++
		if b.probesPassed >= b.cfg.HalfOpenProbes && b.probesInFlight == 0 {
			b.state, b.failures = CircuitStateClosed, 0
		}
	default:
		b.failures = 0
	}
}

func (b *CircuitBreaker) open() {
	b.state = CircuitStateOpen
	b.openedAt = b.clock.Now()
	b.probesInFlight, b.probesPassed = 0, 0
}

func (b *CircuitBreaker) State() CircuitState {
	if b == nil {
		return CircuitStateClosed
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.clock.Now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}
