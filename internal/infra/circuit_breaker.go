package infra

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ── Circuit Breaker ───────────────────────────────────────────────────────────
// Closed → Open → Half-Open breaker guarding an unreliable dependency (the
// SMTP relay). While open, calls fail fast with ErrCircuitOpen and the job
// is retried later by the worker.

type CBState int

const (
	CBClosed CBState = iota
	CBOpen
	CBHalfOpen
)

func (s CBState) String() string {
	switch s {
	case CBClosed:
		return "closed"
	case CBOpen:
		return "open"
	case CBHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrCircuitOpen is returned by Execute while the breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitBreakerConfig struct {
	Name             string
	FailureThreshold int           // consecutive failures that trip the breaker
	SuccessThreshold int           // half-open successes needed to close again
	OpenTimeout      time.Duration // time spent open before probing
}

// DefaultCBConfig is tuned for outgoing mail.
func DefaultCBConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		FailureThreshold: 5,
		SuccessThreshold: 2,
		OpenTimeout:      60 * time.Second,
	}
}

type CircuitBreaker struct {
	mu       sync.Mutex
	name     string
	state    CBState
	failures int
	probes   int
	openedAt time.Time
	cfg      CircuitBreakerConfig
	now      func() time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 2
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 60 * time.Second
	}
	if cfg.Name == "" {
		cfg.Name = "default"
	}
	cb := &CircuitBreaker{name: cfg.Name, cfg: cfg, now: time.Now}
	BreakerState.WithLabelValues(cb.name).Set(float64(CBClosed))
	return cb
}

// State returns the current state, moving open → half-open once the open
// timeout has elapsed.
func (cb *CircuitBreaker) State() CBState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.refresh()
	return cb.state
}

// Execute runs fn unless the breaker is open. In half-open only one probe
// runs at a time; concurrent callers fail fast.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	cb.refresh()
	probe := false
	switch cb.state {
	case CBOpen:
		cb.mu.Unlock()
		return ErrCircuitOpen
	case CBHalfOpen:
		if cb.probes > 0 {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.probes++
		probe = true
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if probe && cb.state == CBHalfOpen {
		cb.probes--
	}
	if err != nil {
		cb.onFailure()
		return err
	}
	cb.onSuccess()
	return nil
}

// must be called under lock
func (cb *CircuitBreaker) refresh() {
	if cb.state == CBOpen && cb.now().Sub(cb.openedAt) >= cb.cfg.OpenTimeout {
		cb.transition(CBHalfOpen)
	}
}

func (cb *CircuitBreaker) onFailure() {
	switch cb.state {
	case CBClosed:
		cb.failures++
		if cb.failures >= cb.cfg.FailureThreshold {
			cb.trip()
		}
	case CBHalfOpen:
		cb.trip()
	}
}

func (cb *CircuitBreaker) onSuccess() {
	switch cb.state {
	case CBClosed:
		cb.failures = 0
	case CBHalfOpen:
		cb.failures++
		if cb.failures >= cb.cfg.SuccessThreshold {
			cb.transition(CBClosed)
		}
	}
}

func (cb *CircuitBreaker) trip() {
	cb.openedAt = cb.now()
	cb.transition(CBOpen)
}

func (cb *CircuitBreaker) transition(to CBState) {
	if cb.state == to {
		return
	}
	log.Warn().Str("breaker", cb.name).Str("from", cb.state.String()).Str("to", to.String()).
		Msg("circuit breaker state change")
	cb.state = to
	cb.failures = 0
	cb.probes = 0
	BreakerState.WithLabelValues(cb.name).Set(float64(to))
}
