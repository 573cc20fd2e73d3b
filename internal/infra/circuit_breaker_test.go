package infra

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSMTP = errors.New("550 relay denied")

func newTestBreaker(now *time.Time) *CircuitBreaker {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Name:             "test",
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      time.Minute,
	})
	cb.now = func() time.Time { return *now }
	return cb
}

func TestCircuitBreaker_AbreTrasFallasConsecutivas(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&now)
	fail := func() error { return errSMTP }

	assert.ErrorIs(t, cb.Execute(fail), errSMTP)
	assert.ErrorIs(t, cb.Execute(fail), errSMTP)
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State(), "a success resets the failure count")

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(fail), errSMTP)
	}
	assert.Equal(t, CBOpen, cb.State())

	called := false
	err := cb.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SemiAbiertoCierraConExitos(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&now)
	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errSMTP })
	}

	now = now.Add(59 * time.Second)
	assert.Equal(t, CBOpen, cb.State())
	now = now.Add(time.Second)
	assert.Equal(t, CBHalfOpen, cb.State())

	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBHalfOpen, cb.State())
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreaker_SemiAbiertoReabreConFalla(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&now)
	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errSMTP })
	}
	now = now.Add(time.Minute)

	assert.ErrorIs(t, cb.Execute(func() error { return errSMTP }), errSMTP)
	assert.Equal(t, CBOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(func() error { return nil }), ErrCircuitOpen)
}

func TestCircuitBreaker_UnaSondaALaVez(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&now)
	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errSMTP })
	}
	now = now.Add(time.Minute)

	started := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = cb.Execute(func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	assert.ErrorIs(t, cb.Execute(func() error { return nil }), ErrCircuitOpen)
	close(release)
	wg.Wait()

	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestNewCircuitBreaker_Defaults(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{})
	assert.Equal(t, "default", cb.name)
	assert.Equal(t, DefaultCBConfig("default"), cb.cfg)
	assert.Equal(t, "half-open", CBHalfOpen.String())
}
