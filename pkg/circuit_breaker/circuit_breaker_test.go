package circuit_breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	var (
		clock   = &fakeClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
		cb      = newCircuitBreaker(10, time.Second, 0.3, 2, clock.now)
		calls   int
		errDown = errors.New("backend down")
	)
	failing := func() error { calls++; return errDown }
	ok := func() error { calls++; return nil }

	for i := 0; i < 2; i++ {
		require.ErrorIs(t, cb.Call(failing), errDown)
	}
	require.Equal(t, Closed, cb.State())

	require.ErrorIs(t, cb.Call(failing), errDown)
	require.Equal(t, Open, cb.State())

	before := calls
	require.ErrorIs(t, cb.Call(ok), ErrOpenCB)
	require.Equal(t, before, calls, "open breaker must not reach the service")

	clock.t = clock.t.Add(2 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())
}

func Test_circuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	cb := newCircuitBreaker(1, time.Second, 1, 3, clock.now)

	require.Error(t, cb.Call(func() error { return errors.New("x") }))
	require.Equal(t, Open, cb.State())

	clock.t = clock.t.Add(2 * time.Second)
	require.Error(t, cb.Call(func() error { return errors.New("y") }))
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
	require.Equal(t, "closed", cb.State().String())
}

func Test_circuitBreaker_HalfOpenSingleTrial(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	cb := newCircuitBreaker(1, time.Second, 1, 1, clock.now)

	require.Error(t, cb.Call(func() error { return errors.New("x") }))
	require.Equal(t, Open, cb.State())
	clock.t = clock.t.Add(2 * time.Second)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- cb.Call(func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	reached := false
	require.ErrorIs(t, cb.Call(func() error { reached = true; return nil }), ErrOpenCB)
	require.False(t, reached, "only the trial call may run while half-open")
	require.Equal(t, HalfOpen, cb.State())

	close(release)
	require.NoError(t, <-done)
	require.Equal(t, Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}

func Test_circuitBreaker_Ignore(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	cb := newCircuitBreaker(2, time.Second, 0.5, 1, clock.now)
	errGone := errors.New("caller went away")

	for i := 0; i < 10; i++ {
		err := cb.Call(func() error { return Ignore(errGone) })
		require.Equal(t, errGone, err)
	}
	require.Equal(t, Closed, cb.State())
	require.NoError(t, Ignore(nil))

	require.Error(t, cb.Call(func() error { return errors.New("down") }))
	require.Equal(t, Open, cb.State())

	clock.t = clock.t.Add(2 * time.Second)
	require.Equal(t, errGone, cb.Call(func() error { return Ignore(errGone) }))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
	require.Equal(t, Closed, cb.State())
}
