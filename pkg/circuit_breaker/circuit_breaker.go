package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpenCB = errors.New("circuit breaker is open")

type ignored struct{ err error }

func (e ignored) Error() string { return e.err.Error() }
func (e ignored) Unwrap() error { return e.err }

// Ignore marks err as not the service's fault: Call returns it unwrapped
// and records no outcome for the call.
func Ignore(err error) error {
	if err == nil {
		return nil
	}
	return ignored{err: err}
}

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

type circuitBreaker struct {
	mu    sync.Mutex
	state Status
	now   func() time.Time

	// sliding window of the last recordLength outcomes, true = failed
	buffer       []bool
	pos          int
	recordLength int

	// failure ratio in the window that opens the breaker
	percentile float64
	// how long the breaker stays open before a trial call is allowed
	timeout  time.Duration
	openedAt time.Time

	// consecutive successes required in half-open to close again
	recoveryRequests int
	successCount     int
	// a half-open trial call is in flight
	probing bool
}

func New(recordLength int, timeout time.Duration, percentile float64, recoveryRequests int) CircuitBreaker {
	return newCircuitBreaker(recordLength, timeout, percentile, recoveryRequests, time.Now)
}

func newCircuitBreaker(recordLength int, timeout time.Duration, percentile float64, recoveryRequests int, now func() time.Time) *circuitBreaker {
	if recordLength <= 0 {
		recordLength = 1
	}
	return &circuitBreaker{
		state:            Closed,
		now:              now,
		buffer:           make([]bool, recordLength),
		recordLength:     recordLength,
		percentile:       percentile,
		timeout:          timeout,
		recoveryRequests: recoveryRequests,
	}
}

// Call runs service unless the breaker is open. While half-open only one
// call at a time reaches the service. The service is never retried.
func (cb *circuitBreaker) Call(service func() error) error {
	trial, ok := cb.allow()
	if !ok {
		return ErrOpenCB
	}

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if trial {
		cb.probing = false
	}
	var ign ignored
	if errors.As(err, &ign) {
		return ign.err
	}
	// calls admitted before the breaker opened don't decide recovery
	if cb.state == HalfOpen && !trial {
		return err
	}
	cb.record(err != nil)
	return err
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

// allow reports whether a call may run and whether it is the half-open trial.
func (cb *circuitBreaker) allow() (trial, ok bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	switch cb.state {
	case Closed:
		return false, true
	case Open:
		if cb.now().Sub(cb.openedAt) <= cb.timeout {
			return false, false
		}
		cb.state = HalfOpen
		cb.successCount = 0
		cb.probing = false
	}
	if cb.probing {
		return false, false
	}
	cb.probing = true
	return true, true
}

func (cb *circuitBreaker) record(failed bool) {
	cb.buffer[cb.pos] = failed
	cb.pos = (cb.pos + 1) % cb.recordLength

	if cb.state == HalfOpen {
		if failed {
			cb.trip()
			return
		}
		cb.successCount++
		if cb.successCount >= cb.recoveryRequests {
			cb.reset()
		}
		return
	}

	fails := 0
	for _, f := range cb.buffer {
		if f {
			fails++
		}
	}
	if float64(fails)/float64(cb.recordLength) >= cb.percentile {
		cb.trip()
	}
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.buffer {
		cb.buffer[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.probing = false
	cb.state = Closed
}
