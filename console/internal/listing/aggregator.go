package listing

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Astemirdum/room-booking/console/internal/model"
	"go.uber.org/zap"
)

const defaultPollInterval = 5 * time.Minute

type Lister interface {
	ListAll(ctx context.Context) ([]model.Request, error)
}

type State struct {
	Requests []model.Request `json:"requests"`
	Loading  bool            `json:"loading"`
	LastErr  error           `json:"-"`
}

// Aggregator keeps the latest list of reservation requests.
type Aggregator struct {
	log      *zap.Logger
	lister   Lister
	interval time.Duration

	mu    sync.RWMutex
	state State
}

func NewAggregator(log *zap.Logger, lister Lister, interval time.Duration) *Aggregator {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Aggregator{
		log:      log.Named("listing"),
		lister:   lister,
		interval: interval,
		state:    State{Requests: []model.Request{}, Loading: true},
	}
}

// Run fetches immediately and then on every tick until ctx is done.
// Fetches never overlap since they run on this goroutine.
func (a *Aggregator) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			a.log.Debug("polling stopped")
			return
		case <-ticker.C:
			a.Refresh(ctx)
		}
	}
}

func (a *Aggregator) Refresh(ctx context.Context) {
	requests, err := a.lister.ListAll(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.Loading = false
	if err != nil {
		if ctx.Err() == nil {
			a.log.Error("list requests", zap.Error(err))
		}
		a.state.LastErr = err
		return
	}
	a.state.LastErr = nil
	a.state.Requests = requests
	a.log.Debug("requests refreshed", zap.Int("count", len(requests)))
}

func (a *Aggregator) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s := a.state
	s.Requests = append(make([]model.Request, 0, len(s.Requests)), s.Requests...)
	return s
}

func (a *Aggregator) Requests() []model.Request {
	return a.State().Requests
}

// Filter matches the status label exactly and the email as a case-insensitive
// substring. Empty criteria match everything.
func (a *Aggregator) Filter(status, email string) []model.Request {
	return Filter(a.Requests(), status, email)
}

func Filter(requests []model.Request, status, email string) []model.Request {
	email = strings.ToLower(email)
	out := make([]model.Request, 0, len(requests))
	for _, r := range requests {
		if status != "" && r.StatusCode().Label() != status {
			continue
		}
		if email != "" && !strings.Contains(strings.ToLower(r.Email), email) {
			continue
		}
		out = append(out, r)
	}
	return out
}
