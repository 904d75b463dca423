package booking

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Astemirdum/room-booking/console/internal/availability"
	"github.com/Astemirdum/room-booking/console/internal/errs"
	"github.com/Astemirdum/room-booking/console/internal/events"
	"github.com/Astemirdum/room-booking/console/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=desk.go -destination=mocks/mock.go

type RequestService interface {
	Get(ctx context.Context, id int) (*model.Request, error)
	Approve(ctx context.Context, id int, data model.ApproveRequest) (json.RawMessage, error)
	Reject(ctx context.Context, id int) (json.RawMessage, error)
}

// Desk keeps the open modals.
type Desk struct {
	log       *zap.Logger
	requests  RequestService
	fetcher   availability.RoomFetcher
	publisher events.Publisher

	mu     sync.RWMutex
	modals map[uuid.UUID]*Modal
	wg     sync.WaitGroup
}

func NewDesk(log *zap.Logger, requests RequestService, fetcher availability.RoomFetcher, publisher events.Publisher) *Desk {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Desk{
		log:       log.Named("desk"),
		requests:  requests,
		fetcher:   fetcher,
		publisher: publisher,
		modals:    make(map[uuid.UUID]*Modal),
	}
}

// Open fetches the request and opens a modal for it. Candidate rooms are
// resolved in the background; use Modal.Wait to block on them.
func (d *Desk) Open(ctx context.Context, id int) (*Modal, error) {
	if id <= 0 {
		return nil, errs.ErrInvalidRequest
	}
	req, err := d.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return d.OpenSubject(model.StructuredRequest{Request: req})
}

func (d *Desk) OpenSubject(subject model.ModalSubject) (*Modal, error) {
	s, ok := subject.(model.StructuredRequest)
	if !ok || s.Request == nil || s.Request.ID == 0 {
		return nil, errs.ErrInvalidRequest
	}
	m := newModal(d.log, s.Request, d.fetcher, d.requests, d.publisher, d.forget)

	d.mu.Lock()
	d.modals[m.ID()] = m
	d.mu.Unlock()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		m.load(context.Background())
	}()
	d.log.Debug("modal opened", zap.String("modal", m.ID().String()), zap.Int("request", s.Request.ID))
	return m, nil
}

func (d *Desk) Get(id uuid.UUID) (*Modal, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	m, ok := d.modals[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return m, nil
}

func (d *Desk) Close(id uuid.UUID) error {
	m, err := d.Get(id)
	if err != nil {
		return err
	}
	m.Close()
	return nil
}

func (d *Desk) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.modals)
}

// Shutdown closes every modal and waits for pending loads.
func (d *Desk) Shutdown() {
	d.mu.RLock()
	open := make([]*Modal, 0, len(d.modals))
	for _, m := range d.modals {
		open = append(open, m)
	}
	d.mu.RUnlock()

	for _, m := range open {
		m.Close()
	}
	d.wg.Wait()
}

func (d *Desk) forget(id uuid.UUID) {
	d.mu.Lock()
	delete(d.modals, id)
	d.mu.Unlock()
	d.log.Debug("modal closed", zap.String("modal", id.String()))
}
