package availability

import (
	"context"
	"sync"

	"github.com/Astemirdum/room-booking/console/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate go run github.com/golang/mock/mockgen -source=resolver.go -destination=mocks/mock.go

type RoomFetcher interface {
	FetchRoomsAvailable(ctx context.Context, req *model.Request) ([]model.Room, error)
	FetchSchedulesAvailable(ctx context.Context, req *model.Request) ([]model.Room, error)
}

type State struct {
	RoomsAvailable  []model.Room `json:"roomsAvailable"`
	RangesAvailable []model.Room `json:"rangesAvailable"`
	Loading         bool         `json:"loading"`
	LastErr         error        `json:"-"`
}

// Resolver keeps the candidate rooms of one request at a time.
type Resolver struct {
	log     *zap.Logger
	fetcher RoomFetcher

	mu      sync.RWMutex
	current *model.Request
	gen     uint64
	state   State
}

func NewResolver(log *zap.Logger, fetcher RoomFetcher) *Resolver {
	return &Resolver{
		log:     log.Named("resolver"),
		fetcher: fetcher,
		state:   State{Loading: true, RoomsAvailable: []model.Room{}, RangesAvailable: []model.Room{}},
	}
}

// Load fetches rooms and schedules for req and blocks until both settle.
// Calling it again with the same pointer is a no-op; a different pointer
// discards the previous results, even ones still in flight.
func (r *Resolver) Load(ctx context.Context, req *model.Request) {
	r.mu.Lock()
	if r.current == req && r.gen != 0 {
		r.mu.Unlock()
		return
	}
	r.gen++
	gen := r.gen
	r.current = req
	r.state = State{Loading: true, RoomsAvailable: []model.Room{}, RangesAvailable: []model.Room{}}
	r.mu.Unlock()

	var g errgroup.Group
	g.Go(func() error {
		rooms, err := r.fetcher.FetchRoomsAvailable(ctx, req)
		r.commit(gen, func(s *State) {
			if err != nil {
				r.fetchFailed(ctx, "fetch rooms", req, err)
				s.LastErr = err
				return
			}
			if rooms != nil {
				s.RoomsAvailable = rooms
			}
		})
		return nil
	})
	g.Go(func() error {
		ranges, err := r.fetcher.FetchSchedulesAvailable(ctx, req)
		r.commit(gen, func(s *State) {
			if err != nil {
				r.fetchFailed(ctx, "fetch schedules", req, err)
				s.LastErr = err
				return
			}
			s.RangesAvailable = markUnavailable(ranges)
		})
		return nil
	})
	_ = g.Wait()

	r.commit(gen, func(s *State) { s.Loading = false })
}

// fetchFailed keeps cancelled loads out of the error log.
func (r *Resolver) fetchFailed(ctx context.Context, msg string, req *model.Request, err error) {
	if ctx.Err() != nil {
		r.log.Debug(msg, zap.Int("request", requestID(req)), zap.Error(err))
		return
	}
	r.log.Error(msg, zap.Int("request", requestID(req)), zap.Error(err))
}

func (r *Resolver) commit(gen uint64, apply func(*State)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return
	}
	apply(&r.state)
}

// State returns a copy of the current outputs.
func (r *Resolver) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := r.state
	s.RoomsAvailable = cloneRooms(s.RoomsAvailable)
	s.RangesAvailable = cloneRooms(s.RangesAvailable)
	return s
}

func cloneRooms(rooms []model.Room) []model.Room {
	out := make([]model.Room, len(rooms))
	copy(out, rooms)
	return out
}

// markUnavailable forces rooms without free intervals into the reserved state,
// whatever the backend reported.
func markUnavailable(rooms []model.Room) []model.Room {
	out := make([]model.Room, 0, len(rooms))
	for _, room := range rooms {
		if len(room.Intervals) == 0 {
			room.Status = model.RoomReserved
		}
		out = append(out, room)
	}
	return out
}

func requestID(req *model.Request) int {
	if req == nil {
		return 0
	}
	return req.ID
}
