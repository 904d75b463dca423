package booking

import (
	"sync"

	"github.com/Astemirdum/room-booking/console/internal/model"
)

type View string

const (
	RoomsView     View = "rooms"
	SchedulesView View = "schedules"
)

func (v View) Valid() bool {
	return v == RoomsView || v == SchedulesView
}

type SelectionState struct {
	RoomID    int    `json:"roomId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	View      View   `json:"view"`
}

// Selection is the room/time choice made inside one modal. The chosen room is
// shared by both views; switching views never clears it.
type Selection struct {
	mu    sync.Mutex
	state SelectionState
}

func NewSelection() *Selection {
	return &Selection{state: SelectionState{View: RoomsView}}
}

// SelectRoom picks room unless it is reserved. Proposed times of the room are
// adopted only for the bounds that are still unset.
func (s *Selection) SelectRoom(room model.Room) bool {
	if room.Reserved() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.RoomID = room.ID
	if s.state.StartTime == "" && room.ProposedAt != "" {
		s.state.StartTime = room.ProposedAt
	}
	if s.state.EndTime == "" && room.ProposedTo != "" {
		s.state.EndTime = room.ProposedTo
	}
	return true
}

func (s *Selection) SetView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.View = v
}

func (s *Selection) ToggleView() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.View == SchedulesView {
		s.state.View = RoomsView
	} else {
		s.state.View = SchedulesView
	}
	return s.state.View
}

// SetStartTime overrides the start time. Times are only editable in the schedules view.
func (s *Selection) SetStartTime(t string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.View != SchedulesView {
		return false
	}
	s.state.StartTime = t
	return true
}

func (s *Selection) SetEndTime(t string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.View != SchedulesView {
		return false
	}
	s.state.EndTime = t
	return true
}

func (s *Selection) State() SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ResolvedTimes falls back to the request's own times for unset bounds.
func (s *Selection) ResolvedTimes(req *model.Request) (start, end string) {
	st := s.State()
	start, end = st.StartTime, st.EndTime
	if req != nil {
		if start == "" {
			start = req.StartTime
		}
		if end == "" {
			end = req.EndTime
		}
	}
	return start, end
}
