package booking

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Astemirdum/room-booking/console/internal/availability"
	"github.com/Astemirdum/room-booking/console/internal/errs"
	"github.com/Astemirdum/room-booking/console/internal/events"
	"github.com/Astemirdum/room-booking/console/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgSelectRoom  = "Por favor, selecciona un salón."
	msgSelectTime  = "Por favor, selecciona un horario válido."
	msgNoIntervals = "No hay intervalos disponibles para esta request."
	publishTimeout = 5 * time.Second
)

type Submitter interface {
	Approve(ctx context.Context, id int, data model.ApproveRequest) (json.RawMessage, error)
	Reject(ctx context.Context, id int) (json.RawMessage, error)
}

// Modal is one open booking dialog for a request. It is discarded once closed.
type Modal struct {
	id        uuid.UUID
	log       *zap.Logger
	request   *model.Request
	selection *Selection
	resolver  *availability.Resolver
	submitter Submitter
	publisher events.Publisher
	onClose   func(uuid.UUID)

	loaded chan struct{}
	cancel context.CancelFunc

	mu       sync.Mutex
	inFlight bool
	closed   bool
}

type RoomCard struct {
	model.Room
	Selected bool   `json:"selected"`
	State    string `json:"state"`
}

type ModalView struct {
	ID        uuid.UUID      `json:"id"`
	Request   *model.Request `json:"request"`
	Selection SelectionState `json:"selection"`
	StartTime string         `json:"startTime"`
	EndTime   string         `json:"endTime"`
	Editable  bool           `json:"timesEditable"`
	Loading   bool           `json:"loading"`
	Rooms     []RoomCard     `json:"rooms"`
	Empty     string         `json:"emptyMessage,omitempty"`
	LastError string         `json:"lastError,omitempty"`
}

func newModal(log *zap.Logger, req *model.Request, fetcher availability.RoomFetcher, submitter Submitter, publisher events.Publisher, onClose func(uuid.UUID)) *Modal {
	id := uuid.New()
	return &Modal{
		id:        id,
		log:       log.With(zap.String("modal", id.String()), zap.Int("request", req.ID)),
		request:   req,
		selection: NewSelection(),
		resolver:  availability.NewResolver(log, fetcher),
		submitter: submitter,
		publisher: publisher,
		onClose:   onClose,
		loaded:    make(chan struct{}),
	}
}

func (m *Modal) ID() uuid.UUID { return m.id }

func (m *Modal) Request() *model.Request { return m.request }

func (m *Modal) Selection() *Selection { return m.selection }

// load resolves the candidate rooms until done or the modal is closed.
func (m *Modal) load(ctx context.Context) {
	defer close(m.loaded)
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.mu.Unlock()

	m.resolver.Load(ctx, m.request)
}

// Wait blocks until the candidate rooms are resolved.
func (m *Modal) Wait(ctx context.Context) error {
	select {
	case <-m.loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SelectRoom picks a room from the list shown in the active view.
func (m *Modal) SelectRoom(roomID int) (bool, error) {
	if m.isClosed() {
		return false, errs.ErrModalClosed
	}
	for _, room := range m.visibleRooms() {
		if room.ID == roomID {
			return m.selection.SelectRoom(room), nil
		}
	}
	return false, errs.ErrNotFound
}

func (m *Modal) SetView(v View) error {
	if m.isClosed() {
		return errs.ErrModalClosed
	}
	m.selection.SetView(v)
	return nil
}

func (m *Modal) ToggleView() (View, error) {
	if m.isClosed() {
		return "", errs.ErrModalClosed
	}
	return m.selection.ToggleView(), nil
}

// SetTimes overrides the non-empty bounds. It reports false outside the schedules view.
func (m *Modal) SetTimes(start, end string) (bool, error) {
	if m.isClosed() {
		return false, errs.ErrModalClosed
	}
	if m.selection.State().View != SchedulesView {
		return false, nil
	}
	if start != "" && !m.selection.SetStartTime(start) {
		return false, nil
	}
	if end != "" && !m.selection.SetEndTime(end) {
		return false, nil
	}
	return true, nil
}

// SubmitApprove validates the selection and books it. On success the modal closes;
// on a backend failure it stays open.
func (m *Modal) SubmitApprove(ctx context.Context) (json.RawMessage, error) {
	st := m.selection.State()
	if st.RoomID == 0 {
		return nil, errs.NewValidation(msgSelectRoom)
	}
	start, end := m.selection.ResolvedTimes(m.request)
	if start == "" || end == "" {
		return nil, errs.NewValidation(msgSelectTime)
	}
	if err := m.begin(); err != nil {
		return nil, err
	}
	defer m.end()

	data := model.ApproveRequest{RoomID: st.RoomID, StartTime: start, EndTime: end}
	res, err := m.submitter.Approve(ctx, m.request.ID, data)
	if err != nil {
		m.log.Error("approve request", zap.Error(err))
		return nil, err
	}
	m.log.Info("request approved", zap.Int("room", st.RoomID), zap.String("start", start), zap.String("end", end))
	m.publish(events.Decision{
		RequestID: m.request.ID,
		Outcome:   events.Approved,
		RoomID:    st.RoomID,
		StartTime: start,
		EndTime:   end,
	})
	m.Close()
	return res, nil
}

// SubmitReject rejects the request whatever the selection is.
func (m *Modal) SubmitReject(ctx context.Context) (json.RawMessage, error) {
	if err := m.begin(); err != nil {
		return nil, err
	}
	defer m.end()

	res, err := m.submitter.Reject(ctx, m.request.ID)
	if err != nil {
		m.log.Error("reject request", zap.Error(err))
		return nil, err
	}
	m.log.Info("request rejected")
	m.publish(events.Decision{RequestID: m.request.ID, Outcome: events.Rejected})
	m.Close()
	return res, nil
}

func (m *Modal) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errs.ErrModalClosed
	}
	if m.inFlight {
		return errs.ErrSubmitInFlight
	}
	m.inFlight = true
	return nil
}

func (m *Modal) end() {
	m.mu.Lock()
	m.inFlight = false
	m.mu.Unlock()
}

func (m *Modal) publish(d events.Decision) {
	d.At = time.Now().UTC()
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := m.publisher.Publish(ctx, d); err != nil {
		m.log.Warn("publish decision", zap.Error(err))
	}
}

// Close stops loading and drops the modal. It is safe to call more than once.
func (m *Modal) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	cancel := m.cancel
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if m.onClose != nil {
		m.onClose(m.id)
	}
}

func (m *Modal) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *Modal) visibleRooms() []model.Room {
	st := m.resolver.State()
	if m.selection.State().View == SchedulesView {
		return st.RangesAvailable
	}
	return st.RoomsAvailable
}

func (m *Modal) View() ModalView {
	sel := m.selection.State()
	res := m.resolver.State()
	start, end := m.selection.ResolvedTimes(m.request)

	rooms := res.RoomsAvailable
	if sel.View == SchedulesView {
		rooms = res.RangesAvailable
	}
	cards := make([]RoomCard, 0, len(rooms))
	for _, room := range rooms {
		selected := room.ID == sel.RoomID
		cards = append(cards, RoomCard{Room: room, Selected: selected, State: room.CardState(selected)})
	}

	v := ModalView{
		ID:        m.id,
		Request:   m.request,
		Selection: sel,
		StartTime: start,
		EndTime:   end,
		Editable:  sel.View == SchedulesView,
		Loading:   res.Loading,
		Rooms:     cards,
	}
	if sel.View == SchedulesView && len(cards) == 0 && !res.Loading {
		v.Empty = msgNoIntervals
	}
	if res.LastErr != nil {
		v.LastError = res.LastErr.Error()
	}
	return v
}
