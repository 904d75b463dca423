package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	mock_availability "github.com/Astemirdum/room-booking/console/internal/availability/mocks"
	"github.com/Astemirdum/room-booking/console/internal/booking"
	mock_booking "github.com/Astemirdum/room-booking/console/internal/booking/mocks"
	"github.com/Astemirdum/room-booking/console/internal/errs"
	"github.com/Astemirdum/room-booking/console/internal/events"
	"github.com/Astemirdum/room-booking/console/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	mu  sync.Mutex
	got []events.Decision
}

func (r *recorder) Publish(_ context.Context, d events.Decision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, d)
	return nil
}

func (r *recorder) decisions() []events.Decision {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Decision{}, r.got...)
}

type fixture struct {
	desk      *booking.Desk
	requests  *mock_booking.MockRequestService
	fetcher   *mock_availability.MockRoomFetcher
	published *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := gomock.NewController(t)
	f := &fixture{
		requests:  mock_booking.NewMockRequestService(c),
		fetcher:   mock_availability.NewMockRoomFetcher(c),
		published: &recorder{},
	}
	f.desk = booking.NewDesk(zap.NewNop(), f.requests, f.fetcher, f.published)
	return f
}

// open opens a loaded modal for req with the given availability.
func (f *fixture) open(t *testing.T, req *model.Request, rooms, ranges []model.Room) *booking.Modal {
	t.Helper()
	f.fetcher.EXPECT().FetchRoomsAvailable(gomock.Any(), req).Return(rooms, nil)
	f.fetcher.EXPECT().FetchSchedulesAvailable(gomock.Any(), req).Return(ranges, nil)
	m, err := f.desk.OpenSubject(model.StructuredRequest{Request: req})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.Wait(ctx))
	return m
}

var available = []model.Room{
	{ID: 1, Status: model.RoomAvailable},
	{ID: 2, Status: model.RoomReserved},
}

func TestModal_SubmitApproveValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		request *model.Request
		room    int
		wantMsg string
	}{
		{
			name:    "no room",
			request: &model.Request{ID: 123, StartTime: "09:00", EndTime: "10:00"},
			wantMsg: "Por favor, selecciona un salón.",
		},
		{
			name:    "no times",
			request: &model.Request{ID: 123},
			room:    1,
			wantMsg: "Por favor, selecciona un horario válido.",
		},
		{
			name:    "no end time",
			request: &model.Request{ID: 123, StartTime: "09:00"},
			room:    1,
			wantMsg: "Por favor, selecciona un horario válido.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			m := f.open(t, tt.request, available, nil)
			if tt.room != 0 {
				ok, err := m.SelectRoom(tt.room)
				require.NoError(t, err)
				require.True(t, ok)
			}

			res, err := m.SubmitApprove(context.Background())
			require.Nil(t, res)
			require.True(t, errs.IsValidation(err))
			require.EqualError(t, err, tt.wantMsg)
			require.Equal(t, 1, f.desk.Len())
			require.Empty(t, f.published.decisions())
		})
	}
}

func TestModal_SubmitApprove(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	req := &model.Request{ID: 123, StartTime: "09:00", EndTime: "10:00"}
	m := f.open(t, req, available, nil)

	ok, err := m.SelectRoom(1)
	require.NoError(t, err)
	require.True(t, ok)

	reply := json.RawMessage(`{"message":"ok"}`)
	f.requests.EXPECT().
		Approve(gomock.Any(), 123, model.ApproveRequest{RoomID: 1, StartTime: "09:00", EndTime: "10:00"}).
		Return(reply, nil)

	res, err := m.SubmitApprove(context.Background())
	require.NoError(t, err)
	require.JSONEq(t, string(reply), string(res))

	require.Equal(t, 0, f.desk.Len())
	_, err = f.desk.Get(m.ID())
	require.ErrorIs(t, err, errs.ErrNotFound)

	got := f.published.decisions()
	require.Len(t, got, 1)
	require.Equal(t, events.Approved, got[0].Outcome)
	require.Equal(t, 123, got[0].RequestID)
	require.Equal(t, 1, got[0].RoomID)

	_, err = m.SubmitApprove(context.Background())
	require.ErrorIs(t, err, errs.ErrModalClosed)
}

func TestModal_SubmitApproveFailureKeepsModalOpen(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	req := &model.Request{ID: 5, StartTime: "09:00", EndTime: "10:00"}
	m := f.open(t, req, available, nil)
	_, err := m.SelectRoom(1)
	require.NoError(t, err)

	f.requests.EXPECT().Approve(gomock.Any(), 5, gomock.Any()).Return(nil, errs.ErrApprovalFailed)

	_, err = m.SubmitApprove(context.Background())
	require.ErrorIs(t, err, errs.ErrApprovalFailed)
	got, err := f.desk.Get(m.ID())
	require.NoError(t, err)
	require.Same(t, m, got)
	require.Empty(t, f.published.decisions())
}

func TestModal_SubmitReject(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	m := f.open(t, &model.Request{ID: 9}, nil, nil)

	f.requests.EXPECT().Reject(gomock.Any(), 9).Return(json.RawMessage(`{}`), nil).Times(1)

	_, err := m.SubmitReject(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, f.desk.Len())

	_, err = m.SubmitReject(context.Background())
	require.ErrorIs(t, err, errs.ErrModalClosed)

	got := f.published.decisions()
	require.Len(t, got, 1)
	require.Equal(t, events.Rejected, got[0].Outcome)
}

func TestModal_SubmitRejectFailure(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	m := f.open(t, &model.Request{ID: 9}, nil, nil)

	f.requests.EXPECT().Reject(gomock.Any(), 9).Return(nil, errs.ErrRejectionFailed)

	_, err := m.SubmitReject(context.Background())
	require.EqualError(t, err, "Error al rechazar solicitud")
	require.Equal(t, 1, f.desk.Len())
}

func TestModal_SecondSubmitWhileInFlight(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	m := f.open(t, &model.Request{ID: 3}, nil, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	f.requests.EXPECT().Reject(gomock.Any(), 3).DoAndReturn(func(context.Context, int) (json.RawMessage, error) {
		close(started)
		<-release
		return nil, errors.New("boom")
	}).Times(1)

	done := make(chan error)
	go func() {
		_, err := m.SubmitReject(context.Background())
		done <- err
	}()
	<-started

	_, err := m.SubmitReject(context.Background())
	require.ErrorIs(t, err, errs.ErrSubmitInFlight)

	close(release)
	require.EqualError(t, <-done, "boom")
}

func TestModal_SelectRoom(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	interval := []model.Interval{{ID: 1, Start: "13:00", End: "14:00"}}
	m := f.open(t, &model.Request{ID: 1}, available, []model.Room{
		{ID: 7, Status: model.RoomAvailable, Intervals: interval, ProposedAt: "13:00", ProposedTo: "14:00"},
	})

	ok, err := m.SelectRoom(2)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = m.SelectRoom(7)
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, m.SetView(booking.SchedulesView))
	ok, err = m.SelectRoom(7)
	require.NoError(t, err)
	require.True(t, ok)

	v := m.View()
	require.True(t, v.Editable)
	require.Equal(t, "13:00", v.StartTime)
	require.Equal(t, "14:00", v.EndTime)
	require.Len(t, v.Rooms, 1)
	require.Equal(t, "Seleccionado", v.Rooms[0].State)
}

func TestModal_SetTimes(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	m := f.open(t, &model.Request{ID: 1, StartTime: "08:00", EndTime: "09:00"}, nil, nil)

	ok, err := m.SetTimes("10:00", "11:00")
	require.NoError(t, err)
	require.False(t, ok)

	view, err := m.ToggleView()
	require.NoError(t, err)
	require.Equal(t, booking.SchedulesView, view)

	ok, err = m.SetTimes("10:00", "")
	require.NoError(t, err)
	require.True(t, ok)

	v := m.View()
	require.Equal(t, "10:00", v.StartTime)
	require.Equal(t, "09:00", v.EndTime)
	require.Equal(t, "No hay intervalos disponibles para esta request.", v.Empty)
}

func TestModal_View(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	m := f.open(t, &model.Request{ID: 1}, available, nil)

	v := m.View()
	require.False(t, v.Loading)
	require.False(t, v.Editable)
	require.Empty(t, v.Empty)
	require.Equal(t, []string{"Disponible", "Reservado"}, []string{v.Rooms[0].State, v.Rooms[1].State})
}
