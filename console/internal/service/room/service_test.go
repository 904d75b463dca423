package room_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Astemirdum/room-booking/console/config"
	"github.com/Astemirdum/room-booking/console/internal/errs"
	"github.com/Astemirdum/room-booking/console/internal/model"
	"github.com/Astemirdum/room-booking/console/internal/service"
	"github.com/Astemirdum/room-booking/console/internal/service/room"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func attendees(n int) *int { return &n }

type backendStub struct {
	status int
	body   string
	path   atomic.Value
	calls  atomic.Int32
}

func (b *backendStub) start(t *testing.T) *room.Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.calls.Add(1)
		b.path.Store(r.Method + " " + r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(b.status)
		_, _ = w.Write([]byte(b.body))
	}))
	t.Cleanup(srv.Close)
	log := zap.NewExample().Named("test")
	return room.NewService(log, service.NewBackend(log, config.ReservationAPI{URL: srv.URL}))
}

func TestService_FetchRoomsAvailable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		request  *model.Request
		status   int
		body     string
		wantPath string
		want     []model.Room
		wantErr  error
		wantMsg  string
	}{
		{
			name:     "individual",
			request:  &model.Request{ID: 123, Attendees: attendees(10)},
			status:   http.StatusOK,
			body:     `{"data":[{"id_sala":1,"estado":1},{"id_sala":2,"estado":0}]}`,
			wantPath: "GET /salas/disponibilidad-individual/123",
			want:     []model.Room{{ID: 1, Status: model.RoomAvailable}, {ID: 2, Status: model.RoomReserved}},
		},
		{
			name:     "absent attendees is individual",
			request:  &model.Request{ID: 123},
			status:   http.StatusOK,
			body:     `{"data":[]}`,
			wantPath: "GET /salas/disponibilidad-individual/123",
			want:     []model.Room{},
		},
		{
			name:     "fifteen is still individual",
			request:  &model.Request{ID: 7, Attendees: attendees(15)},
			status:   http.StatusOK,
			body:     `{"data":[]}`,
			wantPath: "GET /salas/disponibilidad-individual/7",
			want:     []model.Room{},
		},
		{
			name:     "combined",
			request:  &model.Request{ID: 123, Attendees: attendees(20)},
			status:   http.StatusOK,
			body:     `{"data":[{"id_sala":3,"estado":1}]}`,
			wantPath: "GET /salas/disponibilidad-combinada/123",
			want:     []model.Room{{ID: 3, Status: model.RoomAvailable}},
		},
		{
			name:     "individual not ok",
			request:  &model.Request{ID: 123, Attendees: attendees(10)},
			status:   http.StatusNotFound,
			body:     `{}`,
			wantPath: "GET /salas/disponibilidad-individual/123",
			wantErr:  errs.ErrRoomFetchFailed,
			wantMsg:  "Error al obtener las salas individuales",
		},
		{
			name:     "combined not ok",
			request:  &model.Request{ID: 123, Attendees: attendees(20)},
			status:   http.StatusInternalServerError,
			body:     `{}`,
			wantPath: "GET /salas/disponibilidad-combinada/123",
			wantErr:  errs.ErrRoomFetchFailed,
			wantMsg:  "Error al obtener las salas combinadas",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stub := &backendStub{status: tt.status, body: tt.body}
			svc := stub.start(t)

			rooms, err := svc.FetchRoomsAvailable(context.Background(), tt.request)
			require.Equal(t, tt.wantPath, stub.path.Load())
			require.EqualValues(t, 1, stub.calls.Load())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.EqualError(t, err, tt.wantMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, rooms)
		})
	}
}

func TestService_InvalidRequest(t *testing.T) {
	t.Parallel()
	stub := &backendStub{status: http.StatusOK, body: `{"data":[]}`}
	svc := stub.start(t)
	ctx := context.Background()

	for _, req := range []*model.Request{nil, {}, {Attendees: attendees(3)}} {
		_, err := svc.FetchRoomsAvailable(ctx, req)
		require.ErrorIs(t, err, errs.ErrInvalidRequest)
		require.EqualError(t, err, "No se encontró solicitud o id_solicitudes no está definido.")

		_, err = svc.FetchSchedulesAvailable(ctx, req)
		require.ErrorIs(t, err, errs.ErrInvalidRequest)
	}
	require.Zero(t, stub.calls.Load())
}

func TestService_FetchSchedulesAvailable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		request  *model.Request
		status   int
		body     string
		wantPath string
		want     []model.Room
		wantErr  error
	}{
		{
			name:     "doubly nested",
			request:  &model.Request{ID: 12345, Attendees: attendees(10)},
			status:   http.StatusOK,
			body:     `{"data":{"data":[{"id_sala":1,"estado":1,"intervalos":[{"id":1,"inicio":"09:00","fin":"10:00"}]}]}}`,
			wantPath: "GET /salas/intervalos-individual/12345",
			want: []model.Room{{
				ID:        1,
				Status:    model.RoomAvailable,
				Intervals: []model.Interval{{ID: 1, Start: "09:00", End: "10:00"}},
			}},
		},
		{
			name:     "singly nested combined",
			request:  &model.Request{ID: 12345, Attendees: attendees(20)},
			status:   http.StatusOK,
			body:     `{"data":[{"id_sala":4,"estado":1,"horaInicio":"08:00","horaFin":"09:00"}]}`,
			wantPath: "GET /salas/intervalos-combinados/12345",
			want:     []model.Room{{ID: 4, Status: model.RoomAvailable, ProposedAt: "08:00", ProposedTo: "09:00"}},
		},
		{
			name:     "missing data",
			request:  &model.Request{ID: 12345},
			status:   http.StatusOK,
			body:     `{}`,
			wantPath: "GET /salas/intervalos-individual/12345",
			want:     []model.Room{},
		},
		{
			name:     "not ok",
			request:  &model.Request{ID: 12345},
			status:   http.StatusBadRequest,
			body:     `{}`,
			wantPath: "GET /salas/intervalos-individual/12345",
			wantErr:  errs.ErrScheduleFetchFailed,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stub := &backendStub{status: tt.status, body: tt.body}
			svc := stub.start(t)

			rooms, err := svc.FetchSchedulesAvailable(context.Background(), tt.request)
			require.Equal(t, tt.wantPath, stub.path.Load())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.EqualError(t, err, "Error al obtener los intervalos")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, rooms)
		})
	}
}

func TestService_NetworkError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	log := zap.NewNop()
	svc := room.NewService(log, service.NewBackend(log, config.ReservationAPI{URL: url}))
	_, err := svc.FetchRoomsAvailable(context.Background(), &model.Request{ID: 1})
	require.ErrorIs(t, err, errs.ErrNetwork)
}
