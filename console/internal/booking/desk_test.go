package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/room-booking/console/internal/errs"
	"github.com/Astemirdum/room-booking/console/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDesk_Open(t *testing.T) {
	t.Parallel()
	type mockBehavior func(f *fixture)
	tests := []struct {
		name         string
		id           int
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name: "ok",
			id:   123,
			mockBehavior: func(f *fixture) {
				req := &model.Request{ID: 123}
				f.requests.EXPECT().Get(gomock.Any(), 123).Return(req, nil)
				f.fetcher.EXPECT().FetchRoomsAvailable(gomock.Any(), req).Return([]model.Room{}, nil)
				f.fetcher.EXPECT().FetchSchedulesAvailable(gomock.Any(), req).Return([]model.Room{}, nil)
			},
		},
		{
			name: "not found",
			id:   404,
			mockBehavior: func(f *fixture) {
				f.requests.EXPECT().Get(gomock.Any(), 404).Return(nil, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:         "zero id",
			mockBehavior: func(f *fixture) {},
			wantErr:      errs.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			tt.mockBehavior(f)

			m, err := f.desk.Open(context.Background(), tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, 0, f.desk.Len())
				return
			}
			require.NoError(t, err)
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			require.NoError(t, m.Wait(ctx))

			got, err := f.desk.Get(m.ID())
			require.NoError(t, err)
			require.Same(t, m, got)
			require.Equal(t, tt.id, m.Request().ID)
		})
	}
}

func TestDesk_OpenPlaceholder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	_, err := f.desk.OpenSubject(model.PlaceholderLabel("Formulario de Solicitud"))
	require.ErrorIs(t, err, errs.ErrInvalidRequest)
	_, err = f.desk.OpenSubject(model.StructuredRequest{})
	require.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestDesk_Close(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	m := f.open(t, &model.Request{ID: 1}, nil, nil)

	require.NoError(t, f.desk.Close(m.ID()))
	require.ErrorIs(t, f.desk.Close(m.ID()), errs.ErrNotFound)
	require.ErrorIs(t, f.desk.Close(uuid.New()), errs.ErrNotFound)

	_, err := m.SelectRoom(1)
	require.ErrorIs(t, err, errs.ErrModalClosed)
}

func TestDesk_Shutdown(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.open(t, &model.Request{ID: 1}, nil, nil)
	f.open(t, &model.Request{ID: 2}, nil, nil)
	require.Equal(t, 2, f.desk.Len())

	f.desk.Shutdown()
	require.Equal(t, 0, f.desk.Len())
}
