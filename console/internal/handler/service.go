package handler

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/room-booking/console/internal/booking"
	"github.com/Astemirdum/room-booking/console/internal/listing"
	"github.com/Astemirdum/room-booking/console/internal/model"
	"github.com/Astemirdum/room-booking/console/internal/service/user"
	"github.com/Astemirdum/room-booking/console/internal/session"
	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ RequestLister  = (*listing.Aggregator)(nil)
	_ ModalDesk      = (*booking.Desk)(nil)
	_ SessionManager = (*session.Manager)(nil)
	_ UserService    = (*user.Service)(nil)
)

type RequestLister interface {
	State() listing.State
	Filter(status, email string) []model.Request
}

type ModalDesk interface {
	Open(ctx context.Context, id int) (*booking.Modal, error)
	Get(id uuid.UUID) (*booking.Modal, error)
	Close(id uuid.UUID) error
}

type SessionManager interface {
	Current() session.Session
	Login(token, role string, isFirstTime bool) (session.Session, error)
	Logout() error
	MarkInfoCompleted() error
}

type UserService interface {
	RegisterInfo(ctx context.Context, info model.UserInfo) (json.RawMessage, error)
}
