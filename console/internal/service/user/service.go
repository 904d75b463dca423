package user

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Astemirdum/room-booking/console/internal/errs"
	"github.com/Astemirdum/room-booking/console/internal/model"
	"github.com/Astemirdum/room-booking/console/internal/service"
	"github.com/Astemirdum/room-booking/pkg/validate"
	"go.uber.org/zap"
)

type Service struct {
	log       *zap.Logger
	backend   *service.Backend
	validator *validate.CustomValidator
}

func NewService(log *zap.Logger, backend *service.Backend) *Service {
	return &Service{
		log:       log.Named("users"),
		backend:   backend,
		validator: validate.NewCustomValidator(),
	}
}

// RegisterInfo sends the additional profile data asked from first-time users.
func (s *Service) RegisterInfo(ctx context.Context, info model.UserInfo) (json.RawMessage, error) {
	if err := s.validator.Validate(info); err != nil {
		return nil, errs.NewValidation(validationMessage(info))
	}
	resp, err := s.backend.Do(ctx, http.MethodPost, "/auth/sign_in", info)
	if err != nil {
		return nil, err
	}
	defer service.Drain(resp)

	if !service.Success(resp) {
		s.log.Error("register user info", zap.Int("status", resp.StatusCode))
		return nil, errs.ErrUserInfoFailed
	}
	return service.DecodeRaw(resp)
}

func validationMessage(info model.UserInfo) string {
	switch {
	case info.Name == "":
		return "El nombre no puede estar vacio"
	case info.LastName == "":
		return "El apellido no puede estar vacio"
	default:
		return "Seleccione una secretaria valida"
	}
}
