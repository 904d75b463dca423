package request

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Astemirdum/room-booking/console/internal/errs"
	"github.com/Astemirdum/room-booking/console/internal/model"
	"github.com/Astemirdum/room-booking/console/internal/service"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	log     *zap.Logger
	backend *service.Backend
}

func NewService(log *zap.Logger, backend *service.Backend) *Service {
	return &Service{
		log:     log.Named("requests"),
		backend: backend,
	}
}

func (s *Service) ListAll(ctx context.Context) ([]model.Request, error) {
	resp, err := s.backend.Do(ctx, http.MethodGet, "/solicitudes/all", nil)
	if err != nil {
		return nil, err
	}
	defer service.Drain(resp)

	if !service.Success(resp) {
		return nil, errors.Wrapf(errs.ErrRequestFetchFailed, "status %d", resp.StatusCode)
	}
	var body struct {
		Data []model.Request `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode requests")
	}
	if body.Data == nil {
		return []model.Request{}, nil
	}
	return body.Data, nil
}

func (s *Service) Get(ctx context.Context, id int) (*model.Request, error) {
	resp, err := s.backend.Do(ctx, http.MethodGet, fmt.Sprintf("/solicitudes/%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer service.Drain(resp)

	if resp.StatusCode == http.StatusNotFound {
		return nil, errs.ErrNotFound
	}
	if !service.Success(resp) {
		return nil, errors.Wrapf(errs.ErrRequestFetchFailed, "status %d", resp.StatusCode)
	}
	var body struct {
		Data *model.Request `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode request")
	}
	if body.Data == nil {
		return nil, errs.ErrNotFound
	}
	return body.Data, nil
}

// Approve books the room and time for the request. The backend reply is returned untouched.
func (s *Service) Approve(ctx context.Context, id int, data model.ApproveRequest) (json.RawMessage, error) {
	resp, err := s.backend.Do(ctx, http.MethodPut, fmt.Sprintf("/solicitudes/approve/%d", id), data)
	if err != nil {
		return nil, err
	}
	defer service.Drain(resp)

	if !service.Success(resp) {
		s.log.Warn("approve", zap.Int("request", id), zap.Int("status", resp.StatusCode))
		return nil, errs.ErrApprovalFailed
	}
	return service.DecodeRaw(resp)
}

func (s *Service) Reject(ctx context.Context, id int) (json.RawMessage, error) {
	resp, err := s.backend.Do(ctx, http.MethodPut, fmt.Sprintf("/solicitudes/disapprove/%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer service.Drain(resp)

	if !service.Success(resp) {
		s.log.Warn("reject", zap.Int("request", id), zap.Int("status", resp.StatusCode))
		return nil, errs.ErrRejectionFailed
	}
	return service.DecodeRaw(resp)
}
