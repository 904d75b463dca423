package room

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

const (
	roomsIndividualPath     = "/salas/disponibilidad-individual/%d"
	roomsCombinedPath       = "/salas/disponibilidad-combinada/%d"
	schedulesIndividualPath = "/salas/intervalos-individual/%d"
	schedulesCombinedPath   = "/salas/intervalos-combinados/%d"
)

type Service struct {
	log     *zap.Logger
	backend *service.Backend
}

func NewService(log *zap.Logger, backend *service.Backend) *Service {
	return &Service{
		log:     log.Named("rooms"),
		backend: backend,
	}
}

func validRequest(req *model.Request) error {
	if req == nil || req.ID == 0 {
		return errs.ErrInvalidRequest
	}
	return nil
}

// FetchRoomsAvailable lists candidate rooms for the request. Requests above
// model.IndividualCapacity attendees are served by the combined endpoint.
func (s *Service) FetchRoomsAvailable(ctx context.Context, req *model.Request) ([]model.Room, error) {
	if err := validRequest(req); err != nil {
		return nil, err
	}
	path := fmt.Sprintf(roomsIndividualPath, req.ID)
	if req.Combined() {
		path = fmt.Sprintf(roomsCombinedPath, req.ID)
	}

	resp, err := s.backend.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer service.Drain(resp)

	if !service.Success(resp) {
		s.log.Debug("rooms not available", zap.Int("request", req.ID), zap.Int("status", resp.StatusCode))
		return nil, &errs.RoomFetchError{Combined: req.Combined()}
	}

	var body struct {
		Data []model.Room `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode rooms")
	}
	return body.Data, nil
}

// FetchSchedulesAvailable lists rooms with their free intervals. The payload is
// either {data: {data: [...]}} or {data: [...]}; anything else yields an empty list.
func (s *Service) FetchSchedulesAvailable(ctx context.Context, req *model.Request) ([]model.Room, error) {
	if err := validRequest(req); err != nil {
		return nil, err
	}
	path := fmt.Sprintf(schedulesIndividualPath, req.ID)
	if req.Combined() {
		path = fmt.Sprintf(schedulesCombinedPath, req.ID)
	}

	resp, err := s.backend.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer service.Drain(resp)

	if !service.Success(resp) {
		s.log.Debug("schedules not available", zap.Int("request", req.ID), zap.Int("status", resp.StatusCode))
		return nil, errs.ErrScheduleFetchFailed
	}

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode schedules")
	}
	return unwrapSchedules(body.Data), nil
}

func unwrapSchedules(data json.RawMessage) []model.Room {
	var nested struct {
		Data []model.Room `json:"data"`
	}
	if err := json.Unmarshal(data, &nested); err == nil && nested.Data != nil {
		return nested.Data
	}
	var flat []model.Room
	if err := json.Unmarshal(data, &flat); err == nil && flat != nil {
		return flat
	}
	return []model.Room{}
}
