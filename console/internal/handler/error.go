package handler

import (
	"net/http"

	"github.com/Astemirdum/room-booking/console/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// upstream failures are reported with their user-facing message only.
var upstream = []error{
	errs.ErrApprovalFailed,
	errs.ErrRejectionFailed,
	errs.ErrRequestFetchFailed,
	errs.ErrUserInfoFailed,
	errs.ErrScheduleFetchFailed,
}

func (h *Handler) httpError(err error) *echo.HTTPError {
	var (
		validation *errs.ValidationError
		roomFetch  *errs.RoomFetchError
	)
	switch {
	case errors.As(err, &validation):
		return echo.NewHTTPError(http.StatusBadRequest, validation.Message)
	case errors.Is(err, errs.ErrInvalidRequest):
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrInvalidRequest.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrModalClosed), errors.Is(err, errs.ErrSubmitInFlight):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrNetwork):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &roomFetch):
		return echo.NewHTTPError(http.StatusBadGateway, roomFetch.Error())
	}
	for _, target := range upstream {
		if errors.Is(err, target) {
			return echo.NewHTTPError(http.StatusBadGateway, target.Error())
		}
	}
	h.log.Error("unexpected error", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
