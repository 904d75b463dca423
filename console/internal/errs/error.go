package errs

import (
	"errors"
)

var (
	ErrInvalidRequest      = errors.New("No se encontró solicitud o id_solicitudes no está definido.")
	ErrRoomFetchFailed     = errors.New("room fetch failed")
	ErrScheduleFetchFailed = errors.New("Error al obtener los intervalos")
	ErrApprovalFailed      = errors.New("Error al aprobar solicitud")
	ErrRejectionFailed     = errors.New("Error al rechazar solicitud")
	ErrRequestFetchFailed  = errors.New("Error al cargar la solicitud")
	ErrUserInfoFailed      = errors.New("Error al enviar la solicitud")
	ErrNetwork             = errors.New("network error")

	ErrNotFound       = errors.New("not found")
	ErrModalClosed    = errors.New("modal is closed")
	ErrSubmitInFlight = errors.New("submission already in progress")
	ErrUnauthorized   = errors.New("session is not authenticated")
)

// RoomFetchError keeps the mode-specific message while matching ErrRoomFetchFailed.
type RoomFetchError struct {
	Combined bool
}

func (e *RoomFetchError) Error() string {
	if e.Combined {
		return "Error al obtener las salas combinadas"
	}
	return "Error al obtener las salas individuales"
}

func (e *RoomFetchError) Is(target error) bool {
	return target == ErrRoomFetchFailed
}

// ValidationError is a local precondition failure meant to be shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(msg string) error {
	return &ValidationError{Message: msg}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

type ValidationErrorResponse struct {
	Message string `json:"message"`
}
