package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/Astemirdum/room-booking/console/internal/booking"
	"github.com/Astemirdum/room-booking/console/internal/errs"
	"github.com/Astemirdum/room-booking/console/internal/model"
	"github.com/Astemirdum/room-booking/pkg/validate"
	_ "github.com/Astemirdum/room-booking/swagger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const requestFormLabel = model.PlaceholderLabel("Formulario de Solicitud")

type Handler struct {
	requests RequestLister
	desk     ModalDesk
	sessions SessionManager
	users    UserService
	log      *zap.Logger
}

func New(log *zap.Logger, requests RequestLister, desk ModalDesk, sessions SessionManager, users UserService) *Handler {
	return &Handler{
		requests: requests,
		desk:     desk,
		sessions: sessions,
		users:    users,
		log:      log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)
	api.POST("/session/login", h.Login)
	api.POST("/session/logout", h.Logout)
	api.GET("/session", h.GetSession)

	api = api.Group("", h.authMW)
	api.GET("/requests", h.GetRequests)
	api.POST("/requests/:id/modal", h.OpenModal)
	api.GET("/forms/request", h.RequestForm)

	api.GET("/modals/:modalId", h.GetModal)
	api.PUT("/modals/:modalId/view", h.SetView)
	api.POST("/modals/:modalId/rooms/:roomId", h.SelectRoom)
	api.PUT("/modals/:modalId/times", h.SetTimes)
	api.POST("/modals/:modalId/approve", h.Approve)
	api.POST("/modals/:modalId/reject", h.Reject)
	api.DELETE("/modals/:modalId", h.CloseModal)

	api.POST("/users/info", h.RegisterUserInfo)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Login godoc
// @Summary store the console session
// @Tags session
// @Accept json
// @Produce json
// @Param input body loginRequest true "session"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} errs.ValidationErrorResponse
// @Router /api/v1/session/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s, err := h.sessions.Login(req.Token, req.Role, req.IsFirstTime)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, newSessionResponse(s))
}

// Logout godoc
// @Summary clear the console session
// @Tags session
// @Success 204
// @Router /api/v1/session/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSession godoc
// @Summary current session
// @Tags session
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /api/v1/session [get]
func (h *Handler) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, newSessionResponse(h.sessions.Current()))
}

// GetRequests godoc
// @Summary list reservation requests
// @Tags requests
// @Produce json
// @Param status query string false "rechazada, reservada or en_proceso"
// @Param email query string false "email substring"
// @Success 200 {object} requestsResponse
// @Router /api/v1/requests [get]
func (h *Handler) GetRequests(c echo.Context) error {
	st := h.requests.State()
	items := h.requests.Filter(c.QueryParam("status"), c.QueryParam("email"))

	resp := requestsResponse{
		Items:   make([]requestCard, 0, len(items)),
		Loading: st.Loading,
	}
	if st.LastErr != nil {
		resp.LastError = st.LastErr.Error()
	}
	for _, r := range items {
		resp.Items = append(resp.Items, newRequestCard(r))
	}
	return c.JSON(http.StatusOK, resp)
}

// OpenModal godoc
// @Summary open a booking modal for a request
// @Tags modals
// @Produce json
// @Param id path int true "request id"
// @Param wait query bool false "block until rooms are resolved"
// @Success 201 {object} booking.ModalView
// @Failure 400,404,502 {object} errs.ValidationErrorResponse
// @Router /api/v1/requests/{id}/modal [post]
func (h *Handler) OpenModal(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrInvalidRequest.Error())
	}
	ctx := c.Request().Context()
	m, err := h.desk.Open(ctx, id)
	if err != nil {
		return h.httpError(err)
	}
	if wait, _ := strconv.ParseBool(c.QueryParam("wait")); wait {
		if err := m.Wait(ctx); err != nil {
			// the client never learns the id, nobody could close it later
			_ = h.desk.Close(m.ID())
			return echo.NewHTTPError(http.StatusRequestTimeout, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, m.View())
}

// RequestForm godoc
// @Summary placeholder request form modal
// @Tags modals
// @Produce json
// @Success 200 {object} subjectResponse
// @Router /api/v1/forms/request [get]
func (h *Handler) RequestForm(c echo.Context) error {
	return c.JSON(http.StatusOK, newSubjectResponse(requestFormLabel))
}

// GetModal godoc
// @Summary booking modal state
// @Tags modals
// @Produce json
// @Param modalId path string true "modal id"
// @Success 200 {object} booking.ModalView
// @Failure 404 {object} errs.ValidationErrorResponse
// @Router /api/v1/modals/{modalId} [get]
func (h *Handler) GetModal(c echo.Context) error {
	m, err := h.modal(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m.View())
}

// SetView godoc
// @Summary switch between rooms and schedules, toggles when view is empty
// @Tags modals
// @Accept json
// @Produce json
// @Param modalId path string true "modal id"
// @Param input body viewRequest true "view"
// @Success 200 {object} booking.ModalView
// @Router /api/v1/modals/{modalId}/view [put]
func (h *Handler) SetView(c echo.Context) error {
	m, err := h.modal(c)
	if err != nil {
		return err
	}
	var req viewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.View == "" {
		_, err = m.ToggleView()
	} else {
		err = m.SetView(req.View)
	}
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, m.View())
}

// SelectRoom godoc
// @Summary select a room, reserved rooms are ignored
// @Tags modals
// @Produce json
// @Param modalId path string true "modal id"
// @Param roomId path int true "room id"
// @Success 200 {object} selectRoomResponse
// @Failure 404 {object} errs.ValidationErrorResponse
// @Router /api/v1/modals/{modalId}/rooms/{roomId} [post]
func (h *Handler) SelectRoom(c echo.Context) error {
	m, err := h.modal(c)
	if err != nil {
		return err
	}
	roomID, err := strconv.Atoi(c.Param("roomId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid roomId")
	}
	selected, err := m.SelectRoom(roomID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, selectRoomResponse{Selected: selected, Modal: m.View()})
}

// SetTimes godoc
// @Summary override start and end time in the schedules view
// @Tags modals
// @Accept json
// @Produce json
// @Param modalId path string true "modal id"
// @Param input body timesRequest true "times"
// @Success 200 {object} booking.ModalView
// @Failure 409 {object} errs.ValidationErrorResponse
// @Router /api/v1/modals/{modalId}/times [put]
func (h *Handler) SetTimes(c echo.Context) error {
	m, err := h.modal(c)
	if err != nil {
		return err
	}
	var req timesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ok, err := m.SetTimes(req.StartTime, req.EndTime)
	if err != nil {
		return h.httpError(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusConflict, "times are editable only in the schedules view")
	}
	return c.JSON(http.StatusOK, m.View())
}

// Approve godoc
// @Summary approve the request with the selected room and times
// @Tags modals
// @Produce json
// @Param modalId path string true "modal id"
// @Success 200 {object} object
// @Failure 400,409,502 {object} errs.ValidationErrorResponse
// @Router /api/v1/modals/{modalId}/approve [post]
func (h *Handler) Approve(c echo.Context) error {
	m, err := h.modal(c)
	if err != nil {
		return err
	}
	res, err := m.SubmitApprove(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSONBlob(http.StatusOK, orEmpty(res))
}

// Reject godoc
// @Summary reject the request
// @Tags modals
// @Produce json
// @Param modalId path string true "modal id"
// @Success 200 {object} object
// @Failure 409,502 {object} errs.ValidationErrorResponse
// @Router /api/v1/modals/{modalId}/reject [post]
func (h *Handler) Reject(c echo.Context) error {
	m, err := h.modal(c)
	if err != nil {
		return err
	}
	res, err := m.SubmitReject(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSONBlob(http.StatusOK, orEmpty(res))
}

// CloseModal godoc
// @Summary close a modal without submitting
// @Tags modals
// @Param modalId path string true "modal id"
// @Success 204
// @Router /api/v1/modals/{modalId} [delete]
func (h *Handler) CloseModal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("modalId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid modalId")
	}
	if err := h.desk.Close(id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RegisterUserInfo godoc
// @Summary register additional user info
// @Tags users
// @Accept json
// @Produce json
// @Param input body model.UserInfo true "user info"
// @Success 200 {object} object
// @Failure 400,502 {object} errs.ValidationErrorResponse
// @Router /api/v1/users/info [post]
func (h *Handler) RegisterUserInfo(c echo.Context) error {
	var info model.UserInfo
	if err := c.Bind(&info); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.users.RegisterInfo(c.Request().Context(), info)
	if err != nil {
		return h.httpError(err)
	}
	if err := h.sessions.MarkInfoCompleted(); err != nil {
		h.log.Warn("mark info completed", zap.Error(err))
	}
	return c.JSONBlob(http.StatusOK, orEmpty(res))
}

func (h *Handler) modal(c echo.Context) (*booking.Modal, error) {
	id, err := uuid.Parse(c.Param("modalId"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid modalId")
	}
	m, err := h.desk.Get(id)
	if err != nil {
		return nil, h.httpError(err)
	}
	return m, nil
}

func orEmpty(b []byte) []byte {
	if t := bytes.TrimSpace(b); len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return []byte("{}")
	}
	return b
}
