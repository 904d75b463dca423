package handler

import (
	"github.com/Astemirdum/room-booking/console/internal/booking"
	"github.com/Astemirdum/room-booking/console/internal/model"
	"github.com/Astemirdum/room-booking/console/internal/session"
)

type loginRequest struct {
	Token       string `json:"token" validate:"required"`
	Role        string `json:"role"`
	IsFirstTime bool   `json:"isFirstTime"`
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	IsAdmin       bool   `json:"isAdmin"`
	IsFirstTime   bool   `json:"isFirstTime"`
	NeedsUserInfo bool   `json:"needsUserInfo"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
}

func newSessionResponse(s session.Session) sessionResponse {
	return sessionResponse{
		Authenticated: s.Authenticated(),
		Role:          s.Role,
		IsAdmin:       s.IsAdmin(),
		IsFirstTime:   s.IsFirstTime,
		NeedsUserInfo: s.NeedsUserInfo(),
		Title:         s.Title(),
		Subtitle:      s.Subtitle(),
	}
}

type requestCard struct {
	model.Request
	StatusLabel string `json:"statusLabel"`
	StatusText  string `json:"statusText"`
}

func newRequestCard(r model.Request) requestCard {
	return requestCard{
		Request:     r,
		StatusLabel: r.StatusCode().Label(),
		StatusText:  r.StatusCode().Text(),
	}
}

type requestsResponse struct {
	Items     []requestCard `json:"items"`
	Loading   bool          `json:"loading"`
	LastError string        `json:"lastError,omitempty"`
}

type subjectResponse struct {
	Title   string         `json:"title"`
	Request *model.Request `json:"request,omitempty"`
}

func newSubjectResponse(subject model.ModalSubject) subjectResponse {
	resp := subjectResponse{Title: subject.Title()}
	if s, ok := subject.(model.StructuredRequest); ok {
		resp.Request = s.Request
	}
	return resp
}

type viewRequest struct {
	View booking.View `json:"view" validate:"omitempty,oneof=rooms schedules"`
}

type timesRequest struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type selectRoomResponse struct {
	Selected bool              `json:"selected"`
	Modal    booking.ModalView `json:"modal"`
}
