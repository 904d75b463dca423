package model

import (
	"encoding/json"
	"strings"
)

// IndividualCapacity is the largest attendee count served by single-room availability.
const IndividualCapacity = 15

type Status int

const (
	StatusRejected  Status = 0
	StatusReserved  Status = 1
	StatusInProcess Status = 2
)

const UnknownStatusLabel = "desconocido"

var statusLabels = map[Status]string{
	StatusRejected:  "rechazada",
	StatusReserved:  "reservada",
	StatusInProcess: "en_proceso",
}

// Label maps a status to its filter key, "desconocido" when unmapped.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return UnknownStatusLabel
}

// Text turns the label into its display form: en_proceso -> En Proceso.
func (s Status) Text() string {
	words := strings.Fields(strings.ReplaceAll(s.Label(), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type Request struct {
	ID         int     `json:"id_solicitudes"`
	Name       string  `json:"Nombre,omitempty"`
	Surname    string  `json:"Apellido,omitempty"`
	Email      string  `json:"Correo,omitempty"`
	Phone      string  `json:"Telefono,omitempty"`
	Department string  `json:"Secretaria,omitempty"`
	Attendees  *int    `json:"Num_asistentes,omitempty"`
	Date       string  `json:"Fecha_reserva,omitempty"`
	StartTime  string  `json:"Hora_inicio,omitempty"`
	EndTime    string  `json:"Hora_final,omitempty"`
	Status     *Status `json:"Estado,omitempty"`
	Purpose    string  `json:"Proposito,omitempty"`
	Computer   bool    `json:"Computador"`
	HDMI       bool    `json:"HDMI"`
}

// AttendeeCount treats an absent count as zero.
func (r *Request) AttendeeCount() int {
	if r == nil || r.Attendees == nil {
		return 0
	}
	return *r.Attendees
}

// Combined reports whether the request needs combined (multi-room) availability.
func (r *Request) Combined() bool {
	return r.AttendeeCount() > IndividualCapacity
}

// StatusCode treats an absent status as rejected.
func (r *Request) StatusCode() Status {
	if r == nil || r.Status == nil {
		return StatusRejected
	}
	return *r.Status
}

type Interval struct {
	ID    int    `json:"id"`
	Start string `json:"inicio"`
	End   string `json:"fin"`
}

type RoomStatus int

const (
	RoomReserved  RoomStatus = 0
	RoomAvailable RoomStatus = 1
)

type Room struct {
	ID         int             `json:"id_sala"`
	Intervals  []Interval      `json:"intervalos"`
	HourRange  json.RawMessage `json:"rangoHoras,omitempty"`
	Status     RoomStatus      `json:"estado"`
	ProposedAt string          `json:"horaInicio,omitempty"`
	ProposedTo string          `json:"horaFin,omitempty"`
}

func (r Room) Reserved() bool {
	return r.Status == RoomReserved
}

// CardState is the room card caption: Seleccionado, Reservado or Disponible.
func (r Room) CardState(selected bool) string {
	switch {
	case selected:
		return "Seleccionado"
	case r.Reserved():
		return "Reservado"
	default:
		return "Disponible"
	}
}

type ApproveRequest struct {
	RoomID    int    `json:"salaId"`
	StartTime string `json:"horaInicio"`
	EndTime   string `json:"horaFin"`
}

type UserInfo struct {
	Name     string `json:"name" validate:"required"`
	LastName string `json:"lastName" validate:"required"`
	Ministry string `json:"ministry" validate:"required"`
}
