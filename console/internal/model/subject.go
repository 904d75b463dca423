package model

import "fmt"

// ModalSubject is what a modal is opened for: a concrete request or a plain label.
type ModalSubject interface {
	Title() string
	isModalSubject()
}

type StructuredRequest struct {
	Request *Request
}

type PlaceholderLabel string

func (s StructuredRequest) Title() string {
	if s.Request == nil {
		return "Solicitud"
	}
	return fmt.Sprintf("Solicitud #%d", s.Request.ID)
}

func (p PlaceholderLabel) Title() string {
	return "Modal " + string(p)
}

func (StructuredRequest) isModalSubject() {}
func (PlaceholderLabel) isModalSubject()  {}
