package request

import (
	"room-booking/internal/domain/contact"
)

// ContactRequest is validated by the contact domain, which reports every
// failing field at once.
type ContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

func (r *ContactRequest) ToDomain() (*contact.Message, error) {
	return contact.NewMessage(r.FirstName, r.LastName, r.Email, r.Subject, r.Message)
}
