//go:build unit || e2e

package builder

import (
	reqdto "room-booking/internal/handler/dto/request"
)

type ContactBuilder struct {
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
}

func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{
		FirstName: "Marie",
		LastName:  "Curie",
		Email:     "marie.curie@example.com",
		Subject:   "Question sur la salle B",
		Message:   "Bonjour, la salle B dispose-t-elle d'un tableau blanc ?",
	}
}

func (b *ContactBuilder) With(mutate func(*ContactBuilder)) *ContactBuilder {
	mutate(b)
	return b
}

func (b *ContactBuilder) BuildRequestDTO() reqdto.ContactRequest {
	return reqdto.ContactRequest{
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		Subject:   b.Subject,
		Message:   b.Message,
	}
}
