package response

import (
	"time"

	"github.com/google/uuid"
)

type ContactResponse struct {
	ID         uuid.UUID `json:"id"`
	ReceivedAt time.Time `json:"receivedAt"`
	Message    string    `json:"message"`
}

type AboutResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}
