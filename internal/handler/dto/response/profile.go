package response

import (
	"room-booking/internal/usecase/queries"
)

type ProfileResponse struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func FromProfileView(pv *queries.ProfileView) *ProfileResponse {
	return &ProfileResponse{
		FirstName:  pv.FirstName,
		LastName:   pv.LastName,
		FullName:   pv.FullName,
		Email:      pv.Email,
		Department: pv.Department,
	}
}
