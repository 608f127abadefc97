package request

import (
	"room-booking/internal/domain/profile"
	"room-booking/internal/pkg/patch"
	"room-booking/internal/usecase/queries"
)

type UpdateProfileRequest struct {
	FirstName  *string `json:"first_name" binding:"omitempty,max=100"`
	LastName   *string `json:"last_name" binding:"omitempty,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Department *string `json:"department" binding:"omitempty,max=100"`
}

// IsEmpty reports a body that changes nothing, such as {}.
func (r *UpdateProfileRequest) IsEmpty() bool {
	return !patch.Touched(r.FirstName, r.LastName, r.Email, r.Department)
}

func (r *UpdateProfileRequest) ToDomain(existing *queries.ProfileView) (*profile.Profile, error) {
	return profile.NewProfile(
		patch.Value(r.FirstName, existing.FirstName),
		patch.Value(r.LastName, existing.LastName),
		patch.Value(r.Email, existing.Email),
		patch.Value(r.Department, existing.Department),
	)
}
