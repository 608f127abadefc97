//go:build unit || e2e

package builder

import (
	"room-booking/internal/domain/profile"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/usecase/queries"
)

type ProfileBuilder struct {
	FirstName  string
	LastName   string
	Email      string
	Department string
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john.doe@example.com",
		Department: "Marketing",
	}
}

func (b *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(b)
	return b
}

func (b *ProfileBuilder) BuildDomain() (*profile.Profile, error) {
	return profile.NewProfile(b.FirstName, b.LastName, b.Email, b.Department)
}

func (b *ProfileBuilder) BuildView() *queries.ProfileView {
	return &queries.ProfileView{
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		FullName:   b.FirstName + " " + b.LastName,
		Email:      b.Email,
		Department: b.Department,
	}
}

func (b *ProfileBuilder) BuildUpdateRequestDTO() reqdto.UpdateProfileRequest {
	return reqdto.UpdateProfileRequest{
		FirstName:  &b.FirstName,
		LastName:   &b.LastName,
		Email:      &b.Email,
		Department: &b.Department,
	}
}
