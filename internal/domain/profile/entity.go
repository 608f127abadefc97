package profile

import (
	"strings"
)

// Profile is the editable identity card of the current session.
// There is no account behind it.
type Profile struct {
	firstName  Name
	lastName   Name
	email      Email
	department string
}

func NewProfile(firstName, lastName, email, department string) (*Profile, error) {
	first, err := NewName(firstName)
	if err != nil {
		return nil, err
	}
	last, err := NewName(lastName)
	if err != nil {
		return nil, err
	}
	mail, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	return &Profile{
		firstName:  first,
		lastName:   last,
		email:      mail,
		department: strings.TrimSpace(department),
	}, nil
}

// Default is the profile every new session starts with.
func Default() *Profile {
	return &Profile{
		firstName:  Name{value: "John"},
		lastName:   Name{value: "Doe"},
		email:      Email{value: "john.doe@example.com"},
		department: "Marketing",
	}
}

func (p *Profile) FullName() string {
	return p.firstName.String() + " " + p.lastName.String()
}

func (p *Profile) FirstName() string  { return p.firstName.String() }
func (p *Profile) LastName() string   { return p.lastName.String() }
func (p *Profile) Email() string      { return p.email.Value() }
func (p *Profile) Department() string { return p.department }
