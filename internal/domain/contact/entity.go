package contact

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const MinMessageLength = 10

var ErrInvalidMessage = errors.New("contact message is invalid")

// any "a@b.c" shape; stricter checks live in profile.Email
var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + fe[f]
	}
	return ErrInvalidMessage.Error() + " (" + strings.Join(parts, ", ") + ")"
}

func (fe FieldErrors) Unwrap() error { return ErrInvalidMessage }

type Message struct {
	firstName string
	lastName  string
	email     string
	subject   string
	body      string
}

// NewMessage validates every field and reports all failures at once.
func NewMessage(firstName, lastName, email, subject, body string) (*Message, error) {
	m := &Message{
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		email:     strings.TrimSpace(email),
		subject:   strings.TrimSpace(subject),
		body:      body,
	}

	fe := FieldErrors{}
	if m.firstName == "" {
		fe["firstName"] = "first name is required"
	}
	if m.lastName == "" {
		fe["lastName"] = "last name is required"
	}
	switch {
	case m.email == "":
		fe["email"] = "email is required"
	case !emailShape.MatchString(m.email):
		fe["email"] = "email is not valid"
	}
	if m.subject == "" {
		fe["subject"] = "subject is required"
	}
	switch {
	case strings.TrimSpace(m.body) == "":
		fe["message"] = "message is required"
	case utf8.RuneCountInString(m.body) < MinMessageLength:
		fe["message"] = "message must be at least 10 characters"
	}

	if len(fe) > 0 {
		return nil, fe
	}
	return m, nil
}

func (m *Message) FirstName() string { return m.firstName }
func (m *Message) LastName() string  { return m.lastName }
func (m *Message) Email() string     { return m.email }
func (m *Message) Subject() string   { return m.subject }
func (m *Message) Body() string      { return m.body }
