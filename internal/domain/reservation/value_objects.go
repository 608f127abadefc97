package reservation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"room-booking/internal/pkg/datefmt"
)

var (
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrNonexistentDate  = errors.New("invalid calendar date")
	ErrInvalidTimeOfDay = errors.New("time must be formatted as HH:MM")
)

// Date is a calendar day without time zone.
type Date struct {
	value string
}

var isoDateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate reports ErrInvalidDate for a malformed string and
// ErrNonexistentDate for a well-formed one naming no real day.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if !isoDateShape.MatchString(s) {
		return Date{}, ErrInvalidDate
	}
	t, err := time.Parse(datefmt.ISODate, s)
	if err != nil {
		return Date{}, ErrNonexistentDate
	}
	return Date{value: t.Format(datefmt.ISODate)}, nil
}

func (d Date) String() string { return d.value }
func (d Date) IsZero() bool   { return d.value == "" }

// TimeOfDay is a wall-clock time stored as minutes since midnight.
type TimeOfDay struct {
	minutes int
}

// ParseTimeOfDay accepts "HH:MM" and "H:MM" and normalises to "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }
func (t TimeOfDay) Minutes() int                { return t.minutes }

// TimeSlot is the half-open interval [start, end) within one day.
// Ordering is not enforced here; see Ordered.
type TimeSlot struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSlot(start, end TimeOfDay) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() TimeOfDay { return ts.start }
func (ts TimeSlot) End() TimeOfDay   { return ts.end }

func (ts TimeSlot) Ordered() bool {
	return ts.start.Before(ts.end)
}

func (ts TimeSlot) Duration() time.Duration {
	return time.Duration(ts.end.minutes-ts.start.minutes) * time.Minute
}

// Overlaps is the half-open intersection test: touching slots do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.minutes < other.end.minutes && other.start.minutes < ts.end.minutes
}

// Covers reports whether t falls inside [start, end).
func (ts TimeSlot) Covers(t TimeOfDay) bool {
	return ts.start.minutes <= t.minutes && t.minutes < ts.end.minutes
}

type Description struct {
	value string
}

func NewDescription(value string) Description {
	return Description{value: strings.TrimSpace(value)}
}

func (d Description) String() string {
	return d.value
}

func (d Description) IsEmpty() bool {
	return d.value == ""
}
