package datefmt

import (
	"fmt"
	"time"

	"room-booking/internal/pkg/errs"
)

const ISODate = "2006-01-02"

var ErrInvalidDate = errs.New("invalid date")

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatDate renders a YYYY-MM-DD date the way the fr-FR locale does with
// a two-digit day, long month and numeric year, e.g. "25 mars 2024".
func FormatDate(date string) (string, error) {
	t, err := time.Parse(ISODate, date)
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "parse date "+date), ErrInvalidDate)
	}
	return Format(t), nil
}

func Format(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}
