// Package viewmodel derives presentation-ready shapes from repository
// documents: formatted dates, partitioned event lists, pagination windows,
// countdowns and rendered rich-text bodies. Everything here is a pure
// function of its inputs so pages stay thin.
package viewmodel

import (
	"fmt"

	"github.com/lucasforesti/pilotoapi/models"
)

// Month abbreviations, pt-BR.
var months = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// FormatDate renders a timestamp as "02 de jan de 2006". Dates are always
// interpreted in UTC; date-only values must not shift a day under a local
// timezone. A zero time renders empty.
func FormatDate(t models.CMSTime) string {
	if t.IsZero() {
		return ""
	}
	u := t.UTC()
	return fmt.Sprintf("%02d de %s de %d", u.Day(), months[u.Month()-1], u.Year())
}

// FormatTime renders the time component as "15:04" UTC. Date-only values and
// exact-midnight timestamps render empty, matching a schedule that has a day
// but no announced start time.
func FormatTime(t models.CMSTime) string {
	if t.IsZero() || t.DateOnly {
		return ""
	}
	u := t.UTC()
	if u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 {
		return ""
	}
	return u.Format("15:04")
}

// FormatYear renders just the year, for album and achievement rows.
func FormatYear(t models.CMSTime) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d", t.UTC().Year())
}
