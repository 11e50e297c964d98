package viewmodel

import (
	"sort"
	"time"

	"github.com/lucasforesti/pilotoapi/models"
)

// PartitionEvents splits the calendar into upcoming and past. An event is
// upcoming iff it is still scheduled or postponed AND its timestamp has not
// elapsed; everything else (held, cancelled, or overdue) is past. The split
// is exhaustive and disjoint. Upcoming sorts soonest first, past most recent
// first.
func PartitionEvents(events []models.Event, now time.Time) (upcoming, past []models.Event) {
	for _, e := range events {
		if isUpcoming(e, now) {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date.Time)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].Date.After(past[j].Date.Time)
	})
	return upcoming, past
}

func isUpcoming(e models.Event, now time.Time) bool {
	if e.Status != models.StatusScheduled && e.Status != models.StatusPostponed {
		return false
	}
	return !e.Date.Before(now)
}

// NextEvent returns the soonest upcoming event, or nil when the season has
// none left.
func NextEvent(events []models.Event, now time.Time) *models.Event {
	upcoming, _ := PartitionEvents(events, now)
	if len(upcoming) == 0 {
		return nil
	}
	return &upcoming[0]
}

// StatusLabel maps a repository status value to its display text. Unknown
// values fall back to the scheduled label rather than leaking raw data.
func StatusLabel(status string) string {
	switch status {
	case models.StatusHeld:
		return "Realizado"
	case models.StatusCancelled:
		return "Cancelado"
	case models.StatusPostponed:
		return "Adiado"
	default:
		return "Agendado"
	}
}
