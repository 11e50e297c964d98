package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasforesti/pilotoapi/models"
)

func event(id, status string, date time.Time) models.Event {
	return models.Event{
		ID:     id,
		Name:   "GP " + id,
		Status: status,
		Date:   models.CMSTime{Time: date},
	}
}

func TestPartitionEvents(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	events := []models.Event{
		event("a", models.StatusScheduled, now.Add(48*time.Hour)),
		event("b", models.StatusHeld, now.Add(-24*time.Hour)),
		event("c", models.StatusPostponed, now.Add(24*time.Hour)),
		event("d", models.StatusCancelled, now.Add(72*time.Hour)),
		// Scheduled but already elapsed: belongs to past.
		event("e", models.StatusScheduled, now.Add(-time.Hour)),
		event("f", models.StatusHeld, now.Add(-96*time.Hour)),
	}

	upcoming, past := PartitionEvents(events, now)

	// Exhaustive and disjoint.
	assert.Len(t, upcoming, 2)
	assert.Len(t, past, 4)
	seen := map[string]bool{}
	for _, e := range append(upcoming, past...) {
		assert.False(t, seen[e.ID], "event %s appears twice", e.ID)
		seen[e.ID] = true
	}
	assert.Len(t, seen, len(events))

	// Upcoming ascending (soonest first).
	assert.Equal(t, "c", upcoming[0].ID)
	assert.Equal(t, "a", upcoming[1].ID)

	// Past descending (most recent first).
	assert.Equal(t, "d", past[0].ID)
	assert.Equal(t, "e", past[1].ID)
	assert.Equal(t, "b", past[2].ID)
	assert.Equal(t, "f", past[3].ID)
}

func TestPartitionEventsBoundary(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Exactly now is still upcoming (timestamp >= now).
	upcoming, past := PartitionEvents([]models.Event{event("x", models.StatusScheduled, now)}, now)
	assert.Len(t, upcoming, 1)
	assert.Empty(t, past)
}

func TestNextEvent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, NextEvent(nil, now))
	assert.Nil(t, NextEvent([]models.Event{event("b", models.StatusHeld, now.Add(-time.Hour))}, now))

	next := NextEvent([]models.Event{
		event("later", models.StatusScheduled, now.Add(48*time.Hour)),
		event("sooner", models.StatusScheduled, now.Add(2*time.Hour)),
	}, now)
	require.NotNil(t, next)
	assert.Equal(t, "sooner", next.ID)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Agendado", StatusLabel(models.StatusScheduled))
	assert.Equal(t, "Realizado", StatusLabel(models.StatusHeld))
	assert.Equal(t, "Cancelado", StatusLabel(models.StatusCancelled))
	assert.Equal(t, "Adiado", StatusLabel(models.StatusPostponed))
	assert.Equal(t, "Agendado", StatusLabel("whatever"))
}
