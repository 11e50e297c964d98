package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemainingOneHourAhead(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	target := now.Add(time.Hour)

	left := Remaining(target, now)
	assert.Equal(t, TimeLeft{Days: 0, Hours: 1, Minutes: 0, Seconds: 0}, left)

	left = Remaining(target, now.Add(time.Second))
	assert.Equal(t, TimeLeft{Days: 0, Hours: 0, Minutes: 59, Seconds: 59}, left)
}

func TestRemainingMixedUnits(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	target := now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second)

	assert.Equal(t, TimeLeft{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, Remaining(target, now))
}

func TestRemainingClampsAtZero(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, Remaining(now, now).Zero())
	assert.True(t, Remaining(now.Add(-time.Hour), now).Zero())
	assert.Equal(t, TimeLeft{}, Remaining(now.Add(-30*24*time.Hour), now))
}

func TestCountdownStopTearsDown(t *testing.T) {
	c := NewCountdown(time.Now().Add(time.Hour))
	c.Stop()
	// A second Stop must be safe.
	c.Stop()

	select {
	case _, ok := <-c.done:
		assert.False(t, ok, "done channel should be closed")
	default:
		t.Fatal("done channel not closed after Stop")
	}
}

func TestCountdownTicks(t *testing.T) {
	if testing.Short() {
		t.Skip("ticking test")
	}
	c := NewCountdown(time.Now().Add(time.Hour))
	defer c.Stop()

	select {
	case left := <-c.C:
		assert.False(t, left.Zero())
		assert.Equal(t, 0, left.Days)
	case <-time.After(3 * time.Second):
		t.Fatal("no tick delivered")
	}
}
