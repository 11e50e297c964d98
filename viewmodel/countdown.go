package viewmodel

import (
	"sync"
	"time"
)

// TimeLeft is the remaining time to an event, broken into display units.
type TimeLeft struct {
	Days    int `json:"dias"`
	Hours   int `json:"horas"`
	Minutes int `json:"minutos"`
	Seconds int `json:"segundos"`
}

// Zero reports whether the countdown has reached its target.
func (t TimeLeft) Zero() bool {
	return t.Days == 0 && t.Hours == 0 && t.Minutes == 0 && t.Seconds == 0
}

// Remaining computes the time left until target. At or past the target every
// unit clamps to zero; it never goes negative.
func Remaining(target, now time.Time) TimeLeft {
	d := target.Sub(now)
	if d <= 0 {
		return TimeLeft{}
	}
	secs := int(d / time.Second)
	return TimeLeft{
		Days:    secs / 86400,
		Hours:   secs % 86400 / 3600,
		Minutes: secs % 3600 / 60,
		Seconds: secs % 60,
	}
}

// Countdown recomputes the remaining time once per second and delivers it on
// C. Stop must be called when the consumer goes away so the ticker does not
// leak across navigations.
type Countdown struct {
	// C carries one TimeLeft per second. Reads that lag are dropped, not
	// queued; the channel always holds at most the latest value.
	C <-chan TimeLeft

	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// NewCountdown starts a ticking countdown toward target.
func NewCountdown(target time.Time) *Countdown {
	ch := make(chan TimeLeft, 1)
	c := &Countdown{
		C:      ch,
		ticker: time.NewTicker(time.Second),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-c.done:
				return
			case now := <-c.ticker.C:
				left := Remaining(target, now)
				// Replace a stale unread value instead of blocking.
				select {
				case ch <- left:
				default:
					select {
					case <-ch:
					default:
					}
					ch <- left
				}
				if left.Zero() {
					c.ticker.Stop()
					return
				}
			}
		}
	}()

	return c
}

// Stop tears the timer down. Safe to call more than once.
func (c *Countdown) Stop() {
	c.once.Do(func() {
		c.ticker.Stop()
		close(c.done)
	})
}
