package workout

import (
	"fmt"
	"time"
)

// Clock is a pausable stopwatch or countdown. It holds no goroutines; callers
// pass the current time to every query, so display ticks can drift freely.
type Clock struct {
	duration  time.Duration // zero for a stopwatch
	elapsed   time.Duration // accumulated while paused
	startedAt time.Time
	running   bool
}

// NewCountdown returns a paused countdown of d.
func NewCountdown(d time.Duration) *Clock {
	return &Clock{duration: d}
}

// NewStopwatch returns a paused stopwatch.
func NewStopwatch() *Clock {
	return &Clock{}
}

// IsCountdown reports whether the clock counts down.
func (c *Clock) IsCountdown() bool { return c.duration > 0 }

// Running reports whether the clock is ticking.
func (c *Clock) Running() bool { return c.running }

// Start resumes the clock. Starting a running clock is a no-op.
func (c *Clock) Start(now time.Time) {
	if c.running {
		return
	}
	c.startedAt = now
	c.running = true
}

// Pause freezes the clock. Pausing a paused clock is a no-op.
func (c *Clock) Pause(now time.Time) {
	if !c.running {
		return
	}
	c.elapsed += now.Sub(c.startedAt)
	c.running = false
}

// Toggle starts a paused clock or pauses a running one.
func (c *Clock) Toggle(now time.Time) {
	if c.running {
		c.Pause(now)
	} else {
		c.Start(now)
	}
}

// Reset stops the clock and clears the elapsed time.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.running = false
	c.startedAt = time.Time{}
}

// Elapsed returns the time counted so far, capped at the countdown duration.
func (c *Clock) Elapsed(now time.Time) time.Duration {
	e := c.elapsed
	if c.running {
		e += now.Sub(c.startedAt)
	}
	if e < 0 {
		e = 0
	}
	if c.IsCountdown() && e > c.duration {
		e = c.duration
	}
	return e
}

// Remaining returns the countdown time left, or zero for a stopwatch.
func (c *Clock) Remaining(now time.Time) time.Duration {
	if !c.IsCountdown() {
		return 0
	}
	return c.duration - c.Elapsed(now)
}

// Done reports whether a countdown has run out.
func (c *Clock) Done(now time.Time) bool {
	return c.IsCountdown() && c.Remaining(now) <= 0
}

// Display returns the value to show: remaining time for a countdown,
// elapsed time for a stopwatch.
func (c *Clock) Display(now time.Time) string {
	if c.IsCountdown() {
		return Format(c.Remaining(now))
	}
	return Format(c.Elapsed(now))
}

// Format renders d as "MM:SS.cc"; hours are folded into minutes.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := int(d / (10 * time.Millisecond))
	return fmt.Sprintf("%02d:%02d.%02d", cs/6000, (cs/100)%60, cs%100)
}
