// Package frame paces the window loop that runs after bootstrap.
package frame

import (
	"time"

	"surfboot/internal/config"
)

// IdleFPS caps the loop while the window is iconified or unfocused.
const IdleFPS = 30

const spinWindow = 200 * time.Microsecond

// Limiter provides high-precision frame rate limiting
type Limiter struct {
	next  time.Time
	limit func() int
}

// NewLimiter returns a limiter that reads the global FPS limit every frame.
func NewLimiter() *Limiter {
	return &Limiter{limit: config.GetFPSLimit}
}

// NewFixedLimiter returns a limiter capped at fps; 0 disables the cap.
func NewFixedLimiter(fps int) *Limiter {
	return &Limiter{limit: func() int { return fps }}
}

// Wait blocks until the next frame is due.
// Sleeps for most of the interval then spins the rest.
func (l *Limiter) Wait(idle bool) {
	effectiveLimit := l.limit()
	if idle && (effectiveLimit <= 0 || effectiveLimit > IdleFPS) {
		effectiveLimit = IdleFPS
	}

	if effectiveLimit <= 0 {
		l.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(effectiveLimit)

	if l.next.IsZero() {
		l.next = time.Now().Add(target)
	} else {
		l.next = l.next.Add(target)
	}

	for {
		remaining := time.Until(l.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// resync after a hitch so we don't burst to catch up
	if late := -time.Until(l.next); late > target {
		l.next = time.Now().Add(target)
	}
}

// Reset forgets the frame schedule.
func (l *Limiter) Reset() {
	l.next = time.Time{}
}
