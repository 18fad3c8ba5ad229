package game

import "time"

// Limiter paces a loop to a fixed rate.
type Limiter struct {
	target time.Duration
	next   time.Time
}

// NewLimiter creates a limiter for rate iterations per second. A rate of zero or less
// disables waiting.
func NewLimiter(rate int) *Limiter {
	l := &Limiter{}
	if rate > 0 {
		l.target = time.Second / time.Duration(rate)
	}
	return l
}

// Wait blocks until the next iteration is due.
// Uses a hybrid sleep/spin approach for better precision on high rates.
func (l *Limiter) Wait() {
	if l.target <= 0 {
		l.next = time.Time{}
		return
	}

	if l.next.IsZero() {
		l.next = time.Now().Add(l.target)
	} else {
		l.next = l.next.Add(l.target)
	}

	for {
		remaining := time.Until(l.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		if time.Until(l.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := -time.Until(l.next); late > l.target {
		l.next = time.Now().Add(l.target)
	}
}

// Due reports whether an iteration is due without blocking, and advances the schedule
// when it is. Render loops use it to run fixed-rate ticks between frames.
func (l *Limiter) Due(now time.Time) bool {
	if l.target <= 0 {
		return true
	}
	if l.next.IsZero() {
		l.next = now.Add(l.target)
		return true
	}
	if now.Before(l.next) {
		return false
	}
	l.next = l.next.Add(l.target)
	if now.Sub(l.next) > l.target {
		l.next = now.Add(l.target)
	}
	return true
}
