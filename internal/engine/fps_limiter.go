package engine

import (
	"time"

	"liquids/internal/config"
)

const spinWindow = 200 * time.Microsecond

// FPSLimiter caps the loop rate at config.GetFPSLimit frames per second.
type FPSLimiter struct {
	next time.Time
	now  func() time.Time
}

// NewFPSLimiter creates a limiter on the wall clock
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{now: time.Now}
}

// FrameBudget returns the frame duration for a limit, or 0 when unlimited.
func FrameBudget(limit int) time.Duration {
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// Wait blocks until the next frame is due.
// Sleeps most of the remaining time and spins the last few microseconds.
func (f *FPSLimiter) Wait() {
	target := FrameBudget(config.GetFPSLimit())
	if target == 0 {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = f.now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// resync after a hitch instead of racing to catch up
	if late := f.now().Sub(f.next); late > target {
		f.next = f.now().Add(target)
	}
}
