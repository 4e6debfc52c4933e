package core

import "time"

// AutoPlayTiming holds auto-play delays in simulation ticks.
type AutoPlayTiming struct {
	Start uint64 // Before the first step
	Move  uint64 // Before stepping onto a plain move
	Push  uint64 // Before stepping onto a push
}

// Default auto-play delays.
const (
	DefaultAutoPlayStart = 100 * time.Millisecond
	DefaultAutoPlayMove  = 75 * time.Millisecond
	DefaultAutoPlayPush  = 250 * time.Millisecond
)

// TicksFor converts a delay to a whole number of ticks at tickRate,
// rounding up and never returning less than one.
func TicksFor(d time.Duration, tickRate int) uint64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	period := time.Second / time.Duration(tickRate)
	if d <= period {
		return 1
	}
	return uint64((d + period - 1) / period)
}

// NewAutoPlayTiming converts millisecond-scale delays to ticks.
func NewAutoPlayTiming(start, move, push time.Duration, tickRate int) AutoPlayTiming {
	return AutoPlayTiming{
		Start: TicksFor(start, tickRate),
		Move:  TicksFor(move, tickRate),
		Push:  TicksFor(push, tickRate),
	}
}

// AutoPlay is a cancellable repeating task driven by the tick counter.
// At most one step is pending at a time; Stop clears it.
type AutoPlay struct {
	timing AutoPlayTiming
	active bool
	due    uint64
}

// NewAutoPlay creates a stopped auto-play handle.
func NewAutoPlay(timing AutoPlayTiming) *AutoPlay {
	return &AutoPlay{timing: timing}
}

// Start schedules the first step. Restarting an active handle reschedules it.
func (a *AutoPlay) Start(now uint64) {
	a.active = true
	a.due = now + a.timing.Start
}

// Stop cancels any pending step. Safe to call when already stopped.
func (a *AutoPlay) Stop() {
	a.active = false
	a.due = 0
}

// Active returns true while a step is pending.
func (a *AutoPlay) Active() bool {
	return a.active
}

// Due returns true if a pending step should run at tick now.
func (a *AutoPlay) Due(now uint64) bool {
	return a.active && now >= a.due
}

// Schedule sets the next step after the delay for a move or push.
func (a *AutoPlay) Schedule(now uint64, push bool) {
	if !a.active {
		return
	}
	if push {
		a.due = now + a.timing.Push
	} else {
		a.due = now + a.timing.Move
	}
}
