package starwake

import "time"

// FrameClock turns wall-clock time into per-frame (now, dt) pairs. Call Tick
// exactly once per rendered frame, before Field.Advance.
type FrameClock struct {
	cfg   ClockConfig
	clock func() time.Time
	start time.Time
	last  float64
}

// NewFrameClock starts a clock at the current time.
func NewFrameClock(cfg ClockConfig) *FrameClock {
	return NewFrameClockWith(cfg, time.Now)
}

// NewFrameClockWith starts a clock that reads time from clock. The start time
// is captured immediately.
func NewFrameClockWith(cfg ClockConfig, clock func() time.Time) *FrameClock {
	return &FrameClock{cfg: cfg, clock: clock, start: clock()}
}

// Tick returns the seconds elapsed since the clock started and the step since
// the previous Tick. A step larger than MaxStep is replaced by NominalStep. A
// clock that reads earlier than the previous tick yields a zero step and does
// not move the last tick time backwards.
func (c *FrameClock) Tick() (now, dt float64) {
	now = c.clock().Sub(c.start).Seconds()
	dt = now - c.last
	switch {
	case dt < 0:
		return c.last, 0
	case dt > c.cfg.MaxStep:
		dt = c.cfg.NominalStep
	}
	c.last = now
	return now, dt
}

// Elapsed returns the time of the last Tick in seconds since start.
func (c *FrameClock) Elapsed() float64 {
	return c.last
}

// Start returns the wall-clock time the clock was started.
func (c *FrameClock) Start() time.Time {
	return c.start
}
