package engine

import "time"

// FrameTimer measures wall-clock dt between frames, capped at maxDelta
type FrameTimer struct {
	provider TimeProvider
	last     time.Time
	maxDelta time.Duration
}

// NewFrameTimer starts timing from provider's current time
func NewFrameTimer(provider TimeProvider, maxDelta time.Duration) *FrameTimer {
	return &FrameTimer{
		provider: provider,
		last:     provider.Now(),
		maxDelta: maxDelta,
	}
}

// Delta returns the time since the previous call (or construction)
func (ft *FrameTimer) Delta() time.Duration {
	now := ft.provider.Now()
	dt := now.Sub(ft.last)
	ft.last = now

	if dt < 0 {
		return 0
	}
	if ft.maxDelta > 0 && dt > ft.maxDelta {
		return ft.maxDelta
	}
	return dt
}

// GameClock accumulates game time from frame deltas; time stands still while paused.
// All animation and lifecycle decisions read this clock, never the wall clock.
type GameClock struct {
	elapsed time.Duration
	paused  bool
}

// NewGameClock creates a clock at zero
func NewGameClock() *GameClock {
	return &GameClock{}
}

// Advance adds dt unless paused and returns the resulting game time
func (c *GameClock) Advance(dt time.Duration) time.Duration {
	if dt < 0 {
		dt = 0
	}
	if c.paused {
		return c.elapsed
	}
	c.elapsed += dt
	return c.elapsed
}

// Now returns game time since start
func (c *GameClock) Now() time.Duration {
	return c.elapsed
}

// TogglePause flips the pause state and returns the new state
func (c *GameClock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// IsPaused returns current pause state
func (c *GameClock) IsPaused() bool {
	return c.paused
}
