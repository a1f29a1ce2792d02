package engine

import (
	"testing"
	"time"
)

func TestGameClockPause(t *testing.T) {
	c := NewGameClock()
	c.Advance(100 * time.Millisecond)

	if !c.TogglePause() {
		t.Fatal("Expected clock to be paused")
	}
	if got := c.Advance(500 * time.Millisecond); got != 100*time.Millisecond {
		t.Errorf("Expected time frozen at 100ms, got %v", got)
	}

	if c.TogglePause() {
		t.Fatal("Expected clock to be running")
	}
	c.Advance(50 * time.Millisecond)
	if c.Now() != 150*time.Millisecond {
		t.Errorf("Expected 150ms, got %v", c.Now())
	}
}

func TestGameClockIgnoresNegativeDelta(t *testing.T) {
	c := NewGameClock()
	c.Advance(-time.Second)
	if c.Now() != 0 {
		t.Errorf("Expected 0, got %v", c.Now())
	}
}

func TestFrameTimerCapsDelta(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	ft := NewFrameTimer(mock, 250*time.Millisecond)

	mock.Advance(16 * time.Millisecond)
	if dt := ft.Delta(); dt != 16*time.Millisecond {
		t.Errorf("Expected 16ms, got %v", dt)
	}

	mock.Advance(3 * time.Second)
	if dt := ft.Delta(); dt != 250*time.Millisecond {
		t.Errorf("Expected capped 250ms, got %v", dt)
	}

	if dt := ft.Delta(); dt != 0 {
		t.Errorf("Expected 0 without time passing, got %v", dt)
	}
}
