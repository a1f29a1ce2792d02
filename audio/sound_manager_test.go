package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(false)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayHit()
	sm.PlayMiss()
	sm.PlayClear()
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(false)

	// Speaker initialization may fail without an audio device
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayHit()
	sm.PlayClear()
	sm.Cleanup()
}

// TestSoundManagerToggleMute verifies mute state flips without a device
func TestSoundManagerToggleMute(t *testing.T) {
	sm := NewSoundManager(true)
	if !sm.IsMuted() {
		t.Fatal("Expected manager to start muted")
	}

	if sm.ToggleMute() {
		t.Error("Expected unmuted after toggle")
	}
	if sm.master.Silent {
		t.Error("Expected master volume audible after unmute")
	}
	if !sm.ToggleMute() || !sm.master.Silent {
		t.Error("Expected muted after second toggle")
	}
}
