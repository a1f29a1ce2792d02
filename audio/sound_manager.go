package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/type-tutor/constants"
)

// SoundManager plays fire-and-forget feedback sounds through one shared mixer.
// Every method is a no-op until Initialize succeeds, so the game runs without audio.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager, muted if requested
func NewSoundManager(muted bool) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		rate:  beep.SampleRate(constants.AudioSampleRate),
		mixer: mixer,
		master: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   constants.MasterVolume,
			Silent:   muted,
		},
		muted: muted,
	}
}

// Initialize opens the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferWindow)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup silences and drops every queued sound
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.master.Silent = sm.muted
		speaker.Unlock()
	} else {
		sm.master.Silent = sm.muted
	}
	return sm.muted
}

// PlayHit plays the keystroke click
func (sm *SoundManager) PlayHit() {
	sm.play(CreateHitSound)
}

// PlayMiss plays the error buzz
func (sm *SoundManager) PlayMiss() {
	sm.play(CreateMissSound)
}

// PlayClear plays the word-cleared arpeggio
func (sm *SoundManager) PlayClear() {
	sm.play(CreateClearSound)
}

// play queues a freshly built sound on the mixer
func (sm *SoundManager) play(build func(beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := build(sm.rate)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
