package constants

import "time"

// Audio Constants
const (
	AudioSampleRate   = 44100
	AudioBufferWindow = 100 * time.Millisecond

	HitToneHz       = 880.0
	HitToneDuration = 50 * time.Millisecond

	MissBuzzHz       = 120.0
	MissBuzzDuration = 150 * time.Millisecond

	ClearNoteDuration = 60 * time.Millisecond

	// Envelope edges shared by every effect
	ToneAttack  = 5 * time.Millisecond
	ToneRelease = 20 * time.Millisecond

	// MasterVolume is the beep effects.Volume exponent applied to the mixer (base 2)
	MasterVolume = -1.0
)

// ClearArpeggioHz is played when a word is cleared
var ClearArpeggioHz = []float64{660, 880, 1320}
