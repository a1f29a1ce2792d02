package constants

import "time"

// Spawn cadence and placement
const (
	// SpawnInterval is the delay between spawn attempts
	SpawnInterval = 1500 * time.Millisecond

	// SpawnMaxAttempts is the number of random placements tried before a spawn is abandoned
	SpawnMaxAttempts = 10

	// SpawnMarginX and SpawnMarginY inflate bounding boxes on each side for collision tests (cells)
	SpawnMarginX = 2.0
	SpawnMarginY = 1.0

	// SpawnLineOffset is the distance between the playfield bottom and the spawn line (cells)
	SpawnLineOffset = 0.0
)

// Motion, in cells per second
const (
	MinRiseSpeed = 0.8
	MaxRiseSpeed = 1.6

	// OffscreenBoundary is the playfield-relative y a rising entity must clear to be culled
	OffscreenBoundary = 0.0
)

// Vocabulary filtering
const (
	MinWordLength = 3
	MaxWordLength = 5
)

// Highlight flash
const (
	// FlashStepDuration is how long each palette entry is shown while a letter flashes
	FlashStepDuration = 250 * time.Millisecond
)

// Scoring
const (
	// LetterScore is awarded per matched letter in letters mode
	LetterScore = 1
)
