package constants

import "time"

// Frame pacing
const (
	FrameRate           = 60
	FrameUpdateInterval = time.Second / FrameRate

	// MaxFrameDelta caps dt after a stall (suspend, debugger) so entities do not teleport
	MaxFrameDelta = 250 * time.Millisecond
)

// UI Layout Constants
const (
	// StatusBarHeight is the number of rows used by the status bar at the bottom
	StatusBarHeight = 1

	// InputBoxHeight is the number of text rows in the input box
	InputBoxHeight = 4

	// InputBoxPadding is the horizontal padding inside the input box border
	InputBoxPadding = 1

	// MinPlayfieldHeight below which nothing is spawned
	MinPlayfieldHeight = 3
)

// UI Timing Constants
const (
	// CursorBlinkInterval toggles input cursor visibility
	CursorBlinkInterval = 500 * time.Millisecond
)
