package constants

// Default palette as hex strings, parsed by config
const (
	ColorBackground      = "#000000"
	ColorEntity          = "#99ff99"
	ColorMatched         = "#ffd700"
	ColorInputBackground = "#006400"
	ColorInputText       = "#99ff99"
	ColorStatusText      = "#000000"
	ColorStatusBar       = "#90ee90"
)

// DefaultFlashPalette is cycled while a highlighted letter flashes
var DefaultFlashPalette = []string{"#ff0000", "#ffff00", "#ff0000"}
