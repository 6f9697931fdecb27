package logger

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Palette used by the pretty handler.
const (
	colorSlate  = "#667085"
	colorYellow = "#F59E0B"
	colorRed    = "#D93025"
	colorMist   = "#98A2B3"
)

// Level symbols.
const (
	symbolWarning = "!"
	symbolCross   = "✗"
	symbolDebug   = "·"
)

// colorProfile returns Ascii when NO_COLOR is set, otherwise the detected profile.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// newOutput creates a termenv.Output for w honoring NO_COLOR.
func newOutput(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(colorProfile()),
		termenv.WithTTY(true),
	)
}
