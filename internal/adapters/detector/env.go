// Package detector selects how the progress of a pass is rendered.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the progress of a pass.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTTY forces the interactive progress view.
	ModeTTY
	// ModePlain prints the report only.
	ModePlain
)

// DetectEnvironment returns the recommended output mode for f, usually stderr.
// A terminal outside CI gets the interactive view.
func DetectEnvironment(f *os.File) OutputMode {
	isTTY := f != nil && term.IsTerminal(int(f.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePlain
	}
	return ModeTTY
}

// ResolveMode applies the user flag to the detected mode.
// userFlag should be one of: "auto", "tty", "plain", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tty", "tui":
		return ModeTTY
	case "plain", "ci":
		return ModePlain
	default:
		return autoDetected
	}
}
