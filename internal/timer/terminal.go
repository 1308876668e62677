package timer

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities encapsulates detected terminal features.
type TerminalCapabilities struct {
	// IsTTY indicates whether stdout is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsUnicode selects the spinner character set
	SupportsUnicode bool
}

// DetectTerminalCapabilities detects terminal features for the countdown
// display. NO_COLOR has no bearing here; POMO_ASCII forces the ASCII
// spinner set.
func DetectTerminalCapabilities() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	forceASCII := os.Getenv("POMO_ASCII") == "1"

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsUnicode: isTTY && !forceASCII,
	}
}

// spinnerCharSet returns the briandowns/spinner character set index for
// the capabilities: Unicode dots when supported, ASCII bars otherwise.
func spinnerCharSet(caps TerminalCapabilities) int {
	if caps.SupportsUnicode {
		return 14 // ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
	}
	return 9 // | / - \
}
