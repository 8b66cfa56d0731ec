package color

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode is the --color setting.
type Mode string

const (
	Auto   Mode = "auto"
	Always Mode = "always"
	Never  Mode = "never"
)

// Modes lists the accepted values in help order.
var Modes = []Mode{Auto, Always, Never}

// ParseMode validates a --color or config file value. Empty means Auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return Auto, nil
	case Auto, Always, Never:
		return m, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always, or never)", s)
	}
}

// isTerminal is replaced in tests.
var isTerminal = func(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// ShouldUseColors determines if colors should be used for stdout.
func (m Mode) ShouldUseColors() bool {
	switch m {
	case Always:
		return true
	case Never:
		return false
	default:
		if !isTerminal(os.Stdout) {
			return false
		}
		return os.Getenv("NO_COLOR") == ""
	}
}

// Profile is the termenv profile forced by the mode. Auto returns false
// to leave detection to lipgloss.
func (m Mode) Profile() (termenv.Profile, bool) {
	switch m {
	case Always:
		return termenv.TrueColor, true
	case Never:
		return termenv.Ascii, true
	default:
		return termenv.Ascii, false
	}
}

// ConfigureColorProfile sets the global lipgloss color profile. It must be
// called before any lipgloss or glamour rendering so that piped output
// honours --color=always.
func (m Mode) ConfigureColorProfile() {
	if p, ok := m.Profile(); ok {
		lipgloss.SetColorProfile(p)
	}
}
