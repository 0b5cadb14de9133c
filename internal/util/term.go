package util

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is a terminal. Cygwin and MSYS ptys count.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorDisabled reports whether color output should be off: --no-color,
// a non-empty NO_COLOR, or a stdout that is not a terminal.
func ColorDisabled(noColor bool) bool {
	return noColor || os.Getenv("NO_COLOR") != "" || !IsTTY()
}

// InitColor turns off fatih/color output when ColorDisabled says so.
func InitColor(noColor bool) {
	if ColorDisabled(noColor) {
		color.NoColor = true
	}
}
