package app

import (
	"fmt"

	"github.com/fatih/color"
)

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Fprintln(out, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(errOut, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Fprintln(out, color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(label, value string) {
	fmt.Fprintf(out, "  %-14s %s\n", color.CyanString(label+":"), value)
}
