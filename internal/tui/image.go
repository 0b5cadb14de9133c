package tui

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// ImageProtocol is the inline image protocol a terminal understands.
type ImageProtocol int

const (
	ProtocolNone ImageProtocol = iota
	ProtocolKitty
	ProtocolITerm2
)

// DetectImageProtocol inspects TERM and TERM_PROGRAM.
func DetectImageProtocol() ImageProtocol {
	termProgram := os.Getenv("TERM_PROGRAM")
	switch {
	case strings.Contains(os.Getenv("TERM"), "kitty"), termProgram == "ghostty":
		return ProtocolKitty
	case termProgram == "iTerm.app":
		return ProtocolITerm2
	}
	return ProtocolNone
}

// RenderCover returns the escape sequence that draws the cached cover at
// path inline, or "" when the terminal has no image support or the file
// cannot be read.
func RenderCover(path string, protocol ImageProtocol) string {
	if protocol == ProtocolNone {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return ""
	}
	encoded := base64.StdEncoding.EncodeToString(data)

	switch protocol {
	case ProtocolKitty:
		// a=T: transmit and display; f=100: encoded image file
		return fmt.Sprintf("\x1b_Ga=T,f=100;%s\x1b\\", encoded)
	case ProtocolITerm2:
		return fmt.Sprintf("\x1b]1337;File=inline=1;width=16:%s\x07", encoded)
	}
	return ""
}
