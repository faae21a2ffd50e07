package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// MessageType selects the color a CLI message is decorated with.
type MessageType int

// The message types used across the CLI.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI colors used across the CLI.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

var messageColors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	StatusMessage:  StatusColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
}

// colorize is false when NO_COLOR is set or stderr is not a terminal.
var colorize = os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stderr.Fd()))

// DecorateText wraps the message in the color of its type.
// Unknown types and non-colored outputs get the message back untouched.
func DecorateText(s string, msgType MessageType) string {
	col, ok := messageColors[msgType]
	if !ok || !colorize {
		return s
	}
	return col + s + DefaultColor
}

var timeUnits = []struct {
	suffix string
	size   time.Duration
}{
	{"d", 24 * time.Hour},
	{"h", time.Hour},
	{"m", time.Minute},
}

// FormatTime formats a duration as days, hours, minutes and fractional seconds,
// omitting the leading units which are zero, e.g. "1h 0m 2.50s".
func FormatTime(d time.Duration) string {
	var parts []string
	for _, u := range timeUnits {
		if n := d / u.size; n > 0 || len(parts) > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, u.suffix))
			d -= n * u.size
		}
	}
	parts = append(parts, fmt.Sprintf("%.2fs", d.Seconds()))
	return strings.Join(parts, " ")
}
