package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Brand colors
var (
	Brand  = color.New(color.FgHiGreen, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

const (
	KeyIcon     = "\U0001F511" // 🔑
	SuccessIcon = "\u2705"     // ✅
	FailureIcon = "\u274C"     // ❌
)

var emoji = true

// Configure toggles color and emoji output. NO_COLOR is honored by fatih/color
// on its own; passing color=false forces it off.
func Configure(useColor, useEmoji bool) {
	if !useColor {
		color.NoColor = true
	}
	emoji = useEmoji
}

func label(icon, msg string) string {
	if !emoji {
		return msg
	}
	return icon + " " + msg
}

// Key prints a credential status line.
func Key(w io.Writer, msg string) {
	fmt.Fprintln(w, label(KeyIcon, msg))
}

// Success prints a success label.
func Success(w io.Writer, msg string) {
	Good.Fprintln(w, label(SuccessIcon, msg))
}

// Failure prints an error label.
func Failure(w io.Writer, msg string) {
	Bad.Fprintln(w, label(FailureIcon, msg))
}

// Banner prints the rskeys banner for diagnostic commands.
func Banner(w io.Writer, subtitle string) {
	fmt.Fprintf(w, "%s — %s\n\n", label(KeyIcon, Brand.Sprint("rskeys")), subtitle)
}

// Table prints a simple aligned table.
func Table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += fmt.Sprintf("%-*s  ", widths[i], h)
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	Subtle.Fprintln(w, strings.TrimRight(headerLine, " "))
	Subtle.Fprintln(w, strings.TrimRight(sepLine, " "))

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// StatusIcon returns a status icon string.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}

// WarnIcon returns a warning icon.
func WarnIcon() string {
	return Warn.Sprint("⚠")
}
