package render

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// WriteCellSGR writes a single cell's full SGR + character to the builder.
// Every cell starts from a reset so no attribute leaks into the next one.
func WriteCellSGR(sb *strings.Builder, c Cell) {
	if c.Bold {
		sb.WriteString("\x1b[0;1;38;2;")
	} else {
		sb.WriteString("\x1b[0;38;2;")
	}
	sb.WriteString(strconv.Itoa(int(c.FgR)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.FgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.FgB)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(c.BgR)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.BgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.BgB)))
	sb.WriteByte('m')
	sb.WriteRune(c.Ch)
}

// Colorize wraps s in a 24-bit foreground color.
func Colorize(s string, r, g, b uint8) string {
	return fmt.Sprintf("%s38;2;%d;%d;%dm%s%s", CSI, r, g, b, s, Reset)
}
