package ui

import (
	"fmt"
	"io"
	"strings"

	"clipboardCleanse/internal/sanitizer"
)

// PrintChange выводит одну замену: было -> стало
func PrintChange(w io.Writer, c sanitizer.Change) {
	fmt.Fprintf(w, "  "+ColorRed+"%s"+ColorReset+"\n", c.From)
	fmt.Fprintf(w, "  "+ColorGreen+IconArrow+" %s"+ColorReset+"\n", c.To)
}

// PrintRule выводит строку таблицы правил
func PrintRule(w io.Writer, r sanitizer.HostRule) {
	parts := make([]string, 0, len(r.Actions))
	for _, a := range r.Actions {
		parts = append(parts, a.String())
	}
	fmt.Fprintf(w, "  "+ColorGreen+"%-20s"+ColorReset+" %s\n", r.Host, strings.Join(parts, "; "))
}

// ClearScreen очищает терминал
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}
