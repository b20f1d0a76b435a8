package roster

import (
	"fmt"
	"strings"
)

const (
	iconReady      = "✅"
	iconOff        = "🌙"
	iconUnreported = "❌"
)

// Render formats the roster as numbered lines separated by blank lines.
// With final=true items without a recorded status are marked distinctly;
// otherwise they carry no icon. An empty roster renders as an empty string
// and the caller substitutes its own placeholder message.
func Render(d *Document, final bool) string {
	lines := make([]string, 0, len(d.List))
	for i, item := range d.List {
		n := i + 1
		icon := ""
		switch st, ok := d.StatusOf(n); {
		case ok && st == StatusReady:
			icon = iconReady
		case ok && st == StatusOff:
			icon = iconOff
		case final:
			icon = iconUnreported
		}
		lines = append(lines, strings.TrimSpace(fmt.Sprintf("%s %d. %s", icon, n, item)))
	}
	return strings.Join(lines, "\n\n")
}
