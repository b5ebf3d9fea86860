// Package meter renders an evaluation result as a terminal progress bar
// followed by the requirement checklist.
package meter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atinyakov/passmeter/internal/strength"
)

// DefaultWidth is the bar width used when Meter.Width is not positive.
const DefaultWidth = 30

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiGreen  = "\x1b[32m"
	ansiGray   = "\x1b[90m"
)

var levelColors = map[strength.Strength]string{
	strength.Weak:   ansiRed,
	strength.Medium: ansiYellow,
	strength.Strong: ansiGreen,
}

// Meter draws results. The zero value draws an uncolored bar of DefaultWidth.
type Meter struct {
	// Width is the number of cells in the bar.
	Width int
	// Color enables ANSI colors.
	Color bool
}

// Render writes the bar, the strength caption and the checklist for res to w.
func (m Meter) Render(w io.Writer, res strength.Result) error {
	_, err := io.WriteString(w, m.String(res))
	return err
}

// String returns what Render would write.
func (m Meter) String(res strength.Result) string {
	var b strings.Builder

	width := m.Width
	if width <= 0 {
		width = DefaultWidth
	}
	filled := width * percent(res.Strength) / 100

	b.WriteString("[")
	b.WriteString(m.paint(levelColors[res.Strength], strings.Repeat("#", filled)))
	b.WriteString(strings.Repeat(".", width-filled))
	fmt.Fprintf(&b, "] %s\n", res.Strength.Percentage())
	b.WriteString(res.Strength.Label())
	b.WriteString("\n")

	for _, req := range strength.Requirements() {
		if res.Met(req) {
			fmt.Fprintf(&b, "  %s %s\n", m.paint(ansiGreen, "✓"), req.Label())
		} else {
			fmt.Fprintf(&b, "  %s\n", m.paint(ansiGray, "o "+req.Label()))
		}
	}
	return b.String()
}

func (m Meter) paint(color, s string) string {
	if !m.Color || s == "" {
		return s
	}
	return color + s + ansiReset
}

func percent(s strength.Strength) int {
	n, err := strconv.Atoi(strings.TrimSuffix(s.Percentage(), "%"))
	if err != nil {
		return 0
	}
	return n
}
