// Package textutil holds small text layout helpers used when rendering help output.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text into lines no wider than width runes. Words longer than width get a line of
// their own. Runs of whitespace, including newlines, collapse into a single space.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
		n     int
	)
	for _, word := range strings.Fields(text) {
		w := utf8.RuneCountInString(word)
		if n > 0 && n+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += w
	}
	if n > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// PadRight pads s with spaces until it is width runes wide.
func PadRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Columns renders two-column rows: the left column padded to the widest entry plus gap, the right
// column wrapped at total width and continuation lines aligned under it. Every row is indented by
// indent spaces.
func Columns(rows [][2]string, indent, gap, total int) string {
	maxLen := 0
	for _, r := range rows {
		maxLen = max(maxLen, utf8.RuneCountInString(r[0]))
	}
	left := indent + maxLen + gap
	wrapWidth := max(total-left, 20)
	pad := strings.Repeat(" ", indent)

	var b strings.Builder
	for _, r := range rows {
		lines := Wrap(r[1], wrapWidth)
		if len(lines) == 0 {
			b.WriteString(pad + r[0] + "\n")
			continue
		}
		b.WriteString(pad + PadRight(r[0], maxLen+gap) + lines[0] + "\n")
		for _, l := range lines[1:] {
			b.WriteString(strings.Repeat(" ", left) + l + "\n")
		}
	}
	return b.String()
}
