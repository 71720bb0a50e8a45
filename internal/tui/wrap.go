package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/verbdrill/internal/model"
)

// wrapText word-wraps text to width display cells. Continuation lines
// start with indent. Words wider than a line are broken.
func wrapText(text string, width int, indent string) []string {
	words := strings.Fields(text)
	if width <= 0 || len(words) == 0 {
		return []string{text}
	}
	indentWidth := runewidth.StringWidth(indent)
	if indentWidth >= width {
		indent, indentWidth = "", 0
	}

	var lines []string
	var b strings.Builder
	lineWidth := 0
	empty := true
	flush := func() {
		lines = append(lines, b.String())
		b.Reset()
		b.WriteString(indent)
		lineWidth = indentWidth
		empty = true
	}

	for _, word := range words {
		ww := runewidth.StringWidth(word)
		if !empty && lineWidth+1+ww > width {
			flush()
		}
		if !empty {
			b.WriteByte(' ')
			lineWidth++
		}
		for lineWidth+ww > width {
			head := runewidth.Truncate(word, width-lineWidth, "")
			if head == "" {
				break
			}
			b.WriteString(head)
			flush()
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if word == "" {
			continue
		}
		b.WriteString(word)
		lineWidth += ww
		empty = false
	}
	if !empty || len(lines) == 0 {
		lines = append(lines, b.String())
	}
	return lines
}

// mistakeLines renders the review list shown on the summary screen.
func mistakeLines(mistakes []model.Mistake, width int) []string {
	var out []string
	for _, m := range mistakes {
		head := fmt.Sprintf("%s (%s)", m.Infinitive, m.Translation)
		if m.Direction != "" {
			head += "  " + m.Direction
		}
		out = append(out, wrapText(head, width, "  ")...)
		for _, f := range m.Wrong() {
			line := fmt.Sprintf("  %s: expected %s, got %s", f.Field.Label(), f.Expected, f.Given)
			out = append(out, wrapText(line, width, "    ")...)
		}
	}
	return out
}
