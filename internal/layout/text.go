package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/storyboard/internal/config"
)

// Measurer reports the rendered width of a string, in whatever unit the
// caller wraps against (millimetres for PDF, cells for the terminal).
type Measurer func(s string) float64

// CellWidth measures terminal cells, ignoring ANSI escapes.
func CellWidth(s string) float64 {
	return float64(ansi.StringWidth(s))
}

// Wrap breaks text into lines no wider than width. Paragraph breaks are
// kept, runs of spaces collapse, and words wider than a line are split.
func Wrap(text string, width float64, measure Measurer) []string {
	if measure == nil {
		measure = CellWidth
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, w := range words {
			candidate := w
			if line != "" {
				candidate = line + " " + w
			}
			if measure(candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			for measure(w) > width {
				head, tail := splitAt(w, width, measure)
				lines = append(lines, head)
				w = tail
			}
			line = w
		}
		lines = append(lines, line)
	}
	return lines
}

// splitAt returns the longest rune prefix of w that fits width, taking at
// least one rune so wrapping always progresses.
func splitAt(w string, width float64, measure Measurer) (string, string) {
	runes := []rune(w)
	n := 1
	for n < len(runes) && measure(string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}

// Truncate shortens text to fit width, ending it with "..." when cut.
func Truncate(text string, width float64, measure Measurer) string {
	if measure == nil {
		measure = CellWidth
	}
	if measure(text) <= width {
		return text
	}
	suffix := config.TruncationSuffix
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		s := strings.TrimRight(string(runes[:n]), " ") + suffix
		if measure(s) <= width {
			return s
		}
	}
	if measure(suffix) <= width {
		return suffix
	}
	return ""
}

// FitLines keeps at most maxLines lines, marking the last kept line with
// "..." when anything was dropped.
func FitLines(lines []string, maxLines int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}
	out := append([]string(nil), lines[:maxLines]...)
	last := strings.TrimRight(out[maxLines-1], " ")
	if !strings.HasSuffix(last, config.TruncationSuffix) {
		last += config.TruncationSuffix
	}
	out[maxLines-1] = last
	return out
}
