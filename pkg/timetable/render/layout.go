package render

import (
	"math"
	"strings"
)

const (
	// HeaderRowHeight is the fixed height of the label row, in points.
	HeaderRowHeight = 25.0
	// LineHeight is the height of one text line in a body row, in points.
	LineHeight = 22.0
	// MinColumnWidth is the narrowest column, in character units.
	MinColumnWidth = 15.0
	// WidthFactor pads the measured text width.
	WidthFactor = 1.2
)

// DisplayWidth measures a single line. Runes above U+00FF count as two units.
func DisplayWidth(line string) int {
	n := 0
	for _, r := range line {
		if r > 0xFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// TextWidth returns the display width of the longest line in text.
func TextWidth(text string) int {
	widest := 0
	for _, line := range strings.Split(text, "\n") {
		if w := DisplayWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

// LineCount returns the number of lines in text. Empty text is one line.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// ColumnWidth sizes a column to fit the widest of texts.
func ColumnWidth(texts []string) float64 {
	raw := 0
	for _, text := range texts {
		if w := TextWidth(text); w > raw {
			raw = w
		}
	}
	return math.Max(MinColumnWidth, float64(raw)*WidthFactor)
}

// RowHeight sizes a body row to fit its tallest cell.
func RowHeight(cells []string) float64 {
	lines := 1
	for _, text := range cells {
		if n := LineCount(text); n > lines {
			lines = n
		}
	}
	return float64(lines) * LineHeight
}
