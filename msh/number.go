package msh

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders v with the configured precision. Nonzero values
// smaller in magnitude than ScientificThreshold are rendered in scientific
// notation; everything else fixed-point, rounded to Precision places. The
// decimal separator is always '.'.
func (o *Options) FormatFloat(v float64) (s string) {
	if v != 0 && math.Abs(v) < o.ScientificThreshold {
		s = strconv.FormatFloat(v, 'e', o.Precision, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', o.Precision, 64)
	}
	if o.AlignColumns {
		s = rightAlign(s, o.ColumnWidth)
	}
	return
}

// FormatInt renders v as plain decimal, right-aligned to width when column
// alignment is enabled. Width 0 means the default integer column of 10.
func (o *Options) FormatInt(v int, width int) (s string) {
	s = strconv.Itoa(v)
	if !o.AlignColumns {
		return
	}
	if width == 0 {
		width = 10
	}
	return rightAlign(s, width)
}

// FormatCoordinates renders one coordinate line, tokens joined by single
// spaces.
func (o *Options) FormatCoordinates(coords []float64) string {
	var (
		formatted = make([]string, len(coords))
	)
	for i, c := range coords {
		formatted[i] = o.FormatFloat(c)
	}
	return strings.Join(formatted, " ")
}

// Tokens already wider than the column are left unmodified.
func rightAlign(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
