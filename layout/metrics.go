package layout

import (
	"math"

	"github.com/tsawler/scanorder/text"
)

// LineMetrics holds the measurements direction inference needs from a single
// line: where its edges sit, and how many strongly-directional characters it
// carries.
type LineMetrics struct {
	// LeftEdge is the minimum left coordinate across the line's runs
	LeftEdge float64

	// RightEdge is the maximum right coordinate across the line's runs
	RightEdge float64

	// RTLChars is the count of strong RTL-script characters in the line
	RTLChars int

	// LTRChars is the count of strong LTR-script characters in the line
	LTRChars int
}

// Metrics computes the line's edge extents and script tallies.
// An empty line yields zero metrics.
func (l Line) Metrics() LineMetrics {
	var m LineMetrics
	if len(l.Runs) == 0 {
		return m
	}

	m.LeftEdge = l.Runs[0].BBox.Left
	m.RightEdge = l.Runs[0].BBox.Right

	for _, run := range l.Runs {
		m.LeftEdge = math.Min(m.LeftEdge, run.BBox.Left)
		m.RightEdge = math.Max(m.RightEdge, run.BBox.Right)

		rtl, ltr := text.CountScriptChars(run.Text)
		m.RTLChars += rtl
		m.LTRChars += ltr
	}

	return m
}
