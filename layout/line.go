package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/scanorder/model"
)

// Line represents a single visual line of text: a maximal run of same-page,
// same-orientation runs whose positions fall within the grouping threshold.
type Line struct {
	// Runs are the text runs that make up this line, in reading order
	// for the line's orientation
	Runs []model.TextRun

	// Orientation is the shared orientation of the line's runs
	Orientation Orientation
}

// BBox returns the union of the line's run boxes
func (l Line) BBox() model.BBox {
	if len(l.Runs) == 0 {
		return model.BBox{}
	}
	bbox := l.Runs[0].BBox
	for _, run := range l.Runs[1:] {
		bbox = bbox.Union(run.BBox)
	}
	return bbox
}

// Text assembles the line's text, inserting a space where there is a visible
// gap between adjacent runs.
func (l Line) Text() string {
	var sb strings.Builder
	for i, run := range l.Runs {
		if i > 0 {
			prev := l.Runs[i-1]
			gap := run.BBox.Left - prev.BBox.Right
			if gap > run.BBox.Height()*0.1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// IsEmpty returns true if the line has no text content
func (l Line) IsEmpty() bool {
	for _, run := range l.Runs {
		if strings.TrimSpace(run.Text) != "" {
			return false
		}
	}
	return true
}

// LineConfig holds configuration for line grouping
type LineConfig struct {
	// ProximityThreshold is the maximum distance, in page units, between a
	// run and the line's last member along the grouping axis (default: 5.0)
	ProximityThreshold float64
}

// DefaultLineConfig returns the default grouping configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		ProximityThreshold: 5.0,
	}
}

// LineBuilder groups a page's text runs into visual lines
type LineBuilder struct {
	config LineConfig
}

// NewLineBuilder creates a line builder with default configuration
func NewLineBuilder() *LineBuilder {
	return &LineBuilder{
		config: DefaultLineConfig(),
	}
}

// NewLineBuilderWithConfig creates a line builder with custom configuration
func NewLineBuilderWithConfig(config LineConfig) *LineBuilder {
	return &LineBuilder{
		config: config,
	}
}

// BuildLines orders a page's runs into reading sequence and groups them into
// lines. Runs are sorted by orientation first, then by position using the
// orientation's reading order; a new line starts whenever the orientation
// changes or the position along the grouping axis moves past the threshold.
// An empty page yields no lines; a single run yields one one-run line.
func (b *LineBuilder) BuildLines(runs []model.TextRun) []Line {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]model.TextRun, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return b.less(sorted[i], sorted[j])
	})

	var lines []Line
	current := Line{
		Runs:        []model.TextRun{sorted[0]},
		Orientation: ClassifyOrientation(sorted[0].Matrix),
	}

	for _, run := range sorted[1:] {
		if b.sameLine(current.Runs[len(current.Runs)-1], run) {
			current.Runs = append(current.Runs, run)
		} else {
			lines = append(lines, current)
			current = Line{
				Runs:        []model.TextRun{run},
				Orientation: ClassifyOrientation(run.Matrix),
			}
		}
	}
	lines = append(lines, current)

	return lines
}

// less is the reading-order comparator. Orientation is the primary key; the
// secondary key depends on the orientation: horizontal text reads
// top-to-bottom then left-to-right, with the other categories following their
// rotated equivalents. Position comparisons outside the proximity threshold
// decide between lines; within it, the cross-axis position decides within a
// line.
func (b *LineBuilder) less(p, q model.TextRun) bool {
	po := ClassifyOrientation(p.Matrix)
	qo := ClassifyOrientation(q.Matrix)
	if po != qo {
		return po < qo
	}

	threshold := b.config.ProximityThreshold
	switch po {
	case OrientHorizontal:
		// Top-to-bottom, then left-to-right
		if math.Abs(p.BBox.Bottom-q.BBox.Bottom) > threshold {
			return q.BBox.Bottom < p.BBox.Bottom
		}
		return p.BBox.Left < q.BBox.Left
	case OrientRotated90:
		if math.Abs(p.BBox.Left-q.BBox.Left) > threshold {
			return p.BBox.Left < q.BBox.Left
		}
		return p.BBox.Bottom < q.BBox.Bottom
	case OrientRotated180:
		if math.Abs(p.BBox.Bottom-q.BBox.Bottom) > threshold {
			return p.BBox.Bottom < q.BBox.Bottom
		}
		return q.BBox.Left < p.BBox.Left
	default:
		if math.Abs(p.BBox.Left-q.BBox.Left) > threshold {
			return q.BBox.Left < p.BBox.Left
		}
		return q.BBox.Bottom < p.BBox.Bottom
	}
}

// sameLine reports whether a run belongs on the same line as the line's last
// member: same orientation, and within the threshold along the grouping axis
// (vertical for horizontal and 180-degree text, horizontal for the rest).
func (b *LineBuilder) sameLine(p, q model.TextRun) bool {
	po := ClassifyOrientation(p.Matrix)
	qo := ClassifyOrientation(q.Matrix)
	if po != qo {
		return false
	}

	if po == OrientHorizontal || po == OrientRotated180 {
		return math.Abs(p.BBox.Bottom-q.BBox.Bottom) <= b.config.ProximityThreshold
	}
	return math.Abs(p.BBox.Left-q.BBox.Left) <= b.config.ProximityThreshold
}
