package layout

import "github.com/tsawler/scanorder/model"

// Orientation classifies a text run's placement transform into one of four
// fixed categories. The category drives how runs are ordered and grouped into
// lines: horizontal text groups by vertical position, rotated text by
// horizontal position.
type Orientation int

const (
	// OrientHorizontal is normal upright text (a > 0 and d > 0)
	OrientHorizontal Orientation = iota
	// OrientRotated90 is text rotated 90 degrees (b > 0 and c < 0)
	OrientRotated90
	// OrientRotated180 is upside-down text (a < 0 and d < 0)
	OrientRotated180
	// OrientOther covers everything else: 270-degree rotations, skews,
	// mirrors, and degenerate transforms
	OrientOther
)

// String returns a string representation of the orientation
func (o Orientation) String() string {
	switch o {
	case OrientHorizontal:
		return "horizontal"
	case OrientRotated90:
		return "rotated-90"
	case OrientRotated180:
		return "rotated-180"
	default:
		return "other"
	}
}

// ClassifyOrientation determines a run's orientation from its transform.
// The rules are checked in priority order and the first match wins, so every
// transform maps to exactly one category. Translation is ignored.
func ClassifyOrientation(m model.Matrix) Orientation {
	// 1 0 0 1 = normal horizontal text
	if m[0] > 0 && m[3] > 0 {
		return OrientHorizontal
	}
	// 0 1 -1 0 = rotated 90 degrees
	if m[1] > 0 && m[2] < 0 {
		return OrientRotated90
	}
	// -1 0 0 -1 = rotated 180 degrees
	if m[0] < 0 && m[3] < 0 {
		return OrientRotated180
	}
	return OrientOther
}
