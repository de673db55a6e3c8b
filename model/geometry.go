package model

import "math"

// Point represents a 2D point in page space.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents an axis-aligned bounding box in page coordinates.
// It is stored as its four edges (PDF-style, Y increasing upward), so
// Left <= Right and Bottom <= Top for a well-formed box.
type BBox struct {
	Left   float64
	Bottom float64
	Right  float64
	Top    float64
}

// NewBBox creates a bounding box from its four edge coordinates
func NewBBox(left, bottom, right, top float64) BBox {
	return BBox{Left: left, Bottom: bottom, Right: right, Top: top}
}

// NewBBoxFromPoints creates the bounding box spanned by two corner points
func NewBBoxFromPoints(p1, p2 Point) BBox {
	return BBox{
		Left:   math.Min(p1.X, p2.X),
		Bottom: math.Min(p1.Y, p2.Y),
		Right:  math.Max(p1.X, p2.X),
		Top:    math.Max(p1.Y, p2.Y),
	}
}

// Width returns the horizontal extent of the box
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box
func (b BBox) Height() float64 {
	return b.Top - b.Bottom
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: (b.Left + b.Right) / 2,
		Y: (b.Bottom + b.Top) / 2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left && p.X <= b.Right &&
		p.Y >= b.Bottom && p.Y <= b.Top
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right < other.Left ||
		b.Left > other.Right ||
		b.Top < other.Bottom ||
		b.Bottom > other.Top)
}

// Intersection returns the intersection of two bounding boxes,
// or the zero box if they do not intersect.
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}
	return BBox{
		Left:   math.Max(b.Left, other.Left),
		Bottom: math.Max(b.Bottom, other.Bottom),
		Right:  math.Min(b.Right, other.Right),
		Top:    math.Min(b.Top, other.Top),
	}
}

// Union returns the smallest box covering both boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		Left:   math.Min(b.Left, other.Left),
		Bottom: math.Min(b.Bottom, other.Bottom),
		Right:  math.Max(b.Right, other.Right),
		Top:    math.Max(b.Top, other.Top),
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// Expand expands the bounding box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		Left:   b.Left - margin,
		Bottom: b.Bottom - margin,
		Right:  b.Right + margin,
		Top:    b.Top + margin,
	}
}

// IsEmpty returns true if the bounding box has zero or negative area
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Matrix represents a 2D affine transformation matrix (a, b, c, d, e, f).
// The first four coefficients describe rotation, scale, and skew; the last
// two are the translation.
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Transform applies the matrix transformation to a point
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply multiplies two matrices
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation matrix (angle in radians)
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 && m[4] == 0 && m[5] == 0
}
