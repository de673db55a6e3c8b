package model

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 3, Y: 4}
	if got := p1.Distance(p2); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestNewBBox(t *testing.T) {
	b := NewBBox(10, 20, 110, 70)
	if b.Left != 10 || b.Bottom != 20 || b.Right != 110 || b.Top != 70 {
		t.Errorf("NewBBox edges = %+v", b)
	}
	if b.Width() != 100 {
		t.Errorf("Width = %v, want 100", b.Width())
	}
	if b.Height() != 50 {
		t.Errorf("Height = %v, want 50", b.Height())
	}
	if b.Area() != 5000 {
		t.Errorf("Area = %v, want 5000", b.Area())
	}
}

func TestNewBBoxFromPoints(t *testing.T) {
	// Points in any corner order produce the same box
	b1 := NewBBoxFromPoints(Point{X: 10, Y: 20}, Point{X: 110, Y: 70})
	b2 := NewBBoxFromPoints(Point{X: 110, Y: 70}, Point{X: 10, Y: 20})
	if b1 != b2 {
		t.Errorf("Corner order changed box: %+v vs %+v", b1, b2)
	}
	if b1 != NewBBox(10, 20, 110, 70) {
		t.Errorf("NewBBoxFromPoints = %+v", b1)
	}
}

func TestBBoxCenter(t *testing.T) {
	b := NewBBox(0, 0, 100, 50)
	if c := b.Center(); c.X != 50 || c.Y != 25 {
		t.Errorf("Center = %+v, want (50, 25)", c)
	}
}

func TestBBoxContains(t *testing.T) {
	b := NewBBox(10, 10, 50, 50)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"Inside", Point{30, 30}, true},
		{"On edge", Point{10, 30}, true},
		{"Corner", Point{50, 50}, true},
		{"Outside left", Point{5, 30}, false},
		{"Outside above", Point{30, 60}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBBoxIntersects(t *testing.T) {
	b := NewBBox(0, 0, 50, 50)
	tests := []struct {
		name  string
		other BBox
		want  bool
	}{
		{"Overlapping", NewBBox(25, 25, 75, 75), true},
		{"Touching edge", NewBBox(50, 0, 100, 50), true},
		{"Disjoint", NewBBox(60, 60, 100, 100), false},
		{"Contained", NewBBox(10, 10, 20, 20), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestBBoxIntersectionAndUnion(t *testing.T) {
	b1 := NewBBox(0, 0, 50, 50)
	b2 := NewBBox(25, 25, 75, 75)

	if got := b1.Intersection(b2); got != NewBBox(25, 25, 50, 50) {
		t.Errorf("Intersection = %+v", got)
	}
	if got := b1.Union(b2); got != NewBBox(0, 0, 75, 75) {
		t.Errorf("Union = %+v", got)
	}

	// Disjoint boxes intersect to the zero box
	if got := b1.Intersection(NewBBox(100, 100, 200, 200)); got != (BBox{}) {
		t.Errorf("Disjoint intersection = %+v, want zero", got)
	}
}

func TestBBoxExpand(t *testing.T) {
	b := NewBBox(10, 10, 50, 50).Expand(5)
	if b != NewBBox(5, 5, 55, 55) {
		t.Errorf("Expand = %+v", b)
	}
}

func TestBBoxIsEmpty(t *testing.T) {
	if !(BBox{}).IsEmpty() {
		t.Errorf("Zero box should be empty")
	}
	if NewBBox(0, 0, 10, 10).IsEmpty() {
		t.Errorf("Positive box should not be empty")
	}
	if !NewBBox(10, 0, 10, 10).IsEmpty() {
		t.Errorf("Zero-width box should be empty")
	}
}

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Errorf("Identity().IsIdentity() = false")
	}
	p := Point{X: 3, Y: 7}
	if got := m.Transform(p); got != p {
		t.Errorf("Identity transform moved point: %+v", got)
	}
}

func TestMatrixTranslate(t *testing.T) {
	m := Translate(10, 20)
	if got := m.Transform(Point{X: 1, Y: 2}); got != (Point{X: 11, Y: 22}) {
		t.Errorf("Translate transform = %+v", got)
	}
}

func TestMatrixScale(t *testing.T) {
	m := Scale(2, 3)
	if got := m.Transform(Point{X: 5, Y: 5}); got != (Point{X: 10, Y: 15}) {
		t.Errorf("Scale transform = %+v", got)
	}
}

func TestMatrixRotate(t *testing.T) {
	m := Rotate(math.Pi / 2)
	got := m.Transform(Point{X: 1, Y: 0})
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-1) > 1e-9 {
		t.Errorf("Quarter turn of (1,0) = %+v, want (0,1)", got)
	}
}

func TestMatrixMultiply(t *testing.T) {
	// Scale then translate
	m := Scale(2, 2).Multiply(Translate(10, 10))
	if got := m.Transform(Point{X: 1, Y: 1}); got != (Point{X: 12, Y: 12}) {
		t.Errorf("Combined transform = %+v, want (12, 12)", got)
	}
}

func TestDocumentPages(t *testing.T) {
	doc := NewDocument()
	if doc.PageCount() != 0 {
		t.Errorf("New document should have 0 pages")
	}

	page := NewPage(612, 792)
	page.AddRun(NewTextRun(NewBBox(72, 700, 250, 712), "Hello"))
	page.AddRun(NewTextRun(NewBBox(260, 700, 300, 712), "World"))
	doc.AddPage(page)

	second := NewPage(612, 792)
	doc.AddPage(second)

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount = %d, want 2", doc.PageCount())
	}
	if doc.Pages[0].Number != 1 || doc.Pages[1].Number != 2 {
		t.Errorf("Page numbers = %d, %d, want 1, 2",
			doc.Pages[0].Number, doc.Pages[1].Number)
	}
	if doc.RunCount() != 2 {
		t.Errorf("RunCount = %d, want 2", doc.RunCount())
	}
	if doc.Pages[0].Text() != "HelloWorld" {
		t.Errorf("Page text = %q", doc.Pages[0].Text())
	}
}

func TestTextRun(t *testing.T) {
	run := NewTextRun(NewBBox(0, 0, 10, 10), "")
	if !run.IsEmpty() {
		t.Errorf("Run with no text should be empty")
	}
	if !run.Matrix.IsIdentity() {
		t.Errorf("NewTextRun should default to identity transform")
	}

	run.Text = "x"
	if run.IsEmpty() {
		t.Errorf("Run with text should not be empty")
	}
}
