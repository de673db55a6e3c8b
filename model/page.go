package model

// Page holds the positioned text runs of a single document page
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Runs   []TextRun
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Runs:   make([]TextRun, 0),
	}
}

// AddRun appends a text run to the page
func (p *Page) AddRun(run TextRun) {
	p.Runs = append(p.Runs, run)
}

// RunCount returns the number of runs on the page
func (p *Page) RunCount() int {
	return len(p.Runs)
}

// Text concatenates the raw text of all runs in insertion order
func (p *Page) Text() string {
	var text string
	for _, run := range p.Runs {
		text += run.Text
	}
	return text
}
