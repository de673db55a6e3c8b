package model

// Document is an ordered collection of pages. Page order is preserved for
// callers that care, though direction inference aggregates across pages and
// does not depend on it.
type Document struct {
	Pages []Page
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]Page, 0),
	}
}

// AddPage appends a page to the document, assigning its 1-indexed number
// if the caller has not set one.
func (d *Document) AddPage(page *Page) {
	if page.Number == 0 {
		page.Number = len(d.Pages) + 1
	}
	d.Pages = append(d.Pages, *page)
}

// PageCount returns the number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// RunCount returns the total number of runs across all pages
func (d *Document) RunCount() int {
	count := 0
	for _, page := range d.Pages {
		count += len(page.Runs)
	}
	return count
}
