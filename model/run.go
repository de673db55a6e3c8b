package model

// TextRun is a positioned fragment of already-decoded document text, as
// produced by an upstream layout extractor. The run's text is expected to be
// UTF-8; malformed bytes are tolerated by consumers and must not cause
// failures.
type TextRun struct {
	// BBox is the run's bounding box in page coordinates
	BBox BBox

	// Matrix is the run's placement transform. Only the rotation/scale
	// coefficients matter for orientation; translation is ignored.
	Matrix Matrix

	// Text is the run's decoded text, possibly empty
	Text string
}

// NewTextRun creates a run with the given box, an identity transform, and text
func NewTextRun(bbox BBox, text string) TextRun {
	return TextRun{
		BBox:   bbox,
		Matrix: Identity(),
		Text:   text,
	}
}

// IsEmpty returns true if the run carries no text
func (r TextRun) IsEmpty() bool {
	return r.Text == ""
}
