package scanorder

import (
	"github.com/tsawler/scanorder/layout"
	"github.com/tsawler/scanorder/model"
	"github.com/tsawler/scanorder/text"
)

// Detector infers reading direction from a document's positioned text runs.
// It holds only configuration; every Detect call builds a fresh accumulator,
// so one Detector may serve concurrent callers.
type Detector struct {
	config  Config
	builder *layout.LineBuilder
}

// New creates a detector with default configuration
func New() *Detector {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a detector with custom thresholds
func NewWithConfig(config Config) *Detector {
	return &Detector{
		config: config,
		builder: layout.NewLineBuilderWithConfig(layout.LineConfig{
			ProximityThreshold: config.LineProximity,
		}),
	}
}

// Detect infers the document's dominant reading direction. The result is
// always text.LTR or text.RTL; degenerate input resolves to LTR through the
// documented fallbacks, never through an error.
func (d *Detector) Detect(doc model.Document) text.Direction {
	var analysis directionAnalysis

	for _, page := range doc.Pages {
		// The two statistics are deliberately independent: script counting
		// covers every run with no floor, while alignment requires enough
		// lines for the variance to mean anything.
		countPageScripts(page, &analysis)
		d.analyzePageAlignment(page, &analysis)
	}

	alignment := d.alignmentDirection(&analysis)
	content := d.contentDirection(&analysis)

	if alignment == content {
		return alignment
	}

	// Disagreement: alignment is the stronger signal. RTL documents commonly
	// mix in LTR numerals and Latin terms, so geometry outranks raw counts.
	return alignment
}
