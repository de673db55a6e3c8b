// Package layout groups positioned text runs into visual lines.
//
// # Orientation
//
// Every run is classified into one of four [Orientation] categories from its
// placement transform: normal horizontal, rotated 90, rotated 180, or other.
// The category is a closed enum evaluated in priority order, so
// classification is total and mutually exclusive.
//
// # Line Grouping
//
// The [LineBuilder] type orders a page's runs into reading sequence and
// groups them into [Line] values:
//
//	builder := layout.NewLineBuilder()
//	lines := builder.BuildLines(page.Runs)
//
// Runs group onto a line while they share an orientation and stay within the
// proximity threshold along the grouping axis — vertical position for
// horizontal and 180-degree text, horizontal position for rotated text.
//
// # Metrics
//
// Each line can report its [LineMetrics]: the left and right edge extents
// and the strong RTL/LTR character tallies that direction inference consumes.
package layout
