// Package model provides the input representation for direction inference.
//
// This package defines the data structures an upstream text-layout extractor
// fills in before handing a document to the detector. The extractor is
// responsible for resolving each run's bounding box, placement transform, and
// decoded text; this package only carries the result.
//
// # Document Structure
//
// The [Document] type holds the pages of one document:
//
//	doc := model.NewDocument()
//	page := model.NewPage(612, 792)
//	page.AddRun(model.NewTextRun(model.NewBBox(72, 700, 250, 712), "Hello"))
//	doc.AddPage(page)
//
// Each [Page] contains dimensions, a 1-indexed number, and an ordered list of
// [TextRun] values.
//
// # Geometry
//
// Geometric primitives support position and layout calculations:
//
//   - [BBox] - bounding box stored as its four edges, with intersection,
//     union, and containment helpers
//   - [Point] - 2D point with distance calculation
//   - [Matrix] - 2D affine transformation matrix
//
// All types are plain values with no hidden state; a Document can be built
// once and analyzed concurrently by any number of readers.
package model
