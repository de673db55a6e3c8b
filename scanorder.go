// Package scanorder infers the dominant reading direction (left-to-right vs
// right-to-left) of a document's pages from layout geometry and Unicode
// script statistics.
//
// Two independent signals feed the decision. The alignment signal groups each
// page's runs into lines and asks which edge — left or right — is more
// consistently aligned across them; left-aligned pages read LTR, right-aligned
// pages read RTL. The script signal counts strongly-directional characters
// across the whole document. When the signals disagree, alignment wins:
// layout geometry is the stronger indicator, since RTL documents routinely mix
// in Latin terms and numerals.
//
// Basic usage:
//
//	dir := scanorder.Detect(doc)
//	if dir == text.RTL {
//	    // compose right-to-left
//	}
//
// With custom thresholds:
//
//	cfg := scanorder.DefaultConfig()
//	cfg.MinLinesPerPage = 5
//	dir := scanorder.NewWithConfig(cfg).Detect(doc)
//
// Detection is a total function: it never fails, and degenerate input (no
// pages, no runs, no directional characters) yields LTR. A Detector holds no
// state between calls and is safe for concurrent use on independent
// documents.
package scanorder

import (
	"github.com/tsawler/scanorder/model"
	"github.com/tsawler/scanorder/text"
)

// Detect infers the reading direction of a document using the default
// configuration. It returns text.LTR (0) or text.RTL (1), never any other
// value.
//
// Example:
//
//	dir := scanorder.Detect(doc)
func Detect(doc model.Document) text.Direction {
	return New().Detect(doc)
}
