// Package text provides Unicode text direction classification.
//
// # Text Direction
//
// The [Direction] type represents writing direction:
//
//   - LTR - left-to-right (Latin, Cyrillic, CJK, etc.)
//   - RTL - right-to-left (Arabic, Hebrew, etc.)
//   - Neutral - direction-neutral characters (numbers, punctuation)
//
// The integer values of LTR (0) and RTL (1) match the convention downstream
// text composers use to select glyph ordering.
//
// # Classification
//
// Two classifiers are provided with different contracts:
//
// [GetCharDirection] and [DetectDirection] classify runes and strings for
// general annotation. They recognize a broad set of scripts, falling back to
// the Unicode bidi class tables for scripts outside the common blocks.
//
// [CountScriptChars] is the strict counter used by direction inference. It
// tallies only a fixed set of strong script blocks, operates directly on
// bytes, and silently resynchronizes on malformed UTF-8. Its narrower ranges
// are intentional: inference wants an unambiguous signal, not coverage.
package text
