package text

// CountScriptChars tallies the strongly-directional characters in s for
// direction inference. Only the core script blocks participate: Hebrew,
// Arabic, Syriac, and Thaana count as RTL; Latin letters, Cyrillic, and Greek
// count as LTR. Digits, punctuation, whitespace, and every other script are
// neutral and counted as neither.
//
// The input is decoded as UTF-8 byte by byte. Continuation bytes are masked
// without validation, and an invalid or truncated lead byte is skipped as a
// single byte before resyncing, so malformed input never causes an error and
// never stops the count.
func CountScriptChars(s string) (rtl, ltr int) {
	for i := 0; i < len(s); {
		c := s[i]
		var cp rune
		var size int

		switch {
		case c < 0x80:
			cp = rune(c)
			size = 1
		case c&0xE0 == 0xC0 && i+1 < len(s):
			cp = rune(c&0x1F)<<6 | rune(s[i+1]&0x3F)
			size = 2
		case c&0xF0 == 0xE0 && i+2 < len(s):
			cp = rune(c&0x0F)<<12 | rune(s[i+1]&0x3F)<<6 | rune(s[i+2]&0x3F)
			size = 3
		case c&0xF8 == 0xF0 && i+3 < len(s):
			cp = rune(c&0x07)<<18 | rune(s[i+1]&0x3F)<<12 | rune(s[i+2]&0x3F)<<6 | rune(s[i+3]&0x3F)
			size = 4
		default:
			// Invalid lead byte, or multi-byte sequence truncated at end of
			// input: skip one byte and resync.
			i++
			continue
		}

		switch {
		case isStrongRTL(cp):
			rtl++
		case isStrongLTR(cp):
			ltr++
		}

		i += size
	}

	return rtl, ltr
}

// isStrongRTL reports whether cp belongs to one of the RTL script blocks the
// counter recognizes: Hebrew, Arabic, Syriac, or Thaana.
func isStrongRTL(cp rune) bool {
	return (cp >= 0x0590 && cp <= 0x05FF) || // Hebrew
		(cp >= 0x0600 && cp <= 0x06FF) || // Arabic
		(cp >= 0x0700 && cp <= 0x074F) || // Syriac
		(cp >= 0x0780 && cp <= 0x07BF) // Thaana
}

// isStrongLTR reports whether cp belongs to one of the LTR script blocks the
// counter recognizes: Latin letters, Cyrillic, or Greek.
func isStrongLTR(cp rune) bool {
	return (cp >= 'A' && cp <= 'Z') ||
		(cp >= 'a' && cp <= 'z') ||
		(cp >= 0x0400 && cp <= 0x04FF) || // Cyrillic
		(cp >= 0x0370 && cp <= 0x03FF) // Greek
}
