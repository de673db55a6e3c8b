package scanorder

// Config holds the tunable thresholds for direction inference.
//
// The defaults are empirically chosen and compatibility-sensitive: documents
// analyzed with different values may resolve differently. Treat them as
// tuning knobs, not derived quantities.
type Config struct {
	// LineProximity is the grouping distance handed to the line builder,
	// in page units (default: 5.0)
	LineProximity float64

	// MinLinesPerPage is the minimum number of lines a page needs before it
	// contributes alignment statistics; pages below the floor carry too
	// little signal to vote (default: 3)
	MinLinesPerPage int

	// VoteMarginRatio is how much smaller one edge's variance must be than
	// the other's for a page to cast an alignment vote (default: 0.7)
	VoteMarginRatio float64

	// MajorityThreshold is the fraction of page votes one direction needs
	// to win the alignment decision outright (default: 0.6)
	MajorityThreshold float64

	// VarianceFallbackRatio is the variance-sum ratio used when page votes
	// are absent or inconclusive (default: 0.8)
	VarianceFallbackRatio float64

	// ScriptDominanceRatio is how many times RTL characters must outnumber
	// LTR characters before the content signal says RTL (default: 2.0)
	ScriptDominanceRatio float64
}

// DefaultConfig returns the default inference thresholds.
func DefaultConfig() Config {
	return Config{
		LineProximity:         5.0,
		MinLinesPerPage:       3,
		VoteMarginRatio:       0.7,
		MajorityThreshold:     0.6,
		VarianceFallbackRatio: 0.8,
		ScriptDominanceRatio:  2.0,
	}
}
