package scanorder

import (
	"github.com/tsawler/scanorder/model"
	"github.com/tsawler/scanorder/text"
)

// directionAnalysis accumulates the two direction signals across a document.
// It is built fresh for each Detect call and consumed once.
type directionAnalysis struct {
	leftEdgeVariance  float64
	rightEdgeVariance float64
	totalRTLChars     int
	totalLTRChars     int
	ltrVotes          int
	rtlVotes          int
}

// countPageScripts accumulates the strong-character tallies for every run on
// the page. Script counting has no line floor — even a one-line page's text
// counts toward the document totals.
func countPageScripts(page model.Page, analysis *directionAnalysis) {
	for _, run := range page.Runs {
		rtl, ltr := text.CountScriptChars(run.Text)
		analysis.totalRTLChars += rtl
		analysis.totalLTRChars += ltr
	}
}

// analyzePageAlignment groups the page into lines and, if the page has enough
// lines to be statistically meaningful, folds its edge variances into the
// accumulator and casts the page's alignment vote.
func (d *Detector) analyzePageAlignment(page model.Page, analysis *directionAnalysis) {
	lines := d.builder.BuildLines(page.Runs)
	if len(lines) < d.config.MinLinesPerPage {
		return
	}

	leftEdges := make([]float64, len(lines))
	rightEdges := make([]float64, len(lines))
	for i, line := range lines {
		m := line.Metrics()
		leftEdges[i] = m.LeftEdge
		rightEdges[i] = m.RightEdge
	}

	leftVar := populationVariance(leftEdges)
	rightVar := populationVariance(rightEdges)

	analysis.leftEdgeVariance += leftVar
	analysis.rightEdgeVariance += rightVar

	// Markedly tighter left edges mean left-aligned text, hence LTR;
	// the mirror case means RTL. Comparable variances cast no vote.
	if leftVar < rightVar*d.config.VoteMarginRatio {
		analysis.ltrVotes++
	} else if rightVar < leftVar*d.config.VoteMarginRatio {
		analysis.rtlVotes++
	}
}

// alignmentDirection resolves the alignment signal: page-vote majority first,
// then the aggregated variance comparison, defaulting to LTR when fully
// ambiguous.
func (d *Detector) alignmentDirection(analysis *directionAnalysis) text.Direction {
	if total := analysis.ltrVotes + analysis.rtlVotes; total > 0 {
		rtlRatio := float64(analysis.rtlVotes) / float64(total)
		if rtlRatio >= d.config.MajorityThreshold {
			return text.RTL
		}
		if rtlRatio <= 1-d.config.MajorityThreshold {
			return text.LTR
		}
	}

	if analysis.leftEdgeVariance < analysis.rightEdgeVariance*d.config.VarianceFallbackRatio {
		return text.LTR
	}
	if analysis.rightEdgeVariance < analysis.leftEdgeVariance*d.config.VarianceFallbackRatio {
		return text.RTL
	}

	return text.LTR
}

// contentDirection resolves the script signal. RTL must outnumber LTR by more
// than the dominance ratio; anything less, including no directional
// characters at all, is LTR.
func (d *Detector) contentDirection(analysis *directionAnalysis) text.Direction {
	total := analysis.totalRTLChars + analysis.totalLTRChars
	if total == 0 {
		return text.LTR
	}

	if float64(analysis.totalRTLChars) > float64(analysis.totalLTRChars)*d.config.ScriptDominanceRatio {
		return text.RTL
	}

	return text.LTR
}

// populationVariance returns the variance of values divided by the full
// element count (not count-1). Fewer than two values yields 0.
func populationVariance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	varianceSum := 0.0
	for _, v := range values {
		diff := v - mean
		varianceSum += diff * diff
	}

	return varianceSum / float64(len(values))
}
