// Package annotate extracts the structured annotation embedded in an
// assistant reply: an optional risk score and an optional privacy summary.
// The annotation is derived fresh from the message text on every render and
// is never persisted.
package annotate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	riskScoreRe = regexp.MustCompile(`\*\*Risk Score:\*\* (\d+)`)
	summaryRe   = regexp.MustCompile(`(?s)\*\*Privacy Summary:\*\*\n(.*)`)
)

// Annotation is the structured data scraped from a reply. HasRiskScore and
// HasSummary report whether the corresponding marker was found; a reply may
// yield score-only, summary-only, both, or neither.
type Annotation struct {
	RiskScore    int
	HasRiskScore bool
	Summary      string
	HasSummary   bool
}

// Extract scans text for the `**Risk Score:** <integer>` marker and the
// `**Privacy Summary:**` block (everything after the marker line, trimmed).
// Both extractions are independent and a miss on either is not an error.
//
// The score is returned as parsed; callers clamp at render time via Clamp.
func Extract(text string) Annotation {
	var a Annotation

	if m := riskScoreRe.FindStringSubmatch(text); m != nil {
		score, err := strconv.Atoi(m[1])
		if err == nil {
			a.RiskScore = score
			a.HasRiskScore = true
		}
	}

	if m := summaryRe.FindStringSubmatch(text); m != nil {
		a.Summary = strings.TrimSpace(m[1])
		a.HasSummary = true
	}

	return a
}

// Clamp limits a score to the displayable [0,100] range.
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Level buckets a clamped score into the meter labels used by the UI.
func Level(score int) string {
	score = Clamp(score)
	switch {
	case score < 40:
		return "Safe"
	case score < 70:
		return "Moderate Risk"
	default:
		return "Dangerous"
	}
}
