package cli

import (
	"fmt"
	"strings"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/annotate"
)

const meterWidth = 20

// renderMeter draws a fixed-width ASCII risk meter, e.g.
//
//	[##############......] 72/100 - Dangerous
//
// Scores outside 0..100 are clamped before drawing.
func renderMeter(score int) string {
	score = annotate.Clamp(score)
	filled := score * meterWidth / 100

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(strings.Repeat("#", filled))
	b.WriteString(strings.Repeat(".", meterWidth-filled))
	b.WriteByte(']')

	return fmt.Sprintf("%s %d/100 - %s", b.String(), score, annotate.Level(score))
}
