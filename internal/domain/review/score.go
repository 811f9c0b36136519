package review

import (
	"regexp"
	"strconv"
)

const (
	scoreMin     = 70
	scoreMax     = 95
	scoreDefault = 85.0
)

var scoreRx = regexp.MustCompile(`[0-9]+%?`)

// RegexScore scans analyzer output for a quality score. The number is
// whatever the model happened to print, not a computed metric; treat it
// as presentation only.
type RegexScore struct{}

// Extract returns the first integer in [70,95] found in the text
// (an optional trailing percent sign is ignored), or 85.0 when none
// matches. Issues are derived as max(0, floor((100-score)/10)).
func (RegexScore) Extract(analysis string) (float64, int) {
	score := float64(scoreDefault)
	for _, m := range scoreRx.FindAllString(analysis, -1) {
		if m[len(m)-1] == '%' {
			m = m[:len(m)-1]
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if n >= scoreMin && n <= scoreMax {
			score = float64(n)
			break
		}
	}
	issues := int((100 - score) / 10)
	if issues < 0 {
		issues = 0
	}
	return score, issues
}
