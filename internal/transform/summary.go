package transform

import (
	"fmt"
	"strings"
)

// EnhanceSummary weaves the top ranked keywords into a summary that does
// not already mention them. Only the first three ranked keywords are
// considered; when none are missing the summary comes back unchanged.
func EnhanceSummary(summary string, ranked []string) string {
	summaryLower := strings.ToLower(summary)

	limit := min(len(ranked), summaryKeywordLimit)
	var missing []string
	for _, keyword := range ranked[:limit] {
		if !strings.Contains(summaryLower, keyword) {
			missing = append(missing, keyword)
		}
	}
	if len(missing) == 0 {
		return summary
	}

	phrase := strings.Join(missing, ", ")
	if strings.HasSuffix(summary, ".") {
		return strings.TrimSuffix(summary, ".") + fmt.Sprintf(", including expertise in %s.", phrase)
	}
	return summary + fmt.Sprintf(" Experienced with %s.", phrase)
}
