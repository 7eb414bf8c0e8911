package scoring

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
)

// GenerateSummaryReport renders a terminal-friendly report of a
// completed analysis.
func GenerateSummaryReport(out *Output) string {
	divider := strings.Repeat("=", 60)

	header := fmt.Sprintf(strings.TrimSpace(dedent.Dedent(`
		%s
		WASTE REUSE ANALYSIS REPORT
		%s
		Object Type: %s
		Reuse Score: %d/100
		Verdict: %s %s

		CONDITION SUMMARY:
		%s

		REASONING:
		%s
	`)),
		divider, divider,
		out.ObjectType,
		out.Score,
		out.Verdict, out.VerdictDisplay.Emoji,
		out.ConditionSummary,
		out.Reasoning,
	)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")

	if len(out.Suggestions) > 0 {
		b.WriteString("\nREUSE SUGGESTIONS:\n")
		for i, suggestion := range out.Suggestions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, suggestion.UseCase)
			fmt.Fprintf(&b, "   → %s\n", suggestion.Explanation)
		}
	}

	b.WriteString("\n")
	b.WriteString(divider)

	return b.String()
}
