package statistics

import (
	"fmt"
	"io"
	"strings"
)

// RenderMarkdown writes the result as a markdown report with one table row per period.
func RenderMarkdown(w io.Writer, title string, result StatisticsResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	if len(result.Periods) == 0 {
		b.WriteString("No reviews recorded.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("| Period | Reviews | First presentations | Lapses | Penalty points | Questions |\n")
	b.WriteString("|---|---:|---:|---:|---:|---:|\n")
	for _, p := range result.Periods {
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | %d |\n",
			p.Period, p.Reviews, p.FirstPresentations, p.Lapses, p.PenaltyPoints, p.UniqueQuestions)
	}
	a := result.Aggregate
	fmt.Fprintf(&b, "| **Total** | %d | %d | %d | %d | %d |\n",
		a.Reviews, a.FirstPresentations, a.Lapses, a.PenaltyPoints, a.UniqueQuestions)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("io.WriteString() > %w", err)
	}
	return nil
}
