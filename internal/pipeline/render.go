package pipeline

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	questionStyle = lipgloss.NewStyle().Bold(true)
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// Render builds the terminal summary of a result.
func Render(r *Result) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Q&A pairs"))
	b.WriteString("\n\n")

	for i, qa := range r.QAPairs {
		fmt.Fprintf(&b, "%s %s\n", dimStyle.Render(fmt.Sprintf("%2d.", i+1)), questionStyle.Render(qa.Question))
		fmt.Fprintf(&b, "    %s\n", qa.Answer)
		fmt.Fprintf(&b, "    %s\n\n", scoreStyle.Render(fmt.Sprintf("embedding score: %.3f", qa.EmbeddingScore)))
	}

	if r.Evaluation != nil {
		b.WriteString(headingStyle.Render("Evaluation"))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "    %-12s %-10s %-10s %-14s %-10s %s\n",
			"", "relevance", "accuracy", "completeness", "clarity", "score")
		for i, ev := range r.Evaluation.Evaluations {
			fmt.Fprintf(&b, "    %-12s %-10d %-10d %-14d %-10d %.2f\n",
				dimStyle.Render(fmt.Sprintf("pair %2d", i+1)),
				ev.Relevance, ev.Accuracy, ev.Completeness, ev.Clarity, ev.Score)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "    %s %s\n",
			headingStyle.Render("overall score:"),
			scoreStyle.Render(fmt.Sprintf("%.2f", r.Evaluation.OverallScore)))
	}

	return b.String()
}
