package query

import (
	"fmt"
	"strings"

	"github.com/cerebro-kb/cerebro/internal/domain/rank"
)

const noAnswerText = "The available documents do not contain this information. " +
	"Please contact HR directly or check the employee portal for more details."

const maxExtractedLines = 10

// extractAnswer builds a deterministic answer from the top-ranked document:
// its bullet points if any, else its step lines, else its first non-empty
// lines, followed by the titles of the remaining results.
func extractAnswer(results []rank.ScoredDocument) string {
	if len(results) == 0 {
		return noAnswerText
	}

	top := results[0]
	lines := strings.Split(top.Document.Content(), "\n")

	var bullets, steps []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "•") {
			bullets = append(bullets, trimmed)
		}
		if strings.Contains(trimmed, "Step") || strings.Contains(trimmed, "step") {
			steps = append(steps, trimmed)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s (%s)**\n\n", top.Document.Title(), top.Document.Section())

	switch {
	case len(bullets) > 0:
		b.WriteString(strings.Join(capLines(bullets), "\n"))
	case len(steps) > 0:
		b.WriteString(strings.Join(capLines(steps), "\n"))
	default:
		var rest []string
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" && !strings.HasPrefix(line, "**") {
				rest = append(rest, trimmed)
			}
		}
		b.WriteString(strings.Join(capLines(rest), "\n"))
	}

	if len(results) > 1 {
		titles := make([]string, 0, len(results)-1)
		for _, r := range results[1:] {
			titles = append(titles, r.Document.Title())
		}
		fmt.Fprintf(&b, "\n\n[Related documents: %s]", strings.Join(titles, ", "))
	}

	return b.String()
}

func capLines(lines []string) []string {
	if len(lines) > maxExtractedLines {
		return lines[:maxExtractedLines]
	}
	return lines
}
