package query

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cerebro-kb/cerebro/internal/domain/rank"
)

func TestExtractAnswer_NoResults(t *testing.T) {
	if got := extractAnswer(nil); got != noAnswerText {
		t.Errorf("expected no-answer text, got %q", got)
	}
}

func TestExtractAnswer_Bullets(t *testing.T) {
	content := "Intro line\n• 25 days per year\n• Carry over up to 5 days\nOutro"
	got := extractAnswer([]rank.ScoredDocument{
		scoredDoc("doc_001", "Annual Leave Policy", "HR Policies", content),
	})

	want := "**Annual Leave Policy (HR Policies)**\n\n" +
		"• 25 days per year\n• Carry over up to 5 days"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtractAnswer_StepsWhenNoBullets(t *testing.T) {
	content := "Overview\nStep 1: Open the portal\nStep 2: Submit the form\nDone"
	got := extractAnswer([]rank.ScoredDocument{
		scoredDoc("doc_002", "Onboarding", "HR Operations", content),
	})

	if !strings.Contains(got, "Step 1: Open the portal\nStep 2: Submit the form") {
		t.Errorf("expected step lines, got %q", got)
	}
	if strings.Contains(got, "Overview") {
		t.Errorf("plain lines must not appear when steps exist: %q", got)
	}
}

func TestExtractAnswer_PlainLinesFallback(t *testing.T) {
	content := "**Heading**\nFirst fact.\n\nSecond fact."
	got := extractAnswer([]rank.ScoredDocument{
		scoredDoc("doc_003", "Guidelines", "IT Operations", content),
	})

	want := "**Guidelines (IT Operations)**\n\nFirst fact.\nSecond fact."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtractAnswer_CapsAtTenLines(t *testing.T) {
	var lines []string
	for i := 1; i <= 15; i++ {
		lines = append(lines, fmt.Sprintf("• bullet %d", i))
	}
	got := extractAnswer([]rank.ScoredDocument{
		scoredDoc("doc_004", "Policy", "HR Policies", strings.Join(lines, "\n")),
	})

	if strings.Contains(got, "• bullet 11") {
		t.Errorf("expected at most 10 bullets, got %q", got)
	}
	if !strings.Contains(got, "• bullet 10") {
		t.Errorf("expected bullet 10 present, got %q", got)
	}
}

func TestExtractAnswer_RelatedDocuments(t *testing.T) {
	got := extractAnswer([]rank.ScoredDocument{
		scoredDoc("doc_001", "Annual Leave Policy", "HR Policies", "• 25 days"),
		scoredDoc("doc_003", "Remote Work Policy", "Workplace Policies", "x"),
		scoredDoc("doc_005", "Expense Reimbursement", "Finance Policies", "y"),
	})

	if !strings.HasSuffix(got, "[Related documents: Remote Work Policy, Expense Reimbursement]") {
		t.Errorf("expected related documents suffix, got %q", got)
	}
}
