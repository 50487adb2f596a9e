package lesson

import (
	"fmt"
	"strings"
)

// FormatConcepts lists the intro cards.
func FormatConcepts(concepts []Concept) string {
	var b strings.Builder
	for _, c := range concepts {
		b.WriteString(fmt.Sprintf("■ %s\n  %s\n", c.Title, c.Description))
	}
	return b.String()
}

// FormatPattern renders a gallery entry for the terminal.
func FormatPattern(p Pattern) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s [%s]\n\n", p.Name, p.Scenario))
	b.WriteString(p.Description)
	b.WriteString("\n\nKEY POINTS\n")
	for i, kp := range p.KeyPoints {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, kp))
	}
	return b.String()
}

// FormatPhase renders one cycle phase; index is 0-based.
func FormatPhase(ph Phase, index int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("PHASE %d: %s\n%s\n\n", index+1, ph.Name, strings.ToUpper(ph.Subtitle)))
	b.WriteString(ph.Description)
	b.WriteString("\n\n")
	for _, d := range ph.Details {
		b.WriteString(fmt.Sprintf("  ✓ %s\n", d))
	}
	return b.String()
}

// FormatCycle lists every phase in order followed by the key insight.
func FormatCycle(phases []Phase, insight string) string {
	var b strings.Builder
	for i, ph := range phases {
		b.WriteString(fmt.Sprintf("%d. %-13s %s\n", i+1, ph.Name, ph.Subtitle))
	}
	if insight != "" {
		b.WriteString("\nKEY INSIGHT\n")
		b.WriteString(insight)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatQuiz renders the question and its lettered options.
func FormatQuiz(q Quiz) string {
	var b strings.Builder
	b.WriteString(q.Question)
	b.WriteString("\n")
	for i, opt := range q.Options {
		b.WriteString(fmt.Sprintf("  %s. %s\n", Letter(i), opt))
	}
	return b.String()
}

// FormatResult renders the verdict and explanation.
func FormatResult(q Quiz, r Result) string {
	var b strings.Builder
	if r.Correct {
		b.WriteString("Correct!\n")
	} else {
		b.WriteString(fmt.Sprintf("Not quite! You picked %s. %s, the answer is %s. %s\n",
			Letter(r.Selected), q.Options[r.Selected], Letter(r.Expected), q.Options[r.Expected]))
	}
	b.WriteString("\n")
	b.WriteString(r.Explanation)
	b.WriteString("\n")
	return b.String()
}
