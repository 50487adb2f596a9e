package lesson

import (
	"errors"
	"strings"
	"testing"

	"PatternLab/internal/model"
)

func TestBuiltin(t *testing.T) {
	c, err := Builtin()
	if err != nil {
		t.Fatalf("builtin catalog: %v", err)
	}
	if len(c.Patterns) != 4 {
		t.Fatalf("expected 4 patterns, got %d", len(c.Patterns))
	}
	if len(c.Concepts) != 3 {
		t.Errorf("expected 3 concepts, got %d", len(c.Concepts))
	}
	for _, p := range c.Patterns {
		if len(p.KeyPoints) != 4 {
			t.Errorf("%s: expected 4 key points, got %d", p.ID, len(p.KeyPoints))
		}
		if model.Scenario(p.ID) != p.Scenario {
			t.Errorf("%s: scenario %q should match id", p.ID, p.Scenario)
		}
	}
	if len(c.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(c.Phases))
	}
	for _, ph := range c.Phases {
		if len(ph.Details) != 5 {
			t.Errorf("%s: expected 5 details, got %d", ph.ID, len(ph.Details))
		}
	}
	if c.Insight == "" {
		t.Error("expected a key insight")
	}
	if c.Quiz.Scenario != model.ScenarioQuiz || c.Quiz.Options[c.Quiz.Answer] != "Fair Value Gap Fill" {
		t.Errorf("unexpected quiz %+v", c.Quiz)
	}
}

func TestCatalog_Pattern(t *testing.T) {
	c, _ := Builtin()
	p, err := c.Pattern("bos")
	if err != nil {
		t.Fatalf("lookup bos: %v", err)
	}
	if p.Name != "Break of Structure" {
		t.Errorf("unexpected name %q", p.Name)
	}
	if _, err := c.Pattern("wedge"); !errors.Is(err, ErrPatternNotFound) {
		t.Errorf("expected ErrPatternNotFound, got %v", err)
	}
}

func TestCatalog_Phase(t *testing.T) {
	c, _ := Builtin()
	tests := []struct {
		key   string
		name  string
		index int
	}{
		{"accumulation", "Accumulation", 0},
		{"Manipulation", "Manipulation", 1},
		{"3", "Distribution", 2},
	}
	for _, tt := range tests {
		ph, i, err := c.Phase(tt.key)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tt.key, err)
		}
		if ph.Name != tt.name || i != tt.index {
			t.Errorf("%q: got %s at %d, want %s at %d", tt.key, ph.Name, i, tt.name, tt.index)
		}
	}
	for _, bad := range []string{"reaccumulation", "0", "4", ""} {
		if _, _, err := c.Phase(bad); !errors.Is(err, ErrPhaseNotFound) {
			t.Errorf("%q: expected ErrPhaseNotFound, got %v", bad, err)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no patterns", "quiz: {options: [a, b], answer: 0}"},
		{"bad scenario", "patterns: [{id: x, scenario: default}]\nquiz: {options: [a, b], answer: 0}"},
		{"duplicate id", "patterns: [{id: x, scenario: fvg}, {id: x, scenario: bos}]\nquiz: {options: [a, b], answer: 0}"},
		{"answer out of range", "patterns: [{id: x, scenario: fvg}]\nquiz: {options: [a, b], answer: 5}"},
		{"malformed", "patterns: ["},
		{"phase without id", "patterns: [{id: x, scenario: fvg}]\nphases: [{name: A, details: [d]}]\nquiz: {options: [a, b], answer: 0}"},
		{"phase without details", "patterns: [{id: x, scenario: fvg}]\nphases: [{id: a, name: A}]\nquiz: {options: [a, b], answer: 0}"},
		{"duplicate phase", "patterns: [{id: x, scenario: fvg}]\nphases: [{id: a, name: A, details: [d]}, {id: a, name: B, details: [d]}]\nquiz: {options: [a, b], answer: 0}"},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.yaml)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestQuiz_Check(t *testing.T) {
	c, _ := Builtin()
	q := c.Quiz
	tests := []struct {
		answer  string
		correct bool
	}{
		{"C", true},
		{"c", true},
		{"2", true},
		{"A", false},
		{"3", false},
	}
	for _, tt := range tests {
		r, err := q.Check(tt.answer)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tt.answer, err)
		}
		if r.Correct != tt.correct {
			t.Errorf("%q: expected correct=%v", tt.answer, tt.correct)
		}
		if r.Expected != 2 {
			t.Errorf("%q: expected answer index 2, got %d", tt.answer, r.Expected)
		}
	}
	for _, bad := range []string{"", "E", "9", "-1", "AB"} {
		if _, err := q.Check(bad); !errors.Is(err, ErrInvalidAnswer) {
			t.Errorf("%q: expected ErrInvalidAnswer, got %v", bad, err)
		}
	}
}

func TestFormat(t *testing.T) {
	c, _ := Builtin()
	p, _ := c.Pattern("fvg")
	out := FormatPattern(p)
	if !strings.Contains(out, "Fair Value Gaps") || !strings.Contains(out, "  4. Can be used as entry zones") {
		t.Errorf("unexpected pattern text:\n%s", out)
	}

	quiz := FormatQuiz(c.Quiz)
	if !strings.Contains(quiz, "  C. Fair Value Gap Fill") {
		t.Errorf("unexpected quiz text:\n%s", quiz)
	}

	r, _ := c.Quiz.Check("A")
	verdict := FormatResult(c.Quiz, r)
	if !strings.HasPrefix(verdict, "Not quite!") || !strings.Contains(verdict, "C. Fair Value Gap Fill") {
		t.Errorf("unexpected verdict:\n%s", verdict)
	}
	ph, i, _ := c.Phase("manipulation")
	phase := FormatPhase(ph, i)
	if !strings.HasPrefix(phase, "PHASE 2: Manipulation\nTHE HUNT") || !strings.Contains(phase, "  ✓ Final shakeout before the move") {
		t.Errorf("unexpected phase text:\n%s", phase)
	}
	cycle := FormatCycle(c.Phases, c.Insight)
	if !strings.Contains(cycle, "3. Distribution") || !strings.Contains(cycle, "KEY INSIGHT") {
		t.Errorf("unexpected cycle text:\n%s", cycle)
	}

	if !strings.Contains(FormatConcepts(c.Concepts), "Liquidity Sweeps") {
		t.Error("concepts should list Liquidity Sweeps")
	}
}
