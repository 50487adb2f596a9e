package lesson

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"PatternLab/internal/model"
)

// ErrInvalidAnswer is returned for answers that name no option.
var ErrInvalidAnswer = errors.New("invalid answer")

// Quiz is a single multiple-choice question about a generated chart.
type Quiz struct {
	Question    string         `yaml:"question"`
	Scenario    model.Scenario `yaml:"scenario"`
	Options     []string       `yaml:"options"`
	Answer      int            `yaml:"answer"`
	Explanation string         `yaml:"explanation"`
}

// Result is the outcome of checking one answer.
type Result struct {
	Correct     bool
	Selected    int
	Expected    int
	Explanation string
}

// Validate checks that the quiz has options and a reachable answer.
func (q Quiz) Validate() error {
	if len(q.Options) < 2 {
		return errors.New("quiz needs at least two options")
	}
	if len(q.Options) > 26 {
		return errors.New("quiz has more options than letters")
	}
	if q.Answer < 0 || q.Answer >= len(q.Options) {
		return fmt.Errorf("quiz answer %d out of range", q.Answer)
	}
	return nil
}

// Letter returns the option label for index i (0 → "A").
func Letter(i int) string {
	return string(rune('A' + i))
}

// ParseAnswer accepts an option letter ("c") or a 0-based index ("2").
func (q Quiz) ParseAnswer(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAnswer)
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		if len(s) != 1 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAnswer, s)
		}
		idx = int(strings.ToUpper(s)[0]) - 'A'
	}
	if idx < 0 || idx >= len(q.Options) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAnswer, s)
	}
	return idx, nil
}

// Check grades an answer given as a letter or index.
func (q Quiz) Check(answer string) (Result, error) {
	idx, err := q.ParseAnswer(answer)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Correct:     idx == q.Answer,
		Selected:    idx,
		Expected:    q.Answer,
		Explanation: q.Explanation,
	}, nil
}
