package model

import "strings"

// Scenario selects the bias applied while generating a series.
type Scenario string

const (
	ScenarioDefault    Scenario = "default"
	ScenarioQuiz       Scenario = "quiz"
	ScenarioOrderBlock Scenario = "orderblock"
	ScenarioLiquidity  Scenario = "liquidity"
	ScenarioFVG        Scenario = "fvg"
	ScenarioBOS        Scenario = "bos"
)

// Scenarios returns every known scenario tag.
func Scenarios() []Scenario {
	return []Scenario{
		ScenarioDefault,
		ScenarioQuiz,
		ScenarioOrderBlock,
		ScenarioLiquidity,
		ScenarioFVG,
		ScenarioBOS,
	}
}

// ParseScenario maps text to a scenario tag. Unknown text yields ScenarioDefault.
func ParseScenario(s string) Scenario {
	tag := Scenario(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Scenarios() {
		if tag == known {
			return tag
		}
	}
	return ScenarioDefault
}

// Known reports whether s is one of the enumerated tags.
func (s Scenario) Known() bool {
	for _, known := range Scenarios() {
		if s == known {
			return true
		}
	}
	return false
}
