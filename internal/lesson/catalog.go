package lesson

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"PatternLab/internal/model"
)

//go:embed lessons.yaml
var builtin []byte

var (
	// ErrPatternNotFound is returned by Catalog.Pattern for unknown ids.
	ErrPatternNotFound = errors.New("pattern not found")
	// ErrPhaseNotFound is returned by Catalog.Phase for unknown ids.
	ErrPhaseNotFound = errors.New("phase not found")
)

// Concept is an intro card.
type Concept struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Pattern is one gallery entry and the scenario that illustrates it.
type Pattern struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Scenario    model.Scenario `yaml:"scenario"`
	Description string         `yaml:"description"`
	KeyPoints   []string       `yaml:"key_points"`
}

// Phase is one step of the market-maker cycle.
type Phase struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Subtitle    string   `yaml:"subtitle"`
	Description string   `yaml:"description"`
	Details     []string `yaml:"details"`
}

// Catalog holds all static lesson content.
type Catalog struct {
	Concepts []Concept `yaml:"concepts"`
	Patterns []Pattern `yaml:"patterns"`
	// Phases are ordered: accumulation, manipulation, distribution.
	Phases  []Phase `yaml:"phases"`
	Insight string  `yaml:"insight"`
	Quiz    Quiz    `yaml:"quiz"`
}

// Builtin parses the embedded catalog.
func Builtin() (*Catalog, error) {
	return Parse(builtin)
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a catalog from r.
func Decode(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML catalog data.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks ids, scenarios, phases and the quiz answer.
func (c *Catalog) Validate() error {
	if len(c.Patterns) == 0 {
		return errors.New("catalog has no patterns")
	}
	seen := make(map[string]bool, len(c.Patterns))
	for _, p := range c.Patterns {
		if p.ID == "" {
			return fmt.Errorf("pattern %q has no id", p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate pattern id %q", p.ID)
		}
		seen[p.ID] = true
		if !p.Scenario.Known() || p.Scenario == model.ScenarioDefault {
			return fmt.Errorf("pattern %q: scenario %q is not a pattern scenario", p.ID, p.Scenario)
		}
	}
	if err := c.validatePhases(); err != nil {
		return err
	}
	return c.Quiz.Validate()
}

func (c *Catalog) validatePhases() error {
	seen := make(map[string]bool, len(c.Phases))
	for i, ph := range c.Phases {
		if ph.ID == "" || ph.Name == "" {
			return fmt.Errorf("phase %d needs an id and a name", i+1)
		}
		if seen[ph.ID] {
			return fmt.Errorf("duplicate phase id %q", ph.ID)
		}
		seen[ph.ID] = true
		if len(ph.Details) == 0 {
			return fmt.Errorf("phase %q has no details", ph.ID)
		}
	}
	return nil
}

// Pattern looks up a gallery entry by id.
func (c *Catalog) Pattern(id string) (Pattern, error) {
	for _, p := range c.Patterns {
		if p.ID == id {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("%w: %q", ErrPatternNotFound, id)
}

// Phase looks up a cycle phase by id or by its 1-based position.
// The returned index is 0-based.
func (c *Catalog) Phase(key string) (Phase, int, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if n, err := strconv.Atoi(key); err == nil {
		if n >= 1 && n <= len(c.Phases) {
			return c.Phases[n-1], n - 1, nil
		}
		return Phase{}, 0, fmt.Errorf("%w: %q", ErrPhaseNotFound, key)
	}
	for i, ph := range c.Phases {
		if ph.ID == key {
			return ph, i, nil
		}
	}
	return Phase{}, 0, fmt.Errorf("%w: %q", ErrPhaseNotFound, key)
}
