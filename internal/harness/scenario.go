package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a set of addition
// cases executed against one adder configuration.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden
	// file name, so it must be filesystem-safe.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Symbols optionally restricts the active alphabet to symbols of
	// weight up to the named one (e.g. "X" for {I,V,X}). Empty means
	// the full alphabet.
	Symbols string `yaml:"symbols,omitempty"`

	// Unicode enables NFKC folding of Unicode numeral code points.
	Unicode bool `yaml:"unicode,omitempty"`

	// Cases contains the additions to execute, in order.
	Cases []Case `yaml:"cases"`
}

// Case is one addition with its expected outcome. Exactly one of
// Want and WantError must be set.
type Case struct {
	Augend string `yaml:"augend"`
	Addend string `yaml:"addend"`

	// Want is the expected canonical sum.
	Want string `yaml:"want,omitempty"`

	// WantError is the expected roman.InputErrorCode.
	WantError string `yaml:"want_error,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "case:" vs "cases:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml scenario under dir, sorted by file
// name for deterministic ordering.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Want == "" && c.WantError == "" {
			return fmt.Errorf("cases[%d]: one of want or want_error is required", i)
		}
		if c.Want != "" && c.WantError != "" {
			return fmt.Errorf("cases[%d]: want and want_error are mutually exclusive", i)
		}
	}

	return nil
}
