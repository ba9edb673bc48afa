package trace

import (
	"fmt"
	"os"

	"github.com/vinser/tilestep/internal/charutil"
	"gopkg.in/yaml.v3"
)

// Script is a scripted trace run read from YAML:
//
//	ticks: 40
//	turns:
//	  - tick: 1
//	    dir: down
type Script struct {
	Ticks int    `yaml:"ticks"`
	Turns []Turn `yaml:"turns"`
}

// Turn queues Dir before tick Tick.
type Turn struct {
	Tick int    `yaml:"tick"`
	Dir  string `yaml:"dir"`
}

// ParseScript decodes and validates a script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse trace script: %w", err)
	}
	if s.Ticks < 0 {
		return nil, fmt.Errorf("trace script: negative ticks %d", s.Ticks)
	}
	for _, t := range s.Turns {
		if t.Tick < 0 {
			return nil, fmt.Errorf("trace script: negative tick %d", t.Tick)
		}
		if _, err := charutil.ParseDirection(t.Dir); err != nil {
			return nil, fmt.Errorf("trace script: tick %d: %w", t.Tick, err)
		}
	}
	return &s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace script: %w", err)
	}
	return ParseScript(data)
}

// TurnMap returns the turns keyed by tick. A later entry for the same tick wins.
func (s *Script) TurnMap() map[int]charutil.Direction {
	turns := make(map[int]charutil.Direction, len(s.Turns))
	for _, t := range s.Turns {
		d, err := charutil.ParseDirection(t.Dir)
		if err != nil {
			continue
		}
		turns[t.Tick] = d
	}
	return turns
}

// Configure applies the script to cfg. The script's tick count is used unless
// ticksSet says the caller chose one explicitly.
func (s *Script) Configure(cfg Config, ticksSet bool) Config {
	if s.Ticks > 0 && !ticksSet {
		cfg.Ticks = s.Ticks
	}
	cfg.Turns = s.TurnMap()
	return cfg
}
