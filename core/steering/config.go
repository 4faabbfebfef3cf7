package steering

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// VariableConfig declares one linguistic variable: its domain and the
// ordered automf term names (the arity is the number of names).
type VariableConfig struct {
	Name  string   `toml:"name"`
	Min   float64  `toml:"min"`
	Max   float64  `toml:"max"`
	Step  float64  `toml:"step"`
	Terms []string `toml:"terms"`
}

// RuleConfig declares one steering rule in the conjunctive form
// "angle term AND position term implies movement term". A weight of 0
// means unset and defaults to 1.
type RuleConfig struct {
	Angle    string  `toml:"angle"`
	Position string  `toml:"position"`
	Movement string  `toml:"movement"`
	Weight   float64 `toml:"weight,omitempty"`
}

// Config is the declarative controller table: variables and rules are
// data, not behavior, and can be loaded from TOML without touching the
// inference engine.
type Config struct {
	Position VariableConfig `toml:"position"`
	Angle    VariableConfig `toml:"angle"`
	Movement VariableConfig `toml:"movement"`
	Rules    []RuleConfig   `toml:"rules"`
}

func ParseConfig(raw []byte) (Config, error) {
	var cfg Config
	err := toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode controller table: %w", err)
	}
	return cfg, nil
}

// DefaultConfig is the built-in truck steering table: 5 position terms,
// 7 angle terms, 7 movement terms, and the full 35-rule matrix.
func DefaultConfig() Config {
	rules := []struct {
		position string
		movement [7]string // one per angle term, large_below_90 first
	}{
		{"left_big", [7]string{"PB", "PB", "PB", "PB", "PM", "NB", "NB"}},
		{"left_medium", [7]string{"PB", "PB", "PM", "PM", "PS", "NM", "NM"}},
		{"centered", [7]string{"PB", "PM", "PS", "ZE", "NM", "NM", "NB"}},
		{"right_medium", [7]string{"PB", "PM", "PS", "NM", "NS", "PM", "PM"}},
		{"right_big", [7]string{"PM", "PS", "ZE", "NB", "NM", "PB", "PB"}},
	}
	angleTerms := []string{
		"large_below_90",
		"medium_below_90",
		"small_below_90",
		"at_90",
		"small_above_90",
		"medium_above_90",
		"large_above_90",
	}

	cfg := Config{
		Position: VariableConfig{
			Name: "x_position",
			Min:  0, Max: 10, Step: 1,
			Terms: []string{"left_big", "left_medium", "centered", "right_medium", "right_big"},
		},
		Angle: VariableConfig{
			Name: "truck_angle",
			Min:  0, Max: 180, Step: 1,
			Terms: angleTerms,
		},
		Movement: VariableConfig{
			Name: "movement",
			Min:  -30, Max: 30, Step: 1,
			Terms: []string{"NB", "NM", "NS", "ZE", "PS", "PM", "PB"},
		},
	}
	for _, row := range rules {
		for i, angleTerm := range angleTerms {
			cfg.Rules = append(cfg.Rules, RuleConfig{
				Angle:    angleTerm,
				Position: row.position,
				Movement: row.movement[i],
			})
		}
	}
	return cfg
}
