package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlayerConfig describes one tribute in the roster.
type PlayerConfig struct {
	Name     string `yaml:"name"`
	District int    `yaml:"district"`
	Pronoun  string `yaml:"pronoun"`
}

// Config is the full run configuration, loadable from YAML.
type Config struct {
	Seed      int64          `yaml:"seed"`
	Days      int            `yaml:"days"`
	ArenaSize int            `yaml:"arena_size"`
	Players   []PlayerConfig `yaml:"players"`
}

// DefaultConfig returns a 24-tribute roster over 12 districts, the
// classic setup.
func DefaultConfig() Config {
	names := [][2]string{
		{"Marvel", "he"}, {"Glimmer", "she"},
		{"Ajax", "he"}, {"Clove", "she"},
		{"Cato", "he"}, {"Vera", "she"},
		{"Finn", "he"}, {"Lila", "she"},
		{"Dorian", "he"}, {"Wren", "she"},
		{"Silas", "he"}, {"Juniper", "she"},
		{"Blight", "he"}, {"Cecelia", "she"},
		{"Woof", "he"}, {"Mags", "she"},
		{"Chaff", "he"}, {"Seeder", "she"},
		{"Brutus", "he"}, {"Enobaria", "she"},
		{"Thresh", "he"}, {"Rue", "she"},
		{"Peeta", "he"}, {"Katniss", "she"},
	}
	cfg := Config{Seed: 42, Days: 10, ArenaSize: 5}
	for i, n := range names {
		cfg.Players = append(cfg.Players, PlayerConfig{
			Name:     n[0],
			District: i/2 + 1,
			Pronoun:  n[1],
		})
	}
	return cfg
}

// LoadConfig reads a YAML run configuration. Zero-value fields fall
// back to the defaults.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := Config{}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	def := DefaultConfig()
	if cfg.Days == 0 {
		cfg.Days = def.Days
	}
	if cfg.ArenaSize == 0 {
		cfg.ArenaSize = def.ArenaSize
	}
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}
	if len(cfg.Players) == 0 {
		cfg.Players = def.Players
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects rosters a run cannot start from.
func (c Config) Validate() error {
	if len(c.Players) < 2 {
		return fmt.Errorf("roster needs at least 2 players, got %d", len(c.Players))
	}
	seen := map[string]bool{}
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player with empty name in roster")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name %q", p.Name)
		}
		seen[p.Name] = true
	}
	if c.ArenaSize < 2 {
		return fmt.Errorf("arena size must be at least 2, got %d", c.ArenaSize)
	}
	if c.Days < 1 {
		return fmt.Errorf("day cap must be at least 1, got %d", c.Days)
	}
	return nil
}
