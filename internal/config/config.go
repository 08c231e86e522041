package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/radioactive/internal/decay"
	"github.com/san-kum/radioactive/internal/isotope"
	"github.com/san-kum/radioactive/internal/timeline"
)

const (
	DefaultQuantity  = "radioactivity"
	DefaultPolicy    = "first-listed"
	DefaultMerge     = "first-write-wins"
	DefaultGrid      = "until"
	DefaultMinDecade = 0
	DefaultPoints    = 50
)

type Config struct {
	Mixture          decay.Mixture `yaml:"mixture"`
	Quantity         string        `yaml:"quantity"`
	Policy           string        `yaml:"policy"`
	Merge            string        `yaml:"merge"`
	AllowUntabulated bool          `yaml:"allow_untabulated"`
	Grid             GridConfig    `yaml:"grid"`
	Workers          int           `yaml:"workers"`
	LogMode          string        `yaml:"log_mode"`
	Verbose          bool          `yaml:"verbose"`
}

// GridConfig selects sample times. Kind is "log" (fixed decades),
// "linear" (Points between Start and End) or "until" (decades until the
// total falls to FloorBq).
type GridConfig struct {
	Kind      string  `yaml:"kind"`
	MinDecade int     `yaml:"min_decade"`
	MaxDecade int     `yaml:"max_decade"`
	Start     float64 `yaml:"start"`
	End       float64 `yaml:"end"`
	Points    int     `yaml:"points"`
	FloorBq   float64 `yaml:"floor_bq"`
}

func DefaultConfig() *Config {
	return &Config{
		Mixture:  decay.NewMixture(),
		Quantity: DefaultQuantity,
		Policy:   DefaultPolicy,
		Merge:    DefaultMerge,
		Grid: GridConfig{
			Kind:      DefaultGrid,
			MinDecade: DefaultMinDecade,
			MaxDecade: timeline.DefaultMaxDecade,
			End:       1000,
			Points:    DefaultPoints,
			FloorBq:   timeline.DefaultFloor,
		},
		LogMode: "dev",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, ok := decay.ParseQuantity(c.Quantity); !ok {
		return fmt.Errorf("unknown quantity: %s", c.Quantity)
	}
	if _, err := decay.PolicyByName(c.Policy); err != nil {
		return err
	}
	if _, err := decay.ParseMergePolicy(c.Merge); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if err := c.Mixture.Validate(); err != nil {
		return err
	}
	switch c.Grid.Kind {
	case "log", "linear":
		_, err := c.Grid.Times()
		return err
	case "until":
		if c.Grid.FloorBq < 0 {
			return fmt.Errorf("floor must not be negative, got %g", c.Grid.FloorBq)
		}
		return nil
	default:
		return fmt.Errorf("unknown grid kind: %s", c.Grid.Kind)
	}
}

func (c *Config) GetQuantity() decay.Quantity {
	q, ok := decay.ParseQuantity(c.Quantity)
	if !ok {
		return decay.QuantityRadioactivity
	}
	return q
}

// NewSolver builds a solver over table with the configured policies.
func (c *Config) NewSolver(table *isotope.Table) (*decay.Solver, error) {
	policy, err := decay.PolicyByName(c.Policy)
	if err != nil {
		return nil, err
	}
	merge, err := decay.ParseMergePolicy(c.Merge)
	if err != nil {
		return nil, err
	}
	opts := []decay.Option{decay.WithPolicy(policy), decay.WithMergePolicy(merge)}
	if c.AllowUntabulated {
		opts = append(opts, decay.WithUntabulatedSeeds())
	}
	return decay.NewSolver(table, opts...), nil
}

// Times returns the fixed grid for "log" and "linear" kinds.
func (g GridConfig) Times() ([]float64, error) {
	switch g.Kind {
	case "log":
		return timeline.LogGrid(g.MinDecade, g.MaxDecade)
	case "linear":
		return timeline.LinearGrid(g.Start, g.End, g.Points)
	default:
		return nil, fmt.Errorf("grid kind %s has no fixed times", g.Kind)
	}
}
