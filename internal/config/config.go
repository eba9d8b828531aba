package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete blackjack configuration
type Config struct {
	Table      TableSettings       `hcl:"table,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// TableSettings contains table rules and pacing
type TableSettings struct {
	Bankroll      int   `hcl:"bankroll,optional"`
	DefaultWager  int   `hcl:"default_wager,optional"`
	Denominations []int `hcl:"denominations,optional"`
	DealerPaceMs  int   `hcl:"dealer_pace_ms,optional"`
}

// SimulationSettings contains headless simulation parameters
type SimulationSettings struct {
	Sessions         int   `hcl:"sessions,optional"`
	RoundsPerSession int   `hcl:"rounds_per_session,optional"`
	Seed             int64 `hcl:"seed,optional"`
	Workers          int   `hcl:"workers,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Table: TableSettings{
			Bankroll:      1000,
			DefaultWager:  10,
			Denominations: []int{5, 10, 25, 50, 100},
			DealerPaceMs:  600,
		},
		Simulation: &SimulationSettings{
			Sessions:         100,
			RoundsPerSession: 500,
			Seed:             1,
			Workers:          4,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields
// the defaults; missing values within a present file are filled from
// the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Table.Bankroll == 0 {
		cfg.Table.Bankroll = defaults.Table.Bankroll
	}
	if cfg.Table.DefaultWager == 0 {
		cfg.Table.DefaultWager = defaults.Table.DefaultWager
	}
	if len(cfg.Table.Denominations) == 0 {
		cfg.Table.Denominations = defaults.Table.Denominations
	}
	if cfg.Table.DealerPaceMs == 0 {
		cfg.Table.DealerPaceMs = defaults.Table.DealerPaceMs
	}

	if cfg.Simulation == nil {
		cfg.Simulation = defaults.Simulation
		return
	}
	if cfg.Simulation.Sessions == 0 {
		cfg.Simulation.Sessions = defaults.Simulation.Sessions
	}
	if cfg.Simulation.RoundsPerSession == 0 {
		cfg.Simulation.RoundsPerSession = defaults.Simulation.RoundsPerSession
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = defaults.Simulation.Seed
	}
	if cfg.Simulation.Workers == 0 {
		cfg.Simulation.Workers = defaults.Simulation.Workers
	}
}

func validate(cfg *Config) error {
	if cfg.Table.Bankroll < 0 {
		return fmt.Errorf("table bankroll must be positive, got %d", cfg.Table.Bankroll)
	}
	if cfg.Table.DefaultWager <= 0 {
		return fmt.Errorf("default wager must be positive, got %d", cfg.Table.DefaultWager)
	}
	for _, d := range cfg.Table.Denominations {
		if d <= 0 {
			return fmt.Errorf("denominations must be positive, got %d", d)
		}
	}
	wagerOK := false
	for _, d := range cfg.Table.Denominations {
		if d == cfg.Table.DefaultWager {
			wagerOK = true
			break
		}
	}
	if !wagerOK {
		return fmt.Errorf("default wager %d is not one of the denominations %v",
			cfg.Table.DefaultWager, cfg.Table.Denominations)
	}
	return nil
}
