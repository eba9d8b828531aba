package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/jyarnell/blackjack-simulator/internal/config"
	"github.com/jyarnell/blackjack-simulator/internal/simulator"
)

// SimulateCmd runs headless auto-play sessions
type SimulateCmd struct {
	Config   string `short:"c" default:"blackjack.hcl" help:"Path to HCL config file"`
	Sessions int    `help:"Override number of sessions"`
	Rounds   int    `help:"Override rounds per session"`
	Seed     int64  `help:"Override base RNG seed"`
	Workers  int    `help:"Override worker pool size"`
	Debug    bool   `help:"Enable debug logging"`
}

// Run executes the simulate command
func (s *SimulateCmd) Run() error {
	cfg, err := config.Load(s.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sim := cfg.Simulation
	if s.Sessions > 0 {
		sim.Sessions = s.Sessions
	}
	if s.Rounds > 0 {
		sim.RoundsPerSession = s.Rounds
	}
	if s.Seed != 0 {
		sim.Seed = s.Seed
	}
	if s.Workers > 0 {
		sim.Workers = s.Workers
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if s.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	logger.Info("Starting simulation",
		"sessions", sim.Sessions,
		"rounds", sim.RoundsPerSession,
		"seed", sim.Seed,
		"workers", sim.Workers,
		"bankroll", cfg.Table.Bankroll,
		"wager", cfg.Table.DefaultWager)

	runner := simulator.New(simulator.Config{
		Sessions:         sim.Sessions,
		RoundsPerSession: sim.RoundsPerSession,
		Bankroll:         cfg.Table.Bankroll,
		Wager:            cfg.Table.DefaultWager,
		Seed:             sim.Seed,
		Workers:          sim.Workers,
		Logger:           logger,
	})

	stats, err := runner.Run(context.Background())
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Print(stats.Summary())
	return nil
}
