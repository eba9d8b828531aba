package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jyarnell/blackjack-simulator/internal/config"
	"github.com/jyarnell/blackjack-simulator/internal/game"
	"github.com/jyarnell/blackjack-simulator/internal/randutil"
	"github.com/jyarnell/blackjack-simulator/internal/tui"
)

// PlayCmd runs the interactive table
type PlayCmd struct {
	Config  string `short:"c" default:"blackjack.hcl" help:"Path to HCL config file"`
	Seed    int64  `help:"Seed the shuffle RNG for a reproducible session (0 = random)"`
	Debug   bool   `help:"Enable debug logging to the log file"`
	LogFile string `default:"blackjack.log" help:"Log file path (TUI owns stderr)"`
}

// Run executes the play command
func (p *PlayCmd) Run() error {
	cfg, err := config.Load(p.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(p.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
	})
	if p.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	rng := randutil.NewFromTime()
	if p.Seed != 0 {
		rng = randutil.New(p.Seed)
	}

	engine := game.NewEngine(game.Options{
		Bankroll:      cfg.Table.Bankroll,
		Wager:         cfg.Table.DefaultWager,
		Denominations: cfg.Table.Denominations,
		StepDelay:     time.Duration(cfg.Table.DealerPaceMs) * time.Millisecond,
		RNG:           rng,
		Logger:        logger,
	})

	model := tui.New(engine, logger, time.Duration(cfg.Table.DealerPaceMs)*time.Millisecond)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
