package simulator

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/jyarnell/blackjack-simulator/internal/game"
	"github.com/jyarnell/blackjack-simulator/internal/randutil"
	"github.com/jyarnell/blackjack-simulator/internal/statistics"
)

// Config holds configuration for running headless auto-play sessions
type Config struct {
	Sessions         int
	RoundsPerSession int
	Bankroll         int
	Wager            int
	Seed             int64
	Workers          int
	Logger           *log.Logger
}

// Simulator runs auto-play blackjack sessions and aggregates results
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// Run executes all sessions, spread across a bounded worker pool, and
// returns the merged statistics. Each session gets an independent seed
// derived from the base seed, so a run is reproducible regardless of
// worker interleaving.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	total := &statistics.Statistics{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for session := 0; session < s.config.Sessions; session++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stats := s.runSession(s.config.Seed + int64(session))
			if err := stats.Validate(); err != nil {
				return err
			}
			mu.Lock()
			total.Merge(stats)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return total, nil
}

// runSession plays one auto-play session to the round cap or until the
// bankroll can no longer cover the wager.
func (s *Simulator) runSession(seed int64) *statistics.Statistics {
	eng := game.NewEngine(game.Options{
		Bankroll: s.config.Bankroll,
		Wager:    s.config.Wager,
		RNG:      randutil.New(seed),
		Logger:   s.config.Logger,
	})

	collector := &roundCollector{wager: s.config.Wager}
	eng.Events().Subscribe(collector)

	eng.ToggleAutoPlay()
	for eng.Advance() {
		if collector.stats.Rounds >= s.config.RoundsPerSession {
			eng.ToggleAutoPlay()
			break
		}
	}

	// Auto-play only stops on its own when the wager is uncovered.
	if snap := eng.Snapshot(); snap.Bankroll < snap.Wager {
		collector.stats.Bankruptcies++
	}

	s.config.Logger.Debug("Session complete",
		"seed", seed,
		"rounds", collector.stats.Rounds,
		"net", collector.stats.Net)
	return &collector.stats
}

// roundCollector subscribes to the engine event bus and folds every
// settled round into the session statistics.
type roundCollector struct {
	wager int
	stats statistics.Statistics
}

// OnEvent implements game.EventSubscriber
func (c *roundCollector) OnEvent(event game.GameEvent) {
	end, ok := event.(game.RoundEndEvent)
	if !ok {
		return
	}
	c.stats.Add(statistics.RoundResult{
		Outcome:  end.Outcome.String(),
		Wager:    c.wager,
		Delta:    end.Delta,
		Bankroll: end.Bankroll,
	})
}
