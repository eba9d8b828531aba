package statistics

import (
	"fmt"
	"strings"
)

// RoundResult is the outcome of a single settled round.
type RoundResult struct {
	Outcome  string // "win", "loss" or "push"
	Wager    int
	Delta    int // amount credited back (0 loss, wager push, 2x wager win)
	Bankroll int // bankroll after settlement
}

// Statistics aggregates results across rounds and sessions.
type Statistics struct {
	Rounds int
	Wins   int
	Losses int
	Pushes int

	TotalWagered int
	Net          int // sum of (delta - wager) over all rounds
	PeakBankroll int
	Bankruptcies int // sessions that ended unable to cover the wager

	winStreak     int
	lossStreak    int
	MaxWinStreak  int
	MaxLossStreak int
}

// Add incorporates one round result into the statistics
func (s *Statistics) Add(r RoundResult) {
	s.Rounds++
	s.TotalWagered += r.Wager
	s.Net += r.Delta - r.Wager
	if r.Bankroll > s.PeakBankroll {
		s.PeakBankroll = r.Bankroll
	}

	switch r.Outcome {
	case "win":
		s.Wins++
		s.winStreak++
		s.lossStreak = 0
		if s.winStreak > s.MaxWinStreak {
			s.MaxWinStreak = s.winStreak
		}
	case "loss":
		s.Losses++
		s.lossStreak++
		s.winStreak = 0
		if s.lossStreak > s.MaxLossStreak {
			s.MaxLossStreak = s.lossStreak
		}
	case "push":
		s.Pushes++
		s.winStreak = 0
		s.lossStreak = 0
	}
}

// Merge folds another statistics value into this one. Streak counters
// do not cross session boundaries, so only the maxima carry over;
// merging is order-independent for every reported field.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.TotalWagered += other.TotalWagered
	s.Net += other.Net
	s.Bankruptcies += other.Bankruptcies
	if other.PeakBankroll > s.PeakBankroll {
		s.PeakBankroll = other.PeakBankroll
	}
	if other.MaxWinStreak > s.MaxWinStreak {
		s.MaxWinStreak = other.MaxWinStreak
	}
	if other.MaxLossStreak > s.MaxLossStreak {
		s.MaxLossStreak = other.MaxLossStreak
	}
}

// WinRate returns the fraction of rounds won
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

// NetPerRound returns the mean chips won or lost per round
func (s *Statistics) NetPerRound() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Net) / float64(s.Rounds)
}

// Points returns the loyalty points earned across all wagering
func (s *Statistics) Points() int {
	return s.TotalWagered / 10
}

// Validate checks internal consistency of the aggregates
func (s *Statistics) Validate() error {
	if s.Wins+s.Losses+s.Pushes != s.Rounds {
		return fmt.Errorf("outcome counts %d+%d+%d do not sum to rounds %d",
			s.Wins, s.Losses, s.Pushes, s.Rounds)
	}
	if s.TotalWagered < 0 || s.Rounds < 0 {
		return fmt.Errorf("negative aggregates: wagered %d rounds %d", s.TotalWagered, s.Rounds)
	}
	return nil
}

// Summary renders a multi-line human-readable report
func (s *Statistics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rounds:        %d\n", s.Rounds)
	fmt.Fprintf(&b, "Win/Loss/Push: %d/%d/%d (%.1f%% win rate)\n", s.Wins, s.Losses, s.Pushes, s.WinRate()*100)
	fmt.Fprintf(&b, "Net:           %+d chips (%+.2f per round)\n", s.Net, s.NetPerRound())
	fmt.Fprintf(&b, "Wagered:       %d (%d points)\n", s.TotalWagered, s.Points())
	fmt.Fprintf(&b, "Peak bankroll: %d\n", s.PeakBankroll)
	fmt.Fprintf(&b, "Streaks:       %d wins / %d losses\n", s.MaxWinStreak, s.MaxLossStreak)
	fmt.Fprintf(&b, "Bankruptcies:  %d\n", s.Bankruptcies)
	return b.String()
}
