package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTracksOutcomes(t *testing.T) {
	s := &Statistics{}
	s.Add(RoundResult{Outcome: "win", Wager: 10, Delta: 20, Bankroll: 1010})
	s.Add(RoundResult{Outcome: "loss", Wager: 10, Delta: 0, Bankroll: 1000})
	s.Add(RoundResult{Outcome: "push", Wager: 10, Delta: 10, Bankroll: 1000})

	assert.Equal(t, 3, s.Rounds)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 1, s.Pushes)
	assert.Equal(t, 30, s.TotalWagered)
	assert.Equal(t, 0, s.Net) // +10 -10 +0
	assert.Equal(t, 1010, s.PeakBankroll)
	assert.Equal(t, 3, s.Points())
	require.NoError(t, s.Validate())
}

func TestStreaks(t *testing.T) {
	s := &Statistics{}
	for _, o := range []string{"win", "win", "win", "loss", "loss", "push", "win"} {
		s.Add(RoundResult{Outcome: o, Wager: 10, Delta: 0})
	}

	assert.Equal(t, 3, s.MaxWinStreak)
	assert.Equal(t, 2, s.MaxLossStreak)
}

func TestMergeIsOrderIndependent(t *testing.T) {
	build := func(outcomes []string) *Statistics {
		s := &Statistics{}
		for _, o := range outcomes {
			delta := 0
			if o == "win" {
				delta = 20
			} else if o == "push" {
				delta = 10
			}
			s.Add(RoundResult{Outcome: o, Wager: 10, Delta: delta, Bankroll: 1000})
		}
		return s
	}

	a := build([]string{"win", "win", "loss"})
	b := build([]string{"loss", "push"})

	ab := &Statistics{}
	ab.Merge(a)
	ab.Merge(b)

	ba := &Statistics{}
	ba.Merge(b)
	ba.Merge(a)

	assert.Equal(t, *ab, *ba)
	assert.Equal(t, 5, ab.Rounds)
	assert.Equal(t, 2, ab.Wins)
	assert.Equal(t, 2, ab.Losses)
	assert.Equal(t, 1, ab.Pushes)
	require.NoError(t, ab.Validate())
}

func TestWinRate(t *testing.T) {
	s := &Statistics{}
	assert.Equal(t, 0.0, s.WinRate())

	s.Add(RoundResult{Outcome: "win", Wager: 10, Delta: 20})
	s.Add(RoundResult{Outcome: "loss", Wager: 10, Delta: 0})
	assert.InDelta(t, 0.5, s.WinRate(), 1e-9)
}

func TestValidateCatchesMismatch(t *testing.T) {
	s := &Statistics{Rounds: 3, Wins: 1}
	assert.Error(t, s.Validate())
}
