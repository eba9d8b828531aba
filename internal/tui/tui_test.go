package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rand "math/rand/v2"

	"github.com/jyarnell/blackjack-simulator/internal/deck"
	"github.com/jyarnell/blackjack-simulator/internal/game"
)

func testModel(t *testing.T, cards ...deck.Card) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})

	opts := game.Options{Logger: logger}
	if len(cards) > 0 {
		stored := make([]deck.Card, len(cards))
		for i, c := range cards {
			stored[len(cards)-1-i] = c
		}
		opts.NewDeck = func(*rand.Rand) *deck.Deck {
			return deck.FromCards(stored)
		}
	}

	engine := game.NewEngine(opts)
	return New(engine, logger, 10*time.Millisecond)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDealKeyStartsRound(t *testing.T) {
	m := testModel(t,
		deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine),
		deck.NewCard(deck.Clubs, deck.Five), deck.NewCard(deck.Diamonds, deck.Seven),
	)

	m.Update(key("d"))

	assert.Equal(t, game.PlayerTurn, m.snap.Phase)
	assert.Equal(t, 990, m.snap.Bankroll)
}

func TestHiddenHoleCardRendering(t *testing.T) {
	h := game.Hand{
		deck.NewCard(deck.Spades, deck.Ten),
		deck.NewCard(deck.Hearts, deck.Nine),
	}

	hidden := formatHand(h, true)
	assert.Contains(t, hidden, "10♠")
	assert.Contains(t, hidden, hiddenCard)
	assert.NotContains(t, hidden, "9♥")

	shown := formatHand(h, false)
	assert.Contains(t, shown, "9♥")
	assert.NotContains(t, shown, hiddenCard)
}

func TestDealerValueShowsOnlyUpCardWhileHidden(t *testing.T) {
	h := game.Hand{
		deck.NewCard(deck.Spades, deck.Ten),
		deck.NewCard(deck.Hearts, deck.Nine),
	}

	v := formatValue(h, true)
	assert.Contains(t, v, "showing 10")
	assert.NotContains(t, v, "19")
}

func TestNextDenomination(t *testing.T) {
	denoms := []int{5, 10, 25, 50, 100}

	assert.Equal(t, 25, nextDenomination(denoms, 10, 1))
	assert.Equal(t, 5, nextDenomination(denoms, 10, -1))
	assert.Equal(t, 100, nextDenomination(denoms, 100, 1)) // clamps at the top
	assert.Equal(t, 5, nextDenomination(denoms, 5, -1))    // clamps at the bottom
	assert.Equal(t, 5, nextDenomination(denoms, 13, 1))    // unknown wager snaps to the smallest
}

func TestAutoPlayTickIsNoOpWhenDisengaged(t *testing.T) {
	m := testModel(t,
		deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine),
		deck.NewCard(deck.Clubs, deck.Ten), deck.NewCard(deck.Diamonds, deck.Nine),
	)
	require.False(t, m.snap.AutoPlay)
	before := m.snap

	_, cmd := m.Update(autoPlayTickMsg{})

	assert.Nil(t, cmd, "cancelled tick must not reschedule")
	assert.Equal(t, before.Phase, m.snap.Phase)
	assert.Equal(t, before.Bankroll, m.snap.Bankroll)
}

func TestAutoPlayTickAdvancesAndReschedules(t *testing.T) {
	m := testModel(t,
		deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine),
		deck.NewCard(deck.Clubs, deck.Ten), deck.NewCard(deck.Diamonds, deck.Nine),
	)

	_, cmd := m.Update(key("a"))
	require.True(t, m.snap.AutoPlay)
	require.NotNil(t, cmd, "engaging auto-play must schedule a tick")

	_, cmd = m.Update(autoPlayTickMsg{})
	assert.Equal(t, game.PlayerTurn, m.snap.Phase)
	assert.NotNil(t, cmd, "auto-play still engaged, must reschedule")
}

func TestViewRendersWalletAndStatus(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "bankroll")
	assert.Contains(t, view, "Place your bet")
	assert.Contains(t, view, "d deal")
}

func TestResetKeyClearsTable(t *testing.T) {
	m := testModel(t,
		deck.NewCard(deck.Spades, deck.Ten), deck.NewCard(deck.Hearts, deck.Nine),
		deck.NewCard(deck.Clubs, deck.Ten), deck.NewCard(deck.Diamonds, deck.Nine),
	)

	m.Update(key("d"))
	m.Update(key("s"))
	require.Equal(t, game.Result, m.snap.Phase)

	m.Update(key("r"))
	assert.Equal(t, game.Betting, m.snap.Phase)
	assert.Equal(t, 1000, m.snap.Bankroll)

	logText := strings.Join(m.gameLog, "\n")
	assert.Contains(t, logText, "Table reset")
}
