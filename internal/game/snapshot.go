package game

import "github.com/jyarnell/blackjack-simulator/internal/deck"

// Snapshot is a read-only copy of the engine's observable state. The
// UI renders snapshots and never touches engine internals; a snapshot
// taken between commands is always consistent.
type Snapshot struct {
	Phase         Phase
	Bankroll      int
	Wager         int
	Denominations []int
	Throughput    int
	Points        int

	PlayerHand  Hand
	DealerHand  Hand
	PlayerValue HandValue
	DealerValue HandValue

	// HoleHidden is true while the dealer's second card must stay face
	// down, i.e. during the player's turn.
	HoleHidden bool

	LastOutcome Outcome
	PlayerFinal int
	DealerFinal int

	Status        string
	AutoPlay      bool
	DeckRemaining int
}

// Snapshot returns a copy of the current observable state.
func (e *Engine) Snapshot() Snapshot {
	player := make(Hand, len(e.playerHand))
	copy(player, e.playerHand)
	dealer := make(Hand, len(e.dealerHand))
	copy(dealer, e.dealerHand)
	denoms := make([]int, len(e.denominations))
	copy(denoms, e.denominations)

	remaining := 0
	if e.deck != nil {
		remaining = e.deck.Remaining()
	}

	return Snapshot{
		Phase:         e.phase,
		Bankroll:      e.bankroll,
		Wager:         e.wager,
		Denominations: denoms,
		Throughput:    e.throughput,
		Points:        e.throughput / 10,
		PlayerHand:    player,
		DealerHand:    dealer,
		PlayerValue:   Evaluate(player),
		DealerValue:   Evaluate(dealer),
		HoleHidden:    e.phase == PlayerTurn,
		LastOutcome:   e.lastOutcome,
		PlayerFinal:   e.playerFinal,
		DealerFinal:   e.dealerFinal,
		Status:        e.status,
		AutoPlay:      e.autoPlay,
		DeckRemaining: remaining,
	}
}

// VisibleDealerCards returns the dealer cards the player may see: the
// up-card only while the hole card is hidden, otherwise the full hand.
func (s Snapshot) VisibleDealerCards() []deck.Card {
	if s.HoleHidden && len(s.DealerHand) > 1 {
		return s.DealerHand[:1]
	}
	return s.DealerHand
}
