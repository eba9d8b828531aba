package game

import (
	"testing"

	"github.com/jyarnell/blackjack-simulator/internal/deck"
)

func TestShouldHit(t *testing.T) {
	tests := []struct {
		name     string
		hand     Hand
		upCard   deck.Card
		expected bool
	}{
		// Hard totals
		{"hard 16 vs ten hits", Hand{card(deck.Ten), card(deck.Six)}, card(deck.Ten), true},
		{"hard 16 vs six stands", Hand{card(deck.Ten), card(deck.Six)}, card(deck.Six), false},
		{"hard 13 vs two stands", Hand{card(deck.Ten), card(deck.Three)}, card(deck.Two), false},
		{"hard 13 vs seven hits", Hand{card(deck.Ten), card(deck.Three)}, card(deck.Seven), true},
		{"hard 12 vs four stands", Hand{card(deck.Ten), card(deck.Two)}, card(deck.Four), false},
		{"hard 12 vs three hits", Hand{card(deck.Ten), card(deck.Two)}, card(deck.Three), true},
		{"hard 12 vs seven hits", Hand{card(deck.Ten), card(deck.Two)}, card(deck.Seven), true},
		{"hard 11 always hits", Hand{card(deck.Six), card(deck.Five)}, card(deck.Two), true},
		{"hard 17 always stands", Hand{card(deck.Ten), card(deck.Seven)}, card(deck.Ace), false},
		{"hard 20 stands", Hand{card(deck.Ten), card(deck.Queen)}, card(deck.Six), false},

		// Soft totals
		{"soft 17 hits", Hand{card(deck.Ace), card(deck.Six)}, card(deck.Two), true},
		{"soft 18 vs six stands", Hand{card(deck.Ace), card(deck.Seven)}, card(deck.Six), false},
		{"soft 18 vs nine hits", Hand{card(deck.Ace), card(deck.Seven)}, card(deck.Nine), true},
		{"soft 18 vs ten hits", Hand{card(deck.Ace), card(deck.Seven)}, card(deck.Ten), true},
		{"soft 18 vs ace hits", Hand{card(deck.Ace), card(deck.Seven)}, card(deck.Ace), true},
		{"soft 18 vs eight stands", Hand{card(deck.Ace), card(deck.Seven)}, card(deck.Eight), false},
		{"soft 19 stands", Hand{card(deck.Ace), card(deck.Eight)}, card(deck.Ten), false},

		// At or above 21
		{"natural 21 stands", Hand{card(deck.Ace), card(deck.King)}, card(deck.Ace), false},
		{"busted hand stands", Hand{card(deck.Ten), card(deck.Nine), card(deck.Five)}, card(deck.Two), false},

		// Five-card safety rule: a hit cannot bust, chase the Charlie.
		{"five cards at 11 hits regardless", Hand{card(deck.Two), card(deck.Two), card(deck.Two), card(deck.Three), card(deck.Two)}, card(deck.Six), true},
		{"five cards at 10 hits regardless", Hand{card(deck.Two), card(deck.Two), card(deck.Two), card(deck.Two), card(deck.Two)}, card(deck.Ace), true},
		{"five cards at 12 follows the table", Hand{card(deck.Two), card(deck.Two), card(deck.Three), card(deck.Three), card(deck.Two)}, card(deck.Four), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldHit(tt.hand, tt.upCard); got != tt.expected {
				t.Errorf("ShouldHit(%s vs %s) = %v, want %v", tt.hand, tt.upCard, got, tt.expected)
			}
		})
	}
}

// The table must be total: every reachable combination of totals and
// up-cards yields a decision without panicking.
func TestShouldHitIsTotal(t *testing.T) {
	upcards := []deck.Card{}
	for r := deck.Two; r <= deck.Ace; r++ {
		upcards = append(upcards, card(r))
	}

	hands := []Hand{}
	for r1 := deck.Two; r1 <= deck.Ace; r1++ {
		for r2 := deck.Two; r2 <= deck.Ace; r2++ {
			hands = append(hands, Hand{card(r1), card(r2)})
		}
	}

	for _, h := range hands {
		for _, up := range upcards {
			ShouldHit(h, up)
		}
	}
}
