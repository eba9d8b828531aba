package game

import (
	"testing"

	"github.com/jyarnell/blackjack-simulator/internal/deck"
)

func TestDealerShouldDraw(t *testing.T) {
	tests := []struct {
		name     string
		hand     Hand
		expected bool
	}{
		{"sixteen draws", Hand{card(deck.Ten), card(deck.Six)}, true},
		{"hard seventeen stands", Hand{card(deck.Ten), card(deck.Seven)}, false},
		{"soft seventeen stands", Hand{card(deck.Ace), card(deck.Six)}, false},
		{"eighteen stands", Hand{card(deck.Ten), card(deck.Eight)}, false},
		{"bust stands", Hand{card(deck.Ten), card(deck.Nine), card(deck.Five)}, false},
		{"low five-card hand draws", Hand{card(deck.Two), card(deck.Two), card(deck.Three), card(deck.Two), card(deck.Three)}, true},
		{"six cards under seventeen stops", Hand{card(deck.Two), card(deck.Two), card(deck.Two), card(deck.Two), card(deck.Three), card(deck.Three)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DealerShouldDraw(tt.hand); got != tt.expected {
				t.Errorf("DealerShouldDraw = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDealerCharlie(t *testing.T) {
	charlie := Hand{card(deck.Two), card(deck.Two), card(deck.Two), card(deck.Two), card(deck.Three), card(deck.Three)} // 14 at six cards
	if !IsDealerCharlie(charlie) {
		t.Error("six cards under 17 should be a dealer Charlie")
	}

	seventeen := Hand{card(deck.Two), card(deck.Three), card(deck.Two), card(deck.Two), card(deck.Four), card(deck.Four)} // 17 at six cards
	if IsDealerCharlie(seventeen) {
		t.Error("six cards reaching 17 is not a dealer Charlie")
	}

	short := Hand{card(deck.Two), card(deck.Three)}
	if IsDealerCharlie(short) {
		t.Error("two cards cannot be a Charlie")
	}
}

func TestPlayerCharlie(t *testing.T) {
	win := Hand{card(deck.Two), card(deck.Three), card(deck.Two), card(deck.Four), card(deck.Five), card(deck.Four)} // 20 at six cards
	if !IsPlayerCharlie(win) {
		t.Error("six cards at 20 should be a player Charlie")
	}

	bust := Hand{card(deck.Ten), card(deck.Nine), card(deck.Two), card(deck.Two), card(deck.Four), card(deck.Five)} // 32
	if IsPlayerCharlie(bust) {
		t.Error("a busted six-card hand is not a Charlie")
	}
}
