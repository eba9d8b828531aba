package game

import (
	"strings"

	"github.com/jyarnell/blackjack-simulator/internal/deck"
)

// Hand is an ordered sequence of cards held by the player or the
// dealer. Cards are only appended during a round; the hand is replaced
// wholesale at the next deal.
type Hand []deck.Card

// HandValue is the derived value of a hand. Soft is true when an ace
// is currently counted as 11.
type HandValue struct {
	Total int
	Soft  bool
}

// Evaluate computes the blackjack value of a hand. Every ace starts at
// 11; while the total exceeds 21 and an ace still counts 11, one ace is
// demoted to 1. The hand is soft iff an ace survives at 11. Evaluate
// never mutates the hand.
func Evaluate(h Hand) HandValue {
	total := 0
	aces := 0
	for _, c := range h {
		total += c.BaseValue()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return HandValue{Total: total, Soft: aces > 0}
}

// IsBlackjack returns true for a natural: exactly two cards totaling 21.
func IsBlackjack(h Hand) bool {
	return len(h) == 2 && Evaluate(h).Total == 21
}

// IsBust returns true when the hand's total exceeds 21.
func IsBust(h Hand) bool {
	return Evaluate(h).Total > 21
}

// String renders the hand as space-separated cards (e.g. "A♠ 6♥").
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
