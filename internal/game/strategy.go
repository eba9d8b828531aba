package game

import "github.com/jyarnell/blackjack-simulator/internal/deck"

// UpCardValue returns the strategy value of the dealer's visible card:
// ace counts 11, face cards 10, everything else its rank.
func UpCardValue(c deck.Card) int {
	return c.BaseValue()
}

// ShouldHit is the auto-play decision: hit or stand given the full
// player hand and the dealer's up-card. The table is deterministic and
// total; every reachable (total, soft, up-card) combination yields a
// decision. Rules are checked in priority order:
//
//  1. A five-card hand that cannot bust always hits, chasing the
//     six-card automatic win even where basic strategy would stand.
//  2. At 21 or above there is nothing left to gain.
//  3. Soft totals: hit through soft 17; soft 18 hits only into a
//     strong up-card (9, 10 or ace); stand on soft 19+.
//  4. Hard totals: always hit through 11; hard 12 stands only against
//     a dealer 4-6; hard 13-16 stand against 2-6; stand on hard 17+.
func ShouldHit(player Hand, upCard deck.Card) bool {
	hv := Evaluate(player)
	up := UpCardValue(upCard)

	if len(player) == 5 && 21-hv.Total >= 10 {
		return true
	}
	if hv.Total >= 21 {
		return false
	}

	if hv.Soft {
		switch {
		case hv.Total <= 17:
			return true
		case hv.Total == 18:
			return up >= 9
		default:
			return false
		}
	}

	switch {
	case hv.Total <= 11:
		return true
	case hv.Total == 12:
		return up < 4 || up > 6
	case hv.Total <= 16:
		return up > 6
	default:
		return false
	}
}
