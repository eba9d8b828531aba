package game

// Outcome is the result of a finished round from the player's
// perspective.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomePush
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomePush:
		return "push"
	default:
		return "none"
	}
}

// Settle compares two finished hands and returns the outcome plus the
// amount credited back to the bankroll. The wager was already debited
// at deal time, so a win credits 2x (stake plus winnings), a push
// credits 1x (stake returned) and a loss credits nothing.
//
// Rules are checked in order; the first match wins:
//
//	player bust            -> loss
//	dealer bust            -> win
//	player 6-card Charlie  -> win, regardless of the dealer's total
//	dealer 6-card Charlie  -> win (safety net; the dealer draw loop
//	                          already resolves this case directly, and
//	                          both paths must pay identically)
//	higher total           -> win / loss
//	equal totals           -> push
func Settle(player, dealer Hand, wager int) (Outcome, int) {
	pv := Evaluate(player)
	dv := Evaluate(dealer)

	switch {
	case pv.Total > 21:
		return OutcomeLoss, 0
	case dv.Total > 21:
		return OutcomeWin, 2 * wager
	case IsPlayerCharlie(player):
		return OutcomeWin, 2 * wager
	case IsDealerCharlie(dealer):
		return OutcomeWin, 2 * wager
	case pv.Total > dv.Total:
		return OutcomeWin, 2 * wager
	case dv.Total > pv.Total:
		return OutcomeLoss, 0
	default:
		return OutcomePush, wager
	}
}

// SettleNaturals resolves a round where at least one side was dealt a
// natural blackjack. A natural pays even money, so the deltas match
// Settle: both naturals push, a lone player natural wins 2x, a lone
// dealer natural loses the stake.
func SettleNaturals(player, dealer Hand, wager int) (Outcome, int) {
	playerNatural := IsBlackjack(player)
	dealerNatural := IsBlackjack(dealer)

	switch {
	case playerNatural && dealerNatural:
		return OutcomePush, wager
	case playerNatural:
		return OutcomeWin, 2 * wager
	case dealerNatural:
		return OutcomeLoss, 0
	default:
		return OutcomeNone, 0
	}
}
