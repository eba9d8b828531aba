package tui

import (
	"strconv"
	"strings"

	"github.com/jyarnell/blackjack-simulator/internal/deck"
	"github.com/jyarnell/blackjack-simulator/internal/game"
)

const hiddenCard = "[??]"

// formatCard renders a single card with suit coloring
func formatCard(c deck.Card) string {
	text := "[" + c.String() + "]"
	if c.IsRed() {
		return RedCardStyle.Render(text)
	}
	return BlackCardStyle.Render(text)
}

// formatHand renders a hand as a row of cards. When hideHole is set
// the second card is rendered face down, as for the dealer during the
// player's turn.
func formatHand(h game.Hand, hideHole bool) string {
	if len(h) == 0 {
		return HiddenCardStyle.Render("(no cards)")
	}
	parts := make([]string, 0, len(h))
	for i, c := range h {
		if hideHole && i == 1 {
			parts = append(parts, HiddenCardStyle.Render(hiddenCard))
			continue
		}
		parts = append(parts, formatCard(c))
	}
	return strings.Join(parts, " ")
}

// formatValue renders a hand value like "17" or "soft 17". The
// dealer's value shows only the up-card while the hole card is hidden.
func formatValue(h game.Hand, hideHole bool) string {
	if len(h) == 0 {
		return ""
	}
	if hideHole && len(h) > 1 {
		up := game.Evaluate(h[:1])
		return LabelStyle.Render("showing " + strconv.Itoa(up.Total))
	}
	hv := game.Evaluate(h)
	if hv.Soft {
		return LabelStyle.Render("soft " + strconv.Itoa(hv.Total))
	}
	return LabelStyle.Render(strconv.Itoa(hv.Total))
}
