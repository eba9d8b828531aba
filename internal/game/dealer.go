package game

// maxHandCards is the 6-card Charlie threshold: a player hand of six
// cards totaling 21 or less wins outright, and a dealer hand of six
// cards still under 17 loses outright.
const maxHandCards = 6

// DealerShouldDraw reports whether the dealer takes another card. The
// dealer draws below 17 and stands on all 17s, including soft 17, and
// never holds more than six cards. The decision depends only on the
// dealer's own hand.
func DealerShouldDraw(h Hand) bool {
	return Evaluate(h).Total < 17 && len(h) < maxHandCards
}

// IsDealerCharlie reports whether the dealer hit the 6-card limit while
// still under 17, which is an automatic dealer loss.
func IsDealerCharlie(h Hand) bool {
	return len(h) >= maxHandCards && Evaluate(h).Total < 17
}

// IsPlayerCharlie reports whether the player reached six cards without
// busting, which is an automatic player win regardless of the dealer.
func IsPlayerCharlie(h Hand) bool {
	return len(h) >= maxHandCards && Evaluate(h).Total <= 21
}
