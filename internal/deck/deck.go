package deck

import (
	"errors"

	rand "math/rand/v2"
)

// ErrExhausted is returned by Draw when no cards remain.
var ErrExhausted = errors.New("deck exhausted")

// Deck represents an ordered deck of playing cards. Cards are drawn
// from the end of the slice, treating it as a stack.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck in canonical order with an
// explicit RNG for deterministic shuffling. The deck is not shuffled.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	return d
}

// NewShuffled creates a standard 52-card deck and shuffles it.
func NewShuffled(rng *rand.Rand) *Deck {
	d := New(rng)
	d.Shuffle()
	return d
}

// FromCards creates a deck containing exactly the given cards in
// stored order, so the last card is drawn first. Intended for tests
// that need scripted deals; the deck cannot be shuffled.
func FromCards(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Shuffle randomizes the order of the remaining cards using
// Fisher-Yates, so every permutation is equally likely.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card of the deck. It returns
// ErrExhausted when the deck is empty.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrExhausted
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards in draw order. Intended
// for tests and diagnostics; mutating the copy does not affect the deck.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
