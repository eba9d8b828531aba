package game

import (
	"time"

	"github.com/jyarnell/blackjack-simulator/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeRoundStart  EventType = "round_start"
	EventTypeCardDrawn   EventType = "card_drawn"
	EventTypePhaseChange EventType = "phase_change"
	EventTypeRoundEnd    EventType = "round_end"
	EventTypeStatus      EventType = "status"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during play
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// EventSubscriber receives game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// RoundStartEvent is published when a new round is dealt
type RoundStartEvent struct {
	Wager      int
	Bankroll   int
	PlayerHand Hand
	DealerUp   deck.Card
	timestamp  time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(wager, bankroll int, playerHand Hand, dealerUp deck.Card) RoundStartEvent {
	hand := make(Hand, len(playerHand))
	copy(hand, playerHand)
	return RoundStartEvent{
		Wager:      wager,
		Bankroll:   bankroll,
		PlayerHand: hand,
		DealerUp:   dealerUp,
		timestamp:  time.Now(),
	}
}

// CardDrawnEvent is published each time a card lands in a hand
type CardDrawnEvent struct {
	Card      deck.Card
	ToDealer  bool
	HandValue HandValue
	timestamp time.Time
}

func (e CardDrawnEvent) EventType() EventType { return EventTypeCardDrawn }
func (e CardDrawnEvent) Timestamp() time.Time { return e.timestamp }

// NewCardDrawnEvent creates a new card drawn event
func NewCardDrawnEvent(card deck.Card, toDealer bool, hv HandValue) CardDrawnEvent {
	return CardDrawnEvent{Card: card, ToDealer: toDealer, HandValue: hv, timestamp: time.Now()}
}

// PhaseChangeEvent is published when the round state machine moves
type PhaseChangeEvent struct {
	From      Phase
	To        Phase
	timestamp time.Time
}

func (e PhaseChangeEvent) EventType() EventType { return EventTypePhaseChange }
func (e PhaseChangeEvent) Timestamp() time.Time { return e.timestamp }

// NewPhaseChangeEvent creates a new phase change event
func NewPhaseChangeEvent(from, to Phase) PhaseChangeEvent {
	return PhaseChangeEvent{From: from, To: to, timestamp: time.Now()}
}

// RoundEndEvent is published when a round settles
type RoundEndEvent struct {
	Outcome     Outcome
	Delta       int
	Bankroll    int
	PlayerTotal int
	DealerTotal int
	timestamp   time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(outcome Outcome, delta, bankroll, playerTotal, dealerTotal int) RoundEndEvent {
	return RoundEndEvent{
		Outcome:     outcome,
		Delta:       delta,
		Bankroll:    bankroll,
		PlayerTotal: playerTotal,
		DealerTotal: dealerTotal,
		timestamp:   time.Now(),
	}
}

// StatusEvent carries a human-readable status message
type StatusEvent struct {
	Message   string
	timestamp time.Time
}

func (e StatusEvent) EventType() EventType { return EventTypeStatus }
func (e StatusEvent) Timestamp() time.Time { return e.timestamp }

// NewStatusEvent creates a new status event
func NewStatusEvent(message string) StatusEvent {
	return StatusEvent{Message: message, timestamp: time.Now()}
}

// EventBus delivers game events to subscribers
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
