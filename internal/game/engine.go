package game

import (
	"fmt"
	"slices"
	"time"

	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/jyarnell/blackjack-simulator/internal/deck"
	"github.com/jyarnell/blackjack-simulator/internal/randutil"
)

// Phase is the round state machine phase
type Phase int

const (
	Betting Phase = iota
	PlayerTurn
	DealerTurn
	Result
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case Betting:
		return "betting"
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	case Result:
		return "result"
	default:
		return "unknown"
	}
}

// Default table parameters, overridable via Options.
const (
	DefaultBankroll = 1000
	DefaultWager    = 10
)

// DefaultDenominations is the chip set a wager may be changed to.
var DefaultDenominations = []int{5, 10, 25, 50, 100}

// Options configures a new Engine. Zero values fall back to table
// defaults, a time-seeded RNG and a real clock.
type Options struct {
	Bankroll      int
	Wager         int
	Denominations []int
	StepDelay     time.Duration // pacing between dealer draws; zero runs instantly
	Clock         quartz.Clock
	RNG           *rand.Rand
	Logger        *log.Logger

	// NewDeck builds the deck for each round. Defaults to a freshly
	// shuffled 52-card deck; tests override it to script exact deals.
	NewDeck func(*rand.Rand) *deck.Deck
}

// Engine owns all mutable game state for one blackjack table: phase,
// bankroll, wager, deck and both hands. Exactly one consumer drives it
// at a time; invalid-phase commands are ignored rather than erroring,
// matching a UI with disabled buttons.
type Engine struct {
	phase            Phase
	bankroll         int
	startingBankroll int
	wager            int
	defaultWager     int
	denominations    []int
	throughput       int

	deck        *deck.Deck
	playerHand  Hand
	dealerHand  Hand
	lastOutcome Outcome
	playerFinal int
	dealerFinal int

	autoPlay bool
	status   string

	stepDelay time.Duration
	clock     quartz.Clock
	rng       *rand.Rand
	newDeck   func(*rand.Rand) *deck.Deck
	logger    *log.Logger
	events    EventBus
}

// NewEngine creates an engine at the betting phase with an empty deck
// and hands.
func NewEngine(opts Options) *Engine {
	if opts.Bankroll <= 0 {
		opts.Bankroll = DefaultBankroll
	}
	if opts.Wager <= 0 {
		opts.Wager = DefaultWager
	}
	if len(opts.Denominations) == 0 {
		opts.Denominations = DefaultDenominations
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.RNG == nil {
		opts.RNG = randutil.NewFromTime()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.NewDeck == nil {
		opts.NewDeck = deck.NewShuffled
	}

	denoms := make([]int, len(opts.Denominations))
	copy(denoms, opts.Denominations)
	slices.Sort(denoms)

	return &Engine{
		phase:            Betting,
		bankroll:         opts.Bankroll,
		startingBankroll: opts.Bankroll,
		wager:            opts.Wager,
		defaultWager:     opts.Wager,
		denominations:    denoms,
		stepDelay:        opts.StepDelay,
		clock:            opts.Clock,
		rng:              opts.RNG,
		newDeck:          opts.NewDeck,
		logger:           opts.Logger.WithPrefix("engine"),
		events:           NewEventBus(),
		status:           "Place your bet",
	}
}

// Events returns the event bus for subscribing to game events
func (e *Engine) Events() EventBus {
	return e.events
}

// Deal starts a new round. Valid from the betting and result phases;
// it debits the wager, shuffles a fresh deck, deals two cards each and
// resolves natural blackjacks on the spot. With insufficient funds the
// deal is rejected, nothing changes, and auto-play disengages so it
// cannot spin on a bet it can never cover.
func (e *Engine) Deal() {
	if e.phase != Betting && e.phase != Result {
		e.logger.Debug("Ignoring deal outside betting/result", "phase", e.phase)
		return
	}
	if e.bankroll < e.wager {
		e.logger.Info("Deal rejected, insufficient funds", "bankroll", e.bankroll, "wager", e.wager)
		if e.autoPlay {
			e.autoPlay = false
		}
		e.setStatus(fmt.Sprintf("Insufficient funds: bankroll $%d, wager $%d", e.bankroll, e.wager))
		return
	}

	e.bankroll -= e.wager
	e.throughput += e.wager
	e.deck = e.newDeck(e.rng)
	e.playerHand = nil
	e.dealerHand = nil
	e.lastOutcome = OutcomeNone
	e.playerFinal = 0
	e.dealerFinal = 0

	// Alternating deal order, player first.
	for i := 0; i < 2; i++ {
		if _, err := e.drawTo(&e.playerHand, false); err != nil {
			return
		}
		if _, err := e.drawTo(&e.dealerHand, true); err != nil {
			return
		}
	}

	e.logger.Debug("Dealt round",
		"player", e.playerHand.String(),
		"dealerUp", e.dealerHand[0].String(),
		"wager", e.wager,
		"bankroll", e.bankroll)
	e.events.Publish(NewRoundStartEvent(e.wager, e.bankroll, e.playerHand, e.dealerHand[0]))

	if outcome, delta := SettleNaturals(e.playerHand, e.dealerHand, e.wager); outcome != OutcomeNone {
		e.resolve(outcome, delta)
		return
	}

	e.setPhase(PlayerTurn)
	e.setStatus("Your turn: hit or stand")
}

// Hit draws one card into the player hand. Valid only during the
// player turn, and ignored while auto-play is driving the table.
func (e *Engine) Hit() {
	if e.autoPlay {
		e.logger.Debug("Ignoring manual hit while auto-play engaged")
		return
	}
	e.hit()
}

func (e *Engine) hit() {
	if e.phase != PlayerTurn {
		e.logger.Debug("Ignoring hit outside player turn", "phase", e.phase)
		return
	}

	card, err := e.drawTo(&e.playerHand, false)
	if err != nil {
		// Nothing left to draw for either side; settle as things stand.
		e.haltOnExhaustion()
		return
	}

	hv := Evaluate(e.playerHand)
	e.logger.Debug("Player hit", "card", card.String(), "total", hv.Total, "soft", hv.Soft)

	switch {
	case IsPlayerCharlie(e.playerHand):
		e.resolve(OutcomeWin, 2*e.wager)
	case hv.Total > 21:
		e.resolve(OutcomeLoss, 0)
	}
}

// Stand ends the player turn and runs the dealer. Valid only during
// the player turn, and ignored while auto-play is driving the table.
func (e *Engine) Stand() {
	if e.autoPlay {
		e.logger.Debug("Ignoring manual stand while auto-play engaged")
		return
	}
	e.stand()
}

func (e *Engine) stand() {
	if e.phase != PlayerTurn {
		e.logger.Debug("Ignoring stand outside player turn", "phase", e.phase)
		return
	}
	e.setPhase(DealerTurn)
	e.runDealer()
}

// runDealer draws for the dealer until it stands, busts or hits the
// six-card limit, pausing between draws for pacing. The 6-card Charlie
// loss is resolved here directly; Settle carries a matching rule as a
// safety net and both pay the same.
func (e *Engine) runDealer() {
	for DealerShouldDraw(e.dealerHand) {
		e.pause()
		card, err := e.drawTo(&e.dealerHand, true)
		if err != nil {
			e.haltOnExhaustion()
			return
		}
		e.logger.Debug("Dealer draws", "card", card.String(), "total", Evaluate(e.dealerHand).Total)
	}

	if IsDealerCharlie(e.dealerHand) {
		e.resolve(OutcomeWin, 2*e.wager)
		return
	}

	outcome, delta := Settle(e.playerHand, e.dealerHand, e.wager)
	e.resolve(outcome, delta)
}

// SetWager changes the wager to one of the configured denominations.
// Accepted only between rounds, i.e. in the betting or result phase.
func (e *Engine) SetWager(amount int) {
	if e.phase != Betting && e.phase != Result {
		e.logger.Debug("Ignoring wager change mid-round", "phase", e.phase)
		return
	}
	if !slices.Contains(e.denominations, amount) {
		e.logger.Debug("Ignoring wager outside denominations", "amount", amount)
		return
	}
	e.wager = amount
	e.setStatus(fmt.Sprintf("Wager set to $%d", amount))
}

// ToggleAutoPlay flips the auto-play flag. Engaging it does not act by
// itself; the caller drives self-play one step at a time via Advance,
// which re-checks the flag before every step so disengaging always
// lands before the next scheduled action.
func (e *Engine) ToggleAutoPlay() bool {
	e.autoPlay = !e.autoPlay
	if e.autoPlay {
		e.setStatus("Auto-play engaged")
	} else {
		e.setStatus("Auto-play disengaged")
	}
	e.logger.Info("Auto-play toggled", "engaged", e.autoPlay)
	return e.autoPlay
}

// Advance performs the next self-driven action when auto-play is
// engaged: dealing from betting/result, or applying the strategy table
// during the player turn. It returns true while auto-play remains
// engaged and has more to do; pacing between calls is the caller's
// concern.
func (e *Engine) Advance() bool {
	if !e.autoPlay {
		return false
	}

	switch e.phase {
	case Betting, Result:
		e.Deal()
	case PlayerTurn:
		if ShouldHit(e.playerHand, e.dealerHand[0]) {
			e.hit()
		} else {
			e.stand()
		}
	}

	return e.autoPlay
}

// Reset returns the table to its initial state: betting phase,
// starting bankroll, default wager, empty hands, zero throughput and
// auto-play disengaged.
func (e *Engine) Reset() {
	e.phase = Betting
	e.bankroll = e.startingBankroll
	e.wager = e.defaultWager
	e.throughput = 0
	e.deck = nil
	e.playerHand = nil
	e.dealerHand = nil
	e.lastOutcome = OutcomeNone
	e.playerFinal = 0
	e.dealerFinal = 0
	e.autoPlay = false
	e.setStatus("Place your bet")
	e.logger.Info("Table reset", "bankroll", e.bankroll)
}

// drawTo draws one card into the given hand and publishes the event.
// On exhaustion the hand is left untouched and ErrExhausted returned.
func (e *Engine) drawTo(hand *Hand, toDealer bool) (deck.Card, error) {
	card, err := e.deck.Draw()
	if err != nil {
		return deck.Card{}, err
	}
	*hand = append(*hand, card)
	e.events.Publish(NewCardDrawnEvent(card, toDealer, Evaluate(*hand)))
	return card, nil
}

// haltOnExhaustion stops all drawing and settles with the cards on the
// table. Should not happen under 52-card/6-card-max play, but the
// engine must stay in a valid resumable state if it does.
func (e *Engine) haltOnExhaustion() {
	e.logger.Warn("Deck exhausted mid-round, settling as dealt")
	if e.autoPlay {
		e.autoPlay = false
	}
	outcome, delta := Settle(e.playerHand, e.dealerHand, e.wager)
	e.resolve(outcome, delta)
	e.setStatus("Deck exhausted; round settled with cards as dealt")
}

// resolve finishes the round: credits the payout, records final
// totals and moves to the result phase.
func (e *Engine) resolve(outcome Outcome, delta int) {
	e.bankroll += delta
	e.lastOutcome = outcome
	e.playerFinal = Evaluate(e.playerHand).Total
	e.dealerFinal = Evaluate(e.dealerHand).Total
	e.setPhase(Result)

	switch outcome {
	case OutcomeWin:
		e.setStatus(fmt.Sprintf("You win $%d (you %d, dealer %d)", delta-e.wager, e.playerFinal, e.dealerFinal))
	case OutcomeLoss:
		e.setStatus(fmt.Sprintf("You lose $%d (you %d, dealer %d)", e.wager, e.playerFinal, e.dealerFinal))
	case OutcomePush:
		e.setStatus(fmt.Sprintf("Push at %d; wager returned", e.playerFinal))
	}

	e.logger.Info("Round settled",
		"outcome", outcome,
		"delta", delta,
		"bankroll", e.bankroll,
		"player", e.playerFinal,
		"dealer", e.dealerFinal)
	e.events.Publish(NewRoundEndEvent(outcome, delta, e.bankroll, e.playerFinal, e.dealerFinal))
}

func (e *Engine) setPhase(p Phase) {
	if p == e.phase {
		return
	}
	from := e.phase
	e.phase = p
	e.events.Publish(NewPhaseChangeEvent(from, p))
}

func (e *Engine) setStatus(msg string) {
	e.status = msg
	e.events.Publish(NewStatusEvent(msg))
}

// pause blocks for the configured pacing delay on the injected clock.
// A zero delay returns immediately, so tests and the headless
// simulator run at full speed.
func (e *Engine) pause() {
	if e.stepDelay <= 0 {
		return
	}
	done := make(chan struct{})
	t := e.clock.AfterFunc(e.stepDelay, func() { close(done) })
	defer t.Stop()
	<-done
}
