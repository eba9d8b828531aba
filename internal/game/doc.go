// Package game implements the core blackjack logic: hand valuation
// with soft-ace handling, the dealer draw policy, the auto-play
// strategy table, settlement, and the Engine state machine that owns
// bankroll, wager and deck across rounds.
//
// # Basic Usage
//
// Create an engine and play a round:
//
//	e := game.NewEngine(game.Options{Logger: logger})
//	e.Deal()
//	e.Hit()
//	e.Stand()
//	snap := e.Snapshot()
//
// # Deterministic Testing
//
// For deterministic play, inject a seeded RNG:
//
//	rng := randutil.New(42)
//	e := game.NewEngine(game.Options{RNG: rng})
//
// The dealer draw loop and auto-play pace themselves through an
// injected quartz.Clock; tests use quartz.NewMock and a zero step
// delay to run instantly.
//
// # Architecture
//
// The Engine delegates to small pure components:
//   - Evaluate: hand totals and soft/hard classification
//   - DealerShouldDraw: the dealer's fixed draw-or-stop rule
//   - ShouldHit: the auto-play decision table
//   - Settle: outcome and payout computation
//   - deck.Deck: shuffled cards with RNG injection
//
// The UI layer never mutates game state directly; it issues commands
// and reads Snapshot values or subscribes to the event bus.
package game
