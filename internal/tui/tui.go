package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jyarnell/blackjack-simulator/internal/game"
)

// Model is the Bubble Tea model for the blackjack table. It is a pure
// consumer of the engine: key presses become engine commands, and the
// view renders the snapshot taken after each command. All engine calls
// happen inside Update, so the single-consumer discipline holds.
type Model struct {
	engine *game.Engine
	logger *log.Logger

	snap    game.Snapshot
	gameLog []string

	logViewport viewport.Model

	autoTick time.Duration
	width    int
	height   int
	quitting bool
}

// autoPlayTickMsg drives one self-played step while auto-play is
// engaged. A fresh tick is only scheduled while the flag stays on, so
// disengaging is always observed before the next step fires.
type autoPlayTickMsg struct{}

// New creates a TUI model around an engine. autoTick paces the
// self-driven auto-play steps.
func New(engine *game.Engine, logger *log.Logger, autoTick time.Duration) *Model {
	if autoTick <= 0 {
		autoTick = 400 * time.Millisecond
	}
	vp := viewport.New(10, 5)
	vp.SetContent("")

	m := &Model{
		engine:      engine,
		logger:      logger.WithPrefix("tui"),
		snap:        engine.Snapshot(),
		logViewport: vp,
		autoTick:    autoTick,
		gameLog:     []string{"Welcome to the table. Press d to deal."},
	}
	engine.Events().Subscribe(m)
	return m
}

// OnEvent implements game.EventSubscriber; engine events become log
// lines. Events only fire during engine calls made from Update, so no
// locking is needed.
func (m *Model) OnEvent(event game.GameEvent) {
	switch ev := event.(type) {
	case game.RoundStartEvent:
		m.appendLog(fmt.Sprintf("— New round • wager $%d • dealer shows %s", ev.Wager, ev.DealerUp))
	case game.CardDrawnEvent:
		who := "You draw"
		if ev.ToDealer {
			who = "Dealer draws"
		}
		m.appendLog(fmt.Sprintf("%s %s (%s)", who, ev.Card, describeValue(ev.HandValue)))
	case game.RoundEndEvent:
		net := ev.Delta - m.snap.Wager
		switch ev.Outcome {
		case game.OutcomeWin:
			m.appendLog(WinStyle.Render(fmt.Sprintf("You win $%d — bankroll $%d", net, ev.Bankroll)))
		case game.OutcomeLoss:
			m.appendLog(LossStyle.Render(fmt.Sprintf("You lose $%d — bankroll $%d", -net, ev.Bankroll)))
		case game.OutcomePush:
			m.appendLog(PushStyle.Render(fmt.Sprintf("Push — bankroll $%d", ev.Bankroll)))
		}
	}
}

func describeValue(hv game.HandValue) string {
	if hv.Soft {
		return fmt.Sprintf("soft %d", hv.Total)
	}
	return fmt.Sprintf("%d", hv.Total)
}

func (m *Model) appendLog(line string) {
	m.gameLog = append(m.gameLog, line)
	if len(m.gameLog) > 200 {
		m.gameLog = m.gameLog[len(m.gameLog)-200:]
	}
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) scheduleAutoPlay() tea.Cmd {
	return tea.Tick(m.autoTick, func(time.Time) tea.Msg {
		return autoPlayTickMsg{}
	})
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = msg.Width - 4
		m.logViewport.Height = max(5, msg.Height-16)

	case autoPlayTickMsg:
		if !m.snap.AutoPlay {
			// Cancelled between ticks; the step must not fire.
			return m, nil
		}
		m.engine.Advance()
		m.snap = m.engine.Snapshot()
		if m.snap.AutoPlay {
			return m, m.scheduleAutoPlay()
		}
		m.appendLog(HelpStyle.Render("Auto-play stopped"))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case "d":
		m.engine.Deal()

	case "h":
		m.engine.Hit()

	case "s":
		m.engine.Stand()

	case "a":
		engaged := m.engine.ToggleAutoPlay()
		m.snap = m.engine.Snapshot()
		if engaged {
			return m, m.scheduleAutoPlay()
		}
		return m, nil

	case "+", "=":
		m.engine.SetWager(nextDenomination(m.snap.Denominations, m.snap.Wager, 1))

	case "-", "_":
		m.engine.SetWager(nextDenomination(m.snap.Denominations, m.snap.Wager, -1))

	case "r":
		m.engine.Reset()
		m.gameLog = m.gameLog[:0]
		m.appendLog("Table reset. Press d to deal.")
	}

	m.snap = m.engine.Snapshot()
	return m, nil
}

// nextDenomination steps the wager up or down through the configured
// chip set, clamping at the ends.
func nextDenomination(denoms []int, current, dir int) int {
	if len(denoms) == 0 {
		return current
	}
	i := slices.Index(denoms, current)
	if i < 0 {
		return denoms[0]
	}
	i += dir
	if i < 0 {
		i = 0
	}
	if i >= len(denoms) {
		i = len(denoms) - 1
	}
	return denoms[i]
}

// View renders the table
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.snap

	header := HeaderStyle.Render("♠ Blackjack")
	if s.AutoPlay {
		header += "  " + AutoPlayStyle.Render("AUTO-PLAY")
	}

	dealer := lipgloss.JoinVertical(lipgloss.Left,
		LabelStyle.Render("Dealer"),
		formatHand(s.DealerHand, s.HoleHidden)+"  "+formatValue(s.DealerHand, s.HoleHidden),
	)
	player := lipgloss.JoinVertical(lipgloss.Left,
		LabelStyle.Render("You"),
		formatHand(s.PlayerHand, false)+"  "+formatValue(s.PlayerHand, false),
	)
	table := TableStyle.Render(lipgloss.JoinVertical(lipgloss.Left, dealer, "", player))

	wallet := fmt.Sprintf("%s $%d   wager $%d   wagered $%d   points %d   deck %d",
		BankrollStyle.Render("bankroll"), s.Bankroll, s.Wager, s.Throughput, s.Points, s.DeckRemaining)

	status := StatusStyle.Render(s.Status)
	help := HelpStyle.Render("d deal • h hit • s stand • a auto-play • +/- wager • r reset • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		table,
		wallet,
		"",
		m.logViewport.View(),
		"",
		status,
		help,
	)
}
