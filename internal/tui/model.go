// Package tui is the interactive play screen: type moves, watch the net.
package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/render"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// recentMoves is how many moves the history line shows.
const recentMoves = 20

// MovesMsg delivers moves from outside the keyboard, such as a connected
// smart cube.
type MovesMsg struct {
	Moves []nxcube.Move
}

// StatusMsg replaces the status line.
type StatusMsg string

// Options configure the play screen.
type Options struct {
	Title          string
	ScrambleLength int
	Rand           *rand.Rand
	Renderer       *render.Renderer
	// ReadOnly hides the notation input and disables undo and scramble;
	// moves arrive only as MovesMsg. Reset stays available.
	ReadOnly bool
}

// Model is the Bubble Tea model for the play screen.
type Model struct {
	backend  Backend
	opts     Options
	input    textinput.Model
	help     help.Model
	keys     KeyMap
	moves    []nxcube.Move
	status   string
	err      error
	quitting bool
}

// New creates a play screen over backend.
func New(backend Backend, opts Options) Model {
	if opts.Title == "" {
		opts.Title = "nxcube"
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New(nil)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(rand.Int63()))
	}

	ti := textinput.New()
	ti.Placeholder = "R U R' U'"
	ti.Prompt = "> "
	ti.CharLimit = 256

	keys := DefaultKeyMap()
	if opts.ReadOnly {
		keys.Submit.SetEnabled(false)
		keys.Undo.SetEnabled(false)
		keys.Scramble.SetEnabled(false)
	} else {
		ti.Focus()
	}

	return Model{
		backend: backend,
		opts:    opts,
		input:   ti,
		help:    help.New(),
		keys:    keys,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.opts.ReadOnly {
		return nil
	}
	return textinput.Blink
}

// Update handles messages for the play screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			m.submit(m.input.Value())
			return m, nil

		case key.Matches(msg, m.keys.Undo):
			m.undo()
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			m.err = m.backend.Reset()
			if m.err == nil {
				m.moves = nil
				m.status = "reset"
			}
			return m, nil

		case key.Matches(msg, m.keys.Scramble):
			m.scramble()
			return m, nil
		}

	case MovesMsg:
		m.apply(msg.Moves)
		return m, nil

	case StatusMsg:
		m.status = string(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	if m.opts.ReadOnly {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(text string) {
	moves, err := nxcube.ParseMoves(text)
	if err != nil {
		m.err = err
		return
	}
	if m.apply(moves) {
		m.input.Reset()
	}
}

// apply plays moves one at a time so a rejected move keeps the ones before
// it.
func (m *Model) apply(moves []nxcube.Move) bool {
	m.err = nil
	for _, mv := range moves {
		if err := m.backend.Apply(mv); err != nil {
			m.err = err
			return false
		}
		m.moves = append(m.moves, mv)
	}
	if len(moves) > 0 {
		m.status = ""
	}
	return true
}

func (m *Model) undo() {
	if len(m.moves) == 0 {
		m.status = "nothing to undo"
		return
	}
	last := m.moves[len(m.moves)-1]
	if err := m.backend.Apply(last.Inverse()); err != nil {
		m.err = err
		return
	}
	m.moves = m.moves[:len(m.moves)-1]
	m.err = nil
	m.status = "undid " + last.String()
}

func (m *Model) scramble() {
	c := m.backend.Cube()
	if c == nil {
		return
	}
	moves := nxcube.Scramble(m.opts.Rand, c.Size(), m.opts.ScrambleLength)
	if m.apply(moves) {
		m.status = "scrambled: " + nxcube.FormatMoves(moves)
	}
}

// Moves returns the moves played from this screen.
func (m Model) Moves() []nxcube.Move {
	out := make([]nxcube.Move, len(m.moves))
	copy(out, m.moves)
	return out
}

// Err returns the last error shown on screen.
func (m Model) Err() error {
	return m.err
}

// View renders the play screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.opts.Title))
	b.WriteString("\n\n")

	c := m.backend.Cube()
	if c != nil {
		b.WriteString(m.opts.Renderer.Net(c))
		b.WriteString("\n")

		phase := c.DetectPhase()
		if phase.IsComplete() {
			b.WriteString(fmt.Sprintf("Cube State: %s\n", phaseStyle.Render("SOLVED!")))
		} else {
			b.WriteString(fmt.Sprintf("Phase: %s\n", phaseStyle.Render(phase.DisplayName())))
		}
		b.WriteString(statusStyle.Render(fmt.Sprintf("%dx%d  Moves: %d", c.Size(), c.Size(), len(m.moves))))
		b.WriteString("\n")
	}

	if len(m.moves) > 0 {
		start := 0
		if len(m.moves) > recentMoves {
			start = len(m.moves) - recentMoves
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(nxcube.FormatMoves(m.moves[start:])))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if !m.opts.ReadOnly {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
