package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/render"
)

func newTestModel(t *testing.T, n int) (Model, *LocalBackend) {
	t.Helper()
	b, err := NewLocalBackend(n)
	require.NoError(t, err)
	m := New(b, Options{
		ScrambleLength: 12,
		Rand:           rand.New(rand.NewSource(9)),
		Renderer:       render.Plain(),
	})
	return m, b
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeMoves(t *testing.T, m Model, text string) Model {
	t.Helper()
	m.input.SetValue(text)
	return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSubmitAppliesNotation(t *testing.T) {
	m, b := newTestModel(t, 3)
	m = typeMoves(t, m, "R U R' U'")
	require.NoError(t, m.Err())
	assert.Equal(t, "R U R' U'", nxcube.FormatMoves(m.Moves()))
	assert.False(t, b.Cube().IsSolved())
	assert.Empty(t, m.input.Value(), "input clears after a good submit")
	assert.Contains(t, m.View(), "Moves: 4")
}

func TestSubmitShowsEngineErrors(t *testing.T) {
	m, _ := newTestModel(t, 3)

	m = typeMoves(t, m, "R Q")
	assert.ErrorIs(t, m.Err(), nxcube.ErrInvalidNotation)
	assert.Empty(t, m.Moves(), "a bad token rejects the whole line")

	// M[1] is valid notation but a 3x3 has only slice 0.
	m = typeMoves(t, m, "U M[1]")
	assert.ErrorIs(t, m.Err(), nxcube.ErrSliceIndex)
	assert.Equal(t, "U", nxcube.FormatMoves(m.Moves()))
	assert.Equal(t, "U M[1]", m.input.Value())
	assert.Contains(t, m.View(), "Error:")
}

func TestUndoAndReset(t *testing.T) {
	m, b := newTestModel(t, 4)
	m = typeMoves(t, m, "R M[1] x")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "R", nxcube.FormatMoves(m.Moves()))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.True(t, b.Cube().IsSolved())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Contains(t, m.View(), "nothing to undo")

	m = typeMoves(t, m, "F2")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Empty(t, m.Moves())
	assert.True(t, b.Cube().IsSolved())
}

func TestScrambleAndExternalMoves(t *testing.T) {
	m, b := newTestModel(t, 3)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Len(t, m.Moves(), 12)
	assert.False(t, b.Cube().IsSolved())

	m = update(t, m, MovesMsg{Moves: nxcube.InvertMoves(m.Moves())})
	assert.True(t, b.Cube().IsSolved())
	assert.Contains(t, m.View(), "SOLVED!")

	m = update(t, m, StatusMsg("connected"))
	assert.True(t, strings.Contains(m.View(), "connected"))
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, 2)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Empty(t, next.(Model).View())
}

func TestReadOnlyIgnoresKeyboardMoves(t *testing.T) {
	b, err := NewLocalBackend(3)
	require.NoError(t, err)
	m := New(b, Options{Renderer: render.Plain(), ReadOnly: true})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Empty(t, m.Moves(), "scramble is disabled")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("R")})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.Moves())
	assert.NotContains(t, m.View(), "> ")

	m = update(t, m, MovesMsg{Moves: []nxcube.Move{nxcube.MoveF}})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Len(t, m.Moves(), 1, "undo is disabled")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Empty(t, m.Moves())
	assert.True(t, b.Cube().IsSolved())
}
