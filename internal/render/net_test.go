package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func TestPlainNetMatchesCubeString(t *testing.T) {
	for _, n := range []int{2, 3, 5} {
		c, err := nxcube.New(n)
		require.NoError(t, err)
		require.NoError(t, c.ApplyNotation("R U' F2"))

		var want []string
		for _, line := range strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n") {
			want = append(want, strings.TrimRight(line, " "))
		}
		got := strings.Split(strings.TrimSuffix(Plain().Net(c), "\n"), "\n")
		assert.Equal(t, want, got, "%dx%d", n, n)
		assert.Len(t, got, 3*n)
	}
}

func withColorProfile(t *testing.T, p termenv.Profile) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(p)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestStyledNetHasOneCellPerFacelet(t *testing.T) {
	withColorProfile(t, termenv.ANSI256)
	c, err := nxcube.New(3)
	require.NoError(t, err)
	r := New(nil)

	net := r.Net(c)
	lines := strings.Split(strings.TrimSuffix(net, "\n"), "\n")
	require.Len(t, lines, 9)
	// The middle band holds four faces.
	assert.Equal(t, 4*3*2, lipgloss.Width(lines[4]))
	assert.Equal(t, 2*3*2, lipgloss.Width(lines[0]))
}

func TestStyledNetWithoutColorFallsBackToLetters(t *testing.T) {
	withColorProfile(t, termenv.Ascii)
	c, err := nxcube.New(3)
	require.NoError(t, err)
	require.NoError(t, c.ApplyNotation("R U"))

	net := New(nil).Net(c)
	assert.NotEmpty(t, strings.TrimSpace(net))
	assert.Equal(t, Plain().Net(c), net)
}

func TestFaceBlock(t *testing.T) {
	c, err := nxcube.New(4)
	require.NoError(t, err)
	block := Plain().Face(c, nxcube.F)
	assert.Equal(t, strings.Repeat("G G G G \n", 3)+"G G G G ", block)
}
