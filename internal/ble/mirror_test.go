package ble

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/protocol"
)

func TestMirrorFollowsEngineOrientation(t *testing.T) {
	c, err := nxcube.New(3)
	require.NoError(t, err)

	var got []nxcube.Move
	m := NewMirror(log.New(io.Discard), func() nxcube.Scheme { return CubeScheme(c) }, func(moves []nxcube.Move) {
		require.NoError(t, c.Apply(moves...))
		got = append(got, moves...)
	})
	m.now = func() time.Time { return time.UnixMilli(42) }

	// White clockwise.
	white, err := protocol.Parse(protocol.Build(protocol.MsgTypeRotation, []byte{0x04, 0x00}))
	require.NoError(t, err)
	m.Handle(white)
	require.Len(t, got, 1)
	assert.Equal(t, "U", got[0].Notation())

	// After x the white center sits on B, so the same message is a B turn.
	require.NoError(t, c.Apply(nxcube.MoveX))
	m.Handle(white)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[1].Notation())
	assert.Equal(t, int64(42), got[1].Time.UnixMilli())
}

func TestMirrorBatteryAndNoise(t *testing.T) {
	level := -1
	var moves int
	m := NewMirror(log.New(io.Discard), func() nxcube.Scheme { return nxcube.DefaultScheme }, func(ms []nxcube.Move) { moves += len(ms) })
	m.OnBattery(func(l int) { level = l })

	m.Handle(&protocol.Message{Type: protocol.MsgTypeBattery, Payload: []byte{64}})
	assert.Equal(t, 64, level)

	m.Handle(&protocol.Message{Type: protocol.MsgTypeRotation, Payload: []byte{0x0F, 0x00}})
	m.Handle(&protocol.Message{Type: protocol.MsgTypeCubeType, Payload: []byte{0x00}})
	assert.Zero(t, moves)
}
