package protocol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func TestParseRoundTrip(t *testing.T) {
	frame := Build(MsgTypeRotation, []byte{0x08, 0x00, 0x09, 0x03})
	assert.Equal(t, byte(0x2A), frame[0])
	assert.Equal(t, byte(len(frame)-2), frame[1])

	msg, err := Parse(frame)
	require.NoError(t, err)
	assert.Equal(t, MsgTypeRotation, msg.Type)
	assert.Equal(t, []byte{0x08, 0x00, 0x09, 0x03}, msg.Payload)

	// Trailing bytes after the frame are ignored.
	msg, err = Parse(append(frame, 0xFF))
	require.NoError(t, err)
	assert.Len(t, msg.Payload, 4)
}

func TestParseRejects(t *testing.T) {
	good := Build(MsgTypeBattery, []byte{80})

	badPrefix := append([]byte(nil), good...)
	badPrefix[0] = 0x00
	badSum := append([]byte(nil), good...)
	badSum[len(badSum)-3]++
	badSuffix := append([]byte(nil), good...)
	badSuffix[len(badSuffix)-1] = 0x00

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short", good[:4], ErrMessageTooShort},
		{"prefix", badPrefix, ErrInvalidPrefix},
		{"truncated", good[:len(good)-1], ErrInvalidLength},
		{"checksum", badSum, ErrInvalidChecksum},
		{"suffix", badSuffix, ErrInvalidSuffix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildCommand(t *testing.T) {
	cmd := BuildCommand(CmdRequestBattery)
	assert.Equal(t, []byte{0x2A, 0x01, 0x32, 0x2A + 0x01 + 0x32, 0x0D, 0x0A}, cmd)
}

func TestDecodeRotation(t *testing.T) {
	events, err := DecodeRotation([]byte{0x04, 0x00, 0x0B, 0x06})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, nxcube.White, events[0].Color)
	assert.True(t, events[0].Clockwise)
	assert.Equal(t, nxcube.Orange, events[1].Color)
	assert.False(t, events[1].Clockwise)
	assert.Equal(t, byte(0x06), events[1].CenterOrientation)

	_, err = DecodeRotation([]byte{0x04})
	assert.ErrorIs(t, err, ErrInvalidPayload)
	_, err = DecodeRotation([]byte{0x0C, 0x00})
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDecodeMoves(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	// Red clockwise twice, then green counter-clockwise.
	msg, err := Parse(Build(MsgTypeRotation, []byte{0x08, 0x00, 0x08, 0x00, 0x03, 0x00}))
	require.NoError(t, err)
	moves, err := DecodeMoves(msg, nxcube.DefaultScheme, now)
	require.NoError(t, err)
	assert.Equal(t, "R2 F'", nxcube.FormatMoves(moves))
	assert.True(t, moves[0].Time.Equal(now))

	// A scheme with red in front sends red turns to F.
	scheme := nxcube.DefaultScheme
	scheme[nxcube.F], scheme[nxcube.R] = nxcube.Red, nxcube.Green
	moves, err = DecodeMoves(msg, scheme, now)
	require.NoError(t, err)
	assert.Equal(t, "F2 R'", nxcube.FormatMoves(moves))

	_, err = DecodeMoves(&Message{Type: MsgTypeBattery, Payload: []byte{1}}, nxcube.DefaultScheme, now)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDecodeOrientation(t *testing.T) {
	ev, err := DecodeOrientation([]byte("0#0#0#1000"))
	require.NoError(t, err)
	assert.Equal(t, nxcube.U, ev.UpFace)
	assert.Equal(t, nxcube.F, ev.FrontFace)

	// Half turn about x: up points down, front points back.
	ev, err = DecodeOrientation([]byte("1#0#0#0\x1f\r\n"))
	require.NoError(t, err)
	assert.Equal(t, nxcube.D, ev.UpFace)
	assert.Equal(t, nxcube.B, ev.FrontFace)

	_, err = DecodeOrientation([]byte("1#2#3"))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDecodeSmallPayloads(t *testing.T) {
	b, err := DecodeBattery([]byte{87})
	require.NoError(t, err)
	assert.Equal(t, 87, b.Level)
	_, err = DecodeBattery(nil)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	ct, err := DecodeCubeType([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, "edge", ct.TypeName)

	st, err := DecodeOfflineStats([]byte("120#300#4"))
	require.NoError(t, err)
	assert.Equal(t, OfflineStatsEvent{Moves: 120, Time: 300, Solves: 4}, *st)

	assert.Equal(t, "rotation", MessageTypeName(MsgTypeRotation))
	assert.Equal(t, "unknown_0x7F", MessageTypeName(0x7F))
}
