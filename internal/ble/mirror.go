package ble

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/protocol"
)

// Handler receives the moves decoded from one rotation notification.
type Handler func([]nxcube.Move)

// SchemeFunc returns the current color to face assignment. A mirror asks
// for it on every notification, so whole-cube rotations on the engine side
// keep the mapping right.
type SchemeFunc func() nxcube.Scheme

// Mirror turns GoCube notifications into engine moves.
type Mirror struct {
	logger    *log.Logger
	scheme    SchemeFunc
	onMoves   Handler
	onBattery func(int)
	now       func() time.Time
}

// NewMirror creates a mirror that reports moves to onMoves.
func NewMirror(logger *log.Logger, scheme SchemeFunc, onMoves Handler) *Mirror {
	return &Mirror{
		logger:  logger,
		scheme:  scheme,
		onMoves: onMoves,
		now:     time.Now,
	}
}

// OnBattery sets a callback for battery level updates.
func (m *Mirror) OnBattery(cb func(int)) {
	m.onBattery = cb
}

// Attach routes the client's notifications through the mirror.
func (m *Mirror) Attach(c *Client) {
	c.SetMessageCallback(m.Handle)
}

// Handle processes one parsed notification.
func (m *Mirror) Handle(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgTypeRotation:
		moves, err := protocol.DecodeMoves(msg, m.scheme(), m.now())
		if err != nil {
			m.logger.Warn("bad rotation", "error", err)
			return
		}
		if len(moves) > 0 && m.onMoves != nil {
			m.onMoves(moves)
		}

	case protocol.MsgTypeBattery:
		b, err := protocol.DecodeBattery(msg.Payload)
		if err != nil {
			return
		}
		if m.onBattery != nil {
			m.onBattery(b.Level)
		}

	default:
		m.logger.Debug("ignored message", "type", protocol.MessageTypeName(msg.Type))
	}
}

// CubeScheme reads the scheme from a cube's current face colors.
func CubeScheme(c *nxcube.Cube) nxcube.Scheme {
	var s nxcube.Scheme
	for _, f := range nxcube.FaceNames {
		s[f] = c.FaceColor(f)
	}
	return s
}
