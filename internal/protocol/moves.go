package protocol

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/nxcube"
)

// RotationToMove converts a GoCube rotation to a face turn. The GoCube
// names faces by center color, so scheme decides which face turned.
func RotationToMove(rot RotationEvent, scheme nxcube.Scheme, t time.Time) (nxcube.Move, error) {
	face, ok := scheme.FaceOf(rot.Color)
	if !ok {
		return nxcube.Move{}, fmt.Errorf("%w: no face is %s", ErrInvalidPayload, rot.Color.Name())
	}

	turn := nxcube.CCW
	if rot.Clockwise {
		turn = nxcube.CW
	}
	return nxcube.FaceMove(face, turn).WithTime(t), nil
}

// RotationsToMoves converts the rotations of one notification to moves,
// merging adjacent turns of the same face (R R becomes R2).
func RotationsToMoves(rotations []RotationEvent, scheme nxcube.Scheme, t time.Time) ([]nxcube.Move, error) {
	if len(rotations) == 0 {
		return nil, nil
	}

	moves := make([]nxcube.Move, 0, len(rotations))
	for _, rot := range rotations {
		m, err := RotationToMove(rot, scheme, t)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return nxcube.MergeMoves(moves), nil
}

// DecodeMoves parses a rotation message straight into moves.
func DecodeMoves(msg *Message, scheme nxcube.Scheme, t time.Time) ([]nxcube.Move, error) {
	if msg.Type != MsgTypeRotation {
		return nil, fmt.Errorf("%w: %s message carries no moves", ErrInvalidPayload, MessageTypeName(msg.Type))
	}
	rotations, err := DecodeRotation(msg.Payload)
	if err != nil {
		return nil, err
	}
	return RotationsToMoves(rotations, scheme, t)
}
