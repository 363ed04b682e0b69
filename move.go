package nxcube

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MoveKind tells which of the three rotations a Move performs.
type MoveKind int

const (
	FaceTurn     MoveKind = iota // outer layer of one face
	SliceTurn                    // inner layer around an axis
	CubeRotation                 // the whole cube around an axis
)

func (k MoveKind) String() string {
	switch k {
	case FaceTurn:
		return "face"
	case SliceTurn:
		return "slice"
	case CubeRotation:
		return "rotation"
	default:
		return "?"
	}
}

// Turn represents the direction and magnitude of a turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// AllSlices as a Move's Slice turns every inner slice of the axis at once.
const AllSlices = -1

// Move is a single rotation with an optional timestamp.
//
// Face applies to face turns. Axis applies to slice turns and cube
// rotations. Slice is the inner slice index of a slice turn, or AllSlices.
type Move struct {
	Kind  MoveKind
	Face  FaceName
	Axis  Axis
	Slice int
	Turn  Turn
	Time  time.Time
}

// FaceMove returns a turn of face f.
func FaceMove(f FaceName, t Turn) Move {
	return Move{Kind: FaceTurn, Face: f, Turn: t}
}

// SliceMove returns a turn of inner slice index around axis.
func SliceMove(axis Axis, index int, t Turn) Move {
	return Move{Kind: SliceTurn, Axis: axis, Slice: index, Turn: t}
}

// RotationMove returns a whole-cube rotation around axis.
func RotationMove(axis Axis, t Turn) Move {
	return Move{Kind: CubeRotation, Axis: axis, Turn: t}
}

// slice letters follow the axis reference faces: M turns like L, E like D,
// S like F.
var sliceLetters = [3]byte{AxisX: 'M', AxisY: 'E', AxisZ: 'S'}

// Notation returns the notation string for this move.
// Examples: R, R', R2, M, M[1]', E2, x, y'
func (m Move) Notation() string {
	var b strings.Builder
	switch m.Kind {
	case FaceTurn:
		b.WriteString(m.Face.String())
	case SliceTurn:
		if m.Axis.Valid() {
			b.WriteByte(sliceLetters[m.Axis])
		} else {
			b.WriteByte('?')
		}
		if m.Slice != AllSlices {
			b.WriteString("[" + strconv.Itoa(m.Slice) + "]")
		}
	case CubeRotation:
		b.WriteString(m.Axis.String())
	}
	switch m.Turn {
	case CCW:
		b.WriteByte('\'')
	case Double:
		b.WriteByte('2')
	}
	return b.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// WithTime returns a copy of the move with the specified timestamp.
func (m Move) WithTime(t time.Time) Move {
	m.Time = t
	return m
}

// SameLayer reports whether m and other turn the same layer the same way,
// so that their turns add up.
func (m Move) SameLayer(other Move) bool {
	if m.Kind != other.Kind {
		return false
	}
	switch m.Kind {
	case FaceTurn:
		return m.Face == other.Face
	case SliceTurn:
		return m.Axis == other.Axis && m.Slice == other.Slice
	default:
		return m.Axis == other.Axis
	}
}

// Merge combines two same-layer moves. It returns false when the moves
// cancel or do not share a layer.
func (m Move) Merge(other Move) (Move, bool) {
	if !m.SameLayer(other) {
		return Move{}, false
	}
	q := (int(m.Turn) + int(other.Turn) + 8) % 4
	merged := m
	merged.Time = other.Time
	switch q {
	case 1:
		merged.Turn = CW
	case 2:
		merged.Turn = Double
	case 3:
		merged.Turn = CCW
	default:
		return Move{}, false
	}
	return merged, true
}

// ParseMove parses a notation string into a Move.
// Examples: R, R', R2, M, M[1]', E2, x, y'
func ParseMove(s string) (Move, error) {
	tok := strings.TrimSpace(s)
	if tok == "" {
		return Move{}, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	var m Move
	rest := tok[1:]
	switch c := tok[0]; c {
	case 'R', 'L', 'U', 'D', 'F', 'B':
		f, _ := ParseFaceName(string(c))
		m = FaceMove(f, CW)
	case 'M', 'E', 'S':
		axis := AxisX
		switch c {
		case 'E':
			axis = AxisY
		case 'S':
			axis = AxisZ
		}
		m = SliceMove(axis, AllSlices, CW)
		if strings.HasPrefix(rest, "[") {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
			}
			idx, err := strconv.Atoi(rest[1:end])
			if err != nil || idx < 0 {
				return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
			}
			m.Slice = idx
			rest = rest[end+1:]
		}
	case 'x', 'y', 'z':
		m = RotationMove(Axis(c-'x'), CW)
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
	}

	switch rest {
	case "":
	case "'", "`":
		m.Turn = CCW
	case "2", "2'", "2`":
		m.Turn = Double
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, tok)
	}
	return m, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// MergeMoves combines adjacent same-layer moves and drops the ones that
// cancel, e.g. "R R" becomes "R2" and "U U'" disappears.
func MergeMoves(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].SameLayer(m) {
			if merged, ok := out[n-1].Merge(m); ok {
				out[n-1] = merged
			} else {
				out = out[:n-1]
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// Apply performs moves in order and stops at the first error.
func (c *Cube) Apply(moves ...Move) error {
	for _, m := range moves {
		if err := c.applyMove(m); err != nil {
			return fmt.Errorf("apply %s: %w", m, err)
		}
	}
	return nil
}

// ApplyNotation parses and applies a move sequence such as "R U R' U'".
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}

func (c *Cube) applyMove(m Move) error {
	switch m.Kind {
	case FaceTurn:
		return c.RotateFace(m.Face, int(m.Turn))
	case SliceTurn:
		if m.Slice != AllSlices {
			return c.RotateSlice(m.Axis, m.Slice, int(m.Turn))
		}
		return c.rotateInner(m.Axis, int(m.Turn))
	case CubeRotation:
		return c.Reorient(m.Axis, int(m.Turn))
	}
	return fmt.Errorf("%w: move kind %d", ErrInvalidNotation, m.Kind)
}

// rotateInner turns every inner slice of axis together.
func (c *Cube) rotateInner(axis Axis, turns int) error {
	if err := c.writable(); err != nil {
		return err
	}
	if !axis.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}
	if c.n < 3 {
		return fmt.Errorf("%w: a %dx%d cube has no inner slices", ErrSliceIndex, c.n, c.n)
	}
	q, err := quarters(turns)
	if err != nil {
		return err
	}
	for index := 0; index < c.n-2; index++ {
		for i := 0; i < q; i++ {
			c.quarterSlice(axis, index)
		}
	}
	c.logger.Debug("rotate inner slices", "axis", axis, "turns", turns)
	return c.finish()
}
