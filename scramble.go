package nxcube

import (
	"fmt"
	"math/rand"
)

var scrambleTurns = [3]Turn{CW, CCW, Double}

// Scramble returns length random moves for an n×n cube. Layers are picked
// among the outer faces and, from 4×4 up, the single inner slices; two
// consecutive moves never share an axis, so nothing cancels or merges.
// A 3×3 scramble uses face turns only. A negative length yields no moves.
func Scramble(rng *rand.Rand, n, length int) []Move {
	if length < 0 {
		length = 0
	}
	moves := make([]Move, 0, length)
	last := Axis(-1)
	for len(moves) < length {
		axis := Axes[rng.Intn(len(Axes))]
		if axis == last {
			continue
		}
		last = axis
		turn := scrambleTurns[rng.Intn(len(scrambleTurns))]

		layers := 2
		if n > 3 {
			layers += n - 2
		}
		switch layer := rng.Intn(layers); layer {
		case 0:
			moves = append(moves, FaceMove(axis.Positive(), turn))
		case 1:
			moves = append(moves, FaceMove(axis.Positive().Opposite(), turn))
		default:
			moves = append(moves, SliceMove(axis, layer-2, turn))
		}
	}
	return moves
}

// Scramble applies a random sequence of length moves to the cube and
// returns it.
func (c *Cube) Scramble(rng *rand.Rand, length int) ([]Move, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	moves := Scramble(rng, c.n, length)
	if err := c.Apply(moves...); err != nil {
		return nil, err
	}
	return moves, nil
}
