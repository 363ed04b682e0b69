package nxcube

import "fmt"

// StripKind says whether a slice turn reads a row or a column of a face.
type StripKind int

const (
	StripRow    StripKind = 0
	StripColumn StripKind = 1
)

func (k StripKind) String() string {
	if k == StripRow {
		return "row"
	}
	return "column"
}

func checkPair(a, b FaceName) error {
	if !a.Valid() || !b.Valid() {
		return fmt.Errorf("%w: %d, %d", ErrInvalidFace, a, b)
	}
	if topology.sideOf[a][b] == noSide {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
	}
	return nil
}

// Agrees reports whether the local indices of a and b run the same way
// along the edge they share. The result is symmetric.
func Agrees(a, b FaceName) (bool, error) {
	if err := checkPair(a, b); err != nil {
		return false, err
	}
	return topology.agrees[a][b], nil
}

// TranslateIndex converts an index along the edge a shares with b, counted
// in a's frame, to the same position counted in b's frame. n is the number
// of positions along the edge.
func TranslateIndex(a, b FaceName, index, n int) (int, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}
	if index < 0 || index >= n {
		return 0, fmt.Errorf("%w: index %d of %d", ErrOutOfBounds, index, n)
	}
	return translate(a, b, index, n), nil
}

// translate is TranslateIndex for pairs already known to be adjacent.
func translate(a, b FaceName, index, n int) int {
	if topology.agrees[a][b] {
		return index
	}
	return n - 1 - index
}

// SharedSide returns the side of a that borders b.
func SharedSide(a, b FaceName) (Side, error) {
	if err := checkPair(a, b); err != nil {
		return noSide, err
	}
	return topology.sideOf[a][b], nil
}

// Neighbor returns the face across side s of f.
func Neighbor(f FaceName, s Side) FaceName {
	return topology.neighbor[f][s]
}

// AxisEdge reports whether the border face shares with the reference face
// of axis is a row edge or a column edge. It decides whether a slice turn
// around axis moves a row or a column of face.
func AxisEdge(axis Axis, face FaceName) (StripKind, error) {
	if !axis.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}
	s, err := SharedSide(face, axis.Reference())
	if err != nil {
		return 0, err
	}
	if s == Top || s == Bottom {
		return StripRow, nil
	}
	return StripColumn, nil
}
