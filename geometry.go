package nxcube

import (
	"fmt"
	"strings"
)

// FaceName identifies one of the six faces.
type FaceName int

const (
	U FaceName = 0 // Up
	D FaceName = 1 // Down
	F FaceName = 2 // Front
	B FaceName = 3 // Back
	R FaceName = 4 // Right
	L FaceName = 5 // Left
)

// FaceNames lists every face in declaration order.
var FaceNames = [6]FaceName{U, D, F, B, R, L}

func (f FaceName) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether f names one of the six faces.
func (f FaceName) Valid() bool {
	return f >= U && f <= L
}

// Opposite returns the face parallel to f.
func (f FaceName) Opposite() FaceName {
	switch f {
	case U:
		return D
	case D:
		return U
	case F:
		return B
	case B:
		return F
	case R:
		return L
	default:
		return R
	}
}

// ParseFaceName parses a face letter.
func ParseFaceName(s string) (FaceName, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "U":
		return U, nil
	case "D":
		return D, nil
	case "F":
		return F, nil
	case "B":
		return B, nil
	case "R":
		return R, nil
	case "L":
		return L, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFace, s)
}

// FaceSet is an unordered set of faces. A part's fixed id is the set of
// faces it touches.
type FaceSet uint8

// NewFaceSet returns the set holding the given faces.
func NewFaceSet(faces ...FaceName) FaceSet {
	var s FaceSet
	for _, f := range faces {
		s |= 1 << f
	}
	return s
}

// Has reports whether f is in s.
func (s FaceSet) Has(f FaceName) bool {
	return s&(1<<f) != 0
}

// Faces returns the members of s in declaration order.
func (s FaceSet) Faces() []FaceName {
	var out []FaceName
	for _, f := range FaceNames {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// String joins the face letters of s, e.g. "UFR".
func (s FaceSet) String() string {
	var b strings.Builder
	for _, f := range s.Faces() {
		b.WriteString(f.String())
	}
	return b.String()
}

// ParseFaceSet parses a string of face letters such as "UFR".
func ParseFaceSet(s string) (FaceSet, error) {
	var set FaceSet
	for _, r := range s {
		f, err := ParseFaceName(string(r))
		if err != nil {
			return 0, err
		}
		set |= NewFaceSet(f)
	}
	if set == 0 {
		return 0, fmt.Errorf("%w: empty face set", ErrInvalidFace)
	}
	return set, nil
}

// Side is one of the four borders of a face in its local frame.
// Sides are numbered clockwise as seen from outside the face.
type Side int

const (
	Top    Side = 0
	Right  Side = 1
	Bottom Side = 2
	Left   Side = 3
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "?"
	}
}

// next returns the side reached by a clockwise quarter turn.
func (s Side) next() Side {
	return (s + 1) % 4
}

// Axis is one of the three rotation axes. Each axis passes through a pair
// of opposite faces that a slice turn around it never touches.
type Axis int

const (
	AxisX Axis = 0 // through L and R
	AxisY Axis = 1 // through D and U
	AxisZ Axis = 2 // through F and B
)

// Axes lists every axis.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Valid reports whether a is one of the three axes.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Reference returns the face nearest slice 0. Slice turns follow the
// clockwise direction of this face (M follows L, E follows D, S follows F).
func (a Axis) Reference() FaceName {
	switch a {
	case AxisX:
		return L
	case AxisY:
		return D
	default:
		return F
	}
}

// Positive returns the face whose clockwise turn defines a whole-cube
// rotation around a (x follows R, y follows U, z follows F).
func (a Axis) Positive() FaceName {
	switch a {
	case AxisX:
		return R
	case AxisY:
		return U
	default:
		return F
	}
}

// Faces returns the two faces the axis passes through.
func (a Axis) Faces() (FaceName, FaceName) {
	p := a.Positive()
	return p, p.Opposite()
}

// AxisOf returns the axis passing through f.
func AxisOf(f FaceName) Axis {
	switch f {
	case L, R:
		return AxisX
	case U, D:
		return AxisY
	default:
		return AxisZ
	}
}

// vec is an integer direction in cube space: +x right, +y up, +z front.
type vec struct{ x, y, z int }

func (a vec) neg() vec { return vec{-a.x, -a.y, -a.z} }

// frame is a face's local coordinate system as seen from outside the face:
// columns grow along right, rows grow along up, row 0 is the bottom border.
type frame struct {
	normal vec
	right  vec
	up     vec
}

// frames lays the faces out as the usual cross net: U above F with its top
// border against B, D below F with its top border against F, and L F R B
// side by side.
var frames = [6]frame{
	U: {normal: vec{0, 1, 0}, right: vec{1, 0, 0}, up: vec{0, 0, -1}},
	D: {normal: vec{0, -1, 0}, right: vec{1, 0, 0}, up: vec{0, 0, 1}},
	F: {normal: vec{0, 0, 1}, right: vec{1, 0, 0}, up: vec{0, 1, 0}},
	B: {normal: vec{0, 0, -1}, right: vec{-1, 0, 0}, up: vec{0, 1, 0}},
	R: {normal: vec{1, 0, 0}, right: vec{0, 0, -1}, up: vec{0, 1, 0}},
	L: {normal: vec{-1, 0, 0}, right: vec{0, 0, 1}, up: vec{0, 1, 0}},
}

// sideDir is the outward direction of side s of f.
func sideDir(f FaceName, s Side) vec {
	fr := frames[f]
	switch s {
	case Top:
		return fr.up
	case Right:
		return fr.right
	case Bottom:
		return fr.up.neg()
	default:
		return fr.right.neg()
	}
}

// alongDir is the direction in which the index along side s of f grows:
// the column for top and bottom, the row for left and right.
func alongDir(f FaceName, s Side) vec {
	if s == Top || s == Bottom {
		return frames[f].right
	}
	return frames[f].up
}

const noSide Side = -1

// topology holds the adjacency tables derived from frames.
var topology struct {
	neighbor [6][4]FaceName // face across each side
	sideOf   [6][6]Side     // side of a facing b, noSide when not adjacent
	agrees   [6][6]bool
}

func init() {
	for a := range FaceNames {
		for b := range FaceNames {
			topology.sideOf[a][b] = noSide
		}
	}
	for _, a := range FaceNames {
		for s := Top; s <= Left; s++ {
			d := sideDir(a, s)
			for _, b := range FaceNames {
				if frames[b].normal == d {
					topology.neighbor[a][s] = b
					topology.sideOf[a][b] = s
				}
			}
		}
	}
	for _, a := range FaceNames {
		for _, b := range FaceNames {
			sa, sb := topology.sideOf[a][b], topology.sideOf[b][a]
			if sa == noSide || sb == noSide {
				continue
			}
			topology.agrees[a][b] = alongDir(a, sa) == alongDir(b, sb)
		}
	}
}

// sideCell returns the cell on side s at index k along the side and depth d
// away from it.
func sideCell(s Side, k, d, n int) (row, col int) {
	switch s {
	case Top:
		return n - 1 - d, k
	case Bottom:
		return d, k
	case Right:
		return k, n - 1 - d
	default:
		return k, d
	}
}

// cornerCell returns the cell at the corner between side s and the side
// that follows it clockwise.
func cornerCell(s Side, n int) (row, col int) {
	switch s {
	case Top:
		return n - 1, n - 1
	case Right:
		return 0, n - 1
	case Bottom:
		return 0, 0
	default:
		return n - 1, 0
	}
}

// cornerBetween returns the corner index of the two sides, which must be
// neighbors.
func cornerBetween(s1, s2 Side) Side {
	if s1.next() == s2 {
		return s1
	}
	return s2
}

// turnIndex maps the index along side s to the index along the following
// side after a clockwise quarter turn.
func turnIndex(s Side, k, n int) int {
	if s == Top || s == Bottom {
		return n - 1 - k
	}
	return k
}
