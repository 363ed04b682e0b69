package nxcube

import "fmt"

// PartKind is the kind of a physical location. The set is closed: every
// switch over it covers all three kinds.
type PartKind int

const (
	KindEdge   PartKind = 0
	KindCorner PartKind = 1
	KindCenter PartKind = 2
)

func (k PartKind) String() string {
	switch k {
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	case KindCenter:
		return "center"
	default:
		return "unknown"
	}
}

// facelets reports how many facelets one slice of kind k holds.
func (k PartKind) facelets() int {
	switch k {
	case KindEdge:
		return 2
	case KindCorner:
		return 3
	case KindCenter:
		return 1
	default:
		panic(fmt.Sprintf("nxcube: unknown part kind %d", k))
	}
}

// faceletID is a handle into the cube's facelet arena.
type faceletID int32

// partID is a handle into the cube's part arena.
type partID int32

const noPart partID = -1

// SliceID is the permanent identity of a part slice: the faces it touches
// and its index within the part.
type SliceID struct {
	Faces FaceSet
	Index int
}

func (id SliceID) String() string {
	return fmt.Sprintf("%s#%d", id.Faces, id.Index)
}

// PartSlice is the smallest group of facelets that moves together: an edge
// wing, a corner or one center piece. The facelets it references never
// change, only their content does.
type PartSlice struct {
	cube     *Cube
	id       SliceID
	facelets []faceletID // one per face, in face declaration order
}

// ID returns the slice's permanent identity.
func (s *PartSlice) ID() SliceID { return s.id }

// Facelets returns the slice's facelets, one per face it touches.
func (s *PartSlice) Facelets() []*Facelet {
	out := make([]*Facelet, len(s.facelets))
	for i, fid := range s.facelets {
		out[i] = &s.cube.facelets[fid]
	}
	return out
}

// FaceletOn returns the slice's facelet on face f, or nil when the slice
// does not touch f.
func (s *PartSlice) FaceletOn(f FaceName) *Facelet {
	for _, fid := range s.facelets {
		if s.cube.facelets[fid].face == f {
			return &s.cube.facelets[fid]
		}
	}
	return nil
}

func (s *PartSlice) faceletOn(f FaceName) faceletID {
	for _, fid := range s.facelets {
		if s.cube.facelets[fid].face == f {
			return fid
		}
	}
	panic(fmt.Sprintf("nxcube: slice %s has no facelet on %s", s.id, f))
}

// Colors returns the set of colors painted on the slice.
func (s *PartSlice) Colors() ColorSet {
	var set ColorSet
	for _, fid := range s.facelets {
		set = set.With(s.cube.facelets[fid].color)
	}
	return set
}

// Part is a fixed physical location: an edge with its N-2 wings, a corner,
// or a face center with its (N-2)^2 pieces.
type Part struct {
	cube   *Cube
	kind   PartKind
	faces  FaceSet
	slices []PartSlice
}

// Kind returns the part's kind.
func (p *Part) Kind() PartKind { return p.kind }

// FixedID returns the set of faces the part touches. It never changes.
func (p *Part) FixedID() FaceSet { return p.faces }

// Len returns the number of slices in the part.
func (p *Part) Len() int { return len(p.slices) }

// Slice returns slice i of the part.
func (p *Part) Slice(i int) *PartSlice { return &p.slices[i] }

// Slices returns all slices of the part.
func (p *Part) Slices() []*PartSlice {
	out := make([]*PartSlice, len(p.slices))
	for i := range p.slices {
		out[i] = &p.slices[i]
	}
	return out
}

func (p *Part) String() string {
	return fmt.Sprintf("%s %s", p.kind, p.faces)
}

// ColorsID returns the set of colors painted on the part. For parts
// with several slices it is the colors of the first slice, which describes
// the whole part only when Uniform reports true.
func (p *Part) ColorsID() ColorSet {
	if len(p.slices) == 0 {
		return 0
	}
	return p.slices[0].Colors()
}

// PositionID returns the set of colors of the faces around the part. It
// changes under slice turns and whole-cube rotations, never under face
// turns.
func (p *Part) PositionID() ColorSet {
	var set ColorSet
	for _, f := range p.faces.Faces() {
		set = set.With(p.cube.faceColors[f])
	}
	return set
}

// InPosition reports whether the part holds the colors its location
// expects.
func (p *Part) InPosition() bool {
	return p.PositionID() == p.ColorsID()
}

// Uniform reports whether every slice shows the same color on each face
// the part touches: a paired edge or a solved center.
func (p *Part) Uniform() bool {
	if len(p.slices) == 0 {
		return true
	}
	first := &p.slices[0]
	for i := 1; i < len(p.slices); i++ {
		s := &p.slices[i]
		for j, fid := range s.facelets {
			if p.cube.facelets[fid].color != p.cube.facelets[first.facelets[j]].color {
				return false
			}
		}
	}
	return true
}

// MatchFaces reports whether every facelet of the part shows the color of
// the face it sits on.
func (p *Part) MatchFaces() bool {
	for i := range p.slices {
		for _, fid := range p.slices[i].facelets {
			fl := &p.cube.facelets[fid]
			if fl.color != p.cube.faceColors[fl.face] {
				return false
			}
		}
	}
	return true
}
