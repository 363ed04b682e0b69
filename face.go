package nxcube

// Face is an N×N grid of facelets addressed by (row, col), row 0 at the
// bottom and col 0 at the left as seen from outside the face. It refers to
// the edges and corners it shares with its neighbors, it does not own them.
type Face struct {
	cube    *Cube
	name    FaceName
	edges   [4]partID // by side
	corners [4]partID // corner s sits between side s and side s+1
	center  partID
}

// Name returns the face's name.
func (f *Face) Name() FaceName { return f.name }

// Color returns the logical color of the face.
func (f *Face) Color() Color { return f.cube.faceColors[f.name] }

// Facelet returns the facelet at (row, col) without bounds checking beyond
// the arena's own.
func (f *Face) Facelet(row, col int) *Facelet {
	return &f.cube.facelets[f.cube.index(f.name, row, col)]
}

// Facelets returns the face's facelets in row-major order, starting at the
// bottom-left.
func (f *Face) Facelets() []*Facelet {
	n := f.cube.n
	out := make([]*Facelet, 0, n*n)
	base := f.cube.index(f.name, 0, 0)
	for i := 0; i < n*n; i++ {
		out = append(out, &f.cube.facelets[base+faceletID(i)])
	}
	return out
}

// Edge returns the edge on side s, or nil on a 2×2 cube.
func (f *Face) Edge(s Side) *Part {
	return f.cube.part(f.edges[s])
}

// Corner returns the corner between side s and the side after it clockwise.
func (f *Face) Corner(s Side) *Part {
	return f.cube.part(f.corners[s])
}

// Center returns the face's center part, or nil on a 2×2 cube.
func (f *Face) Center() *Part {
	return f.cube.part(f.center)
}

// Neighbor returns the face across side s.
func (f *Face) Neighbor(s Side) *Face {
	return &f.cube.faces[topology.neighbor[f.name][s]]
}

// Uniform reports whether every facelet of the face shows one color.
func (f *Face) Uniform() bool {
	n := f.cube.n
	base := f.cube.index(f.name, 0, 0)
	first := f.cube.facelets[base].color
	for i := 1; i < n*n; i++ {
		if f.cube.facelets[base+faceletID(i)].color != first {
			return false
		}
	}
	return true
}
