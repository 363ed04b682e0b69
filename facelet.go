package nxcube

import "fmt"

// Attrs holds per-facelet metadata the engine does not interpret.
type Attrs map[string]any

// AttrPolicy says how an attribute tier behaves when a rotation repaints a
// facelet.
type AttrPolicy int

const (
	// Fixed attributes are set at construction and never change. They
	// describe the slot.
	Fixed AttrPolicy = iota
	// Moving attributes travel with the color, so they follow a physical
	// piece around the cube.
	Moving
	// Anchored attributes stay on the slot while colors pass through it.
	Anchored
)

func (p AttrPolicy) String() string {
	switch p {
	case Fixed:
		return "fixed"
	case Moving:
		return "moving"
	case Anchored:
		return "anchored"
	default:
		return "unknown"
	}
}

// MovesWithColor reports whether attributes under p are copied along with
// the color on every transfer.
func (p AttrPolicy) MovesWithColor() bool {
	return p == Moving
}

// Keys of the fixed attributes every facelet carries.
const (
	AttrFace = "face"
	AttrRow  = "row"
	AttrCol  = "col"
	AttrKind = "kind"
)

// Facelet is a single colored slot. Its face and coordinates never change;
// rotations only replace its content.
type Facelet struct {
	face     FaceName
	row, col int
	color    Color

	fixed    Attrs
	moving   Attrs
	anchored Attrs
}

// content is what a rotation transfers from one facelet to another.
type content struct {
	color  Color
	moving Attrs
}

func (f *Facelet) content() content {
	return content{color: f.color, moving: f.moving}
}

func (f *Facelet) setContent(c content) {
	f.color = c.color
	f.moving = c.moving
}

// Face returns the face the facelet belongs to.
func (f *Facelet) Face() FaceName { return f.face }

// Row returns the facelet's row, 0 being the bottom row.
func (f *Facelet) Row() int { return f.row }

// Col returns the facelet's column, 0 being the left column.
func (f *Facelet) Col() int { return f.col }

// Color returns the color currently painted on the facelet.
func (f *Facelet) Color() Color { return f.color }

func (f *Facelet) String() string {
	return fmt.Sprintf("%s[%d,%d]=%s", f.face, f.row, f.col, f.color)
}

func (f *Facelet) tier(p AttrPolicy) *Attrs {
	switch p {
	case Fixed:
		return &f.fixed
	case Moving:
		return &f.moving
	default:
		return &f.anchored
	}
}

// Get returns the attribute stored under key in tier p.
func (f *Facelet) Get(p AttrPolicy, key string) (any, bool) {
	v, ok := (*f.tier(p))[key]
	return v, ok
}

// Set stores an attribute in tier p. Fixed attributes cannot be set.
func (f *Facelet) Set(p AttrPolicy, key string, value any) error {
	if p == Fixed {
		return fmt.Errorf("%w: %s", ErrFixedAttribute, key)
	}
	t := f.tier(p)
	if *t == nil {
		*t = make(Attrs)
	}
	(*t)[key] = value
	return nil
}

// Delete removes an attribute from tier p. Fixed attributes cannot be removed.
func (f *Facelet) Delete(p AttrPolicy, key string) error {
	if p == Fixed {
		return fmt.Errorf("%w: %s", ErrFixedAttribute, key)
	}
	delete(*f.tier(p), key)
	return nil
}

// Attributes returns a copy of tier p.
func (f *Facelet) Attributes(p AttrPolicy) Attrs {
	src := *f.tier(p)
	out := make(Attrs, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// clearTier drops every attribute of tier p.
func (f *Facelet) clearTier(p AttrPolicy) {
	*f.tier(p) = nil
}
