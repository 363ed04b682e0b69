package nxcube

import "fmt"

// Phase is a stage of the reduction method for big cubes: solve the
// centers, pair the edge wings, then finish like a 3x3. Phases progress
// from Scrambled to Solved, allowing comparison with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates no stage is complete.
	PhaseScrambled Phase = iota

	// PhaseCenters indicates every face's center pieces show one color.
	// 2x2 and 3x3 cubes reach it trivially.
	PhaseCenters

	// PhaseReduced indicates the centers are solved and every edge has its
	// wings paired, so the cube now turns like a 3x3.
	PhaseReduced

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseCenters:
		return "centers"
	case PhaseReduced:
		return "reduced"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseCenters:
		return "Centers Solved"
	case PhaseReduced:
		return "Edges Paired"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// ParsePhase parses a phase identifier as returned by String.
func ParsePhase(s string) (Phase, error) {
	for p := PhaseScrambled; p <= PhaseSolved; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return PhaseScrambled, fmt.Errorf("nxcube: unknown phase %q", s)
}

// IsComplete returns true if the cube is solved.
func (p Phase) IsComplete() bool {
	return p == PhaseSolved
}

// Progress represents which stages are complete.
type Progress struct {
	Centers     bool
	EdgesPaired bool
	Corners     bool
	Solved      bool
}

// AreCentersSolved reports whether each face's center pieces share a color.
func (c *Cube) AreCentersSolved() bool {
	for _, p := range c.Centers() {
		if !p.Uniform() {
			return false
		}
	}
	return true
}

// AreEdgesPaired reports whether every edge's wings carry the same colors
// on the same faces.
func (c *Cube) AreEdgesPaired() bool {
	for _, p := range c.Edges() {
		if !p.Uniform() {
			return false
		}
	}
	return true
}

// AreCornersSolved reports whether every corner shows its face colors.
func (c *Cube) AreCornersSolved() bool {
	for _, p := range c.Corners() {
		if !p.MatchFaces() {
			return false
		}
	}
	return true
}

// DetectPhase returns the furthest stage the cube is in.
func (c *Cube) DetectPhase() Phase {
	switch {
	case c.IsSolved():
		return PhaseSolved
	case !c.AreCentersSolved():
		return PhaseScrambled
	case c.AreEdgesPaired():
		return PhaseReduced
	default:
		return PhaseCenters
	}
}

// Progress returns the current progress through all stages.
func (c *Cube) Progress() Progress {
	return Progress{
		Centers:     c.AreCentersSolved(),
		EdgesPaired: c.AreEdgesPaired(),
		Corners:     c.AreCornersSolved(),
		Solved:      c.IsSolved(),
	}
}
