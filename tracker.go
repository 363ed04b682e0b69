package nxcube

import "fmt"

// AttrPiece is the moving attribute a Tracker uses to follow tagged pieces.
const AttrPiece = "piece"

// Tracker wraps a Cube and provides move history, phase change detection
// and piece tracking.
type Tracker struct {
	cube          *Cube
	history       []Move
	highestPhase  Phase // Monotonic - never goes backwards
	phaseCallback func(phase Phase)
}

// NewTracker creates a new tracker on a solved cube of size n.
func NewTracker(n int, opts ...Option) (*Tracker, error) {
	c, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	return &Tracker{cube: c, highestPhase: PhaseScrambled}, nil
}

// SetPhaseCallback sets a callback that fires when a new highest phase is
// reached.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase)) {
	t.phaseCallback = cb
}

// Reset resets the tracker to a solved cube and forgets the history.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.history = nil
	t.highestPhase = PhaseScrambled
}

// ApplyMove applies a move, records it and checks for phase transitions.
func (t *Tracker) ApplyMove(m Move) error {
	if err := t.cube.Apply(m); err != nil {
		return err
	}
	t.history = append(t.history, m)
	t.checkPhaseTransition()
	return nil
}

// ApplyMoves applies multiple moves, stopping at the first error.
func (t *Tracker) ApplyMoves(moves []Move) error {
	for _, m := range moves {
		if err := t.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// Undo reverts the last recorded move. It returns false when the history
// is empty. Undoing never fires the phase callback.
func (t *Tracker) Undo() (bool, error) {
	if len(t.history) == 0 {
		return false, nil
	}
	last := t.history[len(t.history)-1]
	if err := t.cube.Apply(last.Inverse()); err != nil {
		return false, err
	}
	t.history = t.history[:len(t.history)-1]
	return true, nil
}

// History returns a copy of the recorded moves.
func (t *Tracker) History() []Move {
	out := make([]Move, len(t.history))
	copy(out, t.history)
	return out
}

// checkPhaseTransition checks if we've reached a new phase.
func (t *Tracker) checkPhaseTransition() {
	currentPhase := t.cube.DetectPhase()

	// Only trigger callback and update highest phase when reaching a NEW high.
	// A scramble must drop below the highest phase before it can be reached
	// again, so a solved cube does not report again until reset.
	if currentPhase > t.highestPhase {
		t.highestPhase = currentPhase
		if t.phaseCallback != nil {
			t.phaseCallback(currentPhase)
		}
	}
}

// CurrentPhase returns the current detected phase.
// This reflects the raw cube state and may go backwards during solving.
func (t *Tracker) CurrentPhase() Phase {
	return t.cube.DetectPhase()
}

// HighestPhase returns the highest phase reached.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// SetHighestPhase sets the highest phase already reached. The callback
// fires only for phases above it.
func (t *Tracker) SetHighestPhase(p Phase) {
	t.highestPhase = p
}

// Progress returns the detailed progress.
func (t *Tracker) Progress() Progress {
	return t.cube.Progress()
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// TagPiece labels the piece currently in slice id so FindPiece can locate
// it after any number of moves.
func (t *Tracker) TagPiece(id SliceID, tag string) error {
	s, err := t.cube.SliceByID(id)
	if err != nil {
		return err
	}
	for _, fl := range s.Facelets() {
		if err := fl.Set(Moving, AttrPiece, tag); err != nil {
			return err
		}
	}
	return nil
}

// FindPiece returns the slice now holding the piece tagged with tag.
func (t *Tracker) FindPiece(tag string) (*PartSlice, error) {
	c := t.cube
	for pi := range c.parts {
		p := &c.parts[pi]
		for si := range p.slices {
			fl := &c.facelets[p.slices[si].facelets[0]]
			if v, ok := fl.Get(Moving, AttrPiece); ok && v == tag {
				return &p.slices[si], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: no piece tagged %q", ErrUnknownPart, tag)
}
