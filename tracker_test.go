package nxcube

import "testing"

func TestTrackerReset(t *testing.T) {
	tr, err := NewTracker(3)
	if err != nil {
		t.Fatal(err)
	}
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	if err := tr.ApplyMove(MoveR); err != nil {
		t.Fatal(err)
	}
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	if len(tr.History()) != 0 {
		t.Errorf("Reset should clear history, got %v", tr.History())
	}
}

func TestTrackerPhaseCallback(t *testing.T) {
	// Verify that the tracker fires phase callbacks correctly
	tr, err := NewTracker(4)
	if err != nil {
		t.Fatal(err)
	}

	var phaseChanges []Phase
	tr.SetPhaseCallback(func(phase Phase) {
		phaseChanges = append(phaseChanges, phase)
		t.Logf("Phase callback fired: %s", phase)
	})

	// An inner slice breaks the centers.
	if err := tr.ApplyMove(SliceMove(AxisX, 0, CW)); err != nil {
		t.Fatal(err)
	}
	if tr.CurrentPhase() != PhaseScrambled {
		t.Errorf("Expected phase scrambled, got %s", tr.CurrentPhase())
	}
	if len(phaseChanges) != 0 {
		t.Errorf("No phase should be reached yet, got %v", phaseChanges)
	}

	// Undo it and scramble with an outer turn: centers and pairs are back.
	if ok, err := tr.Undo(); !ok || err != nil {
		t.Fatalf("Undo = %v, %v", ok, err)
	}
	if err := tr.ApplyMove(MoveU); err != nil {
		t.Fatal(err)
	}
	if tr.HighestPhase() != PhaseReduced {
		t.Errorf("Expected highest phase reduced, got %s", tr.HighestPhase())
	}

	if err := tr.ApplyMove(MoveUPrime); err != nil {
		t.Fatal(err)
	}
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reversing moves")
		t.Log(tr.Cube().String())
	}

	// Going back down and up again must not fire twice.
	if err := tr.ApplyMoves([]Move{MoveF, MoveFPrime}); err != nil {
		t.Fatal(err)
	}

	want := []Phase{PhaseReduced, PhaseSolved}
	if len(phaseChanges) != len(want) {
		t.Fatalf("callbacks = %v, want %v", phaseChanges, want)
	}
	for i := range want {
		if phaseChanges[i] != want[i] {
			t.Errorf("callback %d = %s, want %s", i, phaseChanges[i], want[i])
		}
	}
	if got := FormatMoves(tr.History()); got != "U U' F F'" {
		t.Errorf("History = %q", got)
	}
}

func TestTrackerUndoEmpty(t *testing.T) {
	tr, err := NewTracker(2)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := tr.Undo(); ok || err != nil {
		t.Errorf("Undo on empty history = %v, %v", ok, err)
	}
}

func TestTrackerFindsTaggedPieces(t *testing.T) {
	tr, err := NewTracker(4)
	if err != nil {
		t.Fatal(err)
	}

	ufr := NewFaceSet(U, F, R)
	if err := tr.TagPiece(SliceID{Faces: ufr}, "corner"); err != nil {
		t.Fatal(err)
	}
	uf := NewFaceSet(U, F)
	if err := tr.TagPiece(SliceID{Faces: uf, Index: 0}, "wing"); err != nil {
		t.Fatal(err)
	}

	// R lifts the front right column, carrying UFR to UBR.
	if err := tr.ApplyMove(MoveR); err != nil {
		t.Fatal(err)
	}
	s, err := tr.FindPiece("corner")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.ID().Faces, NewFaceSet(U, B, R); got != want {
		t.Errorf("corner is at %s, want %s", got, want)
	}

	// F turns the top of the front face to the right.
	if err := tr.ApplyMove(MoveF); err != nil {
		t.Fatal(err)
	}
	s, err = tr.FindPiece("wing")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.ID().Faces, NewFaceSet(F, R); got != want {
		t.Errorf("wing is at %s, want %s", got, want)
	}

	if _, err := tr.FindPiece("missing"); err == nil {
		t.Error("FindPiece should fail for an unknown tag")
	}
	if err := tr.TagPiece(SliceID{Faces: NewFaceSet(U, D)}, "x"); err == nil {
		t.Error("TagPiece should fail for an unknown part")
	}
}

func TestTrackerSetHighestPhase(t *testing.T) {
	tr, err := NewTracker(2)
	if err != nil {
		t.Fatal(err)
	}
	fired := 0
	tr.SetPhaseCallback(func(Phase) { fired++ })

	tr.SetHighestPhase(PhaseReduced)
	if err := tr.ApplyMove(MoveR); err != nil {
		t.Fatal(err)
	}
	if fired != 0 {
		t.Errorf("reduced was already reached, callback fired %d times", fired)
	}
	if err := tr.ApplyMove(MoveRPrime); err != nil {
		t.Fatal(err)
	}
	if fired != 1 || tr.HighestPhase() != PhaseSolved {
		t.Errorf("fired = %d, highest = %s", fired, tr.HighestPhase())
	}
}
