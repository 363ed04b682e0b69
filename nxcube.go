// Package nxcube models N×N×N Rubik's cubes of any size from 2 up and
// rotates them.
//
// # Features
//
//   - Face turns, inner slice turns and whole-cube rotations
//   - Permanent identities for every edge, corner and center
//   - Per-facelet attributes that stay put or travel with the pieces
//   - Standard notation including M E S slices and x y z rotations
//   - Reduction phase detection and piece tracking
//
// # Quick Start
//
//	cube, err := nxcube.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply moves using predefined constants
//	cube.Apply(nxcube.MoveR, nxcube.MoveU, nxcube.MoveRPrime, nxcube.MoveUPrime)
//
//	// Or from notation, with inner slices picked by index
//	cube.ApplyNotation("F B2 M[1]' x")
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube)
//
// # Coordinates
//
// Every face is an N×N grid seen from outside the cube, row 0 at the bottom
// and column 0 at the left. U sits above F with its bottom row against F,
// D below F with its top row against F, and L F R B run left to right.
// Where two faces meet, their indices along the shared border either run
// the same way or opposite ways; Agrees and TranslateIndex convert between
// them.
//
// # Parts
//
// A part is a fixed location named by the faces it touches: "UF" is an
// edge, "UFR" a corner, "U" a center. An edge holds N-2 wings and a center
// (N-2)² pieces, each a PartSlice. Rotations move colors between facelets;
// parts, slices and facelets themselves never move.
//
// # Solving Phases
//
// The package detects the stages of the reduction method:
//
//   - PhaseScrambled: centers are not solved
//   - PhaseCenters: every face's centers share a color
//   - PhaseReduced: centers solved and every edge paired
//   - PhaseSolved: cube is solved
package nxcube
