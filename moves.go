package nxcube

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(nxcube.MoveR, nxcube.MoveU, nxcube.MoveRPrime, nxcube.MoveUPrime)
var (
	MoveR      = FaceMove(R, CW)
	MoveRPrime = FaceMove(R, CCW)
	MoveR2     = FaceMove(R, Double)

	MoveL      = FaceMove(L, CW)
	MoveLPrime = FaceMove(L, CCW)
	MoveL2     = FaceMove(L, Double)

	MoveU      = FaceMove(U, CW)
	MoveUPrime = FaceMove(U, CCW)
	MoveU2     = FaceMove(U, Double)

	MoveD      = FaceMove(D, CW)
	MoveDPrime = FaceMove(D, CCW)
	MoveD2     = FaceMove(D, Double)

	MoveF      = FaceMove(F, CW)
	MoveFPrime = FaceMove(F, CCW)
	MoveF2     = FaceMove(F, Double)

	MoveB      = FaceMove(B, CW)
	MoveBPrime = FaceMove(B, CCW)
	MoveB2     = FaceMove(B, Double)

	// Inner slices, all of them on cubes bigger than 3x3.
	MoveM      = SliceMove(AxisX, AllSlices, CW)
	MoveMPrime = SliceMove(AxisX, AllSlices, CCW)
	MoveE      = SliceMove(AxisY, AllSlices, CW)
	MoveEPrime = SliceMove(AxisY, AllSlices, CCW)
	MoveS      = SliceMove(AxisZ, AllSlices, CW)
	MoveSPrime = SliceMove(AxisZ, AllSlices, CCW)

	// Whole-cube rotations
	MoveX      = RotationMove(AxisX, CW)
	MoveXPrime = RotationMove(AxisX, CCW)
	MoveY      = RotationMove(AxisY, CW)
	MoveYPrime = RotationMove(AxisY, CCW)
	MoveZ      = RotationMove(AxisZ, CW)
	MoveZPrime = RotationMove(AxisZ, CCW)
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{MoveR, MoveU, MoveRPrime, MoveUPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{MoveU, MoveR, MoveUPrime, MoveRPrime}

// T-perm algorithm
var TPerm = []Move{MoveR, MoveU, MoveRPrime, MoveUPrime, MoveRPrime, MoveF, MoveR2, MoveUPrime, MoveRPrime, MoveUPrime, MoveR, MoveU, MoveRPrime, MoveFPrime}
