package nxcube

import "errors"

// Sentinel errors for the nxcube package.
var (
	// Invalid input
	ErrInvalidSize     = errors.New("nxcube: cube size must be at least 2")
	ErrInvalidFace     = errors.New("nxcube: invalid face")
	ErrInvalidAxis     = errors.New("nxcube: invalid axis")
	ErrInvalidTurns    = errors.New("nxcube: turn count must be -2, -1, 1 or 2")
	ErrSliceIndex      = errors.New("nxcube: slice index out of range")
	ErrOutOfBounds     = errors.New("nxcube: facelet coordinates out of range")
	ErrNotAdjacent     = errors.New("nxcube: faces are not adjacent")
	ErrUnknownPart     = errors.New("nxcube: no part with that id")
	ErrFixedAttribute  = errors.New("nxcube: fixed attributes are read-only")
	ErrInvalidScheme   = errors.New("nxcube: color scheme must assign six distinct colors")
	ErrInvalidNotation = errors.New("nxcube: invalid move notation")
	ErrInvalidState    = errors.New("nxcube: invalid cube state")
	ErrInvalidLength   = errors.New("nxcube: scramble length must not be negative")

	// Engine defects
	ErrInvariant = errors.New("nxcube: invariant violated")
	ErrHalted    = errors.New("nxcube: cube halted after invariant violation")
)
