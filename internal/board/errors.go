package board

import "errors"

// Sentinel errors for the position core. Check them with errors.Is.
var (
	// ErrMalformedNotation indicates a FEN record with the wrong field count
	// or an unparsable field.
	ErrMalformedNotation = errors.New("malformed notation")

	// ErrUnknownPieceLetter indicates a character outside pnbrqk/PNBRQK.
	ErrUnknownPieceLetter = errors.New("unknown piece letter")

	// ErrMalformedSquare indicates a square that is not a-h followed by 1-8,
	// or a mask that does not hold exactly one square.
	ErrMalformedSquare = errors.New("malformed square")

	// ErrIllegalMove indicates a move with no mover at its origin or one
	// that captures a piece of the mover's own side.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPosition indicates a move applied to a position that is
	// already marked invalid.
	ErrInvalidPosition = errors.New("invalid position")
)
