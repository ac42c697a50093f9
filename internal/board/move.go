package board

import "fmt"

// Move relocates whatever stands on From to To. Both masks are expected to
// hold exactly one square. A Move carries no piece, promotion, castling or
// en-passant information.
type Move struct {
	From Bitboard
	To   Bitboard
}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from.Bitboard(), To: to.Bitboard()}
}

// IsWellFormed returns true if both masks hold exactly one square.
func (m Move) IsWellFormed() bool {
	return m.From.Single() && m.To.Single()
}

// String returns the coordinate form of the move (e.g., "e2e4").
// Malformed masks print as "-".
func (m Move) String() string {
	return m.From.Square().String() + m.To.Square().String()
}

// ParseMove parses a coordinate move such as "e2e4". A trailing promotion
// letter is not accepted because moves carry no promotion piece.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("invalid move string: %q", s)
	}

	from, err := ParseSquareMask(s[0:2])
	if err != nil {
		return Move{}, err
	}

	to, err := ParseSquareMask(s[2:4])
	if err != nil {
		return Move{}, err
	}

	return Move{From: from, To: to}, nil
}
