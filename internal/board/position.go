package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr&AllCastling == NoCastling {
		return "-"
	}
	s := ""
	for c := White; c <= Black; c++ {
		if cr.CanCastle(c, true) {
			s += string(PieceLetter(King, c))
		}
		if cr.CanCastle(c, false) {
			s += string(PieceLetter(Queen, c))
		}
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position is an immutable chess position. Methods take value receivers and
// return new values; a Position never changes under an outstanding copy.
//
// The zero Position is an empty, invalid board.
type Position struct {
	// Piece bitboards: [Color][PieceType]. No two sets share a bit.
	Pieces [2][6]Bitboard

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Bitboard // Target square for en passant, Empty if none
	HalfMoveClock  uint     // Moves since last pawn move or capture
	FullMoveNumber uint     // Incremented after each Black move, starts at 1

	valid bool
}

// NewPosition returns the standard starting position.
func NewPosition() Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// IsValid reports whether the position came from well-formed notation or a
// successful move application. Invalid positions must not be played on.
func (p Position) IsValid() bool {
	return p.valid
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p Position) PieceAt(sq Square) Piece {
	bb := sq.Bitboard()
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			if p.Pieces[c][pt]&bb != 0 {
				return NewPiece(pt, c)
			}
		}
	}
	return NoPiece
}

// Occupied returns all squares holding a piece of color c.
func (p Position) Occupied(c Color) Bitboard {
	var bb Bitboard
	for pt := Pawn; pt <= King; pt++ {
		bb |= p.Pieces[c][pt]
	}
	return bb
}

// AllOccupied returns all squares holding a piece.
func (p Position) AllOccupied() Bitboard {
	return p.Occupied(White) | p.Occupied(Black)
}

// IsEmpty returns true if the square is empty.
func (p Position) IsEmpty(sq Square) bool {
	return p.AllOccupied()&sq.Bitboard() == 0
}

// Count returns the number of pieces of the given type and color.
func (p Position) Count(pt PieceType, c Color) int {
	return p.Pieces[c][pt].PopCount()
}

// Validate checks the structural invariants of the bitboards: the twelve
// piece sets are pairwise disjoint and the en-passant target holds at most
// one square. It is not run on reads.
func (p Position) Validate() error {
	var seen Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			if overlap := seen & bb; overlap != 0 {
				return fmt.Errorf("%s %s overlaps another piece on %s", c, pt, overlap.LSB())
			}
			seen |= bb
		}
	}
	if p.EnPassant != Empty && !p.EnPassant.Single() {
		return fmt.Errorf("en passant target holds %d squares", p.EnPassant.PopCount())
	}
	return nil
}

// String returns the ASCII box rendering of the position.
func (p Position) String() string {
	return p.Render()
}
