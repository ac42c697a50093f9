// Package board implements the chess position core using bitboards.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Index = rank*8 + (7-file): H1=0, A1=7, H8=56, A8=63.
type Square uint8

// Square constants for all 64 squares, in bit order.
const (
	H1 Square = iota
	G1
	F1
	E1
	D1
	C1
	B1
	A1
	H2
	G2
	F2
	E2
	D2
	C2
	B2
	A2
	H3
	G3
	F3
	E3
	D3
	C3
	B3
	A3
	H4
	G4
	F4
	E4
	D4
	C4
	B4
	A4
	H5
	G5
	F5
	E5
	D5
	C5
	B5
	A5
	H6
	G6
	F6
	E6
	D6
	C6
	B6
	A6
	H7
	G7
	F7
	E7
	D7
	C7
	B7
	A7
	H8
	G8
	F8
	E8
	D8
	C8
	B8
	A8
	NoSquare Square = 64
)

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return 7 - int(sq)&7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// Bitboard returns the single-bit mask for the square.
func (sq Square) Bitboard() Bitboard {
	if sq >= NoSquare {
		return Empty
	}
	return 1 << sq
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// NewSquare creates a square from file and rank (0-indexed).
// It panics if either coordinate is outside 0-7.
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		panic(fmt.Sprintf("board: square out of range: file=%d rank=%d", file, rank))
	}
	return Square(rank*8 + (7 - file))
}

// SquareMask returns the single-bit mask for the square at file and rank.
func SquareMask(file, rank int) Bitboard {
	return 1 << NewSquare(file, rank)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrMalformedSquare, s)
	}

	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: %q", ErrMalformedSquare, s)
	}

	return NewSquare(file, rank), nil
}

// ParseSquareMask parses algebraic notation into a single-bit mask.
func ParseSquareMask(s string) (Bitboard, error) {
	sq, err := ParseSquare(s)
	if err != nil {
		return Empty, err
	}
	return sq.Bitboard(), nil
}

// MaskToNotation returns the algebraic name of a single-bit mask.
func MaskToNotation(b Bitboard) (string, error) {
	if !b.Single() {
		return "", fmt.Errorf("%w: mask %#016x does not hold exactly one square", ErrMalformedSquare, uint64(b))
	}
	return b.Square().String(), nil
}

// RelativeRank returns the rank from a given color's perspective.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}
