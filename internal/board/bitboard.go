package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 63 = A8, Bit 56 = H8, Bit 7 = A1, Bit 0 = H1. Within a rank the files run
// a->h from the high bit to the low bit.
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x8080808080808080
	FileB Bitboard = 0x4040404040404040
	FileC Bitboard = 0x2020202020202020
	FileD Bitboard = 0x1010101010101010
	FileE Bitboard = 0x0808080808080808
	FileF Bitboard = 0x0404040404040404
	FileG Bitboard = 0x0202020202020202
	FileH Bitboard = 0x0101010101010101
)

// Rank masks
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = 0x000000000000FF00
	Rank3 Bitboard = 0x0000000000FF0000
	Rank4 Bitboard = 0x00000000FF000000
	Rank5 Bitboard = 0x000000FF00000000
	Rank6 Bitboard = 0x0000FF0000000000
	Rank7 Bitboard = 0x00FF000000000000
	Rank8 Bitboard = 0xFF00000000000000
)

// Empty is the bitboard with no squares set.
const Empty Bitboard = 0

// FileMask returns the file mask for a given file (0-7).
var FileMask = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// RankMask returns the rank mask for a given rank (0-7).
var RankMask = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bitboard()
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&sq.Bitboard() != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Single returns true if exactly one bit is set.
func (b Bitboard) Single() bool {
	return b != 0 && b&(b-1) == 0
}

// Square returns the square of a single-bit mask, or NoSquare otherwise.
func (b Bitboard) Square() Square {
	if !b.Single() {
		return NoSquare
	}
	return b.LSB()
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// North shifts the bitboard one rank up (toward rank 8).
func (b Bitboard) North() Bitboard {
	return b << 8
}

// South shifts the bitboard one rank down (toward rank 1).
func (b Bitboard) South() Bitboard {
	return b >> 8
}

// East shifts the bitboard one file toward the h-file.
func (b Bitboard) East() Bitboard {
	return (b &^ FileH) >> 1
}

// West shifts the bitboard one file toward the a-file.
func (b Bitboard) West() Bitboard {
	return (b &^ FileA) << 1
}

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// Squares returns a slice of all squares that are set, lowest index first.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}
