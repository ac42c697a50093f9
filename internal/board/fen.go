package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a six-field FEN record.
//
// On failure the returned Position is invalid and holds whatever was parsed
// before the offending field; the error wraps ErrMalformedNotation and, where
// relevant, ErrUnknownPieceLetter or ErrMalformedSquare.
func ParseFEN(fen string) (Position, error) {
	var pos Position

	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return pos, fmt.Errorf("%w: need 6 fields, got %d", ErrMalformedNotation, len(parts))
	}

	if err := parsePiecePlacement(&pos, parts[0]); err != nil {
		return pos, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return pos, fmt.Errorf("%w: invalid side to move: %s", ErrMalformedNotation, parts[1])
	}

	pos.CastlingRights = parseCastlingRights(parts[2])

	if parts[3] != "-" {
		bb, err := ParseSquareMask(parts[3])
		if err != nil {
			return pos, fmt.Errorf("%w: en passant: %w", ErrMalformedNotation, err)
		}
		pos.EnPassant = bb
	}

	hmc, err := strconv.ParseUint(parts[4], 10, 0)
	if err != nil {
		return pos, fmt.Errorf("%w: invalid half-move clock: %s", ErrMalformedNotation, parts[4])
	}
	pos.HalfMoveClock = uint(hmc)

	fmn, err := strconv.ParseUint(parts[5], 10, 0)
	if err != nil {
		return pos, fmt.Errorf("%w: invalid full-move number: %s", ErrMalformedNotation, parts[5])
	}
	pos.FullMoveNumber = uint(fmn)

	pos.valid = true
	return pos, nil
}

// FromFEN is ParseFEN without the error; check IsValid on the result.
func FromFEN(fen string) Position {
	pos, _ := ParseFEN(fen)
	return pos
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrMalformedNotation, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrMalformedNotation, rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fmt.Errorf("%w: rank %d: %w: %q", ErrMalformedNotation, rank+1, ErrUnknownPieceLetter, c)
			}
			bb := &pos.Pieces[piece.Color()][piece.Type()]
			*bb = bb.Set(NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d squares", ErrMalformedNotation, rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights looks for each of K, Q, k and q anywhere in the field.
// Other characters, including "-", grant nothing.
func parseCastlingRights(castling string) CastlingRights {
	var cr CastlingRights
	if strings.Contains(castling, "K") {
		cr |= WhiteKingSideCastle
	}
	if strings.Contains(castling, "Q") {
		cr |= WhiteQueenSideCastle
	}
	if strings.Contains(castling, "k") {
		cr |= BlackKingSideCastle
	}
	if strings.Contains(castling, "q") {
		cr |= BlackQueenSideCastle
	}
	return cr
}

// ToFEN returns the FEN representation of the position.
func (p Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			if p.IsEmpty(sq) {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.PieceAt(sq).Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.Square().String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(p.HalfMoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(p.FullMoveNumber), 10))

	return sb.String()
}
