package board

import "fmt"

// cornerRights maps each rook corner to the castling right it guards.
var cornerRights = map[Square]CastlingRights{
	H1: WhiteKingSideCastle,
	A1: WhiteQueenSideCastle,
	H8: BlackKingSideCastle,
	A8: BlackQueenSideCastle,
}

// kingRights holds both castling rights of each color.
var kingRights = [2]CastlingRights{
	White: WhiteKingSideCastle | WhiteQueenSideCastle,
	Black: BlackKingSideCastle | BlackQueenSideCastle,
}

// MakeMove applies m pseudo-legally and returns the resulting position.
//
// The piece on m.From moves to m.To, removing any opposing piece there. No
// reachability, check, castling, en-passant capture or promotion rules are
// applied. If the move has no mover, captures a piece of the mover's side or
// does not name exactly one square at each end, the receiver is returned
// unchanged but marked invalid, together with an error wrapping
// ErrIllegalMove. An invalid receiver stays invalid: the move is not applied
// and the error wraps ErrInvalidPosition. The receiver is never modified.
func (p Position) MakeMove(m Move) (Position, error) {
	next := p
	next.valid = false

	if !p.valid {
		return next, fmt.Errorf("%w: cannot apply %s", ErrInvalidPosition, m)
	}
	if !m.IsWellFormed() {
		return next, fmt.Errorf("%w: malformed masks %#x -> %#x", ErrIllegalMove, uint64(m.From), uint64(m.To))
	}

	from, to := m.From.Square(), m.To.Square()

	mover := p.PieceAt(from)
	if mover == NoPiece {
		return next, fmt.Errorf("%w: no piece on %s", ErrIllegalMove, from)
	}
	captured := p.PieceAt(to)
	if captured != NoPiece && captured.Color() == mover.Color() {
		return next, fmt.Errorf("%w: %s on %s cannot capture own piece on %s", ErrIllegalMove, mover.Color(), from, to)
	}

	us, pt := mover.Color(), mover.Type()

	if captured != NoPiece {
		next.Pieces[captured.Color()][captured.Type()] &^= m.To
	}
	next.Pieces[us][pt] = next.Pieces[us][pt]&^m.From | m.To

	next.SideToMove = p.SideToMove.Other()

	next.CastlingRights &^= cornerRights[from] | cornerRights[to]
	if pt == King {
		next.CastlingRights &^= kingRights[us]
	}

	next.EnPassant = doublePushTarget(pt, us, from, to)

	if pt == Pawn || captured != NoPiece {
		next.HalfMoveClock = 0
	} else {
		next.HalfMoveClock = p.HalfMoveClock + 1
	}

	if next.SideToMove == White {
		next.FullMoveNumber = p.FullMoveNumber + 1
	}

	next.valid = true
	return next, nil
}

// ApplyMove is MakeMove without the error; check IsValid on the result.
func (p Position) ApplyMove(m Move) Position {
	next, _ := p.MakeMove(m)
	return next
}

// doublePushTarget returns the square skipped by a two-rank pawn advance
// from its starting rank, or Empty for any other move.
func doublePushTarget(pt PieceType, us Color, from, to Square) Bitboard {
	if pt != Pawn || from.RelativeRank(us) != 1 || to.RelativeRank(us) != 3 || from.File() != to.File() {
		return Empty
	}
	return SquareMask(from.File(), (from.Rank()+to.Rank())/2)
}
