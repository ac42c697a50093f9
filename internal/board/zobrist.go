package board

// Zobrist hash keys for position hashing.
// Uses PRNG with fixed seed for reproducibility.
var (
	zobristPiece      [2][6][64]uint64 // [Color][PieceType][Square]
	zobristEnPassant  [8]uint64        // One per file
	zobristCastling   [16]uint64       // All 16 castling combinations
	zobristSideToMove uint64           // XOR when black to move
)

func init() {
	initZobrist()
}

type prng struct {
	state uint64
}

// xorshift64*
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := Square(0); sq < NoSquare; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	for i := 0; i < 16; i++ {
		zobristCastling[i] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// Hash returns the Zobrist key of the position: piece placement, side to
// move, castling rights and en-passant file. The en-passant file only counts
// when a pawn of the side to move stands ready to capture. Clocks and
// validity are not part of the key, so repeated placements hash alike.
func (p Position) Hash() uint64 {
	var hash uint64

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				hash ^= zobristPiece[c][pt][bb.PopLSB()]
			}
		}
	}

	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}

	hash ^= zobristCastling[p.CastlingRights&AllCastling]

	if sq := p.EnPassant.Square(); sq != NoSquare && p.enPassantCapturable() {
		hash ^= zobristEnPassant[sq.File()]
	}

	return hash
}

// enPassantCapturable reports whether a pawn of the side to move sits beside
// the pawn that just made the double push.
func (p Position) enPassantCapturable() bool {
	pushed := p.EnPassant.South()
	if p.SideToMove == Black {
		pushed = p.EnPassant.North()
	}
	return (pushed.East()|pushed.West())&p.Pieces[p.SideToMove][Pawn] != 0
}
