package board

import (
	"strings"
	"testing"
)

const startRender = `---------------------------------
| r | n | b | q | k | b | n | r |
---------------------------------
| p | p | p | p | p | p | p | p |
---------------------------------
|   |   |   |   |   |   |   |   |
---------------------------------
|   |   |   |   |   |   |   |   |
---------------------------------
|   |   |   |   |   |   |   |   |
---------------------------------
|   |   |   |   |   |   |   |   |
---------------------------------
| P | P | P | P | P | P | P | P |
---------------------------------
| R | N | B | Q | K | B | N | R |
---------------------------------
`

func TestRenderStartingPosition(t *testing.T) {
	if got := NewPosition().Render(); got != startRender {
		t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, startRender)
	}
}

// cellAt extracts the letter drawn for file/rank from a rendered board.
func cellAt(render string, file, rank int) byte {
	lines := strings.Split(render, "\n")
	row := lines[1+2*(7-rank)]
	return row[2+4*file]
}

func TestRenderMatchesBitboards(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		pos := mustParse(t, fen)
		out := pos.Render()
		for rank := 0; rank < 8; rank++ {
			for file := 0; file < 8; file++ {
				want := byte(' ')
				bb := SquareMask(file, rank)
				for c := White; c <= Black; c++ {
					for pt := Pawn; pt <= King; pt++ {
						if pos.Pieces[c][pt]&bb != 0 {
							want = PieceLetter(pt, c)
						}
					}
				}
				if got := cellAt(out, file, rank); got != want {
					t.Errorf("%s: cell %s = %q, want %q", fen, NewSquare(file, rank), got, want)
				}
			}
		}
	}
}

func TestRenderAfterMove(t *testing.T) {
	out := NewPosition().ApplyMove(NewMove(E2, E4)).String()
	if cellAt(out, 4, 1) != ' ' || cellAt(out, 4, 3) != 'P' {
		t.Errorf("e2e4 not reflected in render:\n%s", out)
	}
}

func TestBitboardString(t *testing.T) {
	got := (A8.Bitboard() | H1.Bitboard()).String()
	lines := strings.Split(got, "\n")
	if lines[0] != "8 1 . . . . . . . " {
		t.Errorf("rank 8 line = %q", lines[0])
	}
	if lines[7] != "1 . . . . . . . 1 " {
		t.Errorf("rank 1 line = %q", lines[7])
	}
}
