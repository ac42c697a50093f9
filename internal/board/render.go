package board

import "strings"

// boxRule separates rows of the rendered board.
var boxRule = "-" + strings.Repeat("----", 8) + "\n"

// Render draws the board as an ASCII box, rank 8 at the top and file a on
// the left. Each cell is "| x " where x is the piece letter (uppercase for
// White, lowercase for Black) or a space.
func (p Position) Render() string {
	var sb strings.Builder
	sb.Grow(len(boxRule) * 17)

	sb.WriteString(boxRule)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteString("| ")
			sb.WriteByte(p.PieceAt(NewSquare(file, rank)).Letter())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
		sb.WriteString(boxRule)
	}
	return sb.String()
}
