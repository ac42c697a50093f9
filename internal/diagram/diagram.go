// Package diagram draws a Position as an image for inspection.
//
// The board is described as an SVG document, rasterized with oksvg/rasterx at
// a multiple of the requested size and scaled down for smooth edges.
package diagram

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/hailam/chesscore/internal/board"
)

// cell is the edge of one square in SVG user units.
const cell = 100

// Options controls the diagram appearance.
type Options struct {
	Size        int     // Output edge length in pixels
	RenderScale float64 // Rasterize at Size*RenderScale, then scale down
	Light       color.RGBA
	Dark        color.RGBA
	WhitePiece  color.RGBA
	BlackPiece  color.RGBA
}

// DefaultOptions returns a 480px diagram rendered at 3x.
func DefaultOptions() Options {
	return Options{
		Size:        480,
		RenderScale: 3.0,
		Light:       color.RGBA{0xF0, 0xD9, 0xB5, 0xFF},
		Dark:        color.RGBA{0xB5, 0x88, 0x63, 0xFF},
		WhitePiece:  color.RGBA{0xFA, 0xFA, 0xFA, 0xFF},
		BlackPiece:  color.RGBA{0x22, 0x22, 0x22, 0xFF},
	}
}

// shapes holds one outline per piece type, in units relative to the square
// center. Pawns are drawn as circles.
var shapes = [6][]image.Point{
	board.Knight: pts(-26, 30, 0, -32, 26, 30),
	board.Bishop: pts(0, -34, 28, 0, 0, 34, -28, 0),
	board.Rook:   pts(-26, -26, 26, -26, 26, 26, -26, 26),
	board.Queen:  pts(-14, -32, 14, -32, 32, -14, 32, 14, 14, 32, -14, 32, -32, 14, -32, -14),
	board.King:   pts(-10, -34, 10, -34, 10, -10, 34, -10, 34, 10, 10, 10, 10, 34, -10, 34, -10, 10, -34, 10, -34, -10, -10, -10),
}

func pts(xy ...int) []image.Point {
	out := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, image.Pt(xy[i], xy[i+1]))
	}
	return out
}

// SVG returns the SVG document for pos: 64 squares with rank 8 at the top,
// then one element per piece with id "piece-<square>", from h1 to a8.
func SVG(pos board.Position, opts Options) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		8*cell, 8*cell, 8*cell, 8*cell)

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			fill := opts.Light
			if (file+rank)%2 == 0 {
				fill = opts.Dark
			}
			x, y := file*cell, (7-rank)*cell
			fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n", x, y, cell, cell, hex(fill))
		}
	}

	for _, sq := range pos.AllOccupied().Squares() {
		writePiece(&sb, pos.PieceAt(sq), sq, opts)
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writePiece(sb *strings.Builder, piece board.Piece, sq board.Square, opts Options) {
	fill, stroke := opts.WhitePiece, opts.BlackPiece
	if piece.Color() == board.Black {
		fill, stroke = opts.BlackPiece, opts.WhitePiece
	}
	cx, cy := sq.File()*cell+cell/2, (7-sq.Rank())*cell+cell/2
	style := fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="4"`, hex(fill), hex(stroke))

	if piece.Type() == board.Pawn {
		fmt.Fprintf(sb, `<circle id="piece-%s" cx="%d" cy="%d" r="20" %s/>`+"\n", sq, cx, cy, style)
		return
	}

	outline := shapes[piece.Type()]
	points := make([]string, len(outline))
	for i, p := range outline {
		points[i] = fmt.Sprintf("%d,%d", cx+p.X, cy+p.Y)
	}
	fmt.Fprintf(sb, `<polygon id="piece-%s" points="%s" %s/>`+"\n", sq, strings.Join(points, " "), style)
}

// Render rasterizes pos into an RGBA image of opts.Size pixels square.
func Render(pos board.Position, opts Options) (*image.RGBA, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("diagram: invalid size %d", opts.Size)
	}
	if opts.RenderScale < 1 {
		opts.RenderScale = 1
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(SVG(pos, opts)))
	if err != nil {
		return nil, fmt.Errorf("diagram: parse svg: %w", err)
	}

	renderSize := int(float64(opts.Size) * opts.RenderScale)
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	hi := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, hi, hi.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	if renderSize == opts.Size {
		return hi, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.CatmullRom.Scale(out, out.Bounds(), hi, hi.Bounds(), draw.Src, nil)
	return out, nil
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
