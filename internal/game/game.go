// Package game keeps the ordered history of positions in a game in progress.
package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/hailam/chesscore/internal/board"
)

// ErrEmptyHistory is returned by Undo when only the initial position remains.
var ErrEmptyHistory = errors.New("empty history")

// Game is an append-only-with-undo sequence of positions. The first entry is
// the initial position and is never removed.
//
// A Game is not safe for concurrent use; callers that share one must
// serialize ApplyMove and Undo. The positions it hands out are values and
// may be read from any goroutine.
type Game struct {
	positions []board.Position
	logger    *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for move and undo events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New starts a game from a FEN record.
func New(fen string, opts ...Option) (*Game, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return NewFromPosition(pos, opts...), nil
}

// NewFromPosition starts a game from an existing position.
func NewFromPosition(pos board.Position, opts ...Option) *Game {
	g := &Game{
		positions: []board.Position{pos},
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger.Debug("game started", "fen", pos.ToFEN())
	return g
}

// Current returns the latest position.
func (g *Game) Current() board.Position {
	return g.positions[len(g.positions)-1]
}

// Len returns the number of positions, including the initial one.
func (g *Game) Len() int {
	return len(g.positions)
}

// Positions returns a copy of the history, oldest first.
func (g *Game) Positions() []board.Position {
	out := make([]board.Position, len(g.positions))
	copy(out, g.positions)
	return out
}

// ApplyMove applies m to the current position and appends the result, even
// when it is invalid. Callers that care should check IsValid.
func (g *Game) ApplyMove(m board.Move) board.Position {
	next, err := g.Current().MakeMove(m)
	g.positions = append(g.positions, next)

	switch {
	case err != nil:
		g.logger.Warn("invalid move appended", "move", m, "ply", len(g.positions)-1, "err", err)
	case g.logger.GetLevel() <= log.DebugLevel:
		g.logger.Debug("move applied", "move", m, "ply", len(g.positions)-1, "fen", next.ToFEN())
	}
	return next
}

// Undo removes and returns the latest position. When only the initial
// position remains it returns that position unchanged and ErrEmptyHistory.
func (g *Game) Undo() (board.Position, error) {
	if len(g.positions) == 1 {
		return g.positions[0], ErrEmptyHistory
	}

	last := g.positions[len(g.positions)-1]
	g.positions = g.positions[:len(g.positions)-1]
	if g.logger.GetLevel() <= log.DebugLevel {
		g.logger.Debug("move undone", "ply", len(g.positions), "fen", g.Current().ToFEN())
	}
	return last, nil
}

// Repetitions returns how many earlier valid positions share the current
// position's Zobrist key: placement, side to move, castling rights and an
// en-passant target only when a capture on it is possible.
func (g *Game) Repetitions() int {
	cur := g.Current()
	if !cur.IsValid() {
		return 0
	}
	key := cur.Hash()

	n := 0
	for _, p := range g.positions[:len(g.positions)-1] {
		if p.IsValid() && p.Hash() == key {
			n++
		}
	}
	return n
}

// IsThreefoldRepetition reports whether the current position has occurred
// at least three times.
func (g *Game) IsThreefoldRepetition() bool {
	return g.Repetitions() >= 2
}
