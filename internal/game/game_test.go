package game

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/hailam/chesscore/internal/board"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func mustMove(t *testing.T, s string) board.Move {
	t.Helper()
	m, err := board.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return m
}

func TestUndoRestoresEarlierPosition(t *testing.T) {
	g, err := New(board.StartFEN, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := g.ApplyMove(mustMove(t, "e2e4"))
	g.ApplyMove(mustMove(t, "e7e5"))
	third := g.ApplyMove(mustMove(t, "g1f3"))

	undone, err := g.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if undone != third {
		t.Error("first Undo should return the last position")
	}
	if _, err := g.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	if diff := cmp.Diff(first, g.Current(), cmp.AllowUnexported(board.Position{})); diff != "" {
		t.Errorf("position after undo mismatch (-want +got):\n%s", diff)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	g := NewFromPosition(board.NewPosition(), WithLogger(quietLogger()))

	pos, err := g.Undo()
	if !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("Undo error = %v, want ErrEmptyHistory", err)
	}
	if pos != board.NewPosition() {
		t.Error("Undo on a fresh game should return the initial position")
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
}

func TestApplyMoveAppendsInvalidResults(t *testing.T) {
	g := NewFromPosition(board.NewPosition(), WithLogger(quietLogger()))

	bad := g.ApplyMove(mustMove(t, "e4e5"))
	if bad.IsValid() {
		t.Fatal("move from an empty square should be invalid")
	}
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
	if g.Current().IsValid() {
		t.Error("invalid result should be the current position")
	}

	if _, err := g.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !g.Current().IsValid() {
		t.Error("undo should restore the valid starting position")
	}
}

func TestInvalidEntryStaysUntrusted(t *testing.T) {
	g := NewFromPosition(board.NewPosition(), WithLogger(quietLogger()))

	if g.ApplyMove(mustMove(t, "e4e5")).IsValid() {
		t.Fatal("move from an empty square should be invalid")
	}
	next := g.ApplyMove(mustMove(t, "e2e4"))
	if next.IsValid() {
		t.Error("a move on top of an invalid position should stay invalid")
	}
	if g.Current().IsValid() || g.Len() != 3 {
		t.Errorf("Current().IsValid() = %v, Len() = %d; want false, 3", g.Current().IsValid(), g.Len())
	}
	if got := g.Current().PieceAt(board.E2); got != board.WhitePawn {
		t.Errorf("piece on e2 = %v, want the unmoved white pawn", got)
	}

	for i := 0; i < 2; i++ {
		if _, err := g.Undo(); err != nil {
			t.Fatalf("Undo: %v", err)
		}
	}
	if pos := g.ApplyMove(mustMove(t, "e2e4")); !pos.IsValid() {
		t.Error("after undoing back to a valid position, play should resume")
	}
}

func TestNewRejectsMalformedFEN(t *testing.T) {
	g, err := New("not a fen")
	if !errors.Is(err, board.ErrMalformedNotation) {
		t.Errorf("New error = %v, want ErrMalformedNotation", err)
	}
	if g != nil {
		t.Error("New should return nil on error")
	}
}

func TestPositionsIsACopy(t *testing.T) {
	g := NewFromPosition(board.NewPosition(), WithLogger(quietLogger()))
	g.ApplyMove(mustMove(t, "d2d4"))

	ps := g.Positions()
	ps[0] = board.Position{}

	if !g.Positions()[0].IsValid() {
		t.Error("modifying the returned slice changed the history")
	}
}

func TestThreefoldRepetition(t *testing.T) {
	g := NewFromPosition(board.NewPosition(), WithLogger(quietLogger()))
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	for round := 0; round < 2; round++ {
		for _, s := range shuffle {
			if pos := g.ApplyMove(mustMove(t, s)); !pos.IsValid() {
				t.Fatalf("%s invalid", s)
			}
		}
		if got := g.Repetitions(); got != round+1 {
			t.Errorf("round %d: Repetitions() = %d, want %d", round, got, round+1)
		}
	}

	if !g.IsThreefoldRepetition() {
		t.Error("starting position occurred three times")
	}

	g.ApplyMove(mustMove(t, "e2e4"))
	if g.Repetitions() != 0 || g.IsThreefoldRepetition() {
		t.Error("a new position has no repetitions")
	}
}

func TestRepetitionAfterDoublePush(t *testing.T) {
	g := NewFromPosition(board.NewPosition(), WithLogger(quietLogger()))
	for _, s := range []string{"e2e4", "g8f6", "g1f3", "f6g8", "f3g1"} {
		if pos := g.ApplyMove(mustMove(t, s)); !pos.IsValid() {
			t.Fatalf("%s invalid", s)
		}
	}

	// The en-passant target left by e2e4 cannot be captured, so the position
	// repeats once it is gone.
	if got := g.Repetitions(); got != 1 {
		t.Errorf("Repetitions() = %d, want 1", got)
	}
}

func TestQuietLoggerSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.InfoLevel)

	g := NewFromPosition(board.NewPosition(), WithLogger(logger))
	g.ApplyMove(mustMove(t, "e2e4"))
	_, _ = g.Undo()

	if buf.Len() != 0 {
		t.Errorf("unexpected output at info level:\n%s", buf.String())
	}
}

func TestLogsMoves(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	g := NewFromPosition(board.NewPosition(), WithLogger(logger))
	g.ApplyMove(mustMove(t, "e2e4"))
	g.ApplyMove(mustMove(t, "e2e4"))
	_, _ = g.Undo()

	out := buf.String()
	for _, want := range []string{"game started", "move applied", "e2e4", "invalid move appended", "move undone"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
