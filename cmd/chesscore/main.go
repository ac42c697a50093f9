// Command chesscore parses a position, plays coordinate moves on it and
// prints the board after each one.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/diagram"
	"github.com/hailam/chesscore/internal/game"
)

var (
	fenFlag    = flag.String("fen", "", "starting position in FEN (default: standard start, or $CHESSCORE_FEN)")
	movesFlag  = flag.String("moves", "", "space-separated coordinate moves, e.g. \"e2e4 e7e5\"")
	undoFlag   = flag.Int("undo", 0, "number of moves to take back after playing")
	pngFlag    = flag.String("png", "", "write a diagram of the final position to this file")
	sizeFlag   = flag.Int("size", 480, "diagram edge length in pixels")
	debugFlag  = flag.Bool("debug", false, "log every move")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "chesscore"})
	if *debugFlag {
		logger.SetLevel(log.DebugLevel)
	}

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			logger.Fatal("could not create CPU profile", "err", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatal("could not start CPU profile", "err", err)
		}
		defer pprof.StopCPUProfile()
		logger.Info("CPU profiling enabled", "path", profilePath)
	}

	if err := run(logger); err != nil {
		logger.Error(err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	fen := *fenFlag
	if fen == "" {
		fen = os.Getenv("CHESSCORE_FEN")
	}
	if fen == "" {
		fen = board.StartFEN
	}

	g, err := game.New(fen, game.WithLogger(logger))
	if err != nil {
		return err
	}
	fmt.Println(g.Current().Render())

	for _, s := range strings.Fields(*movesFlag) {
		m, err := board.ParseMove(s)
		if err != nil {
			return fmt.Errorf("move %q: %w", s, err)
		}
		pos := g.ApplyMove(m)
		if !pos.IsValid() {
			fmt.Printf("%s: invalid move, taking it back\n", s)
			if _, err := g.Undo(); err != nil {
				return err
			}
			continue
		}
		fmt.Printf("%s\n%s%s\n", s, pos.Render(), pos.ToFEN())
		if g.IsThreefoldRepetition() {
			fmt.Println("threefold repetition")
		}
	}

	for i := 0; i < *undoFlag; i++ {
		if _, err := g.Undo(); err != nil {
			logger.Warn("nothing left to undo", "undone", i)
			break
		}
	}
	if *undoFlag > 0 {
		fmt.Printf("after undo\n%s%s\n", g.Current().Render(), g.Current().ToFEN())
	}

	if *pngFlag != "" {
		return writeDiagram(g.Current(), *pngFlag, *sizeFlag)
	}
	return nil
}

func writeDiagram(pos board.Position, path string, size int) error {
	opts := diagram.DefaultOptions()
	opts.Size = size

	img, err := diagram.Render(pos, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
