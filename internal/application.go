package application

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/gomoku-core/internal/board"
	"github.com/rocketscienceinc/gomoku-core/internal/config"
)

// RunApp - loads the configured board and scans every line of it.
func RunApp(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	b, err := loadBoard(conf.BoardFile)
	if err != nil {
		return fmt.Errorf("could not load board: %w", err)
	}

	if !conf.HideBoard {
		if _, err = io.WriteString(out, b.String()); err != nil {
			return fmt.Errorf("could not print board: %w", err)
		}
	}

	counts := ScanLines(logger, &b)

	log.Info("Line scan finished",
		"rows", counts[board.KindRow],
		"columns", counts[board.KindCol],
		"up_diagonals", counts[board.KindUpDiag],
		"down_diagonals", counts[board.KindDownDiag],
	)

	return nil
}

// ScanLines - walks every line of b and logs it at debug level. It returns
// how many lines of each kind were seen.
func ScanLines(logger *slog.Logger, b *board.Board) map[board.Kind]int {
	log := logger.With("component", "scanner")

	counts := make(map[board.Kind]int)
	enumerator := board.On(b)
	for {
		state := enumerator.State()
		line, ok := enumerator.Next()
		if !ok {
			break
		}

		counts[state.Kind]++
		log.Debug("Line", "state", state.String(), "size", line.Size(), "line", line.String())
	}

	return counts
}

func loadBoard(path string) (board.Board, error) {
	if path == "" {
		return board.Empty(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return board.Board{}, fmt.Errorf("failed to read board file: %w", err)
	}

	b, err := board.ParseBoard(string(data))
	if err != nil {
		return board.Board{}, fmt.Errorf("failed to parse board file %s: %w", path, err)
	}

	return b, nil
}
