package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gomoku-core/internal/apperror"
	"github.com/rocketscienceinc/gomoku-core/internal/entity"
)

// Line is an immutable snapshot of up to Size pieces taken along a row,
// column or diagonal. Only the first size entries are meaningful; the rest
// stay Empty.
type Line struct {
	cells [Size]entity.Piece
	size  int
}

// sample reads length cells starting at (row, col), stepping by
// (rstride, cstride) each time. Callers guarantee every index stays on the board.
func sample(b *Board, row, col, rstride, cstride, length int) Line {
	line := Line{size: length}
	for i := 0; i < length; i++ {
		line.cells[i] = b.cells[row+i*rstride][col+i*cstride]
	}

	return line
}

// LineOf - builds a line from notation: '-' empty, 'X' black, 'O' white.
func LineOf(notation string) (Line, error) {
	symbols := []rune(notation)
	if len(symbols) == 0 || len(symbols) > Size {
		return Line{}, fmt.Errorf("%w: %d symbols, want 1..%d", apperror.ErrInvalidLength, len(symbols), Size)
	}

	line := Line{size: len(symbols)}
	for i, symbol := range symbols {
		piece, err := entity.PieceFromSymbol(symbol)
		if err != nil {
			return Line{}, fmt.Errorf("position %d: %w", i, err)
		}
		line.cells[i] = piece
	}

	return line, nil
}

// MustLineOf - like LineOf but panics on bad notation. Meant for fixtures.
func MustLineOf(notation string) Line {
	line, err := LineOf(notation)
	if err != nil {
		panic(err)
	}

	return line
}

func (that Line) Size() int {
	return that.size
}

// At - returns the i-th piece of the line.
func (that Line) At(i int) entity.Piece {
	if i < 0 || i >= that.size {
		panic(fmt.Sprintf("board: line index %d out of range [0, %d)", i, that.size))
	}

	return that.cells[i]
}

// Pieces - returns a copy of the valid part of the line.
func (that Line) Pieces() []entity.Piece {
	pieces := make([]entity.Piece, that.size)
	copy(pieces, that.cells[:that.size])

	return pieces
}

func (that Line) Equal(other Line) bool {
	return that.size == other.size && that.cells == other.cells
}

func (that Line) String() string {
	var builder strings.Builder
	builder.Grow(that.size + 2)

	builder.WriteByte('[')
	for _, piece := range that.cells[:that.size] {
		builder.WriteRune(piece.Symbol())
	}
	builder.WriteByte(']')

	return builder.String()
}
