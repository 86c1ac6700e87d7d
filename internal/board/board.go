package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gomoku-core/internal/apperror"
	"github.com/rocketscienceinc/gomoku-core/internal/entity"
)

const (
	Size     = 19
	MaxIndex = Size - 1
)

// Board is a Size x Size grid of pieces. It is a plain value: assigning a
// Board copies every cell.
type Board struct {
	cells [Size][Size]entity.Piece
}

// Empty - returns a board with every cell empty.
func Empty() Board {
	return Board{}
}

// Get - returns the piece at (row, col).
func (that *Board) Get(row, col int) (entity.Piece, error) {
	if !inBounds(row, col) {
		return entity.Empty, fmt.Errorf("%w: get (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	return that.cells[row][col], nil
}

// Set - overwrites the piece at (row, col).
func (that *Board) Set(row, col int, piece entity.Piece) error {
	if !inBounds(row, col) {
		return fmt.Errorf("%w: set (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	that.cells[row][col] = piece

	return nil
}

// Row - returns a snapshot of row i, left to right.
func (that *Board) Row(i int) Line {
	mustIndex(i)
	return sample(that, i, 0, 0, 1, Size)
}

// Column - returns a snapshot of column i, top to bottom.
func (that *Board) Column(i int) Line {
	mustIndex(i)
	return sample(that, 0, i, 1, 0, Size)
}

// DownDiagonal - returns the diagonal running towards increasing row and col.
// The start must lie on the top or left edge.
func (that *Board) DownDiagonal(row, col int) Line {
	if !inBounds(row, col) || (row != 0 && col != 0) {
		panic(fmt.Sprintf("board: down diagonal must start on the top or left edge, got (%d, %d)", row, col))
	}

	return sample(that, row, col, 1, 1, Size-row-col)
}

// UpDiagonal - returns the diagonal running towards decreasing row and
// increasing col. The start must lie on the left or bottom edge.
func (that *Board) UpDiagonal(row, col int) Line {
	if !inBounds(row, col) || (row != MaxIndex && col != 0) {
		panic(fmt.Sprintf("board: up diagonal must start on the left or bottom edge, got (%d, %d)", row, col))
	}

	return sample(that, row, col, -1, 1, row-col+1)
}

// ParseBoard - reads a board written as Size rows of Size notation symbols.
// Blank lines and surrounding whitespace are ignored.
func ParseBoard(text string) (Board, error) {
	var rows []string
	for _, row := range strings.Split(text, "\n") {
		if row = strings.TrimSpace(row); row != "" {
			rows = append(rows, row)
		}
	}

	if len(rows) != Size {
		return Board{}, fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrInvalidLength, Size, len(rows))
	}

	b := Empty()
	for r, row := range rows {
		symbols := []rune(row)
		if len(symbols) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidLength, r, len(symbols))
		}

		for c, symbol := range symbols {
			piece, err := entity.PieceFromSymbol(symbol)
			if err != nil {
				return Board{}, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			b.cells[r][c] = piece
		}
	}

	return b, nil
}

// String - renders the board in the format read by ParseBoard.
func (that Board) String() string {
	var builder strings.Builder
	builder.Grow(Size * (Size + 1))

	for r := range that.cells {
		for _, piece := range that.cells[r] {
			builder.WriteRune(piece.Symbol())
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func mustIndex(i int) {
	if i < 0 || i >= Size {
		panic(fmt.Sprintf("board: index %d out of range [0, %d)", i, Size))
	}
}
