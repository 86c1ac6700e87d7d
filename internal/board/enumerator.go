package board

import (
	"fmt"
	"iter"
)

// Kind tags which family of lines a State points at.
type Kind uint8

const (
	KindRow Kind = iota
	KindCol
	KindUpDiag
	KindDownDiag
	KindFinished
)

func (that Kind) String() string {
	switch that {
	case KindRow:
		return "Row"
	case KindCol:
		return "Col"
	case KindUpDiag:
		return "UpDiag"
	case KindDownDiag:
		return "DownDiag"
	default:
		return "Finished"
	}
}

// State is a position in the traversal of all lines.
// Row and Col states only use Row as the line index.
type State struct {
	Kind Kind
	Row  int
	Col  int
}

func RowState(i int) State {
	return State{Kind: KindRow, Row: i}
}

func ColState(i int) State {
	return State{Kind: KindCol, Row: i}
}

func UpDiagState(row, col int) State {
	return State{Kind: KindUpDiag, Row: row, Col: col}
}

func DownDiagState(row, col int) State {
	return State{Kind: KindDownDiag, Row: row, Col: col}
}

func Finished() State {
	return State{Kind: KindFinished}
}

// Start - the first state of every traversal.
func Start() State {
	return RowState(0)
}

func (that State) String() string {
	switch that.Kind {
	case KindRow, KindCol:
		return fmt.Sprintf("%s(%d)", that.Kind, that.Row)
	case KindUpDiag, KindDownDiag:
		return fmt.Sprintf("%s(%d,%d)", that.Kind, that.Row, that.Col)
	default:
		return that.Kind.String()
	}
}

// Next - returns the state following s.
//
// Rows top to bottom, then columns left to right. Up diagonals start down the
// left edge and continue along the bottom edge; down diagonals start along the
// top edge right to left and continue down the left edge. The corners shared
// by two edges are visited once.
func Next(s State) State {
	switch s.Kind {
	case KindRow:
		if s.Row < MaxIndex {
			return RowState(s.Row + 1)
		}
		return ColState(0)
	case KindCol:
		if s.Row < MaxIndex {
			return ColState(s.Row + 1)
		}
		return UpDiagState(0, 0)
	case KindUpDiag:
		switch {
		case s.Col == 0 && s.Row < MaxIndex:
			return UpDiagState(s.Row+1, 0)
		case s.Col < MaxIndex:
			return UpDiagState(MaxIndex, s.Col+1)
		default:
			return DownDiagState(0, MaxIndex)
		}
	case KindDownDiag:
		switch {
		case s.Row == 0 && s.Col > 0:
			return DownDiagState(0, s.Col-1)
		case s.Row < MaxIndex:
			return DownDiagState(s.Row+1, 0)
		default:
			return Finished()
		}
	default:
		return Finished()
	}
}

// Produce - samples the line that s points at. It reports false for Finished.
func Produce(s State, b *Board) (Line, bool) {
	switch s.Kind {
	case KindRow:
		return b.Row(s.Row), true
	case KindCol:
		return b.Column(s.Row), true
	case KindUpDiag:
		return b.UpDiagonal(s.Row, s.Col), true
	case KindDownDiag:
		return b.DownDiagonal(s.Row, s.Col), true
	default:
		return Line{}, false
	}
}

// LineEnumerator walks every maximal row, column and diagonal of a board
// exactly once. It is not restartable: build a new one with On.
type LineEnumerator struct {
	board *Board
	state State
}

func On(b *Board) *LineEnumerator {
	return &LineEnumerator{
		board: b,
		state: Start(),
	}
}

// Next - returns the line at the current state and advances. Once the
// traversal is over it keeps returning false.
func (that *LineEnumerator) Next() (Line, bool) {
	line, ok := Produce(that.state, that.board)
	if !ok {
		return Line{}, false
	}

	that.state = Next(that.state)

	return line, true
}

// State - the state the next call to Next will produce.
func (that *LineEnumerator) State() State {
	return that.state
}

// Lines - lazily yields every line of the board in traversal order.
func (that *Board) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		enumerator := On(that)
		for {
			line, ok := enumerator.Next()
			if !ok || !yield(line) {
				return
			}
		}
	}
}

// AllLines - collects Lines into a slice.
func (that *Board) AllLines() []Line {
	lines := make([]Line, 0, 6*Size-2)
	for line := range that.Lines() {
		lines = append(lines, line)
	}

	return lines
}
