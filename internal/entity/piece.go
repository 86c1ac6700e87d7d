package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-core/internal/apperror"
)

// Piece is the state of a single board cell.
type Piece uint8

const (
	Empty Piece = iota
	PlayerA
	PlayerB
)

const (
	SymbolEmpty   = '-'
	SymbolPlayerA = 'X'
	SymbolPlayerB = 'O'
)

// Symbol - returns the notation character of the piece.
func (that Piece) Symbol() rune {
	switch that {
	case PlayerA:
		return SymbolPlayerA
	case PlayerB:
		return SymbolPlayerB
	default:
		return SymbolEmpty
	}
}

func (that Piece) String() string {
	switch that {
	case PlayerA:
		return "black"
	case PlayerB:
		return "white"
	default:
		return "empty"
	}
}

// PieceFromSymbol - parses a single notation character.
func PieceFromSymbol(symbol rune) (Piece, error) {
	switch symbol {
	case SymbolEmpty:
		return Empty, nil
	case SymbolPlayerA:
		return PlayerA, nil
	case SymbolPlayerB:
		return PlayerB, nil
	default:
		return Empty, fmt.Errorf("%w: unexpected symbol %q", apperror.ErrInvalidNotation, symbol)
	}
}
