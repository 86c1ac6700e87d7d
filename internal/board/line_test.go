package board

import (
	"strings"
	"testing"

	"github.com/rocketscienceinc/gomoku-core/internal/apperror"
	"github.com/rocketscienceinc/gomoku-core/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineOf(t *testing.T) {
	t.Run("Renders back to its notation", func(t *testing.T) {
		// When: building a line from notation
		line, err := LineOf("---XXO--OOOO--")

		// Then: it renders in brackets with the same symbols
		require.NoError(t, err)
		assert.Equal(t, 14, line.Size())
		assert.Equal(t, "[---XXO--OOOO--]", line.String())
	})

	t.Run("Maps symbols to pieces", func(t *testing.T) {
		line, err := LineOf("-XO")
		require.NoError(t, err)

		assert.Equal(t, entity.Empty, line.At(0))
		assert.Equal(t, entity.PlayerA, line.At(1))
		assert.Equal(t, entity.PlayerB, line.At(2))
	})

	t.Run("Rejects unknown symbols", func(t *testing.T) {
		// When: the notation contains a lowercase x
		_, err := LineOf("--x--")

		// Then: ErrInvalidNotation should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidNotation)
	})

	t.Run("Rejects empty and oversized notation", func(t *testing.T) {
		_, err := LineOf("")
		require.ErrorIs(t, err, apperror.ErrInvalidLength)

		_, err = LineOf(strings.Repeat("-", Size+1))
		require.ErrorIs(t, err, apperror.ErrInvalidLength)

		_, err = LineOf(strings.Repeat("X", Size))
		require.NoError(t, err)
	})

	t.Run("MustLineOf panics on bad notation", func(t *testing.T) {
		assert.Panics(t, func() { MustLineOf("?") })
		assert.NotPanics(t, func() { MustLineOf("X") })
	})
}

func TestLine_Equal(t *testing.T) {
	t.Run("Same size and cells", func(t *testing.T) {
		assert.True(t, MustLineOf("-XO").Equal(MustLineOf("-XO")))
	})

	t.Run("Different cells", func(t *testing.T) {
		assert.False(t, MustLineOf("-XO").Equal(MustLineOf("-OX")))
	})

	t.Run("Different size with the same prefix", func(t *testing.T) {
		assert.False(t, MustLineOf("---").Equal(MustLineOf("----")))
	})

	t.Run("Sampled line equals its notation", func(t *testing.T) {
		// Given: a board with black stones on the main diagonal ends
		b := Empty()
		require.NoError(t, b.Set(0, 0, entity.PlayerA))
		require.NoError(t, b.Set(MaxIndex, MaxIndex, entity.PlayerA))

		// Then: the sampled diagonal matches the fixture
		expected := MustLineOf("X" + strings.Repeat("-", Size-2) + "X")
		assert.True(t, expected.Equal(b.DownDiagonal(0, 0)))
	})
}

func TestLine_Snapshot(t *testing.T) {
	// Given: a row taken from a board
	b := Empty()
	require.NoError(t, b.Set(0, 3, entity.PlayerB))
	row := b.Row(0)

	// When: the board changes afterwards
	require.NoError(t, b.Set(0, 3, entity.PlayerA))
	require.NoError(t, b.Set(0, 4, entity.PlayerA))

	// Then: the line still holds the old pieces
	assert.Equal(t, entity.PlayerB, row.At(3))
	assert.Equal(t, entity.Empty, row.At(4))
}

func TestLine_Pieces(t *testing.T) {
	// Given: a short line
	line := MustLineOf("XO-")

	// When: taking its pieces and mutating the copy
	pieces := line.Pieces()
	pieces[0] = entity.PlayerB

	// Then: the copy has the valid entries only and the line is unchanged
	assert.Len(t, pieces, 3)
	assert.Equal(t, entity.PlayerA, line.At(0))
}

func TestLine_AtOutOfRange(t *testing.T) {
	line := MustLineOf("XO")

	assert.Panics(t, func() { line.At(2) })
	assert.Panics(t, func() { line.At(-1) })
}
