package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayout_Grid(t *testing.T) {
	t.Run("Builds the pictured grid", func(t *testing.T) {
		// Given: a layout of the 3x5 fixture, partly played
		layout := &Layout{Board: "#f#\nOF#\n#*#\n...\n..."}

		// When: the grid is built
		grid, err := layout.Grid()
		require.NoError(t, err)

		// Then: mines, states and neighbor counts match
		require.Equal(t, uint8(3), grid.Width())
		require.Equal(t, uint8(5), grid.Height())
		require.Equal(t, 3, grid.NumMines())
		require.Equal(t, 2, grid.NumMarked())
		require.Equal(t, CellView{Mine: true, Neighbors: 2, State: Marked}, grid.CellAt(1, 1))
		require.Equal(t, CellView{Mine: true, Neighbors: 2, State: Revealed}, grid.CellAt(1, 2))
		require.Equal(t, CellView{Neighbors: 2, State: Marked}, grid.CellAt(1, 0))
		require.Equal(t, uint8(3), grid.CellAt(0, 2).Neighbors)
		require.True(t, grid.Lost())
	})

	t.Run("Accepts CRLF line endings", func(t *testing.T) {
		// Given: the fixture saved with Windows line endings
		layout, err := LoadLayout("seed: 2\r\nboard: \"###\\r\\nOO#\\r\\n#O#\\r\\n###\\r\\n###\\r\\n\"\r\n")
		require.NoError(t, err)

		// When: the grid is built
		grid, err := layout.Grid()
		require.NoError(t, err)

		// Then: it matches the same board with plain newlines
		expected, err := (&Layout{Board: "###\nOO#\n#O#\n###\n###"}).Grid()
		require.NoError(t, err)
		require.Equal(t, expected.ToView(), grid.ToView())
		require.Equal(t, uint8(3), grid.Width())
	})

	t.Run("Rejects ragged rows", func(t *testing.T) {
		_, err := (&Layout{Board: "###\n##"}).Grid()
		require.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("Rejects unknown glyphs", func(t *testing.T) {
		_, err := (&Layout{Board: "#x#"}).Grid()
		require.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("Rejects an empty board", func(t *testing.T) {
		_, err := (&Layout{}).Grid()
		require.ErrorIs(t, err, ErrInvalidLayout)
	})
}

func TestLayout_RoundTrip(t *testing.T) {
	// Given: a played grid
	grid := NewGrid(9, 9)
	grid.PlaceMines(10, rand.New(rand.NewSource(5)))
	grid.CalcNeighbors()
	grid.ToggleMarked(Pos{X: 4, Y: 4})
	grid.Reveal(Pos{X: 0, Y: 0})

	// When: it is serialized and loaded back
	serialized := grid.Layout(5).Serialize()
	layout, err := LoadLayout(serialized)
	require.NoError(t, err)
	require.Equal(t, int64(5), layout.Seed)

	loaded, err := layout.Grid()
	require.NoError(t, err)

	// Then: the grids are identical
	require.Equal(t, grid.ToView(), loaded.ToView())
}

func TestLoadLayout(t *testing.T) {
	layout, err := LoadLayout("seed: 3\nboard: |-\n  #O\n  ..\n")
	require.NoError(t, err)
	require.Equal(t, &Layout{Seed: 3, Board: "#O\n.."}, layout)

	_, err = LoadLayout("seed: [")
	require.ErrorIs(t, err, ErrInvalidLayout)
}
