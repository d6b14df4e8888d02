package random

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/they4kman/minefield/game"
)

func TestDirector_Act(t *testing.T) {
	t.Run("Only picks unmarked cells", func(t *testing.T) {
		// Given: a 2x2 grid with a single unmarked cell left
		grid := game.NewGrid(2, 2)
		grid.ToggleMarked(game.Pos{X: 0, Y: 0})
		grid.ToggleMarked(game.Pos{X: 1, Y: 0})
		grid.ToggleMarked(game.Pos{X: 0, Y: 1})

		director := New(rand.New(rand.NewSource(1)))

		// When: the director acts
		action, ok := director.Act(grid.Snapshot())

		// Then: it reveals the remaining cell
		require.True(t, ok)
		require.Equal(t, game.RevealAt(1, 1), action)
	})

	t.Run("Nothing left to do", func(t *testing.T) {
		grid := game.NewGrid(2, 2)
		grid.Reveal(game.Pos{X: 0, Y: 0})

		_, ok := New(rand.New(rand.NewSource(1))).Act(grid.Snapshot())
		require.False(t, ok)
	})
}
