package random

import (
	"github.com/they4kman/minefield/game"
)

// Director reveals a uniformly random unmarked cell on every act
type Director struct {
	Rand game.Rand
}

func New(rng game.Rand) *Director {
	return &Director{Rand: rng}
}

func (director *Director) Act(snapshot *game.Snapshot) (game.Action, bool) {
	unmarkedCells := snapshot.UnmarkedCells()
	if len(unmarkedCells) == 0 {
		return game.Action{}, false
	}

	pos := unmarkedCells[director.Rand.Intn(len(unmarkedCells))]
	return game.RevealAt(pos.X, pos.Y), true
}
