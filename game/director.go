package game

import (
	"fmt"
)

// Director plays the game in place of a human
type Director interface {
	/**
	 * Choose the next action from what the player can see. ok is false when
	 * the director has nothing left to do.
	 */
	Act(snapshot *Snapshot) (action Action, ok bool)
}

// Snapshot is a detached copy of what a player can see of the grid. Mines
// are only reported on revealed cells; nothing on it reaches back into the
// grid.
type Snapshot struct {
	width, height uint8
	views         []CellView
}

// Snapshot copies the player-visible state of the grid
func (grid *Grid) Snapshot() *Snapshot {
	views := grid.ToView()
	for i := range views {
		if views[i].State != Revealed {
			views[i].Mine = false
		}
	}

	return &Snapshot{
		width:  grid.width,
		height: grid.height,
		views:  views,
	}
}

func (snapshot *Snapshot) Width() uint8 {
	return snapshot.width
}

func (snapshot *Snapshot) Height() uint8 {
	return snapshot.height
}

func (snapshot *Snapshot) index(pos Pos) int {
	if pos.X >= snapshot.width || pos.Y >= snapshot.height {
		panic(fmt.Sprintf("position %v out of bounds for %dx%d snapshot", pos, snapshot.width, snapshot.height))
	}
	return int(pos.X) + int(pos.Y)*int(snapshot.width)
}

func (snapshot *Snapshot) CellAt(x, y uint8) CellView {
	return snapshot.views[snapshot.index(Pos{X: x, Y: y})]
}

// Neighbors returns the in-bounds positions surrounding pos
func (snapshot *Snapshot) Neighbors(pos Pos) []Pos {
	snapshot.index(pos)

	neighbors := make([]Pos, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		x, y := int(pos.X)+offset[0], int(pos.Y)+offset[1]
		if x >= 0 && y >= 0 && x < int(snapshot.width) && y < int(snapshot.height) {
			neighbors = append(neighbors, Pos{X: uint8(x), Y: uint8(y)})
		}
	}
	return neighbors
}

// UnmarkedCells lists the positions still open to reveal, row by row
func (snapshot *Snapshot) UnmarkedCells() []Pos {
	var unmarked []Pos
	for i, view := range snapshot.views {
		if view.State == Unmarked {
			unmarked = append(unmarked, Pos{
				X: uint8(i % int(snapshot.width)),
				Y: uint8(i / int(snapshot.width)),
			})
		}
	}
	return unmarked
}
