package game

import (
	"github.com/gammazero/deque"
)

// Reveal exposes the cell at pos. Marked and already-revealed cells are left
// untouched, and false is returned. Revealing a cell with no surrounding mines
// also reveals the connected region of such cells, plus its border.
func (grid *Grid) Reveal(pos Pos) bool {
	cell := grid.cellAt(pos)
	if cell.state != Unmarked {
		return false
	}

	cell.state = Revealed

	if !cell.mine && cell.neighbors == 0 {
		grid.flood(pos)
	}
	return true
}

// flood expands from an empty, revealed origin. Each cell moves to Revealed
// at most once, so the work stack drains within NumCells pushes.
func (grid *Grid) flood(origin Pos) {
	var todo deque.Deque
	todo.PushBack(origin)

	for todo.Len() > 0 {
		pos := todo.PopBack().(Pos)

		grid.eachNeighbor(pos, func(neighbor Pos) {
			cell := grid.cellAt(neighbor)
			if cell.state != Unmarked {
				return
			}

			cell.state = Revealed
			if !cell.mine && cell.neighbors == 0 {
				todo.PushBack(neighbor)
			}
		})
	}
}
