package game

import (
	"fmt"
)

type Pos struct {
	X, Y uint8
}

func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

type Cell struct {
	mine      bool
	neighbors uint8
	state     CellState
}

// CellView is a read-only copy of a cell, handed out to renderers and
// directors. It never aliases the grid's own cells.
type CellView struct {
	Mine      bool
	Neighbors uint8
	State     CellState
}

func (view CellView) IsRevealed() bool {
	return view.State == Revealed
}

func (view CellView) IsMarked() bool {
	return view.State == Marked
}

func (cell *Cell) view() CellView {
	return CellView{
		Mine:      cell.mine,
		Neighbors: cell.neighbors,
		State:     cell.state,
	}
}

func (cell *Cell) serialize() string {
	switch {
	case cell.mine:
		switch cell.state {
		case Revealed:
			return "*"
		case Marked:
			return "F"
		default:
			return "O"
		}
	case cell.state == Marked:
		return "f"
	case cell.state == Revealed:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c rune) bool {
	switch c {
	case '*', 'F', 'O':
		cell.mine = true

		switch c {
		case '*':
			cell.state = Revealed
		case 'F':
			cell.state = Marked
		default:
			cell.state = Unmarked
		}
	case 'f':
		cell.state = Marked
	case '.':
		cell.state = Revealed
	case '#':
		cell.state = Unmarked
	default:
		return false
	}

	return true
}

func (cell *Cell) toggleMarked() bool {
	switch cell.state {
	case Unmarked:
		cell.state = Marked
	case Marked:
		cell.state = Unmarked
	default:
		return false
	}
	return true
}

func (cell *Cell) reset() {
	*cell = Cell{}
}
