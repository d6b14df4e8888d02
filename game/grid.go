package game

import (
	"fmt"
)

// Rand is the source of randomness used for mine placement. *rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

type Grid struct {
	width, height uint8 // in number of cells
	cells         []Cell
}

// NewGrid allocates a width*height grid with every cell in its zero state.
// Mines must be placed and neighbors counted before the grid is played.
func NewGrid(width, height uint8) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, int(width)*int(height)),
	}
}

func (grid *Grid) Width() uint8 {
	return grid.width
}

func (grid *Grid) Height() uint8 {
	return grid.height
}

func (grid *Grid) NumCells() int {
	return len(grid.cells)
}

func (grid *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < int(grid.width) && y < int(grid.height)
}

func (grid *Grid) index(pos Pos) int {
	if pos.X >= grid.width || pos.Y >= grid.height {
		panic(fmt.Sprintf("position %v out of bounds for %dx%d grid", pos, grid.width, grid.height))
	}
	return int(pos.X) + int(pos.Y)*int(grid.width)
}

func (grid *Grid) cellAt(pos Pos) *Cell {
	return &grid.cells[grid.index(pos)]
}

// CellAt returns a copy of the cell at (x, y). Panics if out of bounds.
func (grid *Grid) CellAt(x, y uint8) CellView {
	return grid.cellAt(Pos{X: x, Y: y}).view()
}

// Reset restores every cell to its zero state, keeping the dimensions.
func (grid *Grid) Reset() {
	for i := range grid.cells {
		grid.cells[i].reset()
	}
}

// PlaceMines samples random positions until count distinct cells hold a mine.
// count must be less than the number of cells, or this never returns.
func (grid *Grid) PlaceMines(count uint, rng Rand) {
	for placed := uint(0); placed < count; {
		x := uint8(rng.Intn(int(grid.width)))
		y := uint8(rng.Intn(int(grid.height)))

		cell := grid.cellAt(Pos{X: x, Y: y})
		if !cell.mine {
			cell.mine = true
			placed++
		}
	}
}

// CalcNeighbors counts the mines surrounding every cell, mines included.
func (grid *Grid) CalcNeighbors() {
	for y := uint8(0); y < grid.height; y++ {
		for x := uint8(0); x < grid.width; x++ {
			pos := Pos{X: x, Y: y}

			neighbors := uint8(0)
			grid.eachNeighbor(pos, func(neighbor Pos) {
				if grid.cellAt(neighbor).mine {
					neighbors++
				}
			})
			grid.cellAt(pos).neighbors = neighbors
		}
	}
}

func (grid *Grid) eachNeighbor(pos Pos, visit func(Pos)) {
	for _, offset := range neighborOffsets {
		x, y := int(pos.X)+offset[0], int(pos.Y)+offset[1]
		if grid.InBounds(x, y) {
			visit(Pos{X: uint8(x), Y: uint8(y)})
		}
	}
}

// Neighbors returns the in-bounds positions surrounding pos
func (grid *Grid) Neighbors(pos Pos) []Pos {
	grid.index(pos)

	neighbors := make([]Pos, 0, len(neighborOffsets))
	grid.eachNeighbor(pos, func(neighbor Pos) {
		neighbors = append(neighbors, neighbor)
	})
	return neighbors
}

// ToggleMarked flips a cell between Unmarked and Marked. Revealed cells are
// left alone, in which case false is returned.
func (grid *Grid) ToggleMarked(pos Pos) bool {
	return grid.cellAt(pos).toggleMarked()
}

func (grid *Grid) NumMines() int {
	return grid.count(func(cell *Cell) bool { return cell.mine })
}

func (grid *Grid) NumMarked() int {
	return grid.count(func(cell *Cell) bool { return cell.state == Marked })
}

func (grid *Grid) count(matches func(*Cell) bool) int {
	total := 0
	for i := range grid.cells {
		if matches(&grid.cells[i]) {
			total++
		}
	}
	return total
}

func (grid *Grid) any(matches func(*Cell) bool) bool {
	for i := range grid.cells {
		if matches(&grid.cells[i]) {
			return true
		}
	}
	return false
}

func (grid *Grid) Lost() bool {
	return grid.any(func(cell *Cell) bool {
		return cell.state == Revealed && cell.mine
	})
}

func (grid *Grid) Won() bool {
	return !grid.any(func(cell *Cell) bool {
		return cell.state != Revealed && !cell.mine
	})
}

func (grid *Grid) GameOver() bool {
	return grid.Lost() || grid.Won()
}

// Message summarizes the state of the game. Loss takes precedence over a win.
func (grid *Grid) Message() string {
	switch {
	case grid.Lost():
		return messageLost
	case grid.Won():
		return messageWon
	default:
		return fmt.Sprintf(messageProgress, grid.NumMarked(), grid.NumMines())
	}
}

// ToView copies every cell, row by row
func (grid *Grid) ToView() []CellView {
	views := make([]CellView, len(grid.cells))
	for i := range grid.cells {
		views[i] = grid.cells[i].view()
	}
	return views
}

// Rows groups ToView by row
func (grid *Grid) Rows() [][]CellView {
	views := grid.ToView()
	rows := make([][]CellView, grid.height)
	for y := range rows {
		start := y * int(grid.width)
		rows[y] = views[start : start+int(grid.width) : start+int(grid.width)]
	}
	return rows
}
