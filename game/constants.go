package game

type CellState int

const (
	Unmarked CellState = iota
	Marked
	Revealed
)

func (state CellState) String() string {
	switch state {
	case Unmarked:
		return "unmarked"
	case Marked:
		return "marked"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

const (
	messageLost     = "Game lost!"
	messageWon      = "Game won!"
	messageProgress = "Found %d of %d mines."
)

// Offsets of the up-to-8 cells surrounding a cell
var neighborOffsets = [8][2]int{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}
