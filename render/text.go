package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/they4kman/minefield/game"
)

const (
	glyphUnknown   = "·"
	glyphEmpty     = " "
	glyphMark      = "⚑"
	glyphWrongMark = "✗"
	glyphMine      = "*"
)

// Glyph maps a cell to its on-screen text. Once the game is over every mine
// is shown, and marks on safe cells are flagged as wrong.
func Glyph(view game.CellView, gameOver bool) string {
	visible := gameOver || view.IsRevealed()

	switch {
	case view.IsMarked():
		if gameOver && !view.Mine {
			return glyphWrongMark
		}
		return glyphMark
	case view.Mine && visible:
		return glyphMine
	case view.Neighbors > 0 && visible && !view.Mine:
		return fmt.Sprint(view.Neighbors)
	case view.IsRevealed():
		return glyphEmpty
	default:
		return glyphUnknown
	}
}

// Board is what the renderer needs of a game
type Board interface {
	Rows() [][]game.CellView
	GameOver() bool
	Message() string
}

// Text writes the status line and the grid, with column and row numbers
func Text(out io.Writer, board Board) error {
	rows := board.Rows()
	gameOver := board.GameOver()

	var builder strings.Builder
	builder.WriteString(board.Message())
	builder.WriteString("\n    ")
	if len(rows) > 0 {
		for x := range rows[0] {
			fmt.Fprintf(&builder, "%3d", x)
		}
	}
	builder.WriteByte('\n')

	for y, row := range rows {
		fmt.Fprintf(&builder, "%3d ", y)
		for _, view := range row {
			fmt.Fprintf(&builder, "%3s", Glyph(view, gameOver))
		}
		builder.WriteByte('\n')
	}

	_, err := io.WriteString(out, builder.String())
	return err
}
