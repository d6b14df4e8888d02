package game

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Layout is a textual picture of a grid, one line per row:
//
//	#  unmarked     O  unmarked mine
//	f  marked       F  marked mine
//	.  revealed     *  revealed mine
type Layout struct {
	Seed  int64  `yaml:"seed"`
	Board string `yaml:"board"`
}

func (layout *Layout) Serialize() string {
	out, err := yaml.Marshal(layout)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadLayout(in string) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal([]byte(in), &layout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return &layout, nil
}

// Layout pictures the grid. seed is recorded alongside, for the caller's
// bookkeeping only.
func (grid *Grid) Layout(seed int64) *Layout {
	var builder strings.Builder
	for y := uint8(0); y < grid.height; y++ {
		if y > 0 {
			builder.WriteByte('\n')
		}
		for x := uint8(0); x < grid.width; x++ {
			builder.WriteString(grid.cellAt(Pos{X: x, Y: y}).serialize())
		}
	}

	return &Layout{
		Seed:  seed,
		Board: builder.String(),
	}
}

// Grid builds the pictured grid, with neighbors already counted
func (layout *Layout) Grid() (*Grid, error) {
	rows := strings.Split(strings.TrimSpace(layout.Board), "\n")

	height := len(rows)
	width := len(strings.TrimSuffix(rows[0], "\r"))
	if width == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidLayout)
	}
	if width > 255 || height > 255 {
		return nil, fmt.Errorf("%w: board of %dx%d exceeds 255x255", ErrInvalidLayout, width, height)
	}

	grid := NewGrid(uint8(width), uint8(height))

	for y, row := range rows {
		row = strings.TrimSuffix(row, "\r")
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidLayout, y, len(row), width)
		}

		for x, c := range row {
			cell := grid.cellAt(Pos{X: uint8(x), Y: uint8(y)})
			if !cell.deserialize(c) {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrInvalidLayout, c, x, y)
			}
		}
	}

	grid.CalcNeighbors()
	return grid, nil
}
