package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/util/collections"
)

// Director plays by deduction where it can, then by the lowest mine
// probability, and finally at random.
type Director struct {
	fallback *random.Director
}

// Observation states that exactly numMines of cells hold a mine
type Observation struct {
	origin   *game.Pos
	numMines int
	cells    collections.Set[game.Pos]
}

func (observation Observation) String() string {
	cells := sortedPositions(observation.cells)
	cellReprs := make([]string, len(cells))
	for i, pos := range cells {
		cellReprs[i] = pos.String()
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(cellReprs, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func New(rng game.Rand) *Director {
	return &Director{fallback: random.New(rng)}
}

func (director *Director) Act(snapshot *game.Snapshot) (game.Action, bool) {
	observations := simplifyObservations(observe(snapshot))

	actors := []func([]*Observation) (game.Action, bool){
		actDeliberate,
		actLowestProbability,
	}
	for _, actor := range actors {
		if action, ok := actor(observations); ok {
			return action, true
		}
	}

	return director.fallback.Act(snapshot)
}

func actDeliberate(observations []*Observation) (game.Action, bool) {
	for _, observation := range observations {
		switch observation.numMines {
		case len(observation.cells):
			pos := sortedPositions(observation.cells)[0]
			return game.MarkAt(pos.X, pos.Y), true
		case 0:
			pos := sortedPositions(observation.cells)[0]
			return game.RevealAt(pos.X, pos.Y), true
		}
	}
	return game.Action{}, false
}

func actLowestProbability(observations []*Observation) (game.Action, bool) {
	cellProbabilities := make(map[game.Pos]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()

		for pos := range observation.cells {
			if pastProbability, ok := cellProbabilities[pos]; !ok || probability < pastProbability {
				cellProbabilities[pos] = probability
			}
		}
	}

	if len(cellProbabilities) == 0 {
		return game.Action{}, false
	}

	candidates := make([]game.Pos, 0, len(cellProbabilities))
	for pos := range cellProbabilities {
		candidates = append(candidates, pos)
	}
	sortPositions(candidates)

	lowest := candidates[0]
	for _, pos := range candidates[1:] {
		if cellProbabilities[pos] < cellProbabilities[lowest] {
			lowest = pos
		}
	}

	return game.RevealAt(lowest.X, lowest.Y), true
}

// observe records, for every revealed number, which of its unknown neighbors
// hold the mines it has not yet had marked
func observe(snapshot *game.Snapshot) []*Observation {
	var observations []*Observation

	for y := uint8(0); y < snapshot.Height(); y++ {
		for x := uint8(0); x < snapshot.Width(); x++ {
			view := snapshot.CellAt(x, y)
			if !view.IsRevealed() || view.Mine {
				continue
			}

			origin := game.Pos{X: x, Y: y}
			observation := Observation{
				origin:   &origin,
				numMines: int(view.Neighbors),
				cells:    collections.NewSet[game.Pos](),
			}

			for _, neighbor := range snapshot.Neighbors(origin) {
				switch snapshot.CellAt(neighbor.X, neighbor.Y).State {
				case game.Marked:
					observation.numMines--
				case game.Unmarked:
					observation.cells.Add(neighbor)
				}
			}

			if len(observation.cells) > 0 {
				observations = addObservation(observations, &observation)
			}
		}
	}

	return observations
}

// simplifyObservations splits observations wholly containing another one into
// the remainder, which carries the difference in mines
func simplifyObservations(observations []*Observation) []*Observation {
	for i := 0; i < len(observations); i++ {
		observation := observations[i]

		for j := 0; j < len(observations); j++ {
			other := observations[j]
			if other == observation {
				continue
			}

			if _, isSubset := observation.cells.IntersectionEx(other.cells); !isSubset {
				continue
			}

			splitObs := Observation{
				numMines: other.numMines - observation.numMines,
				cells:    other.cells.Difference(observation.cells),
			}
			if len(splitObs.cells) > 0 {
				observations = addObservation(observations, &splitObs)
			}
		}
	}

	return observations
}

func addObservation(observations []*Observation, observation *Observation) []*Observation {
	// Don't add duplicates
	for _, otherObs := range observations {
		if otherObs.cells.Equal(observation.cells) {
			return observations
		}
	}
	return append(observations, observation)
}

func sortedPositions(set collections.Set[game.Pos]) []game.Pos {
	positions := make([]game.Pos, 0, len(set))
	for pos := range set {
		positions = append(positions, pos)
	}
	sortPositions(positions)
	return positions
}

func sortPositions(positions []game.Pos) {
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
}
