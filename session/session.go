package session

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/game"
)

var (
	ErrEmptyGrid    = errors.New("grid must be at least 1x1")
	ErrTooManyMines = errors.New("mine count must be less than the number of cells")
)

type Options struct {
	Width, Height uint8
	NumMines      uint
	Seed          int64
}

func (options Options) Validate() error {
	if options.Width == 0 || options.Height == 0 {
		return ErrEmptyGrid
	}
	if options.NumMines >= uint(options.Width)*uint(options.Height) {
		return fmt.Errorf("%w: %d mines on a %dx%d grid", ErrTooManyMines, options.NumMines, options.Width, options.Height)
	}
	return nil
}

// Session is a single game, owning its grid. It is the only caller of the
// grid's mutating operations.
type Session struct {
	grid     *game.Grid
	numMines uint
	rand     *rand.Rand
	log      logrus.FieldLogger
}

func New(options Options, log logrus.FieldLogger) (*Session, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	session := &Session{
		grid:     game.NewGrid(options.Width, options.Height),
		numMines: options.NumMines,
		rand:     rand.New(rand.NewSource(options.Seed)),
		log:      log,
	}
	session.prepare()

	log.WithFields(logrus.Fields{
		"width":  options.Width,
		"height": options.Height,
		"mines":  options.NumMines,
		"seed":   options.Seed,
	}).Info("New game")

	return session, nil
}

// FromLayout resumes a pictured grid. Restarting it places as many mines as
// the layout held.
func FromLayout(layout *game.Layout, log logrus.FieldLogger) (*Session, error) {
	grid, err := layout.Grid()
	if err != nil {
		return nil, err
	}

	numMines := uint(grid.NumMines())
	if numMines >= uint(grid.NumCells()) {
		return nil, fmt.Errorf("%w: layout holds %d mines in %d cells", ErrTooManyMines, numMines, grid.NumCells())
	}

	log.WithFields(logrus.Fields{
		"width":  grid.Width(),
		"height": grid.Height(),
		"mines":  numMines,
		"seed":   layout.Seed,
	}).Info("Loaded layout")

	return &Session{
		grid:     grid,
		numMines: numMines,
		rand:     rand.New(rand.NewSource(layout.Seed)),
		log:      log,
	}, nil
}

func (session *Session) prepare() {
	session.grid.PlaceMines(session.numMines, session.rand)
	session.grid.CalcNeighbors()
}

func (session *Session) inBounds(pos game.Pos) bool {
	return session.grid.InBounds(int(pos.X), int(pos.Y))
}

// Apply performs a single action, returning whether the grid changed. Once the
// game is over only Restart is accepted. Positions off the grid are ignored.
func (session *Session) Apply(action game.Action) bool {
	log := session.log.WithField("action", action.String())

	if action.Type == game.Restart {
		session.grid.Reset()
		session.prepare()
		log.Info("Restarted")
		return true
	}

	if session.grid.GameOver() {
		log.Debug("Ignoring action, game is over")
		return false
	}
	if !session.inBounds(action.Pos) {
		log.Warn("Ignoring action outside the grid")
		return false
	}

	var changed bool
	switch action.Type {
	case game.Reveal:
		changed = session.grid.Reveal(action.Pos)
	case game.ToggleMark:
		changed = session.grid.ToggleMarked(action.Pos)
	default:
		log.Warn("Unknown action")
		return false
	}

	if !changed {
		log.Debug("Action had no effect")
		return false
	}

	switch {
	case session.grid.Lost():
		log.Info("Game lost")
	case session.grid.Won():
		log.Info("Game won")
	}
	return true
}

// Step shows director a snapshot of the grid and applies the action it picks.
// It returns false when the game is over or the director has nothing to do.
func (session *Session) Step(director game.Director) bool {
	if session.grid.GameOver() {
		return false
	}

	action, ok := director.Act(session.grid.Snapshot())
	if !ok {
		session.log.Debug("Director has no move")
		return false
	}
	session.Apply(action)
	return true
}

func (session *Session) Width() uint8 {
	return session.grid.Width()
}

func (session *Session) Height() uint8 {
	return session.grid.Height()
}

func (session *Session) GameOver() bool {
	return session.grid.GameOver()
}

func (session *Session) Won() bool {
	return session.grid.Won() && !session.grid.Lost()
}

func (session *Session) Message() string {
	return session.grid.Message()
}

func (session *Session) Rows() [][]game.CellView {
	return session.grid.Rows()
}

// Layout pictures the current grid, for dumping
func (session *Session) Layout(seed int64) *game.Layout {
	return session.grid.Layout(seed)
}
