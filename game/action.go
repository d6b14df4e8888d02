package game

import (
	"fmt"
)

type ActionType int

const (
	Reveal ActionType = iota
	ToggleMark
	Restart
)

func (actionType ActionType) String() string {
	switch actionType {
	case Reveal:
		return "reveal"
	case ToggleMark:
		return "mark"
	case Restart:
		return "restart"
	default:
		return fmt.Sprint(int(actionType))
	}
}

// Action is a single user (or director) input. Pos is ignored for Restart.
type Action struct {
	Type ActionType
	Pos  Pos
}

func (action Action) String() string {
	if action.Type == Restart {
		return action.Type.String()
	}
	return fmt.Sprintf("%s %v", action.Type, action.Pos)
}

func RevealAt(x, y uint8) Action {
	return Action{Type: Reveal, Pos: Pos{X: x, Y: y}}
}

func MarkAt(x, y uint8) Action {
	return Action{Type: ToggleMark, Pos: Pos{X: x, Y: y}}
}

func RestartAction() Action {
	return Action{Type: Restart}
}
