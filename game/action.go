package game

import (
	"fmt"
	"tetris/utils"
)

// Action is a discrete input command.
type Action int

const (
	None Action = iota
	Left
	Right
	Rotate
	SoftDrop
	HardDrop
)

var actionNames = [...]string{"none", "left", "right", "rotate", "soft_drop", "hard_drop"}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction is the inverse of Action.String.
func ParseAction(s string) (Action, bool) {
	i := utils.FindIndex(actionNames[:], s)
	if i < 0 {
		return None, false
	}
	return Action(i), true
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	v, ok := ParseAction(string(text))
	if !ok {
		return fmt.Errorf("unknown action %q", text)
	}
	*a = v
	return nil
}

// Input supplies which commands are held during the current tick.
type Input interface {
	IsPressed(a Action) bool
}

type press Action

func (p press) IsPressed(a Action) bool {
	return Action(p) != None && Action(p) == a
}

// Press returns an input that holds only a.
func Press(a Action) Input {
	return press(a)
}

// NoInput holds nothing.
var NoInput Input = press(None)
