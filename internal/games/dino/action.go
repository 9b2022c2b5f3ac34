package dino

import "errors"

// ErrInvalidAction is returned by Engine.Update for actions outside
// {ActionIdle, ActionJump, ActionDuck}. The engine state is left untouched.
var ErrInvalidAction = errors.New("dino: invalid action")

// Action is the per-tick input to the simulation.
// The numeric values form the discrete action space used by agents.
type Action int

const (
	ActionIdle Action = iota // stand, or keep falling
	ActionJump               // start a jump if grounded
	ActionDuck               // crouch for this tick if grounded
)

// NumActions is the size of the discrete action space.
const NumActions = 3

// Valid reports whether a is part of the action space.
func (a Action) Valid() bool {
	return a >= ActionIdle && a <= ActionDuck
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "Idle"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	default:
		return "Invalid"
	}
}
