// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package lightgrid

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned by ParseAction for an unrecognised name.
var ErrUnknownAction = errors.New("unknown action")

// Action is what an instruction does to each cell of its rectangle.
type Action int

const (
	On Action = iota
	Off
	Toggle
)

// String returns the canonical lowercase action name.
func (a Action) String() string {
	switch a {
	case On:
		return "on"
	case Off:
		return "off"
	case Toggle:
		return "toggle"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Verb returns the instruction-text verb for the action, e.g. "turn on".
func (a Action) Verb() string {
	switch a {
	case On:
		return "turn on"
	case Off:
		return "turn off"
	default:
		return a.String()
	}
}

// ParseAction maps a canonical action name back to its Action.
func ParseAction(name string) (Action, error) {
	switch name {
	case "on":
		return On, nil
	case "off":
		return Off, nil
	case "toggle":
		return Toggle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Instruction pairs an action with the rectangle it covers.
type Instruction struct {
	Action Action
	Rect   Rect
}

// NewInstruction builds an instruction over the inclusive range from..to.
func NewInstruction(action Action, from, to Coord) Instruction {
	return Instruction{Action: action, Rect: R(from, to)}
}

// String renders the instruction in its textual form.
func (in Instruction) String() string {
	return fmt.Sprintf("%s %s", in.Action.Verb(), in.Rect)
}
