package appointment

import "fmt"

type State string

const (
	StatePending    State = "pending"
	StateConfirmed  State = "confirmed"
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
	StateCancelled  State = "cancelled"
)

type Action string

const (
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
	ActionStart   Action = "start"
	ActionFinish  Action = "finish"
)

// actionOrder is the order in which allowed actions are offered to the caller.
var actionOrder = []Action{ActionConfirm, ActionStart, ActionFinish, ActionCancel}

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StatePending, StateConfirmed, StateInProgress, StateFinished, StateCancelled:
		return true
	default:
		return false
	}
}

func (s State) DisplayName() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateConfirmed:
		return "Confirmed"
	case StateInProgress:
		return "In Progress"
	case StateFinished:
		return "Finished"
	case StateCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

func (s State) IsTerminal() bool {
	return len(s.AllowedActions()) == 0
}

func (s State) AllowedActions() []Action {
	allowed := make([]Action, 0, 2)
	for _, a := range actionOrder {
		if _, err := s.Next(a); err == nil {
			allowed = append(allowed, a)
		}
	}
	return allowed
}

// Next returns the state reached by applying a, or an *InvalidTransitionError.
func (s State) Next(a Action) (State, error) {
	switch s {
	case StatePending:
		switch a {
		case ActionConfirm:
			return StateConfirmed, nil
		case ActionCancel:
			return StateCancelled, nil
		case ActionStart, ActionFinish:
		}
	case StateConfirmed:
		switch a {
		case ActionStart:
			return StateInProgress, nil
		case ActionCancel:
			return StateCancelled, nil
		case ActionConfirm, ActionFinish:
		}
	case StateInProgress:
		switch a {
		case ActionFinish:
			return StateFinished, nil
		case ActionConfirm, ActionCancel, ActionStart:
		}
	case StateFinished, StateCancelled:
	}
	return s, &InvalidTransitionError{State: s, Action: a}
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	switch a {
	case ActionConfirm, ActionCancel, ActionStart, ActionFinish:
		return true
	default:
		return false
	}
}

func ParseAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}
