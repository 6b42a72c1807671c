package appointment

import (
	"fmt"

	"barbershop-booking/internal/pkg/errs"
)

var (
	ErrInvalidTransition = errs.New("invalid appointment transition")
	ErrUnknownAction     = errs.New("unknown appointment action")
	ErrNegativePrice     = errs.New("price cannot be negative")
)

// InvalidTransitionError reports an action that the current state does not allow.
type InvalidTransitionError struct {
	State  State
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s appointment in state %s: %s", e.Action, e.State, e.Reason())
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// Reason is a message suitable for showing to the customer.
func (e *InvalidTransitionError) Reason() string {
	switch e.State {
	case StatePending:
		switch e.Action {
		case ActionStart:
			return "a pending appointment cannot be started"
		case ActionFinish:
			return "a pending appointment cannot be finished"
		}
	case StateConfirmed:
		switch e.Action {
		case ActionConfirm:
			return "the appointment is already confirmed"
		case ActionFinish:
			return "the appointment cannot be finished without starting"
		}
	case StateInProgress:
		switch e.Action {
		case ActionCancel:
			return "an appointment in progress cannot be cancelled"
		default:
			return "the appointment is already in progress"
		}
	case StateFinished:
		return "the appointment has already finished"
	case StateCancelled:
		if e.Action == ActionCancel {
			return "the appointment is already cancelled"
		}
		return "the appointment is cancelled"
	}
	return fmt.Sprintf("%s is not allowed while %s", e.Action, e.State.DisplayName())
}
