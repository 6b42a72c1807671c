package policy

import (
	"fmt"
	"regexp"
	"time"

	"barbershop-booking/internal/pkg/errs"
)

const (
	DefaultOpeningTime             = "09:00"
	DefaultClosingTime             = "20:00"
	DefaultCancellationNotice      = "2 hours"
	DefaultMidweekDiscountFraction = 0.10

	MaxMidweekDiscountFraction = 0.50

	dateLayout = "2006-01-02"
)

var (
	ErrValidation    = errs.New("booking validation failed")
	ErrInvalidPolicy = errs.New("invalid policy")
)

var clockTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type Reason string

const (
	ReasonMissingDate  Reason = "missing_date"
	ReasonMissingTime  Reason = "missing_time"
	ReasonOutsideHours Reason = "outside_hours"
	ReasonInvalidDate  Reason = "invalid_date"
	ReasonClosedDay    Reason = "closed_day"
)

// ValidationError is a booking rule violation. Message is meant for the customer.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Policy holds the shop-wide booking rules. Times are "HH:MM" strings and are
// compared lexicographically.
type Policy struct {
	OpeningTime             string
	ClosingTime             string
	CancellationNotice      string
	MidweekDiscountFraction float64
}

func Default() Policy {
	return Policy{
		OpeningTime:             DefaultOpeningTime,
		ClosingTime:             DefaultClosingTime,
		CancellationNotice:      DefaultCancellationNotice,
		MidweekDiscountFraction: DefaultMidweekDiscountFraction,
	}
}

func (p Policy) Validate() error {
	if err := validateClockTime("opening time", p.OpeningTime); err != nil {
		return err
	}
	if err := validateClockTime("closing time", p.ClosingTime); err != nil {
		return err
	}
	if p.OpeningTime > p.ClosingTime {
		return fmt.Errorf("%w: opening time %s is after closing time %s", ErrInvalidPolicy, p.OpeningTime, p.ClosingTime)
	}
	if p.CancellationNotice == "" {
		return fmt.Errorf("%w: cancellation notice is required", ErrInvalidPolicy)
	}
	return validateFraction(p.MidweekDiscountFraction)
}

func (p Policy) IsWithinOpeningHours(clock string) bool {
	return clock >= p.OpeningTime && clock <= p.ClosingTime
}

// ValidateBooking checks date ("YYYY-MM-DD") and clock ("HH:MM") against the
// policy, stopping at the first rule that fails. The clock is not parsed: it
// only has to sort between the opening and closing times, so values such as
// "12345" or "10:00pm" pass.
func (p Policy) ValidateBooking(date, clock string) error {
	if date == "" {
		return &ValidationError{Reason: ReasonMissingDate, Message: "Please select a date"}
	}
	if clock == "" {
		return &ValidationError{Reason: ReasonMissingTime, Message: "Please select a time"}
	}
	if !p.IsWithinOpeningHours(clock) {
		return &ValidationError{
			Reason:  ReasonOutsideHours,
			Message: fmt.Sprintf("Appointments must be between %s and %s", p.OpeningTime, p.ClosingTime),
		}
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return &ValidationError{Reason: ReasonInvalidDate, Message: "Invalid date"}
	}
	if day.Weekday() == time.Sunday {
		return &ValidationError{Reason: ReasonClosedDay, Message: "We are closed on Sundays"}
	}
	return nil
}

func (p Policy) CancellationPolicyText() string {
	return fmt.Sprintf("You can cancel up to %s before your appointment without penalty", p.CancellationNotice)
}

func validateClockTime(field, v string) error {
	if !clockTimePattern.MatchString(v) {
		return fmt.Errorf("%w: %s must be HH:MM, got %q", ErrInvalidPolicy, field, v)
	}
	return nil
}

func validateFraction(f float64) error {
	if f < 0 || f > MaxMidweekDiscountFraction {
		return fmt.Errorf("%w: midweek discount must be between 0 and %.2f, got %v", ErrInvalidPolicy, MaxMidweekDiscountFraction, f)
	}
	return nil
}
