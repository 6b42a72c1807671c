//go:build unit

package policy_test

import (
	"errors"
	"testing"

	"barbershop-booking/internal/domain/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBooking(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		time    string
		reason  policy.Reason
		message string
	}{
		{name: "valid weekday", date: "2025-11-20", time: "10:00"},
		{name: "opening time is inclusive", date: "2025-11-20", time: "09:00"},
		{name: "closing time is inclusive", date: "2025-11-20", time: "20:00"},
		{name: "saturday", date: "2025-11-22", time: "15:30"},
		{
			name:    "missing date",
			date:    "",
			time:    "10:00",
			reason:  policy.ReasonMissingDate,
			message: "Please select a date",
		},
		{
			name:    "missing date reported before missing time",
			date:    "",
			time:    "",
			reason:  policy.ReasonMissingDate,
			message: "Please select a date",
		},
		{
			name:    "missing time",
			date:    "2025-11-20",
			time:    "",
			reason:  policy.ReasonMissingTime,
			message: "Please select a time",
		},
		{
			name:    "after closing",
			date:    "2025-11-20",
			time:    "21:00",
			reason:  policy.ReasonOutsideHours,
			message: "Appointments must be between 09:00 and 20:00",
		},
		{
			name:    "before opening",
			date:    "2025-11-20",
			time:    "08:59",
			reason:  policy.ReasonOutsideHours,
			message: "Appointments must be between 09:00 and 20:00",
		},
		{
			name:    "hours checked before date format",
			date:    "not-a-date",
			time:    "21:00",
			reason:  policy.ReasonOutsideHours,
			message: "Appointments must be between 09:00 and 20:00",
		},
		{
			name:    "unparseable date",
			date:    "20-11-2025",
			time:    "10:00",
			reason:  policy.ReasonInvalidDate,
			message: "Invalid date",
		},
		{
			name:    "impossible calendar date",
			date:    "2025-02-30",
			time:    "10:00",
			reason:  policy.ReasonInvalidDate,
			message: "Invalid date",
		},
		{
			name:    "sunday",
			date:    "2025-11-23",
			time:    "10:00",
			reason:  policy.ReasonClosedDay,
			message: "We are closed on Sundays",
		},
	}

	p := policy.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.ValidateBooking(tt.date, tt.time)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, policy.ErrValidation)
			var verr *policy.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.reason, verr.Reason)
			assert.Equal(t, tt.message, verr.Message)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidateBookingClosedOnSundaysAtAnyHour(t *testing.T) {
	p := policy.Default()

	for _, clock := range []string{"09:00", "10:00", "12:30", "15:45", "19:59", "20:00"} {
		t.Run(clock, func(t *testing.T) {
			err := p.ValidateBooking("2025-11-23", clock)

			var verr *policy.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, policy.ReasonClosedDay, verr.Reason)
		})
	}
}

func TestValidateBookingComparesClockAsText(t *testing.T) {
	p := policy.Default()

	// Only the lexicographic range is checked, so these malformed clocks pass.
	for _, clock := range []string{"1", "10:00pm", "12345", "1:99"} {
		t.Run(clock, func(t *testing.T) {
			assert.NoError(t, p.ValidateBooking("2025-11-20", clock))
		})
	}

	for _, clock := range []string{"0", "8:30", "21"} {
		t.Run(clock, func(t *testing.T) {
			assert.ErrorIs(t, p.ValidateBooking("2025-11-20", clock), policy.ErrValidation)
		})
	}
}

func TestValidateBookingUsesConfiguredHours(t *testing.T) {
	p := policy.Default()
	p.OpeningTime = "10:00"
	p.ClosingTime = "18:00"

	err := p.ValidateBooking("2025-11-20", "09:30")
	require.ErrorIs(t, err, policy.ErrValidation)
	assert.Equal(t, "Appointments must be between 10:00 and 18:00", err.Error())

	assert.NoError(t, p.ValidateBooking("2025-11-20", "18:00"))
}

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*policy.Policy)
		wantErr bool
	}{
		{name: "default", mutate: func(*policy.Policy) {}},
		{name: "max discount", mutate: func(p *policy.Policy) { p.MidweekDiscountFraction = 0.5 }},
		{name: "zero discount", mutate: func(p *policy.Policy) { p.MidweekDiscountFraction = 0 }},
		{name: "equal opening and closing", mutate: func(p *policy.Policy) { p.ClosingTime = p.OpeningTime }},
		{name: "discount too large", mutate: func(p *policy.Policy) { p.MidweekDiscountFraction = 0.51 }, wantErr: true},
		{name: "negative discount", mutate: func(p *policy.Policy) { p.MidweekDiscountFraction = -0.1 }, wantErr: true},
		{name: "single digit hour", mutate: func(p *policy.Policy) { p.OpeningTime = "9:00" }, wantErr: true},
		{name: "hour out of range", mutate: func(p *policy.Policy) { p.ClosingTime = "24:00" }, wantErr: true},
		{name: "minute out of range", mutate: func(p *policy.Policy) { p.ClosingTime = "20:60" }, wantErr: true},
		{name: "opening after closing", mutate: func(p *policy.Policy) { p.OpeningTime = "21:00" }, wantErr: true},
		{name: "empty notice", mutate: func(p *policy.Policy) { p.CancellationNotice = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := policy.Default()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, policy.ErrInvalidPolicy)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCancellationPolicyText(t *testing.T) {
	p := policy.Default()
	assert.Equal(t, "You can cancel up to 2 hours before your appointment without penalty", p.CancellationPolicyText())

	p.CancellationNotice = "24 hours"
	assert.Equal(t, "You can cancel up to 24 hours before your appointment without penalty", p.CancellationPolicyText())
}

func TestIsWithinOpeningHours(t *testing.T) {
	p := policy.Default()

	assert.True(t, p.IsWithinOpeningHours("09:00"))
	assert.True(t, p.IsWithinOpeningHours("14:45"))
	assert.True(t, p.IsWithinOpeningHours("20:00"))
	assert.False(t, p.IsWithinOpeningHours("08:59"))
	assert.False(t, p.IsWithinOpeningHours("20:01"))
}
