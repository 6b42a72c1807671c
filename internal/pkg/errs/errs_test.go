//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"barbershop-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var (
	errSentinel = errs.New("sentinel failure")
	errOther    = errs.New("other failure")
)

func TestMark(t *testing.T) {
	cause := errors.New("disk full")

	marked := errs.Mark(cause, errSentinel)

	assert.True(t, errs.Is(marked, errSentinel))
	assert.True(t, errs.Is(marked, cause))
	assert.False(t, errs.Is(marked, errOther))
	assert.Equal(t, errSentinel, errs.Mark(nil, errSentinel))
}

func TestWrap(t *testing.T) {
	cause := errors.New("timeout")

	assert.Nil(t, errs.Wrap(nil, "ignored"))
	assert.Nil(t, errs.Wrapf(nil, "ignored %d", 1))

	wrapped := errs.Wrapf(cause, "saving appointment %d", 7)
	assert.Equal(t, "saving appointment 7: timeout", wrapped.Error())
	assert.True(t, errs.Is(wrapped, cause))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.Wrap(errors.New("boom"), "context"), 2)
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "boom")
}

func TestNewf(t *testing.T) {
	err := errs.Newf("panic: %v", "nil map")

	assert.Equal(t, "panic: nil map", err.Error())
	lines := errs.ExtractStackLines(err, 0)
	assert.Greater(t, len(lines), 1, "stack trace attached")
	for _, l := range lines {
		assert.NotEmpty(t, l)
	}
}
