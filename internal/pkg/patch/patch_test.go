//go:build unit

package patch_test

import (
	"testing"

	"barbershop-booking/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "20:00", patch.Coalesce[string](nil, "20:00"))
	assert.Equal(t, "21:00", patch.Coalesce(patch.Ptr("21:00"), "20:00"))
	assert.False(t, patch.Coalesce(patch.Ptr(false), true), "explicit zero value wins")
}

func TestPtr(t *testing.T) {
	v := 3
	p := patch.Ptr(v)
	v = 4

	assert.Equal(t, 3, *p)
}

func TestAssign(t *testing.T) {
	closing := "20:00"

	assert.False(t, patch.Assign(&closing, nil))
	assert.Equal(t, "20:00", closing)

	assert.True(t, patch.Assign(&closing, patch.Ptr("22:00")))
	assert.Equal(t, "22:00", closing)
}
