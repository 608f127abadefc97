//go:build unit

package patch_test

import (
	"testing"

	"room-booking/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	name := "Jeanne"
	assert.Equal(t, "Jeanne", patch.Value(&name, "John"))
	assert.Equal(t, "John", patch.Value[string](nil, "John"))

	empty := ""
	assert.Equal(t, "", patch.Value(&empty, "John"), "an explicit empty value still replaces")
}

func TestTouched(t *testing.T) {
	name := "Jeanne"
	assert.False(t, patch.Touched[string]())
	assert.False(t, patch.Touched[string](nil, nil))
	assert.True(t, patch.Touched[string](nil, &name))
}
