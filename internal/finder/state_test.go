package finder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ziadkadry99/kitchen-finder/internal/kitchen"
)

func TestViewTransitions(t *testing.T) {
	var v View

	v.Begin("Delhi")
	assert.True(t, v.Loading)
	assert.Equal(t, "Delhi", v.Location)

	v.Succeed([]kitchen.Kitchen{{Name: "A"}, {Name: "B"}})
	assert.False(t, v.Loading)
	assert.Empty(t, v.Error)
	assert.Len(t, v.Kitchens, 2)

	// A second fetch replaces the list rather than appending.
	v.Begin("Mumbai")
	assert.True(t, v.Loading)
	v.Succeed([]kitchen.Kitchen{{Name: "C"}})
	assert.Equal(t, []kitchen.Kitchen{{Name: "C"}}, v.Kitchens)
}

func TestViewFailClearsLoadingAndGrid(t *testing.T) {
	var v View
	v.Begin("Delhi")
	v.Succeed([]kitchen.Kitchen{{Name: "A"}})

	v.Begin("Nowhere")
	v.Fail(errors.New("Network response was not ok"))

	assert.False(t, v.Loading)
	assert.Equal(t, "Network response was not ok", v.Error)
	assert.Empty(t, v.Kitchens)

	// The next attempt clears the old message.
	v.Begin("Delhi")
	assert.Empty(t, v.Error)
}
