package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.34, Round2(10.344))
	assert.Equal(t, 10.35, Round2(10.346))
	assert.Equal(t, 42.5, Round2(42.5))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -2.35, Round2(-2.346))
	assert.Equal(t, 27.54, Round2(162*0.17))
}
