package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphanumCompare(t *testing.T) {
	assert.True(t, AlphanumCompare("P2", "P10"))
	assert.False(t, AlphanumCompare("P10", "P2"))
	assert.True(t, AlphanumCompare("apples", "bananas"))
	assert.True(t, AlphanumCompare("P1", "P1x"))
	assert.False(t, AlphanumCompare("P1", "P1"))
}
