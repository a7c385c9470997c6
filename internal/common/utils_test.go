package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAny(t *testing.T) {
	assert.True(t, HasAny("SEAS 10 TO 12 FEET", "10", "11"))
	assert.False(t, HasAny("SEAS 3 FEET", "10", "11"))
	assert.False(t, HasAny("anything"))
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "EAST WINDS 15 KNOTS",
		CollapseSpaces("  EAST\nWINDS\t 15\n KNOTS \n"))
	assert.Equal(t, "", CollapseSpaces("  \n\t "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "one two", Truncate("one two three", 9))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))
}
