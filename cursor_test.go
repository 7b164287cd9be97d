package sscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor(t *testing.T) {
	c := newCursor("ab")

	b, ok := c.peek()
	assert.True(t, ok)
	assert.Equal(t, byte('a'), b)
	assert.Equal(t, 0, c.consumed())

	c.skip(1)
	assert.Equal(t, 1, c.consumed())
	assert.Equal(t, "b", c.rest(0))

	c.skip(5)
	assert.Equal(t, 2, c.consumed())

	_, ok = c.peek()
	assert.False(t, ok)
	assert.Equal(t, 0, c.rem())
}

func TestCursor_Rest(t *testing.T) {
	c := newCursor("hellothere")
	assert.Equal(t, "hello", c.rest(5))
	assert.Equal(t, "hellothere", c.rest(0))
	assert.Equal(t, "hellothere", c.rest(50))
}

func TestCursor_MatchLiteral(t *testing.T) {
	c := newCursor("key: value")
	c.skipSpace()
	assert.NoError(t, c.matchLiteral("key"))

	err := c.matchLiteral("=")
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Equal(t, 3, c.consumed())

	c = newCursor("ke")
	err = c.matchLiteral("key")
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 2, c.consumed())
}
