package sscan

// cursor is a forward-only view over the input of a single scan.
type cursor struct {
	src string
	pos int
}

func newCursor(src string) *cursor {
	return &cursor{src: src}
}

// peek returns the byte at the current position without advancing.
func (c *cursor) peek() (byte, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	return c.src[c.pos], true
}

// skip moves past n bytes a scanner has already validated.
func (c *cursor) skip(n int) {
	if n > c.rem() {
		n = c.rem()
	}
	c.pos += n
}

// consumed returns the number of bytes advanced since the scan began.
func (c *cursor) consumed() int {
	return c.pos
}

func (c *cursor) rem() int {
	return len(c.src) - c.pos
}

// rest returns the unconsumed input, bounded to width bytes when width > 0.
func (c *cursor) rest(width int) string {
	s := c.src[c.pos:]
	if width > 0 && width < len(s) {
		s = s[:width]
	}
	return s
}
