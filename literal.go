package sscan

import "fmt"

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// skipSpace consumes zero or more whitespace bytes. It never fails.
func (c *cursor) skipSpace() {
	for {
		b, ok := c.peek()
		if !ok || !isSpace(b) {
			return
		}
		c.skip(1)
	}
}

// matchLiteral consumes lit only if the input continues with exactly lit.
// On a mismatch nothing past the last matching byte is consumed.
func (c *cursor) matchLiteral(lit string) error {
	for i := 0; i < len(lit); i++ {
		b, ok := c.peek()
		if !ok {
			return fmt.Errorf("%w: expected '%c' at offset %d", ErrExhausted, lit[i], c.pos)
		}
		if b != lit[i] {
			return fmt.Errorf("%w: expected '%c' at offset %d, got '%c'", ErrNoMatch, lit[i], c.pos, b)
		}
		c.skip(1)
	}
	return nil
}
