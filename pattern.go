package sscan

import (
	"fmt"
	"strings"
)

type itemKind int

const (
	itemSpace itemKind = iota
	itemLiteral
	itemVerb
)

// item is one step of a compiled format: a whitespace run, a literal
// span, or a verb.
type item struct {
	kind itemKind
	lit  string
	verb verb
}

type pattern struct {
	format string
	items  []item
	verbs  []verb
}

// emitFunc receives each value written by a scan, with the verb that
// produced it and the index of the target slot it belongs to.
type emitFunc func(slot int, v verb, value interface{}) error

func newPattern(format string) (p pattern, err error) {
	err = p.parse(format)
	if err != nil {
		return
	}

	p.format = format
	return
}

/*
	Breaks a format string into the items a scan walks in order.

	Format '%d + %d = %d' yields 9 items: the verb, a whitespace run,
	the literal '+', another whitespace run, and so on. A run of any
	whitespace collapses into one item, and '%%' joins the surrounding
	literal as a single '%'.
*/
func (p *pattern) parse(format string) error {
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			p.items = append(p.items, item{kind: itemLiteral, lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); {
		b := format[i]

		switch {
		case isSpace(b):
			flush()
			for i < len(format) && isSpace(format[i]) {
				i++
			}
			p.items = append(p.items, item{kind: itemSpace})

		case b == pct && i+1 < len(format) && format[i+1] == pct:
			lit.WriteByte(pct)
			i += 2

		case b == pct:
			flush()
			v, next, err := parseVerb(format, i)
			if err != nil {
				return err
			}
			if v.suppress && v.value == verbPosition {
				return fmt.Errorf("%w: verb '%s' cannot be suppressed", ErrBadArg, v)
			}
			p.items = append(p.items, item{kind: itemVerb, verb: v})
			p.verbs = append(p.verbs, v)
			i = next

		default:
			lit.WriteByte(b)
			i++
		}
	}

	flush()
	return nil
}

// scan walks the compiled format over str, handing each written value to
// emit. It stops at the first literal mismatch, failed conversion, or
// exhaustion and returns what was assigned up to that point.
func (p pattern) scan(str string, emit emitFunc) (Result, error) {
	c := newCursor(str)
	var res Result

	for _, it := range p.items {
		switch it.kind {
		case itemSpace:
			c.skipSpace()

		case itemLiteral:
			if err := c.matchLiteral(it.lit); err != nil {
				res.Consumed = c.consumed()
				return res, err
			}

		case itemVerb:
			v := it.verb

			value, err := scanVerb(c, v)
			if err != nil {
				res.Consumed = c.consumed()
				return res, fmt.Errorf("verb '%s' at format offset %d: %w", v, v.start, err)
			}

			if !v.writes() {
				continue
			}

			if emit != nil {
				if err := emit(len(res.Values), v, value); err != nil {
					res.Consumed = c.consumed()
					return res, fmt.Errorf("verb '%s' at index %d: %w", v, len(res.Values), err)
				}
			}

			res.Values = append(res.Values, value)
			if v.counts() {
				res.Assignments++
			}
		}
	}

	res.Consumed = c.consumed()
	return res, nil
}

// scanVerb reads the token for v at the cursor. On failure the token
// consumes nothing, though whitespace skipped ahead of it stays consumed.
func scanVerb(c *cursor, v verb) (interface{}, error) {
	if v.skipsSpace() {
		c.skipSpace()
	}

	width, _ := v.maxWidth()

	switch v.value {
	case verbPosition:
		return c.consumed(), nil

	case verbChar:
		s, ok := scanChars(c.rest(0), width)
		if !ok {
			return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrExhausted, max(width, 1), c.consumed(), c.rem())
		}
		c.skip(len(s))
		return s, nil

	case verbString:
		if c.rem() == 0 {
			return nil, fmt.Errorf("%w: at offset %d", ErrExhausted, c.consumed())
		}
		s, ok := scanWord(c.rest(width))
		if !ok {
			return nil, fmt.Errorf("%w: no characters at offset %d", ErrConversion, c.consumed())
		}
		c.skip(len(s))
		return s, nil
	}

	policy, ok := basePolicies[v.value]
	if !ok {
		return nil, fmt.Errorf("%w: no base policy for verb '%s'", ErrBug, v)
	}

	if c.rem() == 0 {
		return nil, fmt.Errorf("%w: at offset %d", ErrExhausted, c.consumed())
	}

	n, ok := scanNumber(c.rest(width), policy, v.long)
	if !ok {
		return nil, fmt.Errorf("%w: no digits at offset %d", ErrConversion, c.consumed())
	}
	c.skip(n.consumed)

	return n.value(v.long), nil
}

func (p pattern) verbCount() int {
	var count int
	for _, v := range p.verbs {
		if v.writes() {
			count++
		}
	}
	return count
}
