package sscan

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

type verb struct {
	value    rune
	start    int
	suppress bool
	width    int
	long     bool
}

func (v verb) String() string {
	var b strings.Builder
	b.WriteByte(pct)
	if v.suppress {
		b.WriteByte(suppressFlag)
	}
	if v.width > 0 {
		b.WriteString(strconv.Itoa(v.width))
	}
	if v.long {
		b.WriteByte(longFlag)
	}
	b.WriteRune(v.value)
	return b.String()
}

func (v verb) maxWidth() (int, bool) {
	if v.width <= 0 {
		return 0, false
	}
	return v.width, true
}

// writes reports whether the verb fills a target slot.
func (v verb) writes() bool {
	return !v.suppress
}

// counts reports whether a successful match adds to the assignment count.
func (v verb) counts() bool {
	return !v.suppress && v.value != verbPosition
}

// skipsSpace reports whether leading input whitespace is skipped before
// the verb is scanned.
func (v verb) skipsSpace() bool {
	return v.value != verbChar && v.value != verbPosition
}

/*
	Parses a single verb from 'format' beginning at 'start', the index of
	its introducing '%'. Returns the verb and the index just past it.

	Grammar: '%' ['*'] [width] ['l'] specifier
*/
func parseVerb(format string, start int) (verb, int, error) {
	v := verb{start: start}
	i := start + 1

	if i < len(format) && format[i] == suppressFlag {
		v.suppress = true
		i++
	}

	digits := i
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		i++
	}
	if i > digits {
		width, err := strconv.Atoi(format[digits:i])
		if err != nil || width == 0 {
			return v, i, fmt.Errorf("%w: invalid width '%s' at offset %d", ErrBadArg, format[digits:i], digits)
		}
		v.width = width
	}

	if i < len(format) && format[i] == longFlag {
		v.long = true
		i++
	}

	if i >= len(format) {
		return v, i, fmt.Errorf("%w: incomplete verb '%s' at end of format", ErrBadArg, format[start:])
	}

	r, size := utf8.DecodeRuneInString(format[i:])
	v.value = r
	i += size

	if !isSupportedVerb(v.value) {
		return v, i, fmt.Errorf("%w: unsupported verb '%s'", ErrBadArg, format[start:i])
	}

	return v, i, nil
}
