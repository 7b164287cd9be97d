package sscan

import (
	"fmt"
)

type assignFunc func(interface{}, interface{}) error

var assignFuncs = map[rune]assignFunc{
	verbDecimal:  assignInt,
	verbUnsigned: assignInt,
	verbHex:      assignInt,
	verbOctal:    assignInt,
	verbBinary:   assignInt,
	verbGeneric:  assignInt,
	verbPosition: assignInt,
	verbChar:     assignChar,
	verbString:   assignString,
}

func isSupportedVerb(r rune) bool {
	_, ok := assignFuncs[r]
	return ok
}

// intBits widens a scanned integer to 64 bits of two's complement.
func intBits(value interface{}) (uint64, error) {
	switch v := value.(type) {
	case int:
		return uint64(v), nil
	case int32:
		return uint64(v), nil
	case int64:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	default:
		return 0, fmt.Errorf("%w: expected integer value, got %T", ErrBug, value)
	}
}

// assignInt stores value into any integer pointer. Values wider than the
// target wrap the way Go conversions do.
func assignInt(value interface{}, target interface{}) error {
	bits, err := intBits(value)
	if err != nil {
		return err
	}

	switch t := target.(type) {
	case *int:
		*t = int(bits)
	case *int8:
		*t = int8(bits)
	case *int16:
		*t = int16(bits)
	case *int32:
		*t = int32(bits)
	case *int64:
		*t = int64(bits)
	case *uint:
		*t = uint(bits)
	case *uint8:
		*t = uint8(bits)
	case *uint16:
		*t = uint16(bits)
	case *uint32:
		*t = uint32(bits)
	case *uint64:
		*t = bits
	default:
		return fmt.Errorf("%w: expected integer pointer as target, got %T", ErrBadArg, target)
	}

	return nil
}

func assignChar(value interface{}, target interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: expected string value, got %T", ErrBug, value)
	}

	switch t := target.(type) {
	case *byte:
		if len(str) != 1 {
			return fmt.Errorf("%w: cannot store %d bytes in %T", ErrBadArg, len(str), target)
		}
		*t = str[0]
	case *rune:
		if len(str) != 1 {
			return fmt.Errorf("%w: cannot store %d bytes in %T", ErrBadArg, len(str), target)
		}
		*t = rune(str[0])
	default:
		return assignString(value, target)
	}

	return nil
}

func assignString(value interface{}, target interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: expected string value, got %T", ErrBug, value)
	}

	switch t := target.(type) {
	case *string:
		*t = str
	case *[]byte:
		*t = []byte(str)
	default:
		return fmt.Errorf("%w: expected string pointer as target, got %T", ErrBadArg, target)
	}

	return nil
}
