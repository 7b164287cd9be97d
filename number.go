package sscan

// binaryMarker introduces a base 2 literal for %B and %i, e.g. "%101".
const binaryMarker = '%'

type prefixRule int

const (
	prefixNone   prefixRule = iota
	prefixHex               // optional 0x or 0X
	prefixBinary            // optional binaryMarker
	prefixDetect            // %i: 0x -> 16, marker -> 2, 0 -> 8, otherwise 10
)

// basePolicy selects how a numeric verb reads its token.
type basePolicy struct {
	base   uint64
	signed bool
	prefix prefixRule
}

var basePolicies = map[rune]basePolicy{
	verbDecimal:  {base: 10, signed: true},
	verbUnsigned: {base: 10},
	verbHex:      {base: 16, prefix: prefixHex},
	verbOctal:    {base: 8},
	verbBinary:   {base: 2, prefix: prefixBinary},
	verbGeneric:  {base: 10, signed: true, prefix: prefixDetect},
}

// number is a scanned integer token. bits holds the value in two's
// complement, already truncated to the requested width.
type number struct {
	bits     uint64
	signed   bool
	consumed int
}

// scanNumber reads one integer token from the start of src. It reports
// false, consuming nothing, when src holds no digit after sign and prefix.
func scanNumber(src string, p basePolicy, long bool) (number, bool) {
	i := 0
	neg := false

	if p.signed && i < len(src) && (src[i] == '+' || src[i] == '-') {
		neg = src[i] == '-'
		i++
	}

	base := p.base
	switch p.prefix {
	case prefixHex:
		if hasHexPrefix(src[i:]) {
			i += 2
		}
	case prefixBinary:
		if i < len(src) && src[i] == binaryMarker {
			i++
		}
	case prefixDetect:
		switch rest := src[i:]; {
		case hasHexPrefix(rest):
			base = 16
			i += 2
		case len(rest) > 0 && rest[0] == binaryMarker:
			base = 2
			i++
		case len(rest) > 0 && rest[0] == '0':
			// The leading zero stays in the digit run.
			base = 8
		}
	}

	var mag uint64
	start := i
	for i < len(src) {
		d, ok := digitValue(src[i])
		if !ok || d >= base {
			break
		}
		mag = mag*base + d
		i++
	}

	if i == start {
		return number{}, false
	}

	if neg {
		mag = -mag
	}

	return number{
		bits:     truncate(mag, p.signed, long),
		signed:   p.signed,
		consumed: i,
	}, true
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func digitValue(b byte) (uint64, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint64(b - '0'), true
	case b >= 'a' && b <= 'f':
		return uint64(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return uint64(b-'A') + 10, true
	}
	return 0, false
}

// truncate narrows v to 32 bits unless long is set. Signed values are
// sign-extended back to 64 bits so that callers can widen them freely.
func truncate(v uint64, signed, long bool) uint64 {
	if long {
		return v
	}
	if signed {
		return uint64(int64(int32(v)))
	}
	return uint64(uint32(v))
}

// value returns the Go value reported for the token: int32/uint32 for the
// plain form, int64/uint64 when long.
func (n number) value(long bool) interface{} {
	switch {
	case n.signed && long:
		return int64(n.bits)
	case n.signed:
		return int32(n.bits)
	case long:
		return n.bits
	default:
		return uint32(n.bits)
	}
}
