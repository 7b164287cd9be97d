package sscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanNumber(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		verb     rune
		long     bool
		ok       bool
		value    interface{}
		consumed int
	}{
		{name: "decimal", src: "123abc", verb: verbDecimal, ok: true, value: int32(123), consumed: 3},
		{name: "decimal sign", src: "-42 ", verb: verbDecimal, ok: true, value: int32(-42), consumed: 3},
		{name: "decimal plus", src: "+42", verb: verbDecimal, ok: true, value: int32(42), consumed: 3},
		{name: "decimal sign only", src: "-x", verb: verbDecimal},
		{name: "unsigned", src: "65535", verb: verbUnsigned, ok: true, value: uint32(65535), consumed: 5},
		{name: "unsigned no sign", src: "+1", verb: verbUnsigned},
		{name: "unsigned wraps", src: "4294967297", verb: verbUnsigned, ok: true, value: uint32(1), consumed: 10},
		{name: "unsigned long", src: "4294967297", verb: verbUnsigned, long: true, ok: true, value: uint64(4294967297), consumed: 10},
		{name: "hex mixed case", src: "aBcD", verb: verbHex, ok: true, value: uint32(0xabcd), consumed: 4},
		{name: "hex prefix", src: "0XfF", verb: verbHex, ok: true, value: uint32(255), consumed: 4},
		{name: "hex prefix only", src: "0x", verb: verbHex},
		{name: "hex prefix no digits", src: "0xg", verb: verbHex},
		{name: "hex zero", src: "0", verb: verbHex, ok: true, value: uint32(0), consumed: 1},
		{name: "octal stops at 8", src: "0178", verb: verbOctal, ok: true, value: uint32(15), consumed: 3},
		{name: "octal no digits", src: "9", verb: verbOctal},
		{name: "binary marker", src: "%111", verb: verbBinary, ok: true, value: uint32(7), consumed: 4},
		{name: "binary bare", src: "1012", verb: verbBinary, ok: true, value: uint32(5), consumed: 3},
		{name: "binary marker only", src: "%2", verb: verbBinary},
		{name: "generic decimal", src: "123", verb: verbGeneric, ok: true, value: int32(123), consumed: 3},
		{name: "generic octal", src: "0123", verb: verbGeneric, ok: true, value: int32(83), consumed: 4},
		{name: "generic bare zero", src: "0", verb: verbGeneric, ok: true, value: int32(0), consumed: 1},
		{name: "generic hex", src: "0x7fff", verb: verbGeneric, ok: true, value: int32(32767), consumed: 6},
		{name: "generic binary", src: "%111", verb: verbGeneric, ok: true, value: int32(7), consumed: 4},
		{name: "generic negative hex", src: "-0x10", verb: verbGeneric, ok: true, value: int32(-16), consumed: 5},
		{name: "generic long", src: "0x100000000", verb: verbGeneric, long: true, ok: true, value: int64(0x100000000), consumed: 11},
		{name: "generic hex no digits", src: "0xz", verb: verbGeneric},
		{name: "empty", src: "", verb: verbDecimal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := scanNumber(tc.src, basePolicies[tc.verb], tc.long)
			assert.Equal(t, tc.ok, ok)
			if !tc.ok {
				assert.Equal(t, 0, n.consumed)
				return
			}
			assert.Equal(t, tc.value, n.value(tc.long))
			assert.Equal(t, tc.consumed, n.consumed)
		})
	}
}

func TestScanVerb_WidthBoundsNumber(t *testing.T) {
	c := newCursor("0x1234")
	v, _, err := parseVerb("%4x", 0)
	assert.NoError(t, err)

	value, err := scanVerb(c, v)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x12), value)
	assert.Equal(t, 4, c.consumed())
}

func TestScanVerb_FailureConsumesNoToken(t *testing.T) {
	c := newCursor("  0xq")
	v, _, err := parseVerb("%x", 0)
	assert.NoError(t, err)

	_, err = scanVerb(c, v)
	assert.ErrorIs(t, err, ErrConversion)
	assert.Equal(t, 2, c.consumed())
}
