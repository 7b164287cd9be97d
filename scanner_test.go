package sscan

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_ScanString(t *testing.T) {
	scanner, err := NewScanner("%5s%d")
	if err != nil {
		t.Fatal(err)
	}

	var str string
	var i int

	n, err := scanner.ScanString("f00 22", &str, &i)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 2, n)
	assert.Equal(t, "f00", str)
	assert.Equal(t, 22, i)

	n, err = scanner.ScanString("foo221000", &str, &i)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 2, n)
	assert.Equal(t, "foo22", str)
	assert.Equal(t, 1000, i)

	n, err = scanner.ScanString("blue 42 set hut hut!", &str, &i)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 2, n)
	assert.Equal(t, "blue", str)
	assert.Equal(t, 42, i)
}

func TestScanner_VerbCount(t *testing.T) {
	scanner, err := NewScanner("%*s %d %n %%")
	require.NoError(t, err)

	assert.Equal(t, 2, scanner.VerbCount())
	assert.Equal(t, "%*s %d %n %%", scanner.String())
}

func TestScanner_ZeroValue(t *testing.T) {
	var scanner Scanner

	assert.Equal(t, 0, scanner.VerbCount())
	assert.Equal(t, "", scanner.String())

	n, err := scanner.ScanString("anything")
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestScanner_ScanString_NilTargets(t *testing.T) {
	scanner, err := NewScanner("%d %s")
	require.NoError(t, err)

	var s string
	for name, targets := range map[string][]interface{}{
		"untyped nil": {nil, &s},
		"typed nil":   {(*int)(nil), &s},
	} {
		t.Run(name, func(t *testing.T) {
			n, err := scanner.ScanString("12 abc", targets...)
			assert.ErrorIs(t, err, ErrBadArg)
			assert.ErrorContains(t, err, "'targetPtrs[0]' is nil")
			assert.Equal(t, 0, n)
		})
	}
}

func TestNewScanner_BadFormat(t *testing.T) {
	for _, format := range []string{"%", "%l", "%*", "%5", "%0d", "%q", "%*n", "abc %"} {
		t.Run(format, func(t *testing.T) {
			_, err := NewScanner(format)
			assert.ErrorIs(t, err, ErrBadArg)
		})
	}
}

func TestScanner_Concurrent(t *testing.T) {
	scanner, err := NewScanner("%s = %li%n")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				res, err := scanner.ScanValues("mask = 0x7fff")
				assert.NoError(t, err)
				assert.Equal(t, []interface{}{"mask", int64(32767), 13}, res.Values)
			}
		}()
	}
	wg.Wait()
}

func TestScanner_ScanLine(t *testing.T) {
	scanner, err := NewScanner("%s %d")
	require.NoError(t, err)

	r := bufio.NewReader(strings.NewReader("alpha 1\r\nbeta 2\ngamma 3"))

	var name string
	var v int

	for _, want := range []struct {
		name string
		v    int
	}{{"alpha", 1}, {"beta", 2}, {"gamma", 3}} {
		n, err := scanner.ScanLine(r, &name, &v)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, want.name, name)
		assert.Equal(t, want.v, v)
	}

	n, err := scanner.ScanLine(r, &name, &v)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestScanLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("x=%101\n"))

	var b uint8
	n, err := ScanLine(r, "x=%B", &b)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint8(5), b)
}
