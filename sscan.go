// Package sscan scans formatted input the way the scanf family does: a
// format of literal text and '%' verbs is matched against a string, and
// the values captured by the verbs are assigned to target pointers.
//
// Supported verbs are %d, %u, %x, %o, %i, %B, %c, %s and %n. Each accepts
// a '*' flag to match without assigning, a decimal width, and an 'l'
// modifier selecting 64 bit integers. %B reads base 2 digits after an
// optional '%' marker, and %i detects its base from a 0x, '%' or 0 prefix.
package sscan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	verbDecimal  rune = 'd'
	verbUnsigned rune = 'u'
	verbHex      rune = 'x'
	verbOctal    rune = 'o'
	verbBinary   rune = 'B'
	verbGeneric  rune = 'i'
	verbChar     rune = 'c'
	verbString   rune = 's'
	verbPosition rune = 'n'
)

const (
	pct          = '%'
	suppressFlag = '*'
	longFlag     = 'l'
)

var (
	// ErrBadArg reports a bad argument.
	ErrBadArg = errors.New("bad argument")

	// ErrNoMatch reports that a literal in 'format' does not match 'str'.
	ErrNoMatch = errors.New("'str' does not match 'format'")

	// ErrConversion reports that a verb found no valid token in 'str'.
	ErrConversion = errors.New("conversion failed")

	// ErrExhausted reports that 'str' ended where more input was required.
	ErrExhausted = fmt.Errorf("input exhausted: %w", io.ErrUnexpectedEOF)

	// ErrBug reports a bug.
	ErrBug = errors.New("bug")
)

// Result is the outcome of a scan.
type Result struct {
	// Assignments counts verbs that matched and were neither suppressed nor %n.
	Assignments int
	// Values holds every value written, %n included, in the order of the
	// verbs that wrote them.
	Values []interface{}
	// Consumed is the number of bytes of input read when the scan stopped.
	Consumed int
}

// ScanString captures values from 'str' according to 'format' and assigns
// them to 'targetPtrs'. It returns the number of assignments made, which
// is less than the number of verbs when the scan stops early; the error
// then says why.
func ScanString(str, format string, targetPtrs ...interface{}) (int, error) {
	s, err := NewScanner(format)
	if err != nil {
		return 0, err
	}

	return s.ScanString(str, targetPtrs...)
}

// ScanValues captures values from 'str' according to 'format' without
// target pointers, returning them in a Result.
func ScanValues(str, format string) (Result, error) {
	s, err := NewScanner(format)
	if err != nil {
		return Result{}, err
	}

	return s.ScanValues(str)
}

// ScanLine reads one line from 'r' and scans it like ScanString.
func ScanLine(r *bufio.Reader, format string, targetPtrs ...interface{}) (int, error) {
	s, err := NewScanner(format)
	if err != nil {
		return 0, err
	}

	return s.ScanLine(r, targetPtrs...)
}

// readLine returns the next line of r without its line ending. A final
// line without a newline is returned as is; io.EOF is only reported when
// nothing was read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
