package sscan

import (
	"bufio"
	"fmt"
	"reflect"
)

// Scanner stores information from a format string for the evaluation of
// multiple inputs against it. A Scanner holds no per-scan state and is
// safe for concurrent use. The zero Scanner behaves like one built from
// an empty format.
type Scanner struct {
	p *pattern
}

var emptyPattern pattern

func (s Scanner) compiled() *pattern {
	if s.p == nil {
		return &emptyPattern
	}
	return s.p
}

// NewScanner initializes a Scanner from a format string.
func NewScanner(format string) (Scanner, error) {
	var s Scanner

	p, err := newPattern(format)
	if err != nil {
		return s, fmt.Errorf("parsing 'format': %w", err)
	}

	s.p = &p

	return s, nil
}

// VerbCount returns the number of target pointers a scan expects: one per
// verb without the '*' flag.
func (s Scanner) VerbCount() int {
	return s.compiled().verbCount()
}

func (s Scanner) String() string {
	return s.compiled().format
}

// ScanString captures values from 'str' according to the Scanner's format
// and assigns them to 'targetPtrs', returning the number of assignments.
func (s Scanner) ScanString(str string, targetPtrs ...interface{}) (int, error) {
	p := s.compiled()
	if len(targetPtrs) != p.verbCount() {
		return 0, fmt.Errorf("%w: got %d 'targetPtrs' for %d verbs; count must match", ErrBadArg, len(targetPtrs), p.verbCount())
	}

	for i, ptr := range targetPtrs {
		if isNilPtr(ptr) {
			return 0, fmt.Errorf("%w: 'targetPtrs[%d]' is nil", ErrBadArg, i)
		}
	}

	res, err := p.scan(str, func(slot int, v verb, value interface{}) error {
		return assignFuncs[v.value](value, targetPtrs[slot])
	})
	if err != nil {
		return res.Assignments, fmt.Errorf("scanning 'str': %w", err)
	}

	return res.Assignments, nil
}

// ScanValues captures values from 'str' according to the Scanner's format
// and returns them without assigning to targets.
func (s Scanner) ScanValues(str string) (Result, error) {
	res, err := s.compiled().scan(str, nil)
	if err != nil {
		return res, fmt.Errorf("scanning 'str': %w", err)
	}

	return res, nil
}

// ScanLine reads one line from 'r', dropping its line ending, and scans it
// like ScanString. Read errors, io.EOF included, are returned unwrapped
// with a zero count.
func (s Scanner) ScanLine(r *bufio.Reader, targetPtrs ...interface{}) (int, error) {
	line, err := readLine(r)
	if err != nil {
		return 0, err
	}

	return s.ScanString(line, targetPtrs...)
}

// isNilPtr reports whether ptr is nil or a typed nil pointer such as
// (*int)(nil).
func isNilPtr(ptr interface{}) bool {
	if ptr == nil {
		return true
	}
	v := reflect.ValueOf(ptr)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
