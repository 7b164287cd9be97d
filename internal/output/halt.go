package output

import (
	"errors"

	"github.com/rchilly/sscan"
)

// Halt reasons reported for a scan that stopped early.
const (
	HaltNone       = ""
	HaltNoMatch    = "no_match"
	HaltConversion = "conversion"
	HaltExhausted  = "exhausted"
	HaltBadArg     = "bad_arg"
	HaltOther      = "error"
)

// HaltKind names the reason a scan error stopped the scan.
func HaltKind(err error) string {
	switch {
	case err == nil:
		return HaltNone
	case errors.Is(err, sscan.ErrNoMatch):
		return HaltNoMatch
	case errors.Is(err, sscan.ErrConversion):
		return HaltConversion
	case errors.Is(err, sscan.ErrExhausted):
		return HaltExhausted
	case errors.Is(err, sscan.ErrBadArg):
		return HaltBadArg
	default:
		return HaltOther
	}
}
