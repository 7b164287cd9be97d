package output

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/rchilly/sscan"
)

// Row is the rendering of one scanned input.
type Row struct {
	Line        int           `json:"line,omitempty"`
	Input       string        `json:"input"`
	Assignments int           `json:"assignments"`
	Values      []interface{} `json:"values"`
	Consumed    int           `json:"consumed"`
	Halt        string        `json:"halt,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// NewRow builds a Row from the outcome of a scan.
func NewRow(line int, input string, res sscan.Result, err error) Row {
	values := res.Values
	if values == nil {
		values = []interface{}{}
	}

	row := Row{
		Line:        line,
		Input:       input,
		Assignments: res.Assignments,
		Values:      values,
		Consumed:    res.Consumed,
		Halt:        HaltKind(err),
	}
	if err != nil {
		row.Error = err.Error()
	}
	return row
}

// Writer renders rows to an output stream.
type Writer interface {
	Write(Row) error
	Flush() error
}

// New returns a Writer for format, "json" or "tsv".
func New(format string, w io.Writer) (Writer, error) {
	switch format {
	case "json":
		return newJSONLWriter(w), nil
	case "tsv":
		return newTSVWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
