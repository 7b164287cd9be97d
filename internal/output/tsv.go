package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var tsvHeader = []string{"line", "assignments", "consumed", "halt", "values"}

// tsvWriter writes a header once, then one tab separated record per Row.
// Values are joined with commas; string values are quoted.
type tsvWriter struct {
	bw          *bufio.Writer
	wroteHeader bool
}

func newTSVWriter(w io.Writer) *tsvWriter {
	return &tsvWriter{bw: bufio.NewWriter(w)}
}

func (w *tsvWriter) Write(r Row) error {
	if !w.wroteHeader {
		if _, err := w.bw.WriteString(strings.Join(tsvHeader, "\t") + "\n"); err != nil {
			return err
		}
		w.wroteHeader = true
	}

	values := make([]string, len(r.Values))
	for i, v := range r.Values {
		if s, ok := v.(string); ok {
			values[i] = strconv.Quote(s)
			continue
		}
		values[i] = fmt.Sprint(v)
	}

	halt := r.Halt
	if halt == "" {
		halt = "-"
	}

	_, err := fmt.Fprintf(w.bw, "%d\t%d\t%d\t%s\t%s\n",
		r.Line, r.Assignments, r.Consumed, halt, strings.Join(values, ","))
	return err
}

func (w *tsvWriter) Flush() error {
	return w.bw.Flush()
}
