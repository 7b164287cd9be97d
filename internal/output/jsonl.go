package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// jsonlWriter streams each Row as one JSON line.
type jsonlWriter struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

func newJSONLWriter(w io.Writer) *jsonlWriter {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &jsonlWriter{bw: bw, enc: enc}
}

func (w *jsonlWriter) Write(r Row) error {
	return w.enc.Encode(r)
}

func (w *jsonlWriter) Flush() error {
	return w.bw.Flush()
}
