// Package cases runs scan fixtures described in YAML files.
package cases

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rchilly/sscan"
	"github.com/rchilly/sscan/internal/output"
)

// Case is one input/format pair and the outcome expected from scanning it.
type Case struct {
	Name        string        `yaml:"name"`
	Input       string        `yaml:"input"`
	Format      string        `yaml:"format"`
	Assignments int           `yaml:"assignments"`
	Values      []interface{} `yaml:"values"`
	// Halt is the expected halt reason; empty means the whole format matches.
	Halt string `yaml:"halt"`
}

// File is the top-level document of a case file.
type File struct {
	Cases []Case `yaml:"cases"`
}

// Load decodes a case file.
func Load(r io.Reader) (File, error) {
	var f File

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return f, fmt.Errorf("decoding cases: %w", err)
	}

	for i, c := range f.Cases {
		if c.Format == "" {
			return f, fmt.Errorf("case %d (%s): 'format' must not be empty", i, c.Name)
		}
	}

	return f, nil
}

// LoadFile decodes the case file at path.
func LoadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fh.Close()

	f, err := Load(fh)
	if err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Outcome is the result of running one Case.
type Outcome struct {
	Case     Case
	Result   sscan.Result
	Err      error
	Problems []string
}

// Passed reports whether the case met every expectation.
func (o Outcome) Passed() bool {
	return len(o.Problems) == 0
}

// Report collects the outcomes of a run in case order.
type Report struct {
	Outcomes []Outcome
}

// Failed returns the number of failed cases.
func (r Report) Failed() int {
	var n int
	for _, o := range r.Outcomes {
		if !o.Passed() {
			n++
		}
	}
	return n
}

// Run scans every case and compares the outcome to its expectations.
func Run(cases []Case) Report {
	report := Report{Outcomes: make([]Outcome, 0, len(cases))}
	for _, c := range cases {
		report.Outcomes = append(report.Outcomes, runCase(c))
	}
	return report
}

func runCase(c Case) Outcome {
	res, err := sscan.ScanValues(c.Input, c.Format)
	o := Outcome{Case: c, Result: res, Err: err}

	if got := output.HaltKind(err); got != c.Halt {
		o.Problems = append(o.Problems, fmt.Sprintf("halt: got %q, want %q (%v)", got, c.Halt, err))
	}

	if res.Assignments != c.Assignments {
		o.Problems = append(o.Problems, fmt.Sprintf("assignments: got %d, want %d", res.Assignments, c.Assignments))
	}

	if len(res.Values) != len(c.Values) {
		o.Problems = append(o.Problems, fmt.Sprintf("values: got %d, want %d", len(res.Values), len(c.Values)))
		return o
	}

	// YAML decodes integers as int or uint64 and scans produce sized
	// integers, so values compare by their printed form.
	for i := range c.Values {
		got, want := fmt.Sprint(res.Values[i]), fmt.Sprint(c.Values[i])
		if got != want {
			o.Problems = append(o.Problems, fmt.Sprintf("values[%d]: got %s, want %s", i, got, want))
		}
	}

	return o
}
