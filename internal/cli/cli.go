// Package cli implements the sscan command line.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rchilly/sscan"
	"github.com/rchilly/sscan/internal/cases"
	"github.com/rchilly/sscan/internal/config"
	"github.com/rchilly/sscan/internal/output"
	"github.com/rchilly/sscan/internal/server"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailed  = 1
	ExitUsage   = 2
	ExitStopped = 130
)

func usage(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Usage:")
	_, _ = fmt.Fprintln(out, "  sscan scan  -f FORMAT [--output json|tsv] [--config FILE] [FILE...]")
	_, _ = fmt.Fprintln(out, "  sscan check [-v] CASES.yaml...")
	_, _ = fmt.Fprintln(out, "  sscan serve [--config FILE]")
	_, _ = fmt.Fprintln(out, "\nscan applies FORMAT to every input line (stdin when no FILE is given)")
	_, _ = fmt.Fprintln(out, "and prints one result per line. check runs YAML case files and exits")
	_, _ = fmt.Fprintln(out, "non-zero if any case fails. serve runs the HTTP API.")
}

// Run executes the command line argv and returns the process exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "sscan: ", 0)

	if len(argv) == 0 || argv[0] == "-h" || argv[0] == "--help" || argv[0] == "help" {
		usage(stdout)
		return ExitOK
	}

	cmd, args := argv[0], argv[1:]
	switch cmd {
	case "scan":
		return runScan(ctx, args, stdout, stderr, logger)
	case "check":
		return runCheck(args, stdout, stderr, logger)
	case "serve":
		return runServe(ctx, args, stderr, logger)
	default:
		logger.Printf("unknown command %q", cmd)
		usage(stderr)
		return ExitUsage
	}
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (yaml, json or toml)")
	return fs, configPath
}

func runScan(ctx context.Context, args []string, stdout, stderr io.Writer, logger *log.Logger) int {
	fs, configPath := newFlagSet("scan", stderr)
	var format, outFormat string
	fs.StringVar(&format, "format", "", "scan format [required]")
	fs.StringVar(&format, "f", "", "alias of --format")
	fs.StringVar(&outFormat, "output", "", "output format: json or tsv [config output.format]")
	fs.StringVar(&outFormat, "o", "", "alias of --output")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if format == "" {
		logger.Print("--format is required")
		return ExitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Print(err)
		return ExitFailed
	}
	if outFormat == "" {
		outFormat = cfg.Output.Format
	}

	scanner, err := sscan.NewScanner(format)
	if err != nil {
		logger.Print(err)
		return ExitUsage
	}

	w, err := output.New(outFormat, stdout)
	if err != nil {
		logger.Print(err)
		return ExitUsage
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	for _, path := range paths {
		if err := scanFile(ctx, path, scanner, w, cfg.Scan.MaxLineBytes); err != nil {
			_ = w.Flush()
			if output.IsBrokenPipe(err) {
				return ExitOK
			}
			if errors.Is(err, context.Canceled) {
				return ExitStopped
			}
			logger.Print(err)
			return ExitFailed
		}
	}

	if err := w.Flush(); err != nil && !output.IsBrokenPipe(err) {
		logger.Print(err)
		return ExitFailed
	}
	return ExitOK
}

func scanFile(ctx context.Context, path string, scanner sscan.Scanner, w output.Writer, maxLine int) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return err
		}
		defer fh.Close()
		r = fh
	}

	return scanLines(ctx, r, scanner, w, maxLine)
}

func scanLines(ctx context.Context, r io.Reader, scanner sscan.Scanner, w output.Writer, maxLine int) error {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, min(maxLine, 4096)), maxLine)

	for n := 1; lines.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := lines.Text()
		res, scanErr := scanner.ScanValues(line)
		if err := w.Write(output.NewRow(n, line, res, scanErr)); err != nil {
			return err
		}
	}

	if err := lines.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func runCheck(args []string, stdout, stderr io.Writer, logger *log.Logger) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var verbose bool
	fs.BoolVar(&verbose, "v", false, "print passing cases too")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if fs.NArg() == 0 {
		logger.Print("at least one case file is required")
		return ExitUsage
	}

	var total, failed int
	for _, path := range fs.Args() {
		f, err := cases.LoadFile(path)
		if err != nil {
			logger.Print(err)
			return ExitFailed
		}

		report := cases.Run(f.Cases)
		for _, o := range report.Outcomes {
			switch {
			case !o.Passed():
				_, _ = fmt.Fprintf(stdout, "FAIL %s: %s\n", path, o.Case.Name)
				for _, p := range o.Problems {
					_, _ = fmt.Fprintf(stdout, "    %s\n", p)
				}
			case verbose:
				_, _ = fmt.Fprintf(stdout, "PASS %s: %s\n", path, o.Case.Name)
			}
		}

		total += len(report.Outcomes)
		failed += report.Failed()
	}

	_, _ = fmt.Fprintf(stdout, "%d cases, %d passed, %d failed\n", total, total-failed, failed)
	if failed > 0 {
		return ExitFailed
	}
	return ExitOK
}

func runServe(ctx context.Context, args []string, stderr io.Writer, logger *log.Logger) int {
	fs, configPath := newFlagSet("serve", stderr)
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Print(err)
		return ExitFailed
	}

	if err := server.Serve(ctx, cfg, logger); err != nil {
		logger.Print(err)
		return ExitFailed
	}
	return ExitOK
}
