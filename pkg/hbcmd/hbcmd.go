// 12 Oct 2026

// Package hbcmd is the hirschberg command, everything after main().
package hbcmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	cerrors "cloudeng.io/errors"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/hirschberg/pkg/align"
	"github.com/andrew-torda/hirschberg/pkg/common"
	"github.com/andrew-torda/hirschberg/pkg/seq"
	"github.com/andrew-torda/hirschberg/pkg/submat"
)

const cmdName = "hirschberg"

// usageError marks errors that come from the command line itself, so
// they get the usage exit code.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// NewCommand builds the cobra command. Output and errors go to the
// writers given, which is what the tests rely on.
func NewCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		cfg     = Defaults()
		cfgFile string
	)
	cmd := &cobra.Command{
		Use:   cmdName + " [flags]",
		Short: "Align two sequences in linear space",
		Long: `hirschberg reads a file with exactly two sequences and prints the
symbols of the first that line up with the second, then the score.
Scores come from a substitution matrix (BLOSUM62 unless -m is given)
and a linear gap penalty.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageError{fmt.Errorf("unexpected arguments %q", args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			merged := cfg
			if cfgFile != "" {
				fromFile, err := LoadConfig(cfgFile)
				if err != nil {
					return usageError{err}
				}
				merged = overlay(fromFile, cfg, cmd)
			}
			if err := merged.Validate(); err != nil {
				return usageError{err}
			}
			return Run(merged, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := cmd.Flags()
	f.StringVarP(&cfg.Matrix, "matrix", "m", "", "substitution matrix file (default built in BLOSUM62)")
	f.StringVarP(&cfg.Input, "input", "i", "", "input file with two sequences (default stdin)")
	f.StringVarP(&cfg.Output, "output", "o", "", "output file (default stdout)")
	f.Float32VarP(&cfg.Gap, "gap", "g", DefaultGap, "gap penalty, zero or negative (positive values are rejected)")
	f.StringVarP(&cfgFile, "config", "c", "", "yaml configuration file")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "debug logging on stderr")
	f.BoolVar(&cfg.Exact, "exact", false, "use the quadratic space solver")
	f.BoolVar(&cfg.PrintIDs, "ids", false, "print the two sequence ids first")
	return cmd
}

// overlay copies the flags that were set on the command line over the
// configuration from the file.
func overlay(fromFile, flags Config, cmd *cobra.Command) Config {
	f := cmd.Flags()
	if f.Changed("matrix") {
		fromFile.Matrix = flags.Matrix
	}
	if f.Changed("input") {
		fromFile.Input = flags.Input
	}
	if f.Changed("output") {
		fromFile.Output = flags.Output
	}
	if f.Changed("gap") {
		fromFile.Gap = flags.Gap
	}
	if f.Changed("verbose") {
		fromFile.Verbose = flags.Verbose
	}
	if f.Changed("exact") {
		fromFile.Exact = flags.Exact
	}
	if f.Changed("ids") {
		fromFile.PrintIDs = flags.PrintIDs
	}
	return fromFile
}

// Main runs the command and turns the outcome into an exit code.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return common.ExitSuccess
	}
	fmt.Fprintf(stderr, "%s: %v\n", cmdName, err)
	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprint(stderr, cmd.UsageString())
		return common.ExitUsageError
	}
	return common.ExitFailure
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadMatrix(fname string) (*submat.Submat, error) {
	if fname == "" {
		return submat.Blosum62()
	}
	return submat.Read(fname)
}

// readPair reads from the file if there is one, otherwise from stdin.
func readPair(fname string, stdin io.Reader) (seq.Record, seq.Record, error) {
	if fname == "" {
		return seq.ReadPair(stdin)
	}
	recs, err := seq.ReadFile(fname)
	if err != nil {
		return seq.Record{}, seq.Record{}, err
	}
	if len(recs) != 2 {
		return seq.Record{}, seq.Record{}, fmt.Errorf("%s has %d records: %w", fname, len(recs), seq.ErrNotPair)
	}
	return recs[0], recs[1], nil
}

// Run does the work for a validated configuration. The matrix, the
// input and the output file are all dealt with before any alignment is
// done.
func Run(cfg Config, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	logger := newLogger(stderr, cfg.Verbose)
	smat, err := loadMatrix(cfg.Matrix)
	if err != nil {
		return fmt.Errorf("substitution matrix: %w", err)
	}
	logger.Debug("substitution matrix", "symbols", string(smat.Symbols()), "table", smat.String())
	r1, r2, err := readPair(cfg.Input, stdin)
	if err != nil {
		return err
	}
	for _, r := range []seq.Record{r1, r2} {
		if err := smat.Check(r.Seq); err != nil {
			return fmt.Errorf("sequence %s: %w", r.ID, err)
		}
		smat.Normalize(r.Seq)
	}
	self1, _ := smat.SelfScore(r1.Seq) // Check has already passed
	self2, _ := smat.SelfScore(r2.Seq)
	logger.Debug("read", "id1", r1.ID, "len1", len(r1.Seq), "self1", self1,
		"id2", r2.ID, "len2", len(r2.Seq), "self2", self2, "gap", cfg.Gap)

	w := stdout
	if cfg.Output != "" {
		fp, e := os.Create(cfg.Output)
		if e != nil {
			return e
		}
		defer func() {
			errs := cerrors.M{}
			errs.Append(err, fp.Close())
			err = errs.Err()
		}()
		w = fp
	}

	model := smat.Model(cfg.Gap)
	var res align.Result[byte, float32]
	if cfg.Exact {
		res, err = align.Exact(model, r1.Seq, r2.Seq)
	} else {
		res, err = align.Align(model, r1.Seq, r2.Seq, align.WithLogger(logger))
	}
	if err != nil {
		return fmt.Errorf("%s vs %s: %w", r1.ID, r2.ID, err)
	}
	logger.Debug("aligned", "score", res.Score, "scans", res.Stats.Scans,
		"exact_calls", res.Stats.ExactCalls, "depth", res.Stats.MaxDepth, "cells", res.Stats.Cells)
	return write(w, cfg.PrintIDs, r1, r2, res)
}

func write(w io.Writer, ids bool, r1, r2 seq.Record, res align.Result[byte, float32]) error {
	bw := bufio.NewWriter(w)
	if ids {
		fmt.Fprintf(bw, "%s %s\n", r1.ID, r2.ID)
	}
	bw.Write(res.Aligned)
	bw.WriteByte('\n')
	fmt.Fprintf(bw, "Score: %v\n", res.Score)
	return bw.Flush()
}
