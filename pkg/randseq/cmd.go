// 31 July 2020
// 19 Oct 2026 the command line moved here from cmd/randseq, so it can
// be tested.

package randseq

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/hirschberg/pkg/common"
)

const iseed int64 = 1637

// usageError is a complaint about the command line, not the work.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func positive(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, usageError{fmt.Errorf("failed converting %s to positive integer", s)}
	}
	return int(n), nil
}

// NewCommand builds the randseq command. Output named "-" goes to stdout.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		args RandSeqArgs
		dna  bool
	)
	cmd := &cobra.Command{
		Use:   "randseq [flags] fname nseq length",
		Short: "Write random sequences for testing",
		Args: func(cmd *cobra.Command, pos []string) error {
			if err := cobra.ExactArgs(3)(cmd, pos); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, pos []string) (err error) {
			if args.Nseq, err = positive(pos[1]); err != nil {
				return err
			}
			if args.Len, err = positive(pos[2]); err != nil {
				return err
			}
			if dna {
				args.Alfbt = DNA
			}
			args.Wrtr = stdout
			if pos[0] != "-" {
				ft, e := os.Create(pos[0])
				if e != nil {
					return fmt.Errorf("file for output: %w", e)
				}
				defer func() {
					if e := ft.Close(); e != nil && err == nil {
						err = e
					}
				}()
				args.Wrtr = ft
			}
			return RandSeqMain(&args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	f := cmd.Flags()
	f.BoolVarP(&dna, "dna", "d", false, "DNA instead of protein")
	f.BoolVarP(&args.Blank, "blank", "b", false, "add blank lines")
	f.Int64VarP(&args.Iseed, "seed", "r", iseed, "random number seed")
	f.StringVarP(&args.Cmmt, "comment", "c", "random", "comment for the header lines")
	return cmd
}

// Main runs the command and returns the exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return common.ExitSuccess
	}
	fmt.Fprintln(stderr, "randseq:", err)
	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprint(stderr, cmd.UsageString())
		return common.ExitUsageError
	}
	return common.ExitFailure
}
