package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/macropower/winpath/pkg/pathops"
)

const (
	batchDesc = `This command runs one path method for every line of standard input.

Arguments on a line are separated by tabs. A line with fewer fields than the
method takes leaves the remaining arguments absent. Results are written in
input order; in text mode a line without a result is written as an empty line.
`
	batchExample = `  # Base name of every file in a listing
  dir /b /s | winpath batch getbasename

  # Join pairs of paths
  printf 'C:\\foo\tbar\nC:\\baz\\\tqux\n' | winpath batch join
`

	// maxLineSize bounds one input line. Paths longer than the configured
	// limit are cut by the methods, so this only has to stay above it.
	maxLineSize = 1 << 20
)

type BatchArgs struct {
	*RootArgs

	jobs *int
}

func NewBatchArgs(rootArgs *RootArgs) *BatchArgs {
	return &BatchArgs{
		RootArgs: rootArgs,
		jobs:     new(int),
	}
}

func (a *BatchArgs) GetJobs() int {
	return *a.jobs
}

// NewBatchCmd returns the batch command.
func NewBatchCmd(rootArgs *RootArgs) *cobra.Command {
	args := NewBatchArgs(rootArgs)

	cmd := &cobra.Command{
		Use:          "batch <method>",
		Short:        "Run a path method for every line of standard input",
		Long:         batchDesc,
		Example:      batchExample,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			if args.GetJobs() < 1 {
				return fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalidArgument, args.GetJobs())
			}

			if _, err := args.Registry().Lookup(pArgs[0]); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			lines, err := readLines(cc.InOrStdin())
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			results, err := runBatch(cc.Context(), args.Registry(), pArgs[0], lines, args.GetJobs())
			if err != nil {
				return err
			}

			if args.GetOutput() != OutputText {
				return writeStructured(cc.OutOrStdout(), args.GetOutput(), results)
			}

			w := bufio.NewWriter(cc.OutOrStdout())
			for _, res := range results {
				if _, err := fmt.Fprintln(w, res.Value); err != nil {
					return err
				}
			}

			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(args.jobs, "jobs", "j", runtime.NumCPU(), "Number of lines evaluated concurrently")

	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for s.Scan() {
		lines = append(lines, strings.TrimSuffix(s.Text(), "\r"))
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// runBatch calls method once per line with at most jobs calls in flight.
// Results keep the order of lines.
func runBatch(ctx context.Context, r *pathops.Registry, method string, lines []string, jobs int) ([]pathops.Result, error) {
	results := make([]pathops.Result, len(lines))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, line := range lines {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			res, err := r.Call(method, pathops.NewArgs(strings.Split(line, "\t")...))
			if err != nil {
				return fmt.Errorf("%w: line %d: %w", ErrInvalidArgument, i+1, err)
			}

			if !res.Found {
				slog.Debug("no result", slog.Int("line", i+1))
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
