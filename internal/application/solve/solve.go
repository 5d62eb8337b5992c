// Package solve wires command-line flags to the solution registry and the
// sample judge.
package solve

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/es-debug/baekjoon-go/internal/input"
	"github.com/es-debug/baekjoon-go/internal/judge"
	"github.com/es-debug/baekjoon-go/internal/solution"
	"github.com/google/uuid"
)

// Start solves one problem from in to out, or lists problems, or checks
// samples, depending on args.
func Start(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	flags, err := readCMDFlags(args, out)
	if err != nil {
		return err
	}

	logger := slog.Default().With("run_id", uuid.NewString())

	switch {
	case flags.help:
		return nil
	case flags.list:
		return list(out)
	case flags.check:
		return check(ctx, logger, flags.problem, out)
	}

	s, err := solution.Lookup(flags.problem)
	if err != nil {
		return fmt.Errorf("lookup solution: %w", err)
	}

	logger.Debug("solving", "problem", s.Problem.ID, "title", s.Problem.Title)

	w := bufio.NewWriter(out)

	if err := s.Solve(input.NewReader(in), w); err != nil {
		return fmt.Errorf("solve problem %d: %w", s.Problem.ID, err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

func list(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	for _, s := range solution.All() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Problem.ID, s.Problem.Tier, s.Problem.Title)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush problem list: %w", err)
	}

	return nil
}

func check(ctx context.Context, logger *slog.Logger, problem int, out io.Writer) error {
	solutions := solution.All()

	if problem != 0 {
		s, err := solution.Lookup(problem)
		if err != nil {
			return fmt.Errorf("lookup solution: %w", err)
		}

		solutions = []solution.Solution{s}
	}

	report, err := judge.NewJudge(logger).Run(ctx, solutions)
	if err != nil {
		return fmt.Errorf("judge samples: %w", err)
	}

	for _, r := range report.Results {
		if r.Detail == "" {
			fmt.Fprintf(out, "%d #%d %s\n", r.ProblemID, r.Case, r.Verdict)
		} else {
			fmt.Fprintf(out, "%d #%d %s: %s\n", r.ProblemID, r.Case, r.Verdict, r.Detail)
		}
	}

	if !report.Passed() {
		return ErrSamplesFailed{
			Failed: report.Total - report.Accepted,
			Total:  report.Total,
		}
	}

	return nil
}
