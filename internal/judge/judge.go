// Package judge runs solutions against their sample cases and grades the
// output the way an online judge does: trailing whitespace on each line and
// trailing blank lines are ignored.
package judge

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/es-debug/baekjoon-go/internal/domain"
	"github.com/es-debug/baekjoon-go/internal/input"
	"github.com/es-debug/baekjoon-go/internal/solution"
	"golang.org/x/sync/errgroup"
)

const numberOfGoroutines = 5

type Judge struct {
	logger *slog.Logger
}

func NewJudge(logger *slog.Logger) *Judge {
	return &Judge{
		logger: logger,
	}
}

func (j *Judge) Run(ctx context.Context, solutions []solution.Solution) (*domain.Report, error) {
	caseResults := newResults()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(numberOfGoroutines)

	for _, s := range solutions {
		for i, sample := range s.Problem.Samples {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				caseResults.add(j.runCase(s, i+1, sample))

				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("eg.Wait(): %w", err)
	}

	report := domain.NewReport(caseResults.sorted())
	j.logger.Info("samples judged", "accepted", report.Accepted, "total", report.Total)

	return report, nil
}

func (j *Judge) runCase(s solution.Solution, sampleCase int, sample domain.Sample) (result domain.CaseResult) {
	id := s.Problem.ID

	defer func() {
		if r := recover(); r != nil {
			j.logger.Debug("solution panicked", "problem", id, "case", sampleCase, "panic", r)
			result = domain.NewCaseResult(id, sampleCase, domain.VerdictRuntimeError, fmt.Sprintf("panic: %v", r))
		}
	}()

	var out bytes.Buffer

	if err := s.Solve(input.NewReader(strings.NewReader(sample.Input)), &out); err != nil {
		j.logger.Debug("solution failed", "problem", id, "case", sampleCase, "error", err)

		return domain.NewCaseResult(id, sampleCase, domain.VerdictRuntimeError, err.Error())
	}

	if !sameOutput(out.String(), sample.Output) {
		j.logger.Debug("wrong answer", "problem", id, "case", sampleCase)

		return domain.NewCaseResult(
			id,
			sampleCase,
			domain.VerdictWrongAnswer,
			fmt.Sprintf("want %q, got %q", sample.Output, out.String()),
		)
	}

	return domain.NewCaseResult(id, sampleCase, domain.VerdictAccepted, "")
}

func normalize(output string) []string {
	lines := strings.Split(output, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

func sameOutput(got, want string) bool {
	return slices.Equal(normalize(got), normalize(want))
}
