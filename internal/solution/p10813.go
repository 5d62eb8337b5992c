package solution

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/es-debug/baekjoon-go/internal/domain"
	"github.com/es-debug/baekjoon-go/internal/input"
)

func init() {
	Register(New(
		domain.NewProblem(10813, "공 바꾸기", domain.TierBronze,
			domain.NewSample("5 4\n1 2\n3 4\n1 4\n2 2\n", "3 1 4 2 5\n"),
		),
		swapBalls,
	))
}

// swapBalls puts balls 1..n into baskets 1..n and applies m swaps of basket
// contents in input order.
func swapBalls(in *input.Reader, out io.Writer) error {
	n, m, err := input.ReadTuple2[int, int](in)
	if err != nil {
		return fmt.Errorf("read basket and swap counts: %w", err)
	}

	if n < 0 {
		return NewErrOutOfRange("basket count", n, 0, math.MaxInt)
	}

	if m < 0 {
		return NewErrOutOfRange("swap count", m, 0, math.MaxInt)
	}

	baskets := make([]int, n+1)
	for i := range baskets {
		baskets[i] = i
	}

	for range m {
		i, j, err := input.ReadTuple2[int, int](in)
		if err != nil {
			return fmt.Errorf("read swap: %w", err)
		}

		if i < 1 || i > n {
			return NewErrOutOfRange("basket", i, 1, n)
		}

		if j < 1 || j > n {
			return NewErrOutOfRange("basket", j, 1, n)
		}

		baskets[i], baskets[j] = baskets[j], baskets[i]
	}

	balls := make([]string, 0, n)
	for _, ball := range baskets[1:] {
		balls = append(balls, strconv.Itoa(ball))
	}

	if _, err := fmt.Fprintln(out, strings.Join(balls, " ")); err != nil {
		return fmt.Errorf("write baskets: %w", err)
	}

	return nil
}
