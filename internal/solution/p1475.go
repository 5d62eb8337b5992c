package solution

import (
	"fmt"
	"io"
	"slices"

	"github.com/es-debug/baekjoon-go/internal/domain"
	"github.com/es-debug/baekjoon-go/internal/input"
)

func init() {
	Register(New(
		domain.NewProblem(1475, "방 번호", domain.TierSilver,
			domain.NewSample("9999\n", "2\n"),
			domain.NewSample("122\n", "2\n"),
			domain.NewSample("12635\n", "1\n"),
			domain.NewSample("888888\n", "6\n"),
		),
		countDigitSets,
	))
}

// countDigitSets prints how many 0-9 digit sets are needed to spell a room
// number when a 6 can be flipped into a 9 and back.
func countDigitSets(in *input.Reader, out io.Writer) error {
	room, err := in.ReadLine()
	if err != nil {
		return fmt.Errorf("read room number: %w", err)
	}

	var counts [10]int

	for _, c := range room {
		if c < '0' || c > '9' {
			return ErrNotDigit{Char: c}
		}

		counts[c-'0']++
	}

	flippable := (counts[6] + counts[9] + 1) / 2
	counts[6], counts[9] = 0, 0

	if _, err := fmt.Fprintln(out, max(flippable, slices.Max(counts[:]))); err != nil {
		return fmt.Errorf("write set count: %w", err)
	}

	return nil
}
