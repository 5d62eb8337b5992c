package solution_test

import (
	"testing"

	"github.com/es-debug/baekjoon-go/internal/input"
	"github.com/es-debug/baekjoon-go/internal/solution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountDigitSets(t *testing.T) {
	tt := []struct {
		name    string
		content string
		output  string
	}{
		{name: "no six or nine", content: "1122333\n", output: "3\n"},
		{name: "six and nine share a set", content: "69\n", output: "1\n"},
		{name: "odd flippable count rounds up", content: "666\n", output: "2\n"},
		{name: "nines only", content: "9999\n", output: "2\n"},
		{name: "other digit dominates", content: "888888\n", output: "6\n"},
		{name: "single zero", content: "0\n", output: "1\n"},
		{name: "empty room number", content: "\n", output: "0\n"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			out, err := solve(t, 1475, tc.content)
			require.NoError(t, err)
			assert.Equal(t, tc.output, out)
		})
	}
}

func TestCountDigitSetsErrors(t *testing.T) {
	_, err := solve(t, 1475, "12a\n")

	var notDigit solution.ErrNotDigit
	require.ErrorAs(t, err, &notDigit)
	assert.Equal(t, 'a', notDigit.Char)

	_, err = solve(t, 1475, "")
	require.ErrorIs(t, err, input.ErrEndOfInput{})
}
