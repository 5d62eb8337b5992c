package input_test

import (
	"strings"
	"testing"

	"github.com/es-debug/baekjoon-go/internal/input"
	"github.com/stretchr/testify/require"
)

func newReader(content string) *input.Reader {
	return input.NewReader(strings.NewReader(content))
}

func requireEndOfInput(t *testing.T, r *input.Reader) {
	t.Helper()

	_, err := r.ReadLine()
	require.ErrorIs(t, err, input.ErrEndOfInput{}, "input must be exhausted")
}
