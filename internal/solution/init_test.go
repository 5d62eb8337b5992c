package solution_test

import (
	"strings"
	"testing"

	"github.com/es-debug/baekjoon-go/internal/input"
	"github.com/es-debug/baekjoon-go/internal/solution"
	"github.com/stretchr/testify/require"
)

func solve(t *testing.T, id int, content string) (string, error) {
	t.Helper()

	s, err := solution.Lookup(id)
	require.NoError(t, err, "solution must be registered")

	var out strings.Builder
	err = s.Solve(input.NewReader(strings.NewReader(content)), &out)

	return out.String(), err
}
