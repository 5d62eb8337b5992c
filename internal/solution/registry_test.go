package solution_test

import (
	"testing"

	"github.com/es-debug/baekjoon-go/internal/domain"
	"github.com/es-debug/baekjoon-go/internal/solution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	s, err := solution.Lookup(10813)
	require.NoError(t, err)
	assert.Equal(t, "공 바꾸기", s.Problem.Title)
	assert.Equal(t, domain.TierBronze, s.Problem.Tier)
	assert.NotNil(t, s.Solve)

	_, err = solution.Lookup(1)
	require.ErrorIs(t, err, solution.NewErrUnknownProblem(1))
}

func TestAllSortedByID(t *testing.T) {
	all := solution.All()
	require.GreaterOrEqual(t, len(all), 2)

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Problem.ID, all[i].Problem.ID)
	}

	for _, s := range all {
		assert.NotEmpty(t, s.Problem.Samples, "problem %d must carry samples", s.Problem.ID)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		solution.Register(solution.New(domain.NewProblem(1475, "dup", domain.TierSilver), nil))
	})
}
