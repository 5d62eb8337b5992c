package judge

import (
	"sort"
	"sync"

	"github.com/es-debug/baekjoon-go/internal/domain"
)

type results struct {
	mu    *sync.Mutex
	cases []domain.CaseResult
}

func newResults() results {
	return results{
		mu:    &sync.Mutex{},
		cases: make([]domain.CaseResult, 0),
	}
}

func (r *results) add(result domain.CaseResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cases = append(r.cases, result)
}

func (r *results) sorted() []domain.CaseResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	sort.Slice(r.cases, func(i, j int) bool {
		if r.cases[i].ProblemID != r.cases[j].ProblemID {
			return r.cases[i].ProblemID < r.cases[j].ProblemID
		}

		return r.cases[i].Case < r.cases[j].Case
	})

	return r.cases
}
