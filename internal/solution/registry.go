// Package solution holds one solver per judge problem. Solvers register
// themselves from init and are looked up by problem number.
package solution

import (
	"fmt"
	"io"
	"sort"

	"github.com/es-debug/baekjoon-go/internal/domain"
	"github.com/es-debug/baekjoon-go/internal/input"
)

type Func func(in *input.Reader, out io.Writer) error

type Solution struct {
	Problem domain.Problem
	Solve   Func
}

func New(problem domain.Problem, solve Func) Solution {
	return Solution{
		Problem: problem,
		Solve:   solve,
	}
}

var solutions = make(map[int]Solution)

func Register(s Solution) {
	if _, ok := solutions[s.Problem.ID]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for problem %d", s.Problem.ID))
	}

	solutions[s.Problem.ID] = s
}

func Lookup(id int) (Solution, error) {
	s, ok := solutions[id]
	if !ok {
		return Solution{}, NewErrUnknownProblem(id)
	}

	return s, nil
}

// All returns every registered solution ordered by problem number.
func All() []Solution {
	all := make([]Solution, 0, len(solutions))
	for _, s := range solutions {
		all = append(all, s)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Problem.ID < all[j].Problem.ID
	})

	return all
}
