package solve

import "fmt"

type ErrEmptyProblem struct{}

func (e ErrEmptyProblem) Error() string {
	return "problem number is empty"
}

type ErrFlag struct {
	msg string
}

func NewErrFlag(msg string) ErrFlag {
	return ErrFlag{
		msg: msg,
	}
}

func (e ErrFlag) Error() string {
	return e.msg
}

type ErrSamplesFailed struct {
	Failed int
	Total  int
}

func (e ErrSamplesFailed) Error() string {
	return fmt.Sprintf("%d of %d samples failed", e.Failed, e.Total)
}
