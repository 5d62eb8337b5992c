package solution

import "fmt"

type ErrUnknownProblem struct {
	ID int
}

func NewErrUnknownProblem(id int) ErrUnknownProblem {
	return ErrUnknownProblem{
		ID: id,
	}
}

func (e ErrUnknownProblem) Error() string {
	return fmt.Sprintf("no solution for problem %d", e.ID)
}

type ErrOutOfRange struct {
	Name  string
	Value int
	Low   int
	High  int
}

func NewErrOutOfRange(name string, value, low, high int) ErrOutOfRange {
	return ErrOutOfRange{
		Name:  name,
		Value: value,
		Low:   low,
		High:  high,
	}
}

func (e ErrOutOfRange) Error() string {
	return fmt.Sprintf("%s %d is outside [%d, %d]", e.Name, e.Value, e.Low, e.High)
}

type ErrNotDigit struct {
	Char rune
}

func (e ErrNotDigit) Error() string {
	return fmt.Sprintf("%q is not a decimal digit", e.Char)
}
