package input

import "fmt"

type line struct {
	text   string
	number int
}

func newLine(text string, number int) line {
	return line{
		text:   text,
		number: number,
	}
}

func (l line) wrap(err error) error {
	return fmt.Errorf("parse line #%d: %w", l.number, err)
}
