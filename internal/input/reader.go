// Package input reads line-oriented judge input and parses whitespace
// separated tokens into typed values.
//
// Every read consumes whole lines from a single forward-only stream, so
// the order of calls is the order of lines in the input.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type Reader struct {
	in     *bufio.Reader
	number int
}

func NewReader(in io.Reader) *Reader {
	return &Reader{
		in: bufio.NewReader(in),
	}
}

// Line returns the number of the last line read, starting at 1.
func (r *Reader) Line() int {
	return r.number
}

func (r *Reader) next() (line, error) {
	text, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return line{}, fmt.Errorf("read line #%d: %w", r.number+1, err)
		}

		if text == "" {
			return line{}, ErrEndOfInput{}
		}
	}

	r.number++

	return newLine(strings.TrimSpace(text), r.number), nil
}

func (r *Reader) nextTokens() (line, []string, error) {
	l, err := r.next()
	if err != nil {
		return line{}, nil, err
	}

	return l, Tokens(l.text), nil
}

// ReadLine returns the next line without its terminator and surrounding
// whitespace. A last line with no trailing newline is still returned.
func (r *Reader) ReadLine() (string, error) {
	l, err := r.next()
	if err != nil {
		return "", err
	}

	return l.text, nil
}

// ReadScalar parses the first token of the next line.
func ReadScalar[T Scalar](r *Reader) (T, error) {
	var zero T

	l, tokens, err := r.nextTokens()
	if err != nil {
		return zero, err
	}

	if len(tokens) < 1 {
		return zero, l.wrap(NewErrMissingToken(1, len(tokens)))
	}

	value, err := ParseToken[T](tokens[0])
	if err != nil {
		return zero, l.wrap(err)
	}

	return value, nil
}

// ReadTuple2 parses the first two tokens of the next line. Extra tokens are
// ignored.
func ReadTuple2[T1, T2 Scalar](r *Reader) (T1, T2, error) {
	var (
		v1 T1
		v2 T2
	)

	l, tokens, err := r.nextTokens()
	if err != nil {
		return v1, v2, err
	}

	if len(tokens) < 2 {
		return v1, v2, l.wrap(NewErrMissingToken(2, len(tokens)))
	}

	if v1, err = ParseToken[T1](tokens[0]); err != nil {
		return v1, v2, l.wrap(err)
	}

	if v2, err = ParseToken[T2](tokens[1]); err != nil {
		return v1, v2, l.wrap(err)
	}

	return v1, v2, nil
}

// ReadTuple3 parses the first three tokens of the next line.
func ReadTuple3[T1, T2, T3 Scalar](r *Reader) (T1, T2, T3, error) {
	var (
		v1 T1
		v2 T2
		v3 T3
	)

	l, tokens, err := r.nextTokens()
	if err != nil {
		return v1, v2, v3, err
	}

	if len(tokens) < 3 {
		return v1, v2, v3, l.wrap(NewErrMissingToken(3, len(tokens)))
	}

	if v1, err = ParseToken[T1](tokens[0]); err != nil {
		return v1, v2, v3, l.wrap(err)
	}

	if v2, err = ParseToken[T2](tokens[1]); err != nil {
		return v1, v2, v3, l.wrap(err)
	}

	if v3, err = ParseToken[T3](tokens[2]); err != nil {
		return v1, v2, v3, l.wrap(err)
	}

	return v1, v2, v3, nil
}

// ReadSequence parses every token of the next line. An empty line gives an
// empty slice.
func ReadSequence[T Scalar](r *Reader) ([]T, error) {
	l, tokens, err := r.nextTokens()
	if err != nil {
		return nil, err
	}

	values, err := parseAll[T](tokens)
	if err != nil {
		return nil, l.wrap(err)
	}

	return values, nil
}

// ReadSequenceN parses at most n tokens of the next line. A line with fewer
// than n tokens is not an error: the short slice is returned as is.
func ReadSequenceN[T Scalar](r *Reader, n int) ([]T, error) {
	l, tokens, err := r.nextTokens()
	if err != nil {
		return nil, err
	}

	n = max(n, 0)
	tokens = tokens[:min(n, len(tokens))]

	values, err := parseAll[T](tokens)
	if err != nil {
		return nil, l.wrap(err)
	}

	return values, nil
}

// ReadGrid reads rows lines of at most cols values each, in input order.
// Row lengths are not checked beyond what ReadSequenceN does.
func ReadGrid[T Scalar](r *Reader, rows, cols int) ([][]T, error) {
	rows = max(rows, 0)
	grid := make([][]T, 0, rows)

	for range rows {
		row, err := ReadSequenceN[T](r, cols)
		if err != nil {
			return nil, fmt.Errorf("read grid row %d: %w", len(grid)+1, err)
		}

		grid = append(grid, row)
	}

	return grid, nil
}
