package input

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of types a single token can be parsed into.
type Scalar interface {
	constraints.Integer | constraints.Float | ~string
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}

	return false
}

// Tokens splits text on ASCII whitespace. Other Unicode spaces stay inside
// tokens.
func Tokens(text string) []string {
	return strings.FieldsFunc(text, isASCIISpace)
}

// ParseToken converts a single token into T. Integers are read in base 10
// and must fit the bit size of T.
func ParseToken[T Scalar](token string) (T, error) {
	var value T

	rv := reflect.ValueOf(&value).Elem()

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(token, 10, rv.Type().Bits())
		if err != nil {
			return value, malformed[T](token, err)
		}

		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(token, 10, rv.Type().Bits())
		if err != nil {
			return value, malformed[T](token, err)
		}

		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(token, rv.Type().Bits())
		if err != nil {
			return value, malformed[T](token, err)
		}

		rv.SetFloat(f)
	case reflect.String:
		rv.SetString(token)
	}

	return value, nil
}

func malformed[T Scalar](token string, err error) error {
	var zero T

	return NewErrMalformedToken(token, fmt.Sprintf("%T", zero), err)
}

func parseAll[T Scalar](tokens []string) ([]T, error) {
	values := make([]T, 0, len(tokens))

	for _, token := range tokens {
		value, err := ParseToken[T](token)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return values, nil
}
