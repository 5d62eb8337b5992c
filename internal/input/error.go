package input

import "fmt"

type ErrEndOfInput struct{}

func (e ErrEndOfInput) Error() string {
	return "unexpected end of input"
}

type ErrMissingToken struct {
	Want int
	Got  int
}

func NewErrMissingToken(want, got int) ErrMissingToken {
	return ErrMissingToken{
		Want: want,
		Got:  got,
	}
}

func (e ErrMissingToken) Error() string {
	return fmt.Sprintf("want %d tokens, got %d", e.Want, e.Got)
}

type ErrMalformedToken struct {
	Token string
	Type  string
	err   error
}

func NewErrMalformedToken(token, typeName string, err error) ErrMalformedToken {
	return ErrMalformedToken{
		Token: token,
		Type:  typeName,
		err:   err,
	}
}

func (e ErrMalformedToken) Error() string {
	return fmt.Sprintf("token %q is not a valid %s: %s", e.Token, e.Type, e.err)
}

func (e ErrMalformedToken) Unwrap() error {
	return e.err
}
