package engine

import (
	"errors"
	"fmt"

	"github.com/varalys/luhnkit/internal/types"
)

// ErrInvalidInput is returned for empty input or input containing anything
// other than ASCII '0'-'9'.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports where a digit string was rejected. Offset is -1
// for empty input.
type InvalidInputError struct {
	Input  string
	Offset int
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// Parse converts a string of ASCII digits into a Sequence.
func Parse(s string) (types.Sequence, error) {
	if s == "" {
		return nil, &InvalidInputError{Input: s, Offset: -1, Reason: "empty sequence"}
	}
	seq := make(types.Sequence, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, &InvalidInputError{
				Input:  s,
				Offset: i,
				Reason: fmt.Sprintf("non-digit character %q at offset %d", c, i),
			}
		}
		seq[i] = c - '0'
	}
	return seq, nil
}
