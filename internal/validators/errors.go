package validators

import (
	"errors"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrCompilingSchema = errors.New("error compiling validation schema")
	ErrEvaluatingInput = errors.New("error evaluating input")
)

// ValidationError lists the client-facing messages of every failing field in
// declared order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
