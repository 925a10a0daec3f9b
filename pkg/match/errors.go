package match

import "errors"

var (
	// ErrInvalidExpression is returned when a regular expression cannot be compiled.
	ErrInvalidExpression = errors.New("match.invalid_expression")
)
