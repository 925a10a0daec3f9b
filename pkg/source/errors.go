package source

import "errors"

var (
	// ErrUnknownGroup is returned when a definition references a group code
	// that is not defined.
	ErrUnknownGroup = errors.New("source.unknown_group")

	// ErrUnknownKind is returned when a permission definition carries an
	// unknown kind.
	ErrUnknownKind = errors.New("source.unknown_kind")

	// ErrInvalidRule is returned when a rule definition cannot be turned
	// into a matcher.
	ErrInvalidRule = errors.New("source.invalid_rule")

	// ErrDecodingFailed is returned when raw definition data cannot be
	// decoded.
	ErrDecodingFailed = errors.New("source.decoding_failed")
)
