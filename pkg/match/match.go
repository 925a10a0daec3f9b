package match

import (
	"errors"
	"regexp"
	"slices"
	"strings"
)

// Wildcard matches any candidate when used as a full pattern
// and any suffix when trailing (e.g. "admin/*").
const Wildcard = "*"

// Matcher tests whether a candidate string satisfies a rule's pattern.
type Matcher interface {
	// Matches reports whether the candidate satisfies the matcher.
	Matches(candidate string) bool

	// String returns the source form of the matcher for messages and logs.
	String() string
}

type exact string

// Exact returns a Matcher that matches the candidate verbatim.
func Exact(s string) Matcher {
	return exact(s)
}

func (m exact) Matches(candidate string) bool {
	return string(m) == candidate
}

func (m exact) String() string {
	return string(m)
}

type pattern string

// Pattern returns a Matcher for wildcard patterns: a bare "*" matches
// everything, a trailing "*" matches by prefix, anything else matches
// verbatim. "admin/*" matches "admin/password" but not "admin" itself.
func Pattern(expr string) Matcher {
	return pattern(expr)
}

func (m pattern) Matches(candidate string) bool {
	expr := string(m)
	if expr == candidate || expr == Wildcard {
		return true
	}
	if strings.HasSuffix(expr, Wildcard) {
		return strings.HasPrefix(candidate, strings.TrimSuffix(expr, Wildcard))
	}
	return false
}

func (m pattern) String() string {
	return string(m)
}

type regex struct {
	expr string
	re   *regexp.Regexp
}

// Regexp compiles expr and returns a Matcher testing candidates against it.
// Compilation errors surface here, at setup time, so matching itself can
// never fail.
func Regexp(expr string) (Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Join(ErrInvalidExpression, err)
	}
	return regex{expr: expr, re: re}, nil
}

// MustRegexp is like Regexp but panics on an invalid expression.
// Intended for patterns hard-coded in setup code.
func MustRegexp(expr string) Matcher {
	m, err := Regexp(expr)
	if err != nil {
		panic(err)
	}
	return m
}

func (m regex) Matches(candidate string) bool {
	return m.re.MatchString(candidate)
}

func (m regex) String() string {
	return m.expr
}

type set []string

// Set returns a Matcher that matches any of the given items verbatim.
// It backs list rules whose scope is an explicit string set.
func Set(items ...string) Matcher {
	return set(slices.Clone(items))
}

func (m set) Matches(candidate string) bool {
	return slices.Contains(m, candidate)
}

func (m set) String() string {
	return strings.Join(m, " ")
}
