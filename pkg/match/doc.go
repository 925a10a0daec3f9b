// Package match provides the string-matching primitives used by permission
// rules: exact comparison, wildcard patterns, compiled regular expressions,
// and fixed string sets.
//
// A Matcher tests one candidate string at a time. All matchers are immutable
// after construction and safe for concurrent use.
//
// Pattern matching rules:
//   - Exact: "admin/users" matches only "admin/users"
//   - Global wildcard: "*" matches any candidate
//   - Trailing wildcard: "admin/*" matches any candidate starting with "admin/"
//   - Regexp: full regular expression, compiled at construction
//
// Basic usage:
//
//	m := match.Pattern("admin/*")
//	m.Matches("admin/password") // true
//	m.Matches("system/reset")   // false
//
//	re, err := match.Regexp(`^report-\d+$`)
//	if err != nil {
//	    // invalid expression, reported at setup time
//	}
//	re.Matches("report-42") // true
//
//	s := match.Set("export", "print")
//	s.Matches("export") // true
//
// Invalid regular expressions are rejected when the matcher is constructed,
// never while matching.
package match
