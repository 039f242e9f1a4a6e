package utils

import (
	"errors"
	"regexp"
	"strconv"
)

// Compiled regular expressions for validation
var (
	// Lowercase alphanumeric words joined by single dashes, e.g. "albury-up"
	kebabCasePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	// Characters dropped when turning free text into kebab-case
	nonKebabPattern = regexp.MustCompile(`[^a-z0-9-]`)

	whitespacePattern = regexp.MustCompile(`\s`)
)

// IsKebabCase reports whether s is non-empty kebab-case text.
func IsKebabCase(s string) bool {
	return kebabCasePattern.MatchString(s)
}

// ParseIntStrict parses a base-10 integer. Unlike strconv.Atoi it rejects a
// leading "+" so that "+12" is never mistaken for a stop or line id.
func ParseIntStrict(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty integer")
	}
	if s[0] == '+' {
		return 0, errors.New("integer cannot have a sign prefix")
	}
	return strconv.Atoi(s)
}
