package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodeBase36 renders value in lowercase base 36, left-padded with zeros to
// at least width digits.
func EncodeBase36(value, width int) string {
	s := strconv.FormatInt(int64(value), 36)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// DecodeBase36 parses a base 36 string of at most maxDigits digits.
func DecodeBase36(s string, maxDigits int) (int, error) {
	if s == "" || len(s) > maxDigits {
		return 0, fmt.Errorf("invalid base36 value %q", s)
	}
	v, err := strconv.ParseInt(strings.ToLower(s), 36, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid base36 value %q", s)
	}
	return int(v), nil
}
