package utils

import "strings"

// SplitTrim splits text on delimiter, trims whitespace around each piece and
// drops the pieces left empty.
func SplitTrim(text, delimiter string) []string {
	parts := strings.Split(text, delimiter)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Lineify splits text into trimmed, non-blank lines.
func Lineify(text string) []string {
	return SplitTrim(text, "\n")
}

// Kebabify converts free text such as a stop name into kebab-case, e.g.
// "Southern Cross" becomes "southern-cross".
func Kebabify(text string) string {
	s := strings.ToLower(text)
	s = whitespacePattern.ReplaceAllString(s, "-")
	return nonKebabPattern.ReplaceAllString(s, "")
}
