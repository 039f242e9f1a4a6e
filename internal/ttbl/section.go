package ttbl

import (
	"slices"
	"strings"

	"transitnet.org/ttbl/internal/utils"
)

// Section is a raw "[title]" header and the non-blank lines under it.
type Section struct {
	title string
	lines []string
}

func NewSection(title string, lines []string) (Section, error) {
	if strings.ContainsAny(title, "[]") {
		return Section{}, &FormatError{Kind: BadTitle, Section: title}
	}
	return Section{title: title, lines: slices.Clone(lines)}, nil
}

func (s Section) Title() string { return s.title }
func (s Section) Lines() []string { return slices.Clone(s.lines) }

func (s Section) Write() string {
	return writeSection(s.title, s.lines)
}

func writeSection(title string, lines []string) string {
	return "[" + title + "]\n" + strings.Join(lines, "\n")
}

func isHeader(line string) bool {
	return strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]")
}

// ParseSections splits text into sections. Blank lines are ignored and every
// line is trimmed. Every section needs at least one line, and no text may
// come before the first header.
func ParseSections(text string) ([]Section, error) {
	lines := utils.Lineify(text)

	var sections []Section
	start := -1
	for i := 0; i <= len(lines); i++ {
		if i < len(lines) && !isHeader(lines[i]) {
			if start < 0 {
				return nil, &FormatError{Kind: TextOutsideSection, Text: lines[i]}
			}
			continue
		}

		if start >= 0 {
			header := lines[start]
			title := header[1 : len(header)-1]
			body := lines[start+1 : i]
			if len(body) == 0 {
				return nil, &FormatError{Kind: SectionEmpty, Section: title}
			}
			section, err := NewSection(title, body)
			if err != nil {
				return nil, err
			}
			sections = append(sections, section)
		}
		start = i
	}

	return sections, nil
}
