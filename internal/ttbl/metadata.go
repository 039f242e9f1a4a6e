package ttbl

import (
	"fmt"
	"slices"
	"strings"

	"transitnet.org/ttbl/internal/calendar"
	"transitnet.org/ttbl/internal/utils"
)

// Wildcard stands in for an absent date.
const Wildcard = "*"

// MetadataSection is a section of "key: value" lines with unique keys, kept in
// file order.
type MetadataSection struct {
	title  string
	keys   []string
	values map[string]string
}

// MetadataField is one key and value, used to build a MetadataSection.
type MetadataField struct {
	Key   string
	Value string
}

func NewMetadataSection(title string, fields []MetadataField) (*MetadataSection, error) {
	m := &MetadataSection{title: title, values: make(map[string]string, len(fields))}
	for _, f := range fields {
		if f.Key == "" || f.Value == "" || strings.Contains(f.Key, ":") || strings.Contains(f.Value, ":") {
			return nil, &FormatError{Kind: MetadataBadSyntax, Section: title, Text: f.Key + ": " + f.Value}
		}
		if _, dup := m.values[f.Key]; dup {
			return nil, &FormatError{Kind: MetadataDuplicateKey, Section: title, Key: f.Key}
		}
		m.keys = append(m.keys, f.Key)
		m.values[f.Key] = f.Value
	}
	return m, nil
}

// PromoteMetadata reads each line of section as "key: value". A value cannot
// itself contain a colon.
func PromoteMetadata(section Section) (*MetadataSection, error) {
	fields := make([]MetadataField, 0, len(section.lines))
	for _, line := range section.lines {
		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			return nil, &FormatError{Kind: MetadataBadSyntax, Section: section.title, Text: line}
		}
		key, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if key == "" || value == "" {
			return nil, &FormatError{Kind: MetadataBadSyntax, Section: section.title, Text: line}
		}
		fields = append(fields, MetadataField{Key: key, Value: value})
	}
	return NewMetadataSection(section.title, fields)
}

func (m *MetadataSection) Title() string { return m.title }
func (m *MetadataSection) Keys() []string { return slices.Clone(m.keys) }

func (m *MetadataSection) Get(key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", &FormatError{Kind: MetadataMissingKey, Section: m.title, Key: key}
	}
	return v, nil
}

func (m *MetadataSection) GetInt(key string) (int, error) {
	v, err := m.Get(key)
	if err != nil {
		return 0, err
	}
	n, err := utils.ParseIntStrict(v)
	if err != nil {
		return 0, m.wrongType(key, v, "number")
	}
	return n, nil
}

// GetDate parses an ISO date. With allowWildcard, the value "*" gives a nil
// date.
func (m *MetadataSection) GetDate(key string, allowWildcard bool) (*calendar.LocalDate, error) {
	v, err := m.Get(key)
	if err != nil {
		return nil, err
	}
	if allowWildcard && v == Wildcard {
		return nil, nil
	}
	d, err := calendar.ParseLocalDate(v)
	if err != nil {
		return nil, m.wrongType(key, v, "date")
	}
	return &d, nil
}

// GetEnum returns the value if it is one of options.
func (m *MetadataSection) GetEnum(key string, options []string) (string, error) {
	v, err := m.Get(key)
	if err != nil {
		return "", err
	}
	if !slices.Contains(options, v) {
		return "", m.wrongType(key, v, fmt.Sprintf("enum[%s]", strings.Join(options, ", ")))
	}
	return v, nil
}

func (m *MetadataSection) wrongType(key, value, expected string) error {
	return &FormatError{Kind: MetadataWrongType, Section: m.title, Key: key, Text: value, Expected: expected}
}

func (m *MetadataSection) Write() string {
	lines := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		lines = append(lines, k+": "+m.values[k])
	}
	return writeSection(m.title, lines)
}
