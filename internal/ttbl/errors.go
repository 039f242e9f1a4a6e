package ttbl

import "fmt"

// FormatErrorKind identifies which rule of the ttbl grammar was broken.
type FormatErrorKind int

const (
	BadTitle FormatErrorKind = iota + 1
	SectionEmpty
	TextOutsideSection
	MetadataBadSyntax
	MetadataDuplicateKey
	MetadataMissingKey
	MetadataWrongType
	GridBadSyntax
	GridDuplicateStop
	GridJagged
	GridBadEntry
	NoGrids
	InvalidLineID
	InvalidTimetableID
)

// FormatError describes a malformed ttbl file with enough context to find the
// offending section and line.
type FormatError struct {
	Kind FormatErrorKind
	// Section is the title of the offending section, without brackets.
	Section string
	// Text is the offending line, or the offending value.
	Text     string
	Key      string
	Expected string
	// Column is the 1-based grid column, for GridBadEntry.
	Column int
	Err    error
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case BadTitle:
		return fmt.Sprintf("section cannot have title %q (do not include brackets)", e.Section)
	case SectionEmpty:
		return fmt.Sprintf("section [%s] is empty", e.Section)
	case TextOutsideSection:
		return fmt.Sprintf("text %q appears before the first section", e.Text)
	case MetadataBadSyntax:
		return fmt.Sprintf("invalid metadata syntax in [%s] on line with %q", e.Section, e.Text)
	case MetadataDuplicateKey:
		return fmt.Sprintf("duplicate key in [%s] metadata %q", e.Section, e.Key)
	case MetadataMissingKey:
		return fmt.Sprintf("metadata section [%s] was missing key %q", e.Section, e.Key)
	case MetadataWrongType:
		return fmt.Sprintf("expecting a value of type %q for %q in [%s] section, got %q", e.Expected, e.Key, e.Section, e.Text)
	case GridBadSyntax:
		return fmt.Sprintf("invalid grid syntax in [%s] on line with %q", e.Section, e.Text)
	case GridDuplicateStop:
		return fmt.Sprintf("duplicate stop in [%s] grid %q", e.Section, e.Text)
	case GridJagged:
		return fmt.Sprintf("grid is jagged in [%s]", e.Section)
	case GridBadEntry:
		return fmt.Sprintf("service in [%s] at column %d is invalid: %v", e.Section, e.Column, e.Err)
	case NoGrids:
		return ".ttbl file must have at least one grid"
	case InvalidLineID:
		return fmt.Sprintf("line %q is not a valid line ID", e.Text)
	case InvalidTimetableID:
		return fmt.Sprintf("id %q is not a valid timetable ID", e.Text)
	default:
		return "ttbl format error"
	}
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// VersionError is returned, before any other parsing, when a file does not
// start with the supported version header.
type VersionError struct {
	Required string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("ttbl file is not version %s", e.Required)
}
