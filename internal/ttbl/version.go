package ttbl

import "transitnet.org/ttbl/internal/utils"

const (
	// RequiredVersion is the only ttbl version this package reads and writes.
	RequiredVersion = "2"

	metadataTitle = "timetable"
	versionKey    = "version"
)

var requiredLines = []string{
	"[" + metadataTitle + "]",
	versionKey + ": " + RequiredVersion,
}

// CheckVersion fails with a *VersionError unless the first two non-blank lines
// of text are exactly "[timetable]" and "version: 2".
func CheckVersion(text string) error {
	lines := utils.Lineify(text)
	if len(lines) < len(requiredLines) {
		return &VersionError{Required: RequiredVersion}
	}
	for i, want := range requiredLines {
		if lines[i] != want {
			return &VersionError{Required: RequiredVersion}
		}
	}
	return nil
}
