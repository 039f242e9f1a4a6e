package ttbl

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"transitnet.org/ttbl/internal/calendar"
	"transitnet.org/ttbl/internal/network"
	"transitnet.org/ttbl/internal/timetable"
)

// FileParams is everything a ttbl file holds.
type FileParams struct {
	Created calendar.LocalDate
	ID      timetable.TimetableID
	Line    network.LineID
	Type    timetable.Type
	// Begins and Ends are nil when the timetable is unbounded on that side.
	Begins *calendar.LocalDate
	Ends   *calendar.LocalDate
	Grids  []*GridSection
}

// File is a parsed ttbl document: a metadata section followed by one or more
// grids.
type File struct {
	created calendar.LocalDate
	id      timetable.TimetableID
	line    network.LineID
	ttype   timetable.Type
	begins  *calendar.LocalDate
	ends    *calendar.LocalDate
	grids   []*GridSection
}

func NewFile(p FileParams) (*File, error) {
	if len(p.Grids) < 1 {
		return nil, &FormatError{Kind: NoGrids}
	}
	return &File{
		created: p.Created,
		id:      p.ID,
		line:    p.Line,
		ttype:   p.Type,
		begins:  p.Begins,
		ends:    p.Ends,
		grids:   slices.Clone(p.Grids),
	}, nil
}

func (f *File) Created() calendar.LocalDate { return f.created }
func (f *File) ID() timetable.TimetableID { return f.id }
func (f *File) Line() network.LineID { return f.line }
func (f *File) Type() timetable.Type { return f.ttype }
func (f *File) Begins() *calendar.LocalDate { return f.begins }
func (f *File) Ends() *calendar.LocalDate { return f.ends }
func (f *File) Grids() []*GridSection { return slices.Clone(f.grids) }

// Parse reads a whole ttbl document. The version header is checked before
// anything else, so a file from another version always fails with a
// *VersionError.
func Parse(text string) (*File, error) {
	if err := CheckVersion(text); err != nil {
		return nil, err
	}

	sections, err := ParseSections(text)
	if err != nil {
		return nil, err
	}

	meta, err := PromoteMetadata(sections[0])
	if err != nil {
		return nil, err
	}

	created, err := meta.GetDate("created", false)
	if err != nil {
		return nil, err
	}
	id, err := meta.GetInt("id")
	if err != nil {
		return nil, err
	}
	line, err := meta.GetInt("line")
	if err != nil {
		return nil, err
	}
	ttype, err := meta.GetEnum("type", timetable.TypeNames())
	if err != nil {
		return nil, err
	}
	begins, err := meta.GetDate("begins", true)
	if err != nil {
		return nil, err
	}
	ends, err := meta.GetDate("ends", true)
	if err != nil {
		return nil, err
	}

	grids := make([]*GridSection, 0, len(sections)-1)
	for _, s := range sections[1:] {
		g, err := PromoteGrid(s)
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}

	timetableID, err := timetable.ToTimetableID(id)
	if err != nil {
		return nil, &FormatError{Kind: InvalidTimetableID, Section: metadataTitle, Text: strconv.Itoa(id), Err: err}
	}
	lineID, err := network.ToLineID(line)
	if err != nil {
		return nil, &FormatError{Kind: InvalidLineID, Section: metadataTitle, Text: strconv.Itoa(line), Err: err}
	}

	return NewFile(FileParams{
		Created: *created,
		ID:      timetableID,
		Line:    lineID,
		Type:    timetable.Type(ttype),
		Begins:  begins,
		Ends:    ends,
		Grids:   grids,
	})
}

// Read parses a ttbl document from r.
func Read(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ttbl file: %w", err)
	}
	return Parse(string(data))
}

func (f *File) metadata() *MetadataSection {
	fields := []MetadataField{
		{Key: versionKey, Value: RequiredVersion},
		{Key: "created", Value: f.created.ISO()},
		{Key: "id", Value: f.id.String()},
		{Key: "line", Value: f.line.String()},
		{Key: "type", Value: string(f.ttype)},
		{Key: "begins", Value: dateOrWildcard(f.begins)},
		{Key: "ends", Value: dateOrWildcard(f.ends)},
	}
	// Every value above is colon free, so this cannot fail.
	m, _ := NewMetadataSection(metadataTitle, fields)
	return m
}

func dateOrWildcard(d *calendar.LocalDate) string {
	if d == nil {
		return Wildcard
	}
	return d.ISO()
}

// Write renders the file in canonical layout: metadata, a blank line, then
// grids separated by blank lines, ending in a newline.
func (f *File) Write() string {
	parts := make([]string, 0, len(f.grids))
	for _, g := range f.grids {
		parts = append(parts, g.Write())
	}
	return f.metadata().Write() + "\n\n" + strings.Join(parts, "\n\n") + "\n"
}

// WriteTo writes the canonical text to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.Write())
	return int64(n), err
}

// Validate converts the file to a timetable and checks it against n.
func (f *File) Validate(n *network.TransitNetwork) error {
	t, err := ToTimetable(f)
	if err != nil {
		return err
	}
	return timetable.Validate(t, n)
}
