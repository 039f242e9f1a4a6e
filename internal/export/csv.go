// Package export writes timetables out in formats other tools can read.
package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"transitnet.org/ttbl/internal/network"
	"transitnet.org/ttbl/internal/timetable"
)

// StopEvent is one service calling at one stop: a row of the CSV export.
type StopEvent struct {
	// EntryKey is the timetable and entry index in base 36, e.g. "30" + "00c".
	EntryKey  string `csv:"entry_key"`
	Timetable int    `csv:"timetable"`
	Line      int    `csv:"line"`
	Index     int    `csv:"index"`
	Direction string `csv:"direction"`
	Day       string `csv:"day"`
	Sequence  int    `csv:"sequence"`
	Stop      int    `csv:"stop"`
	StopName  string `csv:"stop_name"`
	Time      string `csv:"time"`
}

// StopEvents flattens every entry of t, in index order, into one row per
// stop. Stop names come from n, and are left blank when n is nil.
func StopEvents(t *timetable.Timetable, n *network.TransitNetwork) ([]*StopEvent, error) {
	var events []*StopEvent
	for _, e := range t.Entries() {
		key := e.Timetable().Base36() + e.Index().Base36()
		for seq, s := range e.Stops() {
			name := ""
			if n != nil {
				stop, err := n.RequireStop(s.Stop)
				if err != nil {
					return nil, fmt.Errorf("entry %s: %w", e.Index(), err)
				}
				name = stop.Name()
			}

			events = append(events, &StopEvent{
				EntryKey:  key,
				Timetable: e.Timetable().Int(),
				Line:      e.Line().Int(),
				Index:     e.Index().Int(),
				Direction: e.Direction().String(),
				Day:       e.DayOfWeek().CodeName(),
				Sequence:  seq + 1,
				Stop:      s.Stop.Int(),
				StopName:  name,
				Time:      s.Time.Format(true),
			})
		}
	}
	return events, nil
}

// WriteCSV writes the stop events of t to w with a header row.
func WriteCSV(w io.Writer, t *timetable.Timetable, n *network.TransitNetwork) error {
	events, err := StopEvents(t, n)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(events, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
