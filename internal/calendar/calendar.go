// Package calendar accumulates all-day events and writes them as one iCalendar file.
package calendar

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/birthday-ics/internal/apperr"
	"github.com/tartampluch/birthday-ics/internal/config"
)

// Event is a single all-day calendar entry.
// End is exclusive: an event occupying one day ends the following day.
type Event struct {
	UID     string
	Start   time.Time
	End     time.Time
	Summary string
	Status  string
}

// Writer owns the ordered list of events for one run.
// It is not safe for concurrent use.
type Writer struct {
	productID string
	stamp     time.Time
	events    []Event
}

// New returns an empty Writer tagged with productID.
// stamp is written as DTSTAMP on every event.
func New(productID string, stamp time.Time) *Writer {
	return &Writer{
		productID: productID,
		stamp:     stamp.UTC(),
	}
}

// Add appends e. Events are written in the order they were added.
func (w *Writer) Add(e Event) {
	w.events = append(w.events, e)
}

// Len returns the number of events added so far.
func (w *Writer) Len() int {
	return len(w.events)
}

// Events returns a copy of the accumulated events.
func (w *Writer) Events() []Event {
	out := make([]Event, len(w.events))
	copy(out, w.events)
	return out
}

// Encode serializes the whole calendar in memory.
func (w *Writer) Encode() ([]byte, error) {
	// A VCALENDAR without children is rejected by some clients as invalid;
	// write the minimal stub instead.
	if len(w.events) == 0 {
		return fmt.Appendf(nil, config.StubVCalendarFormat, w.productID), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, w.productID)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(w.stamp)

	for _, e := range w.events {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, e.UID)
		event.Props.Set(dtStampProp)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(e.Start)
		event.Props.Set(dtStartProp)

		dtEndProp := ical.NewProp(config.PropDTEnd)
		dtEndProp.SetDate(e.End)
		event.Props.Set(dtEndProp)

		event.Props.SetText(config.PropSummary, e.Summary)
		// STATUS is an enumerated value; set it raw to keep it free of escaping and params.
		statusProp := ical.NewProp(config.PropStatus)
		statusProp.Value = e.Status
		event.Props.Set(statusProp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// Save encodes the calendar and replaces path with the result.
// The data is staged in a temporary file in the same directory and renamed
// into place, so path holds either the previous content or the full calendar.
func (w *Writer) Save(path string) error {
	data, err := w.Encode()
	if err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrIO, err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %s %s: %w", apperr.ErrIO, config.ErrWriteOutput, path, err)
	}

	slog.Debug(config.MsgCalendarSaved,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyFile, path,
		config.LogKeyEvents, len(w.events),
		config.LogKeySizeBytes, len(data),
	)
	return nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), config.TempFilePattern)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrCalendarStaged, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(config.FilePermCalendar); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
