package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tartampluch/birthday-ics/internal/calendar"
	"github.com/tartampluch/birthday-ics/internal/config"
)

// SummaryFormatter renders the event title for a person.
// withAge is false in simple mode, where no age is shown.
type SummaryFormatter func(name string, age int, withAge bool) string

// Materialize builds the all-day event for day. Every call gets a new random UID,
// even for identical inputs.
func Materialize(summary string, day time.Time) calendar.Event {
	start := dateOnly(day)
	return calendar.Event{
		UID:     uuid.NewString(),
		Start:   start,
		End:     start.AddDate(0, 0, config.EventLengthDays),
		Summary: summary,
		Status:  config.ICalStatusFixed,
	}
}

// DefaultSummary is the untranslated title used when no formatter is injected.
func DefaultSummary(name string, age int, withAge bool) string {
	if !withAge {
		return fmt.Sprintf(config.FallbackSummary, name)
	}
	return fmt.Sprintf(config.FallbackSummaryAge, name, age, OrdinalSuffix(age))
}
