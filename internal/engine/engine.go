package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/birthday-ics/internal/apperr"
	"github.com/tartampluch/birthday-ics/internal/calendar"
	"github.com/tartampluch/birthday-ics/internal/config"
	"github.com/tartampluch/birthday-ics/internal/roster"
)

// Generator is the core service turning a people list into a calendar file.
type Generator struct {
	Clock Clock // Interface for time mocking.

	// FormatSummary allows callers to inject localized event titles.
	// DefaultSummary is used when nil.
	FormatSummary SummaryFormatter
}

// Stats summarizes one generation run.
type Stats struct {
	People int
	Events int
}

// Run executes the whole pipeline: load the people list, build the events for
// the configured mode and write the calendar. Nothing is written on error.
func (g *Generator) Run(ctx context.Context, settings config.Settings) (Stats, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, settings.Mode,
	)

	if err := settings.Validate(); err != nil {
		return Stats{}, err
	}

	doc, err := roster.LoadFile(settings.InFile)
	if err != nil {
		return Stats{}, err
	}

	cal := calendar.New(settings.ProductID, g.now())
	stats, err := g.Generate(ctx, doc.People, settings.Mode, cal)
	if err != nil {
		return Stats{}, err
	}

	slog.Debug(config.MsgEventsReady,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyEvents, cal.Len(),
	)
	if err := cal.Save(settings.OutFile); err != nil {
		return Stats{}, err
	}

	log.Info(config.MsgGenSuccess,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyPeople, stats.People),
			slog.Int(config.LogKeyEvents, stats.Events),
		),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return stats, nil
}

// Generate appends the events for people to cal, in input order.
//
// In expanding mode each person yields one event per anniversary up to the
// horizon. In simple mode each person yields exactly one event on the birth
// date itself.
func (g *Generator) Generate(ctx context.Context, people []roster.Person, mode string, cal *calendar.Writer) (Stats, error) {
	format := g.FormatSummary
	if format == nil {
		format = DefaultSummary
	}

	var horizon time.Time
	switch mode {
	case config.ModeExpanding:
		horizon = Horizon(g.now())
		slog.Debug("Horizon computed",
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyHorizon, horizon.Format(config.DateFormatISO))
	case config.ModeSimple:
	default:
		return Stats{}, fmt.Errorf("%w: %s: %q", apperr.ErrConfig, config.ErrModeUnsupport, mode)
	}

	stats := Stats{}
	for _, p := range people {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}
		stats.People++

		if mode == config.ModeSimple {
			cal.Add(Materialize(format(p.Name, 0, false), p.Birthday.Time))
			stats.Events++
			continue
		}

		for occ := range Expand(p.Birthday.Time, horizon) {
			cal.Add(Materialize(format(p.Name, occ.Age, true), occ.Date))
			stats.Events++
		}
	}
	return stats, nil
}

func (g *Generator) now() time.Time {
	if g.Clock == nil {
		return time.Now()
	}
	return g.Clock.Now()
}
