package engine

import (
	"iter"
	"time"

	"cloudeng.io/datetime"
	"github.com/tartampluch/birthday-ics/internal/config"
)

// Occurrence is one anniversary of a birth date.
type Occurrence struct {
	Age  int
	Date time.Time
}

// Expand yields every anniversary of birthday up to and including horizon,
// ordered by age starting at 0.
//
// A February 29 birthday has no anniversary in non-leap years; those ages are
// skipped rather than moved to February 28 or March 1. The sequence ends at the
// first anniversary that falls after horizon.
func Expand(birthday, horizon time.Time) iter.Seq[Occurrence] {
	birthday = dateOnly(birthday)
	horizon = dateOnly(horizon)
	birthYear, month, day := birthday.Date()

	return func(yield func(Occurrence) bool) {
		for age := 0; ; age++ {
			year := birthYear + age
			if day > datetime.DaysInMonth(year, datetime.Month(month)) {
				continue
			}
			candidate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			if candidate.After(horizon) {
				return
			}
			if !yield(Occurrence{Age: age, Date: candidate}) {
				return
			}
		}
	}
}

// Horizon returns the last date, inclusive, for which anniversaries are generated:
// the calendar date of today plus a fixed number of days.
func Horizon(today time.Time) time.Time {
	return dateOnly(today).AddDate(0, 0, config.HorizonDays)
}

// OrdinalSuffix returns the English ordinal suffix for n using the last digit only.
// 11, 12 and 13 therefore read "st", "nd" and "rd".
func OrdinalSuffix(n int) string {
	switch n % 10 {
	case 1:
		return config.OrdinalSuffixFirst
	case 2:
		return config.OrdinalSuffixSecond
	case 3:
		return config.OrdinalSuffixThird
	default:
		return config.OrdinalSuffixOther
	}
}

// dateOnly drops the time of day and location, keeping the wall-clock date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
