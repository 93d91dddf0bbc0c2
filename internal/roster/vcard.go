package roster

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/birthday-ics/internal/apperr"
	"github.com/tartampluch/birthday-ics/internal/config"
)

// DecodeVCard builds a Document from a vCard stream.
// Cards without a birthday, or with a birthday lacking the year, are skipped
// since no anniversary can be computed for them. A BDAY value that cannot be
// parsed at all is a decode error.
func DecodeVCard(r io.Reader) (*Document, error) {
	decoder := vcard.NewDecoder(r)
	doc := &Document{People: []Person{}}

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", apperr.ErrDecode, config.ErrDecodeVCard, err)
		}

		name := cardName(card)
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			slog.Debug(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompRoster,
				config.LogKeyName, name)
			continue
		}

		birthday, yearKnown, err := parseVCardDate(bday.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", apperr.ErrDecode, name, err)
		}
		if !yearKnown {
			slog.Debug(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompRoster,
				config.LogKeyName, name,
				config.LogKeyValue, bday.Value)
			continue
		}

		doc.People = append(doc.People, Person{Name: name, Birthday: birthday})
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrDecode, err)
	}
	return doc, nil
}

// cardName prefers the formatted name (FN) over the structured one (N).
func cardName(card vcard.Card) string {
	if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
		return fn.Value
	}
	if n := card.Get(config.VCardN); n != nil {
		// N is "Family;Given;Additional;Prefix;Suffix".
		parts := strings.Split(n.Value, ";")
		var kept []string
		for _, i := range []int{3, 1, 2, 0, 4} {
			if i < len(parts) && parts[i] != "" {
				kept = append(kept, parts[i])
			}
		}
		return strings.Join(kept, " ")
	}
	return ""
}

// parseVCardDate handles the BDAY layouts seen in the wild.
// The boolean is false for truncated --MM-DD values.
func parseVCardDate(value string) (Date, bool, error) {
	formatsWithYear := []string{
		config.DateFormatISO,
		config.DateFormatBasic,
		config.DateFormatRFC3339,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return NewDate(t.Year(), t.Month(), t.Day()), true, nil
		}
	}

	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if _, err := time.Parse(f, value); err == nil {
			return Date{}, false, nil
		}
	}

	return Date{}, false, fmt.Errorf("%s %q", config.ErrDateParse, value)
}
