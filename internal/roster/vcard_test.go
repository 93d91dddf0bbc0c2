package roster_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/birthday-ics/internal/apperr"
	"github.com/tartampluch/birthday-ics/internal/roster"
)

func TestDecodeVCard_DateFormats_TableDriven(t *testing.T) {
	tests := []struct {
		name      string
		bdayValue string
		want      roster.Date
		expectOne bool
	}{
		{"ISO8601 Standard", "1990-10-25", roster.NewDate(1990, time.October, 25), true},
		{"Basic Format", "19901025", roster.NewDate(1990, time.October, 25), true},
		{"RFC3339", "1990-10-25T00:00:00Z", roster.NewDate(1990, time.October, 25), true},
		{"Truncated (Month-Day)", "--10-25", roster.Date{}, false},
		{"Truncated Basic", "--1025", roster.Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "BEGIN:VCARD\nVERSION:3.0\nFN:Test\nBDAY:" + tt.bdayValue + "\nEND:VCARD\n"

			doc, err := roster.DecodeVCard(strings.NewReader(content))
			require.NoError(t, err)

			if !tt.expectOne {
				assert.Empty(t, doc.People, "Yearless birthdays cannot be expanded and are skipped")
				return
			}
			require.Len(t, doc.People, 1)
			assert.Equal(t, "Test", doc.People[0].Name)
			assert.Equal(t, tt.want, doc.People[0].Birthday)
		})
	}
}

func TestDecodeVCard_SkipsCardsWithoutBirthday(t *testing.T) {
	content := `BEGIN:VCARD
VERSION:4.0
FN:No Birthday
END:VCARD
BEGIN:VCARD
VERSION:4.0
N:Lovelace;Ada;;;
BDAY:1815-12-10
END:VCARD`

	doc, err := roster.DecodeVCard(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, doc.People, 1)

	// N is used when FN is absent.
	assert.Equal(t, "Ada Lovelace", doc.People[0].Name)
	assert.Equal(t, roster.NewDate(1815, time.December, 10), doc.People[0].Birthday)
}

func TestDecodeVCard_GarbageDate(t *testing.T) {
	content := "BEGIN:VCARD\nVERSION:3.0\nFN:Broken\nBDAY:not-a-date\nEND:VCARD\n"

	doc, err := roster.DecodeVCard(strings.NewReader(content))

	assert.Nil(t, doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrDecode))
	assert.Contains(t, err.Error(), "Broken")
}

func TestDecodeVCard_EmptyStream(t *testing.T) {
	doc, err := roster.DecodeVCard(strings.NewReader(""))

	require.NoError(t, err)
	assert.NotNil(t, doc.People)
	assert.Empty(t, doc.People)
}
