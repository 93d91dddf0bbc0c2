// Package roster loads the list of people whose birthdays end up in the calendar.
package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	cerrors "cloudeng.io/errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/tartampluch/birthday-ics/internal/apperr"
	"github.com/tartampluch/birthday-ics/internal/config"
	"gopkg.in/yaml.v3"
)

// Person is one entry of the input list.
type Person struct {
	Name     string `yaml:"name"`
	Birthday Date   `yaml:"birthday"`
}

// Validate checks that the person has a display name and a birth date.
func (p Person) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Birthday, validation.By(requireDate)),
	)
}

// Document is the whole decoded input. The order of People is preserved.
type Document struct {
	People []Person `yaml:"people"`
}

// Validate checks the document shape and every person in it.
// All invalid people are reported together.
func (d *Document) Validate() error {
	if d.People == nil {
		return fmt.Errorf("%s: %q is required", config.ErrInvalidPeople, config.KeyPeople)
	}
	var errs cerrors.M
	for i, p := range d.People {
		if err := p.Validate(); err != nil {
			errs.Append(fmt.Errorf(config.FormatPersonIndex+": %w", config.KeyPeople, i, err))
		}
	}
	return errs.Err()
}

// LoadFile reads path and decodes it according to its extension.
// vCard files (.vcf, .vcard) are decoded as contacts, anything else as YAML.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", apperr.ErrIO, config.ErrReadInput, path, err)
	}

	var doc *Document
	switch strings.ToLower(filepath.Ext(path)) {
	case config.ExtVCF, config.ExtVCard:
		doc, err = DecodeVCard(bytes.NewReader(data))
	default:
		doc, err = DecodeYAML(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}

	slog.Debug(config.MsgRosterLoaded,
		config.LogKeyComponent, config.CompRoster,
		config.LogKeyFile, path,
		config.LogKeyPeople, len(doc.People),
	)
	return doc, nil
}

// DecodeYAML strictly decodes a YAML people list.
// Unknown keys, missing fields, values of the wrong type, malformed dates and
// additional documents in the stream are reported as apperr.ErrDecode.
func DecodeYAML(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw yamlDocument
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrDecode, config.ErrEmptyDocument)
		}
		return nil, fmt.Errorf("%w: %s: %w", apperr.ErrDecode, config.ErrDecodeYAML, err)
	}
	switch err := dec.Decode(new(yaml.Node)); {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", apperr.ErrDecode, config.ErrTrailingDocument)
	case !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("%w: %s: %w", apperr.ErrDecode, config.ErrDecodeYAML, err)
	}

	doc := raw.document()
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrDecode, err)
	}
	return doc, nil
}

// yamlDocument is the decoding shape of Document. It only differs in
// rejecting names that are not YAML strings.
type yamlDocument struct {
	People []yamlPerson `yaml:"people"`
}

type yamlPerson struct {
	Name     yamlString `yaml:"name"`
	Birthday Date       `yaml:"birthday"`
}

func (y yamlDocument) document() *Document {
	doc := &Document{}
	if y.People == nil {
		return doc
	}
	doc.People = make([]Person, 0, len(y.People))
	for _, p := range y.People {
		doc.People = append(doc.People, Person{Name: string(p.Name), Birthday: p.Birthday})
	}
	return doc
}

// yamlString accepts only string scalars, so `name: 123` or `name: true`
// are errors instead of the text "123" or "true".
type yamlString string

func (s *yamlString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return fmt.Errorf("line %d: %s", node.Line, config.ErrNameNotString)
	}
	*s = yamlString(node.Value)
	return nil
}

func requireDate(value any) error {
	if d, ok := value.(Date); ok && d.IsZero() {
		return errors.New(config.ErrDateRequired)
	}
	return nil
}

// Date is a calendar date without time of day.
// The wrapped time is always midnight UTC.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string. Dates that do not exist, such as
// 2023-02-29, are rejected.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(config.DateFormatISO, value)
	if err != nil {
		return Date{}, fmt.Errorf("%s %q: %w", config.ErrDateParse, value, err)
	}
	return Date{t}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a scalar
// holding a YYYY-MM-DD date, quoted or not.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %s", node.Line, config.ErrDateNotScalar)
	}
	parsed, err := ParseDate(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d Date) String() string {
	return d.Format(config.DateFormatISO)
}
