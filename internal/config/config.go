package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName  = "birthday-ics"
	AppUsage = "Generate an iCalendar file of birthdays from a list of people"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermCalendar represents -rw-r--r--.
	// Calendar files are meant to be picked up by other applications.
	FilePermCalendar fs.FileMode = 0644

	// TempFilePattern is used for the staging file written next to the output.
	TempFilePattern = ".birthday-ics-*.tmp"
)

// -----------------------------------------------------------------------------
// CLI Flags, Environment Variables & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagProductID = "product-id"
	FlagInFile    = "in-file"
	FlagOutFile   = "out-file"
	FlagMode      = "mode"
	FlagDebug     = "debug"

	FlagAliasProductID = "p"
	FlagAliasInFile    = "i"
	FlagAliasOutFile   = "o"
	FlagAliasMode      = "m"

	EnvProductID = "PRODUCT_ID"
	EnvInFile    = "IN_FILE"
	EnvOutFile   = "OUT_FILE"
	EnvMode      = "MODE"
	EnvDebug     = "DEBUG"

	FlagDescProductID = "Product identifier written to the calendar PRODID"
	FlagDescInFile    = "Path of the people list (YAML, or vCard with .vcf/.vcard)"
	FlagDescOutFile   = "Path of the iCalendar file to write"
	FlagDescMode      = "Generation mode: expanding (one event per anniversary) or simple (one event per person)"
	FlagDescDebug     = "Enable debug logging to stderr"

	MsgFatal = "%s: %v\n"

	// DotEnvFile is read from the working directory when present.
	// Variables already set in the environment take precedence.
	DotEnvFile = ".env"
)

// -----------------------------------------------------------------------------
// Generation Modes & Business Logic
// -----------------------------------------------------------------------------

const (
	// ModeExpanding emits one event per anniversary inside the horizon.
	ModeExpanding = "expanding"
	// ModeSimple emits one event per person at the literal birth date.
	ModeSimple = "simple"

	DefaultMode = ModeExpanding

	// HorizonDays is the generation window counted from today.
	// It is a fixed day count, not a calendar year.
	HorizonDays = 365

	// EventLengthDays is the span of an all-day event (DTEND is exclusive).
	EventLengthDays = 1
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion     = "2.0"
	ICalScale       = "GREGORIAN"
	ICalStatusFixed = "CONFIRMED"

	PropUID      = "UID"
	PropSummary  = "SUMMARY"
	PropDTStart  = "DTSTART"
	PropDTEnd    = "DTEND"
	PropDTStamp  = "DTSTAMP"
	PropStatus   = "STATUS"
	PropVersion  = "VERSION"
	PropProdid   = "PRODID"
	PropCalScale = "CALSCALE"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	// StubVCalendarFormat is the minimal valid iCalendar object used when no events exist.
	// It expects the product identifier.
	StubVCalendarFormat = "BEGIN:VCALENDAR\r\nVERSION:" + ICalVersion + "\r\nPRODID:%s\r\nCALSCALE:" + ICalScale + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// DateFormatISO is the only layout accepted for YAML birthdays.
	DateFormatISO = "2006-01-02"

	// Additional layouts accepted for vCard BDAY fields.
	DateFormatBasic   = "20060102"
	DateFormatRFC3339 = time.RFC3339
	DateFormatNoYearD = "--01-02"
	DateFormatNoYearB = "--0102"

	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"

	KeyPeople         = "people"
	FormatPersonIndex = "%s[%d]"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	DefaultLanguage     = "en"
	LocalesDir          = "locales"
	LocaleFilePrefix    = "active."
	LocaleFileSuffix    = ".json"
	TKeyEvtSummary      = "event_summary"     // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age" // Requires Name, Age, Suffix
	TDataName           = "Name"
	TDataAge            = "Age"
	TDataSuffix         = "Suffix"
	FallbackSummary     = "%s's Birthday"
	FallbackSummaryAge  = "%s's %d%s Birthday"
	OrdinalSuffixFirst  = "st"
	OrdinalSuffixSecond = "nd"
	OrdinalSuffixThird  = "rd"
	OrdinalSuffixOther  = "th"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrConfigInvalid    = "invalid configuration"
	ErrReadInput        = "failed to read input file"
	ErrDecodeYAML       = "failed to decode YAML document"
	ErrDecodeVCard      = "failed to decode vCard stream"
	ErrEmptyDocument    = "input document is empty"
	ErrInvalidPeople    = "invalid people list"
	ErrDateParse        = "unable to parse date"
	ErrDateNotScalar    = "birthday must be a scalar date"
	ErrDateRequired     = "birthday is required"
	ErrNameNotString    = "name must be a string"
	ErrTrailingDocument = "input must contain a single YAML document"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrWriteOutput      = "failed to write output file"
	ErrModeUnsupport    = "unsupported generation mode"
	ErrAppFailed        = "application failed"
	ErrDotEnvLoad       = "failed to load .env file"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrTranslation      = "failed to render translation"
	ErrCalendarStaged   = "failed to stage calendar file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application finished"
	MsgRosterLoaded    = "People list loaded"
	MsgSkippedCard     = "Skipping vCard without usable birthday"
	MsgGenSuccess      = "Calendar generation successful"
	MsgEventsReady     = "Events materialized"
	MsgCalendarSaved   = "Calendar written"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTranslatorReady = "Translator ready"
	MsgTransMissing    = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyMode      = "mode"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyStats     = "stats"
	LogKeyPeople    = "people"
	LogKeyEvents    = "events"
	LogKeyHorizon   = "horizon"
	LogKeySizeBytes = "size_bytes"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "date"
	LogKeyLangs   = "languages"
	LogKeyGoVer   = "go_version"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompEngine   = "engine"
	CompRoster   = "roster"
	CompCalendar = "calendar"
	CompI18n     = "i18n"
)
