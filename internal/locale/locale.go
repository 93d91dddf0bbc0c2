// Package locale renders event titles from embedded message files.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/birthday-ics/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator renders localized summaries.
type Translator struct {
	localizer *i18n.Localizer
	languages []string
}

// New loads every embedded locale and selects lang, falling back to English.
func New(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir(config.LocalesDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detected []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocaleFilePrefix) || !strings.HasSuffix(name, config.LocaleFileSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, config.LocalesDir+"/"+name); err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}

		code := strings.TrimSuffix(strings.TrimPrefix(name, config.LocaleFilePrefix), config.LocaleFileSuffix)
		detected = append(detected, code)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, code,
		)
	}

	if lang == "" {
		lang = config.DefaultLanguage
	}
	return &Translator{
		localizer: i18n.NewLocalizer(bundle, lang, config.DefaultLanguage),
		languages: detected,
	}, nil
}

// Languages lists the locale codes found in the embedded files.
func (t *Translator) Languages() []string {
	return t.languages
}

// Summary renders the event title. The age and its ordinal suffix are only
// included when withAge is set.
func (t *Translator) Summary(name string, age int, withAge bool, suffix string) (string, error) {
	cfg := &i18n.LocalizeConfig{
		MessageID:    config.TKeyEvtSummary,
		TemplateData: map[string]any{config.TDataName: name},
	}
	if withAge {
		cfg = &i18n.LocalizeConfig{
			MessageID: config.TKeyEvtSummaryAge,
			TemplateData: map[string]any{
				config.TDataName:   name,
				config.TDataAge:    age,
				config.TDataSuffix: suffix,
			},
		}
	}

	msg, err := t.localizer.Localize(cfg)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, cfg.MessageID,
			config.LogKeyError, err,
		)
		return "", fmt.Errorf("%s %s: %w", config.ErrTranslation, cfg.MessageID, err)
	}
	return msg, nil
}
