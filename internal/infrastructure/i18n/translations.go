package i18n

import (
	"embed"
	"fmt"
	"log"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"supportbot/internal/localization"
	"supportbot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.Translator port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
//
// Dictionary templates use {name} placeholders interpolated here rather
// than go-i18n's TemplateData: text/template renders a missing key as
// "<no value>", while our contract is that unmatched tokens pass through
// unchanged.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator builds a Translator over the embedded active.*.toml
// dictionaries, one per supported locale, with the base locale as the
// fallback.
func NewTranslator() *Translator {
	tag := language.Make(localization.Default.String())
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range localization.Supported() {
		file := fmt.Sprintf("active.%s.toml", lang)
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the base locale,
// then finally to the key itself. It never fails.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		msg = key
	}
	return interpolate(msg, data)
}

// interpolate replaces every {name} occurrence with the string form of
// data[name] in a single pass: substituted values are never re-scanned and
// tokens without a matching parameter are left as-is.
func interpolate(text string, data map[string]any) string {
	if len(data) == 0 || !strings.Contains(text, "{") {
		return text
	}
	var b strings.Builder
	i := 0
	for i < len(text) {
		open := strings.IndexByte(text[i:], '{')
		if open < 0 {
			b.WriteString(text[i:])
			break
		}
		open += i
		end := strings.IndexByte(text[open:], '}')
		if end < 0 {
			b.WriteString(text[i:])
			break
		}
		end += open
		if v, ok := data[text[open+1:end]]; ok {
			b.WriteString(text[i:open])
			b.WriteString(fmt.Sprint(v))
			i = end + 1
			continue
		}
		b.WriteString(text[i : open+1])
		i = open + 1
	}
	return b.String()
}
