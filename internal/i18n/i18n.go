// Package i18n resolves the visitor language and formats the site's messages.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to force a language.
const LangParam = "lang"

var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.English,
}

var matcher = language.NewMatcher(supported)

// Supported returns the languages the catalog has messages for.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// ParseTag matches a raw language value against the supported set.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// ResolveTag picks the language for a request: the lang query parameter first,
// then Accept-Language, then fallback.
func ResolveTag(r *http.Request, fallback language.Tag) language.Tag {
	if r == nil {
		return fallback
	}
	if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return supported[idx]
			}
		}
	}
	return fallback
}

// Localizer formats catalog messages for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for tag.
func New(tag language.Tag) *Localizer {
	return &Localizer{tag: tag, printer: message.NewPrinter(tag)}
}

// ForRequest returns a Localizer for the language resolved from r.
func ForRequest(r *http.Request, fallback language.Tag) *Localizer {
	return New(ResolveTag(r, fallback))
}

// Lang returns the BCP 47 tag, suitable for the html lang attribute.
func (l *Localizer) Lang() string {
	return l.tag.String()
}

// T formats the message stored under key.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Summary formats the "showing N of M" results line.
func (l *Localizer) Summary(showing, total int) string {
	return l.printer.Sprintf(KeyResultsSummary, showing, total)
}
