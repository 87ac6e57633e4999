package resolver

import (
	"context"
	"time"

	"golang.org/x/text/language"
)

// Layouts follow what browsers print for Date.toLocaleString in each locale.
var localeLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006, 3:04:05 PM"},
	{language.BritishEnglish, "02/01/2006, 15:04:05"},
	{language.German, "2.1.2006, 15:04:05"},
	{language.French, "02/01/2006 15:04:05"},
	{language.Spanish, "2/1/2006, 15:04:05"},
	{language.Japanese, "2006/1/2 15:04:05"},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(localeLayouts))
	for i, l := range localeLayouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

type localeKey struct{}

// WithLocale attaches the viewer's Accept-Language value to ctx.
func WithLocale(ctx context.Context, acceptLanguage string) context.Context {
	return context.WithValue(ctx, localeKey{}, acceptLanguage)
}

func localeFrom(ctx context.Context) string {
	v, _ := ctx.Value(localeKey{}).(string)
	return v
}

// TimeFormatter renders version timestamps for the viewer's locale.
type TimeFormatter struct {
	loc      *time.Location
	fallback int
}

// NewTimeFormatter builds a formatter rendering in loc. defaultLocale is used
// when the viewer sends no usable Accept-Language.
func NewTimeFormatter(loc *time.Location, defaultLocale string) *TimeFormatter {
	if loc == nil {
		loc = time.UTC
	}
	f := &TimeFormatter{loc: loc}
	if defaultLocale != "" {
		f.fallback = f.match(defaultLocale, 0)
	}
	return f
}

func (f *TimeFormatter) match(acceptLanguage string, fallback int) int {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return index
}

// Format renders t. acceptLanguage may be empty.
func (f *TimeFormatter) Format(t time.Time, acceptLanguage string) string {
	i := f.fallback
	if acceptLanguage != "" {
		i = f.match(acceptLanguage, f.fallback)
	}
	return t.In(f.loc).Format(localeLayouts[i].layout)
}
