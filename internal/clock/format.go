package clock

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

type localeLayout struct {
	tag    language.Tag
	layout string
}

// The first entry is the fallback for unmatched locales.
var layouts = []localeLayout{
	{language.AmericanEnglish, "1/2/2006, 3:04:05 PM"},
	{language.BritishEnglish, "02/01/2006, 15:04:05"},
	{language.German, "2.1.2006, 15:04:05"},
	{language.French, "02/01/2006 15:04:05"},
	{language.Spanish, "2/1/2006, 15:04:05"},
	{language.Japanese, "2006/1/2 15:04:05"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(layouts))
	for i, l := range layouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// Formatter renders times the way a browser's toLocaleString does for the
// closest supported locale.
type Formatter struct {
	tag    language.Tag
	layout string
}

// NewFormatter picks the layout for locale, which may be a BCP 47 tag or a
// POSIX value such as "de_DE.UTF-8".
func NewFormatter(locale string) Formatter {
	tag, err := ParseLocale(locale)
	if err != nil {
		return Formatter{tag: layouts[0].tag, layout: layouts[0].layout}
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return Formatter{tag: tag, layout: layouts[idx].layout}
}

// Tag returns the requested locale, used for number formatting elsewhere.
func (f Formatter) Tag() language.Tag {
	return f.tag
}

func (f Formatter) Format(t time.Time) string {
	if f.layout == "" {
		return t.Format(layouts[0].layout)
	}
	return t.Format(f.layout)
}

// ParseLocale converts a BCP 47 or POSIX locale string into a language tag.
// Blank, "C" and "POSIX" map to American English.
func ParseLocale(locale string) (language.Tag, error) {
	s := strings.TrimSpace(locale)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	switch s {
	case "", "C", "POSIX":
		return language.AmericanEnglish, nil
	}
	return language.Parse(strings.ReplaceAll(s, "_", "-"))
}
