package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a supported language, optionally narrowed to a region
// variant such as "en_US". The registry of valid tags is closed, so a Locale
// obtained from ParseLocale is always well formed; the zero Locale is invalid.
type Locale struct {
	lang   string
	region string
}

// ParseLocale converts a textual tag into a Locale. It accepts "xx", "xx_YY"
// and "xx-YY" in any case. Tags that carry extra subtags (scripts, BCP 47
// extensions) are reduced through x/text before the registry lookup. Unknown
// tags return an InvalidLocaleError.
func ParseLocale(tag string) (Locale, error) {
	lang, region, ok := splitTag(tag)
	if ok {
		if locale, found := lookupLocale(lang, region); found {
			return locale, nil
		}
	}

	// "zh-Hant-TW" style tags still map onto a registry entry once x/text
	// reduces them to a base language and region.
	if parsed, err := language.Parse(strings.TrimSpace(tag)); err == nil {
		if lang, region, ok := reduceTag(parsed); ok {
			if locale, found := lookupLocale(lang, region); found {
				return locale, nil
			}
		}
	}

	return Locale{}, &InvalidLocaleError{Tag: tag}
}

// MustParseLocale is ParseLocale for tags known at compile time; it panics on
// invalid input.
func MustParseLocale(tag string) Locale {
	locale, err := ParseLocale(tag)
	if err != nil {
		panic(err)
	}
	return locale
}

// Tag returns the canonical text form: "en" for a base language, "en_US" for
// a region variant.
func (l Locale) Tag() string {
	if l.region == "" {
		return l.lang
	}
	return l.lang + "_" + l.region
}

func (l Locale) String() string { return l.Tag() }

// Language returns the base language subtag, e.g. "en".
func (l Locale) Language() string { return l.lang }

// Region returns the region subtag, e.g. "US", or "" for a base language.
func (l Locale) Region() string { return l.region }

// IsZero reports whether the Locale is the invalid zero value.
func (l Locale) IsZero() bool { return l.lang == "" }

// Parent returns the base language a region variant falls back to. Base
// languages have no parent.
func (l Locale) Parent() (Locale, bool) {
	if l.region == "" {
		return Locale{}, false
	}
	return Locale{lang: l.lang}, true
}

// Compare orders locales by canonical tag. It returns -1, 0, or 1.
func (l Locale) Compare(other Locale) int {
	return strings.Compare(l.Tag(), other.Tag())
}

// splitTag normalizes "xx", "xx_YY" or "xx-YY" in any case into registry
// lookup form. ok is false when the shape is not one of those.
func splitTag(tag string) (lang, region string, ok bool) {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return "", "", false
	}
	lang = tag
	if pos := strings.IndexByte(tag, '-'); pos >= 0 {
		lang, region = tag[:pos], tag[pos+1:]
		if region == "" || strings.ContainsRune(region, '-') {
			return "", "", false
		}
	}
	return strings.ToLower(lang), strings.ToUpper(region), true
}

func reduceTag(tag language.Tag) (lang, region string, ok bool) {
	base, confidence := tag.Base()
	if confidence < language.High {
		return "", "", false
	}
	lang = base.String()
	if reg, confidence := tag.Region(); confidence >= language.High && reg.IsCountry() {
		region = reg.String()
	}
	return lang, region, true
}
