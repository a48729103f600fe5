package i18n

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

type translatorContextKey struct{}
type localeContextKey struct{}

// WithTranslator stores a translator in the context.
func WithTranslator(ctx context.Context, translator Translator) context.Context {
	return context.WithValue(ctx, translatorContextKey{}, translator)
}

// TranslatorFromContext retrieves the translator stored by the middleware.
func TranslatorFromContext(ctx context.Context) (Translator, bool) {
	translator, ok := ctx.Value(translatorContextKey{}).(Translator)
	return translator, ok
}

// WithLocale stores a locale in the context.
func WithLocale(ctx context.Context, locale Locale) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext retrieves the locale stored by the middleware.
func LocaleFromContext(ctx context.Context) (Locale, bool) {
	locale, ok := ctx.Value(localeContextKey{}).(Locale)
	return locale, ok
}

// Middleware negotiates the request locale from the Accept-Language header
// and stores it, together with the translator, in the request context.
// Requests without a usable header get the default locale.
func Middleware(translator Translator, defaultLocale Locale) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := defaultLocale
			if header := r.Header.Get("Accept-Language"); header != "" {
				if negotiated, ok := NegotiateLocale(header); ok {
					locale = negotiated
				}
			}

			ctx := WithTranslator(r.Context(), translator)
			ctx = WithLocale(ctx, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NegotiateLocale returns the highest-quality Accept-Language entry that maps
// onto a supported locale. Entries that do not parse are skipped, so a header
// like "xx, fr;q=0.5" still negotiates fr.
func NegotiateLocale(header string) (Locale, bool) {
	if tags, _, err := language.ParseAcceptLanguage(header); err == nil {
		for _, tag := range tags {
			if locale, err := ParseLocale(tag.String()); err == nil {
				return locale, true
			}
		}
		return Locale{}, false
	}

	// ParseAcceptLanguage rejects the whole header when a single entry
	// carries an unknown subtag; scan the entries ourselves so supported
	// tags elsewhere in the list are not lost.
	for _, tag := range acceptLanguageTags(header) {
		if locale, err := ParseLocale(tag); err == nil {
			return locale, true
		}
	}
	return Locale{}, false
}

// acceptLanguageTags splits an Accept-Language header into tags ordered by
// descending quality, dropping q=0 and malformed entries.
func acceptLanguageTags(header string) []string {
	type entry struct {
		tag     string
		quality float64
	}

	var entries []entry
	for _, part := range strings.Split(header, ",") {
		fields := strings.Split(part, ";")
		tag := strings.TrimSpace(fields[0])
		if tag == "" {
			continue
		}

		quality := 1.0
		for _, field := range fields[1:] {
			value, ok := strings.CutPrefix(strings.TrimSpace(field), "q=")
			if !ok {
				continue
			}
			parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				quality = 0
				break
			}
			quality = parsed
		}
		if quality <= 0 {
			continue
		}
		entries = append(entries, entry{tag: tag, quality: quality})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].quality > entries[j].quality
	})

	tags := make([]string, len(entries))
	for i, e := range entries {
		tags[i] = e.tag
	}
	return tags
}
