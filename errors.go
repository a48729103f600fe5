package i18n

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel targets for errors.Is checks. The concrete error types below carry
// the diagnostic payload and match these targets.
var (
	ErrInvalidLocale        = errors.New("i18n: invalid locale")
	ErrBadTemplate          = errors.New("i18n: malformed template")
	ErrMissingPluralContext = errors.New("i18n: missing plural count")
	ErrMessageNotFound      = errors.New("i18n: message not found")
	ErrBadFilename          = errors.New("i18n: translation filename must look like {domain}.{locale}.{ext}")
)

// InvalidLocaleError reports a tag that does not map onto any supported locale.
type InvalidLocaleError struct {
	Tag string
}

func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("i18n: invalid locale: %q is not a supported tag", e.Tag)
}

func (e *InvalidLocaleError) Is(target error) bool { return target == ErrInvalidLocale }

// TemplateError reports a message template whose plural branches could not be
// parsed.
type TemplateError struct {
	Template string
	Reason   string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("i18n: malformed template %q: %s", e.Template, e.Reason)
}

func (e *TemplateError) Is(target error) bool { return target == ErrBadTemplate }

// MissingPluralContextError reports a pluralized template rendered with a
// context that carries no count.
type MissingPluralContextError struct {
	Locale Locale
	Domain string
	ID     string
}

func (e *MissingPluralContextError) Error() string {
	return fmt.Sprintf("i18n: message %q in domain %q for locale %s is pluralized but no count was given",
		e.ID, e.Domain, e.Locale)
}

func (e *MissingPluralContextError) Is(target error) bool { return target == ErrMissingPluralContext }

// MessageNotFoundError reports a lookup that exhausted the locale fallback
// chain. Attempted lists every locale consulted, in consultation order.
type MessageNotFoundError struct {
	Domain    string
	ID        string
	Attempted []Locale
}

func (e *MessageNotFoundError) Error() string {
	tags := make([]string, len(e.Attempted))
	for i, locale := range e.Attempted {
		tags[i] = locale.Tag()
	}
	return fmt.Sprintf("i18n: message %q not found in domain %q (tried locales: %s)",
		e.ID, e.Domain, strings.Join(tags, ", "))
}

func (e *MessageNotFoundError) Is(target error) bool { return target == ErrMessageNotFound }
