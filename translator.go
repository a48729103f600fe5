package i18n

import (
	"errors"
	"io"
	"log/slog"
	"sync"
)

// Translator resolves a message for a locale, walking the fallback chain and
// rendering the first template it finds.
type Translator interface {
	Translate(locale Locale, domain, id string, ctx *Context) (string, error)
}

// SimpleTranslator is the canonical Translator over a CatalogueBag. It is
// immutable after construction except for the fallback locale, which may be
// swapped at runtime under a lock.
type SimpleTranslator struct {
	bag       *CatalogueBag
	resolver  FallbackResolver
	formatter Formatter
	logger    *slog.Logger
	logMisses bool

	mu          sync.RWMutex
	fallback    Locale
	hasFallback bool
}

var _ Translator = &SimpleTranslator{}

// TranslatorOption customizes a SimpleTranslator during construction.
type TranslatorOption func(*SimpleTranslator)

// WithTranslatorFallbackLocale sets the final fallback locale, consulted
// after the locale's own parent chain.
func WithTranslatorFallbackLocale(locale Locale) TranslatorOption {
	return func(t *SimpleTranslator) {
		t.fallback = locale
		t.hasFallback = !locale.IsZero()
	}
}

// WithTranslatorFallbackResolver replaces the parent-walking resolver.
func WithTranslatorFallbackResolver(resolver FallbackResolver) TranslatorOption {
	return func(t *SimpleTranslator) {
		if resolver != nil {
			t.resolver = resolver
		}
	}
}

// WithTranslatorFormatter replaces the default interpolating formatter.
func WithTranslatorFormatter(formatter Formatter) TranslatorOption {
	return func(t *SimpleTranslator) {
		if formatter != nil {
			t.formatter = formatter
		}
	}
}

// WithTranslatorLogger attaches a logger; the default discards everything.
func WithTranslatorLogger(logger *slog.Logger) TranslatorOption {
	return func(t *SimpleTranslator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithTranslatorMissingLogging logs failed lookups at warn level.
func WithTranslatorMissingLogging(enabled bool) TranslatorOption {
	return func(t *SimpleTranslator) {
		t.logMisses = enabled
	}
}

// NewSimpleTranslator builds a translator over the given bag.
func NewSimpleTranslator(bag *CatalogueBag, opts ...TranslatorOption) (*SimpleTranslator, error) {
	if bag == nil {
		return nil, errors.New("i18n: nil catalogue bag")
	}

	t := &SimpleTranslator{
		bag:       bag,
		resolver:  NewParentFallbackResolver(),
		formatter: NewDefaultFormatter(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}

	return t, nil
}

// SetFallbackLocale swaps the final fallback locale; later Translate calls
// see the new value.
func (t *SimpleTranslator) SetFallbackLocale(locale Locale) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fallback = locale
	t.hasFallback = !locale.IsZero()
}

// ClearFallbackLocale removes the final fallback locale.
func (t *SimpleTranslator) ClearFallbackLocale() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fallback = Locale{}
	t.hasFallback = false
}

// FallbackLocale returns the configured final fallback locale.
func (t *SimpleTranslator) FallbackLocale() (Locale, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.fallback, t.hasFallback
}

// Translate resolves domain/id for the locale. The lookup consults the locale
// itself, then its resolver chain, then the fallback locale; the first
// catalogue holding the message wins. The winning template goes through
// plural selection when it declares branches and then through the formatter.
func (t *SimpleTranslator) Translate(locale Locale, domain, id string, ctx *Context) (string, error) {
	if locale.IsZero() {
		return "", &InvalidLocaleError{Tag: locale.Tag()}
	}

	chain := t.candidateChain(locale)
	for _, candidate := range chain {
		catalogue, ok := t.bag.Get(candidate)
		if !ok {
			continue
		}
		template, ok := catalogue.Get(domain, id)
		if !ok {
			continue
		}
		return t.render(candidate, domain, id, template, ctx)
	}

	if t.logMisses {
		t.logger.Warn("message not found",
			"domain", domain,
			"id", id,
			"locale", locale.Tag(),
		)
	}
	return "", &MessageNotFoundError{Domain: domain, ID: id, Attempted: chain}
}

// TranslateTag is Translate for textual locale tags.
func (t *SimpleTranslator) TranslateTag(tag, domain, id string, ctx *Context) (string, error) {
	locale, err := ParseLocale(tag)
	if err != nil {
		return "", err
	}
	return t.Translate(locale, domain, id, ctx)
}

func (t *SimpleTranslator) candidateChain(locale Locale) []Locale {
	chain := append([]Locale{locale}, t.resolver.Resolve(locale)...)

	if fallback, ok := t.FallbackLocale(); ok {
		present := false
		for _, candidate := range chain {
			if candidate == fallback {
				present = true
				break
			}
		}
		if !present {
			chain = append(chain, fallback)
		}
	}

	return chain
}

func (t *SimpleTranslator) render(locale Locale, domain, id, template string, ctx *Context) (string, error) {
	branch := template
	if isPluralTemplate(template) {
		parsed, err := parsePluralTemplate(template)
		if err != nil {
			return "", err
		}
		if !ctx.HasCount() {
			return "", &MissingPluralContextError{Locale: locale, Domain: domain, ID: id}
		}
		branch = parsed.pick(ctx)
	}
	return t.formatter.Format(locale, branch, ctx)
}
