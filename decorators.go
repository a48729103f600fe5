package i18n

import "log/slog"

// TranslationHook intercepts a translation before and after resolution.
// BeforeTranslate may rewrite the lookup inputs; AfterTranslate may rewrite
// the result or the error.
type TranslationHook interface {
	BeforeTranslate(ctx *TranslatorHookContext)
	AfterTranslate(ctx *TranslatorHookContext)
}

// TranslatorHookContext carries the lookup inputs and, after resolution, the
// outcome.
type TranslatorHookContext struct {
	Locale  Locale
	Domain  string
	ID      string
	Context *Context
	Result  string
	Error   error
}

// TranslationHookFuncs adapts bare functions to the TranslationHook
// interface; either field may be nil.
type TranslationHookFuncs struct {
	Before func(ctx *TranslatorHookContext)
	After  func(ctx *TranslatorHookContext)
}

func (h TranslationHookFuncs) BeforeTranslate(ctx *TranslatorHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h TranslationHookFuncs) AfterTranslate(ctx *TranslatorHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

var _ Translator = &HookedTranslator{}

// HookedTranslator runs every hook around the wrapped translator.
type HookedTranslator struct {
	next  Translator
	hooks []TranslationHook
}

// WrapTranslatorWithHooks decorates a translator with hooks. Nil hooks are
// dropped; with no hooks left the translator is returned unwrapped.
func WrapTranslatorWithHooks(next Translator, hooks ...TranslationHook) Translator {
	if next == nil || len(hooks) == 0 {
		return next
	}

	filtered := make([]TranslationHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook != nil {
			filtered = append(filtered, hook)
		}
	}

	if len(filtered) == 0 {
		return next
	}

	return &HookedTranslator{next: next, hooks: filtered}
}

func (t *HookedTranslator) Translate(locale Locale, domain, id string, ctx *Context) (string, error) {
	hookCtx := &TranslatorHookContext{
		Locale:  locale,
		Domain:  domain,
		ID:      id,
		Context: ctx,
	}

	for _, hook := range t.hooks {
		hook.BeforeTranslate(hookCtx)
	}

	hookCtx.Result, hookCtx.Error = t.next.Translate(hookCtx.Locale, hookCtx.Domain, hookCtx.ID, hookCtx.Context)

	for _, hook := range t.hooks {
		hook.AfterTranslate(hookCtx)
	}

	return hookCtx.Result, hookCtx.Error
}

// NewMissingTranslationHook logs failed lookups through the given logger.
func NewMissingTranslationHook(logger *slog.Logger) TranslationHook {
	return TranslationHookFuncs{
		After: func(ctx *TranslatorHookContext) {
			if ctx.Error == nil || logger == nil {
				return
			}
			logger.Warn("translation failed",
				"locale", ctx.Locale.Tag(),
				"domain", ctx.Domain,
				"id", ctx.ID,
				"error", ctx.Error,
			)
		},
	}
}
