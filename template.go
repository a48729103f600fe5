package i18n

// HelperConfig configures the template helper exports.
type HelperConfig struct {
	// DefaultLocale is used when a helper receives an empty or unknown tag.
	DefaultLocale Locale
	// DefaultDomain is used when a helper receives an empty domain.
	DefaultDomain string
}

// TemplateHelpers exposes translation helpers for text/template and
// html/template FuncMaps:
//
//	t  locale, domain, id, name/value pairs...
//	tn locale, domain, id, count, name/value pairs...
//
// Helpers never fail a template render: lookups that error return the message
// id so missing translations stay visible in the output.
func TemplateHelpers(t Translator, cfg HelperConfig) map[string]any {
	if cfg.DefaultDomain == "" {
		cfg.DefaultDomain = "messages"
	}

	resolve := func(tag, domain, id string, ctx *Context) string {
		locale := cfg.DefaultLocale
		if tag != "" {
			if parsed, err := ParseLocale(tag); err == nil {
				locale = parsed
			}
		}
		if domain == "" {
			domain = cfg.DefaultDomain
		}
		result, err := t.Translate(locale, domain, id, ctx)
		if err != nil {
			return id
		}
		return result
	}

	return map[string]any{
		"t": func(tag, domain, id string, pairs ...any) string {
			return resolve(tag, domain, id, pairContext(pairs))
		},
		"tn": func(tag, domain, id string, count int, pairs ...any) string {
			return resolve(tag, domain, id, pairContext(pairs).WithCount(count))
		},
	}
}

// pairContext folds alternating name/value arguments into a Context. A
// trailing name without a value is dropped.
func pairContext(pairs []any) *Context {
	ctx := Ctx()
	for i := 0; i+1 < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			continue
		}
		ctx.With(name, pairs[i+1])
	}
	return ctx
}
