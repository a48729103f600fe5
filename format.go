package i18n

import (
	"strconv"
	"strings"
)

// Formatter renders a resolved template branch with the caller's context.
// The locale is the one the template was found under, which may sit further
// down the fallback chain than the locale the caller asked for.
type Formatter interface {
	Format(locale Locale, template string, ctx *Context) (string, error)
}

// FormatterFunc adapts a bare function to the Formatter interface.
type FormatterFunc func(locale Locale, template string, ctx *Context) (string, error)

func (fn FormatterFunc) Format(locale Locale, template string, ctx *Context) (string, error) {
	return fn(locale, template, ctx)
}

// DefaultFormatter substitutes context tokens into a template branch:
//
//	{name}  named value
//	{0}     positional value
//	{}      next auto-indexed value
//	{?}     the plural count
//	{{ }}   literal braces
//
// Tokens that do not resolve against the context are copied through verbatim,
// as are unterminated braces, so formatting itself never fails.
type DefaultFormatter struct{}

var _ Formatter = DefaultFormatter{}

// NewDefaultFormatter returns the formatter translators use when no
// WithTranslatorFormatter option is given.
func NewDefaultFormatter() DefaultFormatter {
	return DefaultFormatter{}
}

func (DefaultFormatter) Format(_ Locale, template string, ctx *Context) (string, error) {
	return interpolate(template, ctx), nil
}

func interpolate(template string, ctx *Context) string {
	if !strings.ContainsAny(template, "{}") {
		return template
	}

	var out strings.Builder
	out.Grow(len(template))

	autoIndex := 0
	for i := 0; i < len(template); {
		ch := template[i]

		if ch == '}' {
			if i+1 < len(template) && template[i+1] == '}' {
				out.WriteByte('}')
				i += 2
				continue
			}
			out.WriteByte('}')
			i++
			continue
		}

		if ch != '{' {
			next := strings.IndexAny(template[i:], "{}")
			if next < 0 {
				out.WriteString(template[i:])
				break
			}
			out.WriteString(template[i : i+next])
			i += next
			continue
		}

		if i+1 < len(template) && template[i+1] == '{' {
			out.WriteByte('{')
			i += 2
			continue
		}

		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			out.WriteString(template[i:])
			break
		}

		token := strings.TrimSpace(template[i+1 : i+end])
		if replacement, ok := resolveToken(token, ctx, &autoIndex); ok {
			out.WriteString(replacement)
		} else {
			out.WriteString(template[i : i+end+1])
		}
		i += end + 1
	}

	return out.String()
}

// resolveToken maps one token onto its context value. The auto index advances
// on every bare {} token whether or not a value backs it, keeping later
// tokens stable.
func resolveToken(token string, ctx *Context, autoIndex *int) (string, bool) {
	switch {
	case token == "":
		index := *autoIndex
		*autoIndex = index + 1
		return ctx.valueAt(index)
	case token == "?":
		return ctx.countValue()
	default:
		if index, err := strconv.Atoi(token); err == nil && index >= 0 {
			return ctx.valueAt(index)
		}
		if value, ok := ctx.namedValue(token); ok {
			return value, true
		}
		// "count" resolves through the context count unless a value
		// shadows it.
		if token == "count" {
			return ctx.countValue()
		}
		return "", false
	}
}
