package i18n

// FallbackResolver produces the ordered fallback chain consulted after a
// locale itself misses a lookup. The chain never contains the locale it was
// derived from.
type FallbackResolver interface {
	Resolve(locale Locale) []Locale
}

// FallbackResolverFunc adapts a bare function to the FallbackResolver
// interface.
type FallbackResolverFunc func(locale Locale) []Locale

func (fn FallbackResolverFunc) Resolve(locale Locale) []Locale {
	return fn(locale)
}

// ParentFallbackResolver walks the parent relationship: a region variant such
// as zh_TW falls back to its base language zh. Translators use it by default.
type ParentFallbackResolver struct{}

var _ FallbackResolver = ParentFallbackResolver{}

func NewParentFallbackResolver() ParentFallbackResolver {
	return ParentFallbackResolver{}
}

func (ParentFallbackResolver) Resolve(locale Locale) []Locale {
	var chain []Locale
	for current := locale; ; {
		parent, ok := current.Parent()
		if !ok {
			break
		}
		chain = append(chain, parent)
		current = parent
	}
	return chain
}

// StaticFallbackResolver serves caller-pinned chains and defers to the parent
// relationship for every other locale.
type StaticFallbackResolver struct {
	chains map[Locale][]Locale
	parent ParentFallbackResolver
}

var _ FallbackResolver = &StaticFallbackResolver{}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[Locale][]Locale)}
}

// Set pins the fallback chain for a locale. Occurrences of the locale itself
// are dropped so chains stay acyclic.
func (r *StaticFallbackResolver) Set(locale Locale, fallbacks ...Locale) *StaticFallbackResolver {
	chain := make([]Locale, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		if fallback == locale || fallback.IsZero() {
			continue
		}
		chain = append(chain, fallback)
	}
	r.chains[locale] = chain
	return r
}

func (r *StaticFallbackResolver) Resolve(locale Locale) []Locale {
	if chain, ok := r.chains[locale]; ok {
		out := make([]Locale, len(chain))
		copy(out, chain)
		return out
	}
	return r.parent.Resolve(locale)
}
