package i18n

import "log/slog"

// Config captures translator setup for callers who prefer declarative wiring
// over calling NewSimpleTranslator directly.
type Config struct {
	DefaultLocale  Locale
	FallbackLocale Locale
	Loader         Loader
	Bag            *CatalogueBag
	Resolver       FallbackResolver
	Formatter      Formatter
	Hooks          []TranslationHook
	Logger         *slog.Logger

	logMisses bool
}

// Option mutates Config during construction.
type Option func(*Config) error

// NewConfig builds a Config via the supplied options.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Bag == nil && cfg.Loader != nil {
		bag, err := cfg.Loader.Load()
		if err != nil {
			return nil, err
		}
		cfg.Bag = bag
	}
	if cfg.Bag == nil {
		cfg.Bag = NewCatalogueBag()
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale used by middleware and template helpers
// when nothing more specific was negotiated.
func WithDefaultLocale(tag string) Option {
	return func(c *Config) error {
		locale, err := ParseLocale(tag)
		if err != nil {
			return err
		}
		c.DefaultLocale = locale
		return nil
	}
}

// WithFallbackLocale sets the final fallback locale of the translator.
func WithFallbackLocale(tag string) Option {
	return func(c *Config) error {
		locale, err := ParseLocale(tag)
		if err != nil {
			return err
		}
		c.FallbackLocale = locale
		return nil
	}
}

// WithLoader hydrates the catalogue bag through a loader during NewConfig.
func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithCatalogueBag supplies a pre-built bag; it takes precedence over a
// loader.
func WithCatalogueBag(bag *CatalogueBag) Option {
	return func(c *Config) error {
		c.Bag = bag
		return nil
	}
}

// WithFallbackResolver replaces the parent-walking resolver.
func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback pins an explicit fallback chain for one locale. It upgrades
// the resolver to a StaticFallbackResolver when needed and is a no-op when a
// custom resolver of another type is already set.
func WithFallback(tag string, fallbackTags ...string) Option {
	return func(c *Config) error {
		locale, err := ParseLocale(tag)
		if err != nil {
			return err
		}

		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}

		fallbacks := make([]Locale, 0, len(fallbackTags))
		for _, fallbackTag := range fallbackTags {
			fallback, err := ParseLocale(fallbackTag)
			if err != nil {
				return err
			}
			fallbacks = append(fallbacks, fallback)
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithFormatter replaces the default interpolating formatter.
func WithFormatter(formatter Formatter) Option {
	return func(c *Config) error {
		c.Formatter = formatter
		return nil
	}
}

// WithTranslatorHooks registers hooks wrapped around the built translator.
func WithTranslatorHooks(hooks ...TranslationHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// WithLogger attaches a logger to the built translator.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMissingLogging logs failed lookups at warn level.
func WithMissingLogging() Option {
	return func(c *Config) error {
		c.logMisses = true
		return nil
	}
}

// BuildTranslator assembles the translator described by the config, hooks
// included.
func (cfg *Config) BuildTranslator() (Translator, error) {
	opts := []TranslatorOption{
		WithTranslatorFormatter(cfg.Formatter),
		WithTranslatorFallbackResolver(cfg.Resolver),
		WithTranslatorLogger(cfg.Logger),
		WithTranslatorMissingLogging(cfg.logMisses),
	}
	if !cfg.FallbackLocale.IsZero() {
		opts = append(opts, WithTranslatorFallbackLocale(cfg.FallbackLocale))
	}

	base, err := NewSimpleTranslator(cfg.Bag, opts...)
	if err != nil {
		return nil, err
	}

	var translator Translator = base
	if len(cfg.Hooks) > 0 {
		translator = WrapTranslatorWithHooks(translator, cfg.Hooks...)
	}
	return translator, nil
}
