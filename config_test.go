package i18n

import (
	"errors"
	"testing"
)

func TestConfigBuildTranslator(t *testing.T) {
	bag := NewCatalogueBag(
		NewCatalogueWithMessages(MustParseLocale("en"), map[string]map[string]string{
			"messages": {"greeting": "Hello, {name}!"},
		}),
	)

	cfg, err := NewConfig(
		WithCatalogueBag(bag),
		WithDefaultLocale("en"),
		WithFallbackLocale("en"),
	)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}

	translator, err := cfg.BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator returned error: %v", err)
	}

	got, err := translator.Translate(MustParseLocale("fr"), "messages", "greeting", Ctx().With("name", "world"))
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if got != "Hello, world!" {
		t.Fatalf("Translate = %q", got)
	}
}

func TestConfigLoaderHydratesBag(t *testing.T) {
	loader := LoaderFunc(func() (*CatalogueBag, error) {
		return NewCatalogueBag(
			NewCatalogueWithMessages(MustParseLocale("en"), map[string]map[string]string{
				"messages": {"greeting": "Hi"},
			}),
		), nil
	})

	cfg, err := NewConfig(WithLoader(loader))
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if cfg.Bag.IsEmpty() {
		t.Fatal("loader should have hydrated the bag")
	}
}

func TestConfigLoaderErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	loader := LoaderFunc(func() (*CatalogueBag, error) {
		return nil, boom
	})

	if _, err := NewConfig(WithLoader(loader)); !errors.Is(err, boom) {
		t.Fatalf("loader error should propagate, got %v", err)
	}
}

func TestConfigRejectsBadLocaleTags(t *testing.T) {
	if _, err := NewConfig(WithDefaultLocale("nope")); !errors.Is(err, ErrInvalidLocale) {
		t.Fatalf("bad default locale should fail, got %v", err)
	}
	if _, err := NewConfig(WithFallback("en", "nope")); !errors.Is(err, ErrInvalidLocale) {
		t.Fatalf("bad fallback tag should fail, got %v", err)
	}
}

func TestConfigWithFallbackPinsChain(t *testing.T) {
	bag := NewCatalogueBag(
		NewCatalogueWithMessages(MustParseLocale("fr"), map[string]map[string]string{
			"messages": {"greeting": "Bonjour"},
		}),
	)

	cfg, err := NewConfig(
		WithCatalogueBag(bag),
		WithFallback("de", "fr"),
	)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}

	translator, err := cfg.BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator returned error: %v", err)
	}

	got, err := translator.Translate(MustParseLocale("de"), "messages", "greeting", nil)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if got != "Bonjour" {
		t.Fatalf("Translate = %q", got)
	}
}

func TestConfigHooksWrapTranslator(t *testing.T) {
	bag := NewCatalogueBag(
		NewCatalogueWithMessages(MustParseLocale("en"), map[string]map[string]string{
			"messages": {"greeting": "Hello"},
		}),
	)

	var called bool
	cfg, err := NewConfig(
		WithCatalogueBag(bag),
		WithTranslatorHooks(TranslationHookFuncs{
			After: func(ctx *TranslatorHookContext) { called = true },
		}),
	)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}

	translator, err := cfg.BuildTranslator()
	if err != nil {
		t.Fatalf("BuildTranslator returned error: %v", err)
	}

	if _, err := translator.Translate(MustParseLocale("en"), "messages", "greeting", nil); err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if !called {
		t.Fatal("hook should have run")
	}
}
