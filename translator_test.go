package i18n

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func testBag(t *testing.T) *CatalogueBag {
	t.Helper()
	return NewCatalogueBag(
		NewCatalogueWithMessages(MustParseLocale("en"), map[string]map[string]string{
			"messages": {
				"greeting": "Hello, {name}!",
				"apples":   "{0} no apples | {1} one apple | {..4} a few apples | {?} apples",
			},
		}),
		NewCatalogueWithMessages(MustParseLocale("en_US"), map[string]map[string]string{
			"messages": {
				"color": "color",
			},
		}),
		NewCatalogueWithMessages(MustParseLocale("fr"), map[string]map[string]string{
			"messages": {
				"greeting": "Bonjour, {name} !",
			},
		}),
	)
}

func TestTranslateResolvesDirectHit(t *testing.T) {
	translator, err := NewSimpleTranslator(testBag(t))
	if err != nil {
		t.Fatalf("NewSimpleTranslator returned error: %v", err)
	}

	got, err := translator.Translate(MustParseLocale("fr"), "messages", "greeting", Ctx().With("name", "monde"))
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if got != "Bonjour, monde !" {
		t.Fatalf("Translate = %q", got)
	}
}

func TestTranslateFallsBackThroughConfiguredLocale(t *testing.T) {
	translator, err := NewSimpleTranslator(testBag(t),
		WithTranslatorFallbackLocale(MustParseLocale("en")))
	if err != nil {
		t.Fatalf("NewSimpleTranslator returned error: %v", err)
	}

	// zh has no catalogue and no parent; the configured fallback serves it.
	got, err := translator.Translate(MustParseLocale("zh"), "messages", "greeting", Ctx().With("name", "世界"))
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if got != "Hello, 世界!" {
		t.Fatalf("Translate = %q", got)
	}
}

func TestTranslateWalksParentBeforeFallback(t *testing.T) {
	translator, err := NewSimpleTranslator(testBag(t),
		WithTranslatorFallbackLocale(MustParseLocale("fr")))
	if err != nil {
		t.Fatalf("NewSimpleTranslator returned error: %v", err)
	}

	// en_US misses greeting; the parent en must win over the fallback fr.
	got, err := translator.Translate(MustParseLocale("en_US"), "messages", "greeting", Ctx().With("name", "world"))
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if got != "Hello, world!" {
		t.Fatalf("Translate = %q", got)
	}

	// A direct hit on the variant still beats the parent.
	got, err = translator.Translate(MustParseLocale("en_US"), "messages", "color", nil)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if got != "color" {
		t.Fatalf("Translate = %q", got)
	}
}

func TestTranslatePluralCounts(t *testing.T) {
	translator, err := NewSimpleTranslator(testBag(t))
	if err != nil {
		t.Fatalf("NewSimpleTranslator returned error: %v", err)
	}

	en := MustParseLocale("en")
	cases := []struct {
		count int
		want  string
	}{
		{0, "no apples"},
		{1, "one apple"},
		{3, "a few apples"},
		{10, "10 apples"},
	}

	for _, tc := range cases {
		got, err := translator.Translate(en, "messages", "apples", Ctx().WithCount(tc.count))
		if err != nil {
			t.Fatalf("Translate(count=%d) returned error: %v", tc.count, err)
		}
		if got != tc.want {
			t.Fatalf("Translate(count=%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestTranslateMissingPluralContext(t *testing.T) {
	translator, err := NewSimpleTranslator(testBag(t))
	if err != nil {
		t.Fatalf("NewSimpleTranslator returned error: %v", err)
	}

	_, err = translator.Translate(MustParseLocale("en"), "messages", "apples", Ctx().With("name", "x"))
	if err == nil {
		t.Fatal("pluralized template without count should fail")
	}
	if !errors.Is(err, ErrMissingPluralContext) {
		t.Fatalf("error should match ErrMissingPluralContext, got %v", err)
	}

	var missing *MissingPluralContextError
	if !errors.As(err, &missing) {
		t.Fatalf("error should be *MissingPluralContextError, got %T", err)
	}
	if missing.Domain != "messages" || missing.ID != "apples" {
		t.Fatalf("error should name the message, got %+v", missing)
	}
}

func TestTranslateMessageNotFoundListsAttemptedLocales(t *testing.T) {
	translator, err := NewSimpleTranslator(testBag(t),
		WithTranslatorFallbackLocale(MustParseLocale("fr")))
	if err != nil {
		t.Fatalf("NewSimpleTranslator returned error: %v", err)
	}

	_, err = translator.Translate(MustParseLocale("de_CH"), "messages", "unknown", nil)
	if err == nil {
		t.Fatal("unknown message should fail")
	}
	if !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("error should match ErrMessageNotFound, got %v", err)
	}

	var notFound *MessageNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error should be *MessageNotFoundError, got %T", err)
	}

	want := []string{"de_CH", "de", "fr"}
	if len(notFound.Attempted) != len(want) {
		t.Fatalf("Attempted = %v, want %v", notFound.Attempted, want)
	}
	for i, locale := range notFound.Attempted {
		if locale.Tag() != want[i] {
			t.Fatalf("Attempted[%d] = %q, want %q", i, locale.Tag(), want[i])
		}
	}
}

func TestTranslateRejectsZeroLocale(t *testing.T) {
	translator, err := NewSimpleTranslator(testBag(t))
	if err != nil {
		t.Fatalf("NewSimpleTranslator returned error: %v", err)
	}

	_, err = translator.Translate(Locale{}, "messages", "greeting", nil)
	if !errors.Is(err, ErrInvalidLocale) {
		t.Fatalf("zero locale should fail with ErrInvalidLocale, got %v", err)
	}
}

func TestTranslateTag(t *testing.T) {
	translator, err := NewSimpleTranslator(testBag(t))
	if err != nil {
		t.Fatalf("NewSimpleTranslator returned error: %v", err)
	}

	got, err := translator.TranslateTag("FR", "messages", "greeting", Ctx().With("name", "monde"))
	if err != nil {
		t.Fatalf("TranslateTag returned error: %v", err)
	}
	if got != "Bonjour, monde !" {
		t.Fatalf("TranslateTag = %q", got)
	}

	if _, err := translator.TranslateTag("nope", "messages", "greeting", nil); !errors.Is(err, ErrInvalidLocale) {
		t.Fatalf("invalid tag should fail with ErrInvalidLocale, got %v", err)
	}
}

func TestSetFallbackLocaleVisibleToLaterCalls(t *testing.T) {
	translator, err := NewSimpleTranslator(testBag(t))
	if err != nil {
		t.Fatalf("NewSimpleTranslator returned error: %v", err)
	}

	zh := MustParseLocale("zh")
	if _, err := translator.Translate(zh, "messages", "greeting", nil); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("lookup without fallback should fail, got %v", err)
	}

	translator.SetFallbackLocale(MustParseLocale("en"))
	got, err := translator.Translate(zh, "messages", "greeting", Ctx().With("name", "there"))
	if err != nil {
		t.Fatalf("Translate after SetFallbackLocale returned error: %v", err)
	}
	if got != "Hello, there!" {
		t.Fatalf("Translate = %q", got)
	}

	translator.ClearFallbackLocale()
	if _, err := translator.Translate(zh, "messages", "greeting", nil); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("lookup after ClearFallbackLocale should fail, got %v", err)
	}
	if _, ok := translator.FallbackLocale(); ok {
		t.Fatal("FallbackLocale should report false after clear")
	}
}

func TestTranslateDeterministic(t *testing.T) {
	translator, err := NewSimpleTranslator(testBag(t),
		WithTranslatorFallbackLocale(MustParseLocale("en")))
	if err != nil {
		t.Fatalf("NewSimpleTranslator returned error: %v", err)
	}

	first, err := translator.Translate(MustParseLocale("en_US"), "messages", "apples", Ctx().WithCount(3))
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := translator.Translate(MustParseLocale("en_US"), "messages", "apples", Ctx().WithCount(3))
		if err != nil {
			t.Fatalf("Translate returned error: %v", err)
		}
		if again != first {
			t.Fatalf("Translate is not deterministic: %q vs %q", again, first)
		}
	}
}

func TestTranslateCustomFormatter(t *testing.T) {
	translator, err := NewSimpleTranslator(testBag(t),
		WithTranslatorFormatter(FormatterFunc(func(_ Locale, template string, _ *Context) (string, error) {
			return strings.ToUpper(template), nil
		})))
	if err != nil {
		t.Fatalf("NewSimpleTranslator returned error: %v", err)
	}

	got, err := translator.Translate(MustParseLocale("en"), "messages", "greeting", nil)
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if got != "HELLO, {NAME}!" {
		t.Fatalf("Translate = %q", got)
	}
}

func TestTranslateMissingLogging(t *testing.T) {
	var buf bytes.Buffer
	translator, err := NewSimpleTranslator(testBag(t),
		WithTranslatorLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		WithTranslatorMissingLogging(true))
	if err != nil {
		t.Fatalf("NewSimpleTranslator returned error: %v", err)
	}

	if _, err := translator.Translate(MustParseLocale("de"), "messages", "nope", nil); err == nil {
		t.Fatal("lookup should fail")
	}
	if !strings.Contains(buf.String(), "message not found") {
		t.Fatalf("miss should be logged, got %q", buf.String())
	}
}

func TestNewSimpleTranslatorRejectsNilBag(t *testing.T) {
	if _, err := NewSimpleTranslator(nil); err == nil {
		t.Fatal("nil bag should be rejected")
	}
}
