package i18n

import "testing"

func TestInterpolateTokens(t *testing.T) {
	en := MustParseLocale("en")
	formatter := NewDefaultFormatter()

	cases := []struct {
		name     string
		template string
		ctx      *Context
		want     string
	}{
		{
			name:     "named",
			template: "Hello, {name}!",
			ctx:      Ctx().With("name", "world"),
			want:     "Hello, world!",
		},
		{
			name:     "positional",
			template: "{1} before {0}",
			ctx:      Ctx().With("a", "first").With("b", "second"),
			want:     "second before first",
		},
		{
			name:     "auto indexed",
			template: "{} and {}",
			ctx:      Ctx().With("a", "one").With("b", "two"),
			want:     "one and two",
		},
		{
			name:     "count token",
			template: "{?} apples",
			ctx:      Ctx().WithCount(3),
			want:     "3 apples",
		},
		{
			name:     "implicit count name",
			template: "{count} apples",
			ctx:      Ctx().WithCount(5),
			want:     "5 apples",
		},
		{
			name:     "count shadowed by value",
			template: "{count} apples",
			ctx:      Ctx().With("count", "several").WithCount(5),
			want:     "several apples",
		},
		{
			name:     "integer value",
			template: "{n} items",
			ctx:      Ctx().With("n", 42),
			want:     "42 items",
		},
		{
			name:     "float value drops integral fraction",
			template: "{price}",
			ctx:      Ctx().With("price", 4.0),
			want:     "4",
		},
		{
			name:     "float value keeps fraction",
			template: "{price}",
			ctx:      Ctx().With("price", 4.5),
			want:     "4.5",
		},
		{
			name:     "escaped braces",
			template: "{{not a token}}",
			ctx:      Ctx().With("name", "x"),
			want:     "{not a token}",
		},
		{
			name:     "no tokens",
			template: "plain text",
			ctx:      Ctx(),
			want:     "plain text",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := formatter.Format(en, tc.template, tc.ctx)
			if err != nil {
				t.Fatalf("Format returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Format(%q) = %q, want %q", tc.template, got, tc.want)
			}
		})
	}
}

func TestInterpolateLeavesUnmatchedTokensVerbatim(t *testing.T) {
	en := MustParseLocale("en")
	formatter := NewDefaultFormatter()

	cases := []struct {
		template string
		ctx      *Context
		want     string
	}{
		{"Hello, {name}!", Ctx(), "Hello, {name}!"},
		{"Hello, {name}!", nil, "Hello, {name}!"},
		{"{0} and {5}", Ctx().With("a", "one"), "one and {5}"},
		{"{} {} {}", Ctx().With("a", "one"), "one {} {}"},
		{"{?} apples", Ctx(), "{?} apples"},
		{"unterminated {brace", Ctx().With("brace", "x"), "unterminated {brace"},
		{"stray } brace", Ctx(), "stray } brace"},
	}

	for _, tc := range cases {
		got, err := formatter.Format(en, tc.template, tc.ctx)
		if err != nil {
			t.Fatalf("Format(%q) returned error: %v", tc.template, err)
		}
		if got != tc.want {
			t.Fatalf("Format(%q) = %q, want %q", tc.template, got, tc.want)
		}
	}
}

func TestInterpolateAutoIndexSkipsMissingSlots(t *testing.T) {
	en := MustParseLocale("en")
	formatter := NewDefaultFormatter()

	// The auto index advances even when a slot is missing, so later bare
	// tokens do not shift onto earlier values.
	got, err := formatter.Format(en, "{} {} end", Ctx().With("a", "one"))
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if got != "one {} end" {
		t.Fatalf("Format = %q, want %q", got, "one {} end")
	}
}

func TestFormatterFunc(t *testing.T) {
	upper := FormatterFunc(func(_ Locale, template string, _ *Context) (string, error) {
		return template + "!", nil
	})

	got, err := upper.Format(MustParseLocale("en"), "hey", nil)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if got != "hey!" {
		t.Fatalf("Format = %q, want hey!", got)
	}
}
