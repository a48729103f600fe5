// Package i18n resolves translated messages out of locale catalogues.
//
// Messages are raw templates keyed by locale, domain and id. A Translator
// walks the locale fallback chain (region variant, base language, then a
// configured fallback locale), selects a plural branch when the template
// declares any, and interpolates context values into the result:
//
//	bag := i18n.NewCatalogueBag(
//		i18n.NewCatalogueWithMessages(i18n.MustParseLocale("en"), map[string]map[string]string{
//			"messages": {
//				"greeting": "Hello, {name}!",
//				"apples":   "{0} no apples | {1} one apple | {?} apples",
//			},
//		}),
//	)
//
//	translator, err := i18n.NewSimpleTranslator(bag)
//	if err != nil {
//		// ...
//	}
//
//	text, err := translator.Translate(i18n.MustParseLocale("en_US"), "messages", "apples",
//		i18n.Ctx().WithCount(3))
//	// text == "3 apples"
//
// Catalogues load from {domain}.{locale}.{ext} files in TOML, YAML or JSON
// form through FileLoader or FSLoader, and the net/http Middleware negotiates
// the request locale from the Accept-Language header.
package i18n
