// Command i18n-lint loads a directory of translation files and reports
// malformed plural templates. It exits non-zero when anything fails to load
// or parse.
package main

import (
	"flag"
	"fmt"
	"os"

	i18n "github.com/turjuman/go-i18n"
)

func main() {
	dir := flag.String("dir", ".", "directory holding {domain}.{locale}.{ext} translation files")
	flag.Parse()

	bag, err := i18n.NewFileLoader(*dir).Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if bag.IsEmpty() {
		fmt.Fprintf(os.Stderr, "no translation files found in %s\n", *dir)
		os.Exit(1)
	}

	if err := bag.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	locales := bag.Locales()
	fmt.Printf("ok: %d locale(s) checked\n", len(locales))
	for _, locale := range locales {
		catalogue, _ := bag.Get(locale)
		fmt.Printf("  %s: %d domain(s)\n", locale, len(catalogue.Domains()))
	}
}
