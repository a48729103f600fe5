package i18n

import (
	"errors"
	"sort"
)

// Catalogue holds the message templates of a single locale, grouped by domain.
// It is not safe for concurrent mutation; build catalogues up front and share
// them through a Translator.
type Catalogue struct {
	locale  Locale
	domains map[string]map[string]string
}

// NewCatalogue builds an empty catalogue for the given locale.
func NewCatalogue(locale Locale) *Catalogue {
	return &Catalogue{
		locale:  locale,
		domains: make(map[string]map[string]string),
	}
}

// NewCatalogueWithMessages builds a catalogue seeded from a domain -> id ->
// template map. The input is deep copied.
func NewCatalogueWithMessages(locale Locale, messages map[string]map[string]string) *Catalogue {
	c := NewCatalogue(locale)
	for domain, ids := range messages {
		for id, template := range ids {
			c.Insert(domain, id, template)
		}
	}
	return c
}

// Locale returns the locale this catalogue serves.
func (c *Catalogue) Locale() Locale {
	return c.locale
}

// Insert stores a template under domain/id, overwriting any previous entry.
func (c *Catalogue) Insert(domain, id, template string) {
	bucket, ok := c.domains[domain]
	if !ok {
		bucket = make(map[string]string)
		c.domains[domain] = bucket
	}
	bucket[id] = template
}

// Get returns the raw template for domain/id.
func (c *Catalogue) Get(domain, id string) (string, bool) {
	if c == nil {
		return "", false
	}
	template, ok := c.domains[domain][id]
	return template, ok
}

// GetAll returns a copy of every template in the domain.
func (c *Catalogue) GetAll(domain string) map[string]string {
	if c == nil || len(c.domains[domain]) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.domains[domain]))
	for id, template := range c.domains[domain] {
		out[id] = template
	}
	return out
}

// Remove deletes domain/id and returns the template it held.
func (c *Catalogue) Remove(domain, id string) (string, bool) {
	bucket, ok := c.domains[domain]
	if !ok {
		return "", false
	}
	template, ok := bucket[id]
	if !ok {
		return "", false
	}
	delete(bucket, id)
	if len(bucket) == 0 {
		delete(c.domains, domain)
	}
	return template, true
}

// RemoveAll deletes a whole domain and returns its templates.
func (c *Catalogue) RemoveAll(domain string) map[string]string {
	out := c.GetAll(domain)
	delete(c.domains, domain)
	return out
}

// Domains returns the domain names, sorted alphabetically.
func (c *Catalogue) Domains() []string {
	if c == nil || len(c.domains) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.domains))
	for domain := range c.domains {
		out = append(out, domain)
	}
	sort.Strings(out)
	return out
}

func (c *Catalogue) clone() *Catalogue {
	out := NewCatalogue(c.locale)
	for domain, ids := range c.domains {
		for id, template := range ids {
			out.Insert(domain, id, template)
		}
	}
	return out
}

// CatalogueBag aggregates catalogues, holding at most one per locale.
type CatalogueBag struct {
	catalogues map[Locale]*Catalogue
}

// NewCatalogueBag builds a bag from the given catalogues. Catalogues sharing
// a locale are merged in argument order, last write wins per domain/id.
func NewCatalogueBag(catalogues ...*Catalogue) *CatalogueBag {
	bag := &CatalogueBag{catalogues: make(map[Locale]*Catalogue)}
	for _, catalogue := range catalogues {
		bag.Insert(catalogue)
	}
	return bag
}

// Insert merges a catalogue into the bag. The input is copied, so later
// mutation of the argument does not leak into the bag.
func (b *CatalogueBag) Insert(catalogue *Catalogue) {
	if catalogue == nil {
		return
	}
	existing, ok := b.catalogues[catalogue.locale]
	if !ok {
		b.catalogues[catalogue.locale] = catalogue.clone()
		return
	}
	for domain, ids := range catalogue.domains {
		for id, template := range ids {
			existing.Insert(domain, id, template)
		}
	}
}

// Merge folds every catalogue of the other bag into this one.
func (b *CatalogueBag) Merge(other *CatalogueBag) {
	if other == nil {
		return
	}
	for _, catalogue := range other.catalogues {
		b.Insert(catalogue)
	}
}

// Get returns the catalogue for the locale.
func (b *CatalogueBag) Get(locale Locale) (*Catalogue, bool) {
	if b == nil {
		return nil, false
	}
	catalogue, ok := b.catalogues[locale]
	return catalogue, ok
}

// Locales returns the locales present in the bag, sorted by canonical tag.
func (b *CatalogueBag) Locales() []Locale {
	if b == nil || len(b.catalogues) == 0 {
		return nil
	}
	out := make([]Locale, 0, len(b.catalogues))
	for locale := range b.catalogues {
		out = append(out, locale)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// IsEmpty reports whether the bag holds no catalogues.
func (b *CatalogueBag) IsEmpty() bool {
	return b == nil || len(b.catalogues) == 0
}

// Validate eagerly parses every pluralized template in the bag and returns
// the joined TemplateErrors. Resolution itself parses lazily; Validate exists
// for load-time checks and the lint tool.
func (b *CatalogueBag) Validate() error {
	if b.IsEmpty() {
		return nil
	}
	var errs []error
	for _, locale := range b.Locales() {
		catalogue := b.catalogues[locale]
		for _, domain := range catalogue.Domains() {
			ids := make([]string, 0, len(catalogue.domains[domain]))
			for id := range catalogue.domains[domain] {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				template := catalogue.domains[domain][id]
				if !isPluralTemplate(template) {
					continue
				}
				if _, err := parsePluralTemplate(template); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}
	return errors.Join(errs...)
}
