package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Translation files follow the {domain}.{locale}.{ext} naming convention,
// e.g. messages.en.toml or errors.zh_TW.yaml. Each file holds a flat
// id -> template map; files sharing a locale merge into one catalogue.

// Loader hydrates a CatalogueBag from an external source.
type Loader interface {
	Load() (*CatalogueBag, error)
}

// LoaderFunc adapts a bare function to the Loader interface.
type LoaderFunc func() (*CatalogueBag, error)

func (fn LoaderFunc) Load() (*CatalogueBag, error) {
	return fn()
}

var defaultExtensions = []string{"json", "toml", "yaml", "yml"}

// FileLoader reads translation files out of a directory on disk.
type FileLoader struct {
	dir  string
	exts []string
}

var _ Loader = &FileLoader{}

func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{dir: dir, exts: defaultExtensions}
}

// WithExtensions restricts the file extensions the loader considers.
func (l *FileLoader) WithExtensions(exts ...string) *FileLoader {
	if len(exts) > 0 {
		l.exts = normalizeExtensions(exts)
	}
	return l
}

func (l *FileLoader) Load() (*CatalogueBag, error) {
	if l == nil || l.dir == "" {
		return nil, fmt.Errorf("i18n: no loader directory configured")
	}
	if _, err := os.Stat(l.dir); err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", l.dir, err)
	}
	return loadFromFS(os.DirFS(l.dir), ".", l.exts)
}

// FSLoader reads translation files out of any fs.FS, embed.FS included.
type FSLoader struct {
	fsys fs.FS
	root string
	exts []string
}

var _ Loader = &FSLoader{}

func NewFSLoader(fsys fs.FS, root string) *FSLoader {
	if root == "" {
		root = "."
	}
	return &FSLoader{fsys: fsys, root: root, exts: defaultExtensions}
}

// WithExtensions restricts the file extensions the loader considers.
func (l *FSLoader) WithExtensions(exts ...string) *FSLoader {
	if len(exts) > 0 {
		l.exts = normalizeExtensions(exts)
	}
	return l
}

func (l *FSLoader) Load() (*CatalogueBag, error) {
	if l == nil || l.fsys == nil {
		return nil, fmt.Errorf("i18n: no loader filesystem configured")
	}
	return loadFromFS(l.fsys, l.root, l.exts)
}

// loadFromFS walks the directory non-recursively. fs.ReadDir returns entries
// sorted by name, so merge order is deterministic.
func loadFromFS(fsys fs.FS, root string, exts []string) (*CatalogueBag, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", root, err)
	}

	bag := NewCatalogueBag()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext, ok := matchExtension(name, exts)
		if !ok {
			continue
		}

		domain, locale, err := parseFilename(name, ext)
		if err != nil {
			return nil, err
		}

		path := name
		if root != "." {
			path = root + "/" + name
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", path, err)
		}

		messages, err := decodeMessages(ext, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", path, err)
		}

		catalogue := NewCatalogue(locale)
		for id, template := range messages {
			catalogue.Insert(domain, id, template)
		}
		bag.Insert(catalogue)
	}

	return bag, nil
}

// parseFilename splits "{domain}.{locale}.{ext}" with the extension already
// stripped off.
func parseFilename(name, ext string) (domain string, locale Locale, err error) {
	stem := name[:len(name)-len(ext)-1]
	pos := strings.LastIndexByte(stem, '.')
	if pos <= 0 || pos == len(stem)-1 {
		return "", Locale{}, fmt.Errorf("i18n: %s: %w", name, ErrBadFilename)
	}

	locale, err = ParseLocale(stem[pos+1:])
	if err != nil {
		return "", Locale{}, fmt.Errorf("i18n: %s: %w", name, err)
	}
	return stem[:pos], locale, nil
}

func decodeMessages(ext string, data []byte) (map[string]string, error) {
	messages := make(map[string]string)
	switch ext {
	case "json":
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, err
		}
	case "toml":
		if err := toml.Unmarshal(data, &messages); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %q", ext)
	}
	return messages, nil
}

func matchExtension(name string, exts []string) (string, bool) {
	for _, ext := range exts {
		if strings.HasSuffix(name, "."+ext) && len(name) > len(ext)+1 {
			return ext, true
		}
	}
	return "", false
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}
