package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	"github.com/dmitrymomot/babel/pkg/cache"
	"github.com/dmitrymomot/babel/pkg/locale"
)

// DefaultDomain is the catalog file name used when none is configured.
const DefaultDomain = "messages"

// MessagesDir is the per-locale subdirectory holding catalog files.
const MessagesDir = "LC_MESSAGES"

// ErrRead is returned when a catalog file exists but cannot be read.
var ErrRead = errors.New("catalog: failed to read catalog")

// Domain is a named collection of gettext catalogs rooted at a directory:
//
//	<dir>/<locale>/LC_MESSAGES/<name>.mo
//	<dir>/<locale>/LC_MESSAGES/<name>.po
//
// Catalogs are parsed on first use and kept for the life of the Domain.
// A Domain is safe for concurrent use.
type Domain struct {
	catalogs *cache.Memory[Translations]
	dir      string
	name     string
}

// NewDomain creates a Domain over dir. An empty name selects DefaultDomain.
// A Domain with an empty dir has no catalogs and always returns NullTranslations.
func NewDomain(dir, name string) *Domain {
	if name == "" {
		name = DefaultDomain
	}
	return &Domain{
		catalogs: cache.NewMemory[Translations](),
		dir:      dir,
		name:     name,
	}
}

// Dir returns the catalog root directory.
func (d *Domain) Dir() string { return d.dir }

// Name returns the domain name.
func (d *Domain) Name() string { return d.name }

// Translations returns the translations for loc. Catalog lookup tries the
// full identifier ("de_AT"), its BCP 47 form ("de-AT"), then the bare
// language ("de"); compiled .mo files win over .po sources.
// NullTranslations is returned when no catalog exists.
func (d *Domain) Translations(loc *locale.Locale) (Translations, error) {
	if d.dir == "" || loc == nil {
		return NullTranslations{}, nil
	}
	return d.catalogs.GetOrLoad(loc.String(), func() (Translations, error) {
		return d.load(loc)
	})
}

func (d *Domain) load(loc *locale.Locale) (Translations, error) {
	for _, id := range candidates(loc) {
		for _, ext := range []string{".mo", ".po"} {
			path := filepath.Join(d.dir, id, MessagesDir, d.name+ext)
			data, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
			}
			return parse(path, ext, data), nil
		}
	}
	return NullTranslations{}, nil
}

func parse(path, ext string, data []byte) Translations {
	if ext == ".mo" {
		mo := gotext.NewMo()
		mo.Parse(data)
		return &gettextTranslations{catalog: mo, path: path}
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &gettextTranslations{catalog: po, path: path}
}

func candidates(loc *locale.Locale) []string {
	ids := []string{loc.String()}
	if tag := loc.Tag().String(); tag != ids[0] {
		ids = append(ids, tag)
	}
	if lang := loc.Language(); lang != ids[0] {
		ids = append(ids, lang)
	}
	return ids
}
