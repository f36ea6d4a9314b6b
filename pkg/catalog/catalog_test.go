package catalog_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/locale"
)

const germanPO = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Language: de\n"
"Plural-Forms: nplurals=2; plural=(n != 1);\n"

msgid "Hello"
msgstr "Hallo"

msgid "One apple"
msgid_plural "%(num)d apples"
msgstr[0] "Ein Apfel"
msgstr[1] "%(num)d Äpfel"

msgctxt "menu"
msgid "Open"
msgstr "Öffnen"
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScan(t *testing.T) {
	t.Parallel()

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		names, err := catalog.Scan(filepath.Join(t.TempDir(), "translations"))
		require.ErrorIs(t, err, catalog.ErrNoDir)
		require.Empty(t, names)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "translations")
		writeFile(t, path, "")
		names, err := catalog.Scan(path)
		require.ErrorIs(t, err, catalog.ErrNoDir)
		require.Empty(t, names)
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()
		names, err := catalog.Scan(t.TempDir())
		require.NoError(t, err)
		require.Empty(t, names)
	})

	t.Run("lists directories with compiled catalogs", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "de_AT", "LC_MESSAGES", "messages.mo"), "")
		writeFile(t, filepath.Join(dir, "fr", "LC_MESSAGES", "messages.po"), "")
		writeFile(t, filepath.Join(dir, "es", "messages.mo"), "")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "it", "LC_MESSAGES"), 0o755))
		writeFile(t, filepath.Join(dir, "README"), "")

		names, err := catalog.Scan(dir)
		require.NoError(t, err)
		require.Equal(t, []string{"de_AT"}, names)
	})
}

func TestScanFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"de/LC_MESSAGES/messages.mo":    {Data: []byte{}},
		"en_GB/LC_MESSAGES/messages.mo": {Data: []byte{}},
		"pl/LC_MESSAGES/notes.txt":      {Data: []byte{}},
	}

	names, err := catalog.ScanFS(fsys)
	require.NoError(t, err)
	require.Equal(t, []string{"de", "en_GB"}, names)
}

func TestNullTranslations(t *testing.T) {
	t.Parallel()

	var tr catalog.Translations = catalog.NullTranslations{}
	assert.Equal(t, "Hello", tr.Gettext("Hello"))
	assert.Equal(t, "apple", tr.NGettext("apple", "apples", 1))
	assert.Equal(t, "apples", tr.NGettext("apple", "apples", 0))
	assert.Equal(t, "apples", tr.NGettext("apple", "apples", 5))
	assert.Equal(t, "Open", tr.PGettext("menu", "Open"))
}

func TestDomain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "de", "LC_MESSAGES", "messages.po"), germanPO)

	d := catalog.NewDomain(dir, "")
	require.Equal(t, catalog.DefaultDomain, d.Name())
	require.Equal(t, dir, d.Dir())

	t.Run("translates through language fallback", func(t *testing.T) {
		t.Parallel()
		tr, err := d.Translations(locale.MustParse("de_AT"))
		require.NoError(t, err)
		assert.Equal(t, "Hallo", tr.Gettext("Hello"))
		assert.Equal(t, "Ein Apfel", tr.NGettext("One apple", "%(num)d apples", 1))
		assert.Equal(t, "%(num)d Äpfel", tr.NGettext("One apple", "%(num)d apples", 3))
		assert.Equal(t, "Öffnen", tr.PGettext("menu", "Open"))
		assert.Equal(t, "Untranslated", tr.Gettext("Untranslated"))
	})

	t.Run("memoises catalogs per locale", func(t *testing.T) {
		t.Parallel()
		first, err := d.Translations(locale.MustParse("de"))
		require.NoError(t, err)
		second, err := d.Translations(locale.MustParse("de"))
		require.NoError(t, err)
		require.Same(t, first, second)
	})

	t.Run("returns null translations without a catalog", func(t *testing.T) {
		t.Parallel()
		tr, err := d.Translations(locale.MustParse("fr"))
		require.NoError(t, err)
		require.IsType(t, catalog.NullTranslations{}, tr)
	})

	t.Run("empty domain has no catalogs", func(t *testing.T) {
		t.Parallel()
		tr, err := catalog.NewDomain("", "messages").Translations(locale.MustParse("de"))
		require.NoError(t, err)
		require.IsType(t, catalog.NullTranslations{}, tr)
	})
}
