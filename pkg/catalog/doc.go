// Package catalog loads gettext translation catalogs and enumerates the
// locales that have compiled catalogs on disk.
//
// Catalogs follow the gettext directory layout:
//
//	translations/
//	    de_AT/LC_MESSAGES/messages.mo
//	    fr/LC_MESSAGES/messages.po
//
// A [Domain] parses catalogs with github.com/leonelquinteros/gotext on first
// use per locale and returns [Translations]. Locales without a catalog get
// [NullTranslations], which hands messages back unchanged.
//
//	d := catalog.NewDomain("translations", "messages")
//	tr, err := d.Translations(locale.MustParse("de_AT"))
//	tr.Gettext("Hello") // "Hallo"
//
// [Scan] lists the locale directories that contain at least one compiled
// (.mo) catalog. Source (.po) files alone do not make a locale available.
package catalog
