package babel

import (
	"context"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/babel/pkg/catalog"
)

// Translations returns the catalog translations for the locale of ctx.
func (b *Babel) Translations(ctx context.Context) (catalog.Translations, error) {
	l, err := b.Locale(ctx)
	if err != nil {
		return nil, err
	}
	return b.domain.Translations(l)
}

// Gettext translates msg for the locale of ctx and fills "%(name)s"
// placeholders from vars. When the locale or its catalog cannot be loaded
// the error is logged and msg is used untranslated.
func (b *Babel) Gettext(ctx context.Context, msg string, vars ...Vars) string {
	return Interpolate(b.translations(ctx).Gettext(msg), mergeVars(vars))
}

// NGettext picks the singular or plural form for n. The "num" placeholder is
// set to n unless vars provide it.
func (b *Babel) NGettext(ctx context.Context, singular, plural string, n int, vars ...Vars) string {
	v := Vars{"num": n}
	maps.Copy(v, mergeVars(vars))
	return Interpolate(b.translations(ctx).NGettext(singular, plural, n), v)
}

// PGettext translates msg within a message context, e.g. "menu" for "Open".
func (b *Babel) PGettext(ctx context.Context, msgctxt, msg string, vars ...Vars) string {
	return Interpolate(b.translations(ctx).PGettext(msgctxt, msg), mergeVars(vars))
}

func (b *Babel) translations(ctx context.Context) catalog.Translations {
	tr, err := b.Translations(ctx)
	if err != nil {
		b.logger.WarnContext(ctx, "babel: translations unavailable, using untranslated messages",
			slog.String("error", err.Error()))
		return catalog.NullTranslations{}
	}
	return tr
}
