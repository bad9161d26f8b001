package intl

import "context"

type (
	intlKey   struct{}
	localeKey struct{}
)

// NewContext returns a copy of ctx carrying the façade and its locale.
func NewContext(ctx context.Context, i *Intl) context.Context {
	ctx = context.WithValue(ctx, intlKey{}, i)
	return context.WithValue(ctx, localeKey{}, i.Locale())
}

// FromContext returns the façade stored in ctx, or nil.
func FromContext(ctx context.Context) *Intl {
	if i, ok := ctx.Value(intlKey{}).(*Intl); ok {
		return i
	}
	return nil
}

// LocaleFromContext returns the locale stored in ctx, or an empty string.
func LocaleFromContext(ctx context.Context) string {
	if locale, ok := ctx.Value(localeKey{}).(string); ok {
		return locale
	}
	return ""
}
