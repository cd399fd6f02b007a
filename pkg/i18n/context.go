package i18n

import "context"

type langContextKey struct{}

// WithLang stores the language code in ctx.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langContextKey{}, lang)
}

// LangFromContext returns the language stored by WithLang, or DefaultLanguage.
func LangFromContext(ctx context.Context) string {
	if ctx == nil {
		return DefaultLanguage
	}
	lang, _ := ctx.Value(langContextKey{}).(string)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
