package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var builtinLocales embed.FS

// BuiltinAdapter serves the catalogs shipped with the package.
func BuiltinAdapter() TranslationAdapter {
	return NewFSAdapter(builtinLocales, "locales")
}

// NewBuiltinTranslator loads the shipped catalogs, then extra adapters on
// top so they can override or add messages.
func NewBuiltinTranslator(ctx context.Context, extra []TranslationAdapter, options ...Option) (*Translator, error) {
	chain := ChainAdapter{BuiltinAdapter()}
	chain = append(chain, extra...)
	return NewTranslator(ctx, chain, options...)
}
