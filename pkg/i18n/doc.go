// Package i18n translates inputkit messages, most importantly validation
// errors produced by pkg/validator.
//
// A Translator loads a catalog once through a TranslationAdapter. Catalogs
// are keyed by language code and hold nested message maps addressed with
// dot-separated keys. Messages use named placeholders (%{name}) and plural
// forms (zero, one, other):
//
//	en:
//	  validation:
//	    password_digits:
//	      one: "must contain at least %{count} digit"
//	      other: "must contain at least %{count} digits"
//
// Adapters exist for in-memory maps (MapAdapter), single YAML or JSON files
// (FileAdapter), directories of an fs.FS such as embed.FS (FSAdapter) and
// layered catalogs (ChainAdapter). English and German catalogs are embedded;
// NewBuiltinTranslator loads them and lets callers layer their own files on
// top:
//
//	file, err := i18n.NewFileAdapter("messages.yaml")
//	tr, err := i18n.NewBuiltinTranslator(ctx, []i18n.TranslationAdapter{file})
//
//	err = validator.Apply(validator.ValidEmail("email", v))
//	for _, line := range tr.TranslateErrors("de", validator.ExtractValidationErrors(err)) {
//	    fmt.Println(line)
//	}
//
// Unknown languages fall back to the default language (English unless
// WithDefaultLanguage says otherwise). ResolveLanguage maps tags such as
// "de-AT" or $LANG values such as "de_AT.UTF-8" onto a supported code.
//
// A Translator is immutable after construction and safe for concurrent use.
package i18n
