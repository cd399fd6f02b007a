package i18n

import (
	"fmt"
	"sort"

	"github.com/dmitrymomot/inputkit/pkg/validator"
)

// TranslateError renders one validation error in lang. TranslationValues
// become %{name} arguments; an int "count" value selects the plural form.
// Errors without a catalog entry keep their original message.
func (t *Translator) TranslateError(lang string, ve validator.ValidationError) string {
	if ve.TranslationKey == "" || !t.HasTranslation(t.resolve(lang), ve.TranslationKey) {
		return ve.Message
	}

	args := translationArgs(ve.TranslationValues)
	if count, ok := ve.TranslationValues["count"].(int); ok {
		return t.N(lang, ve.TranslationKey, count, args...)
	}
	return t.T(lang, ve.TranslationKey, args...)
}

// TranslateErrors renders every error as "field: message".
func (t *Translator) TranslateErrors(lang string, errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, ve := range errs {
		out = append(out, ve.Field+": "+t.TranslateError(lang, ve))
	}
	return out
}

func translationArgs(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(values)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}
