package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/i18n"
	"github.com/dmitrymomot/inputkit/pkg/validator"
)

func TestTranslateErrors(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewBuiltinTranslator(context.Background(), nil)
	require.NoError(t, err)

	err = validator.Apply(validator.PasswordRules("password", "abc", validator.DefaultPasswordPolicy())...)
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 4)

	assert.Equal(t, []string{
		"password: must be at least 8 characters long",
		"password: must contain at least 1 uppercase letter",
		"password: must contain at least 1 digit",
		"password: must contain at least one of #?!@$%^&*-",
	}, tr.TranslateErrors("en", verrs))

	de := tr.TranslateErrors("de", verrs)
	assert.Equal(t, "password: muss mindestens 1 Ziffer enthalten", de[2])

	fr := tr.TranslateErrors("fr", verrs)
	assert.Equal(t, "password: must be at least 8 characters long", fr[0], "unknown languages use English")
}

func TestTranslateError_Fallbacks(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewBuiltinTranslator(context.Background(), nil)
	require.NoError(t, err)

	custom := validator.ValidationError{Field: "x", Message: "custom message", TranslationKey: "validation.unknown"}
	assert.Equal(t, "custom message", tr.TranslateError("en", custom))

	plain := validator.ValidationError{Field: "x", Message: "no key"}
	assert.Equal(t, "no key", tr.TranslateError("en", plain))

	domains := validator.EmailInDomains("email", "a@b.com", []string{"example.com"}).Error
	assert.Equal(t, "must be an email address in one of: example.com", tr.TranslateError("en", domains))
}
