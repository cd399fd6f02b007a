// Package validator provides composable, translation-aware validation rules
// for user input: passwords, email addresses, URLs, IP addresses and numbers.
//
// A Rule pairs a boolean Check with the ValidationError reported when the
// check fails. Apply evaluates rules and aggregates failures into
// ValidationErrors, which implements error and carries a translation key and
// values for every failure so that messages can be rendered by pkg/i18n.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", email),
//	    validator.EmailInDomains("email", email, []string{"example.com"}),
//	    validator.Positive("amount", amount, false),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// # Passwords
//
// PasswordPolicy describes composition requirements. PasswordRules expands a
// policy into individual rules for Apply, while CheckPassword reports every
// rule, passing or not, together with a strength rating:
//
//	report := validator.CheckPassword(pw, validator.DefaultPasswordPolicy(), validator.DefaultStrengthOptions())
//	fmt.Println(report.Valid(), report.Strength.Value)
//
// Strength is rated against an ordered ladder of StrengthOption values using
// the number of character classes (lowercase, uppercase, digit, symbol) and
// the password length.
//
// # Error Handling
//
// errors.Is(err, ErrValidationFailed) is true for any ValidationErrors value.
// Field-level details are available through Has, Get, GetErrors and Fields.
//
// Rules hold no shared state and are safe to build and evaluate from
// multiple goroutines.
package validator
