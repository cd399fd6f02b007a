// Package sanitizer cleans and reshapes user input: URLs, phone numbers and
// free-form tag lists.
//
//	u, err := sanitizer.CanonicalURL("https://Example.com/docs?page=2",
//	    sanitizer.URLOptions{DomainOnly: true, PathIncluded: true})
//	// "example.com/docs?page=2"
//
//	p, err := sanitizer.FormatPhone("+972 52 123 4567",
//	    sanitizer.PhoneOptions{Format: "3-2-3-4", International: true})
//	// "972-52-123-4567"
//
//	tags, err := sanitizer.SplitTags("go; cli; tools")
//	// ["go" "cli" "tools"], separator inferred
//
// Functions that can reject their input return errors wrapping one of the
// package sentinels (ErrInvalidURL, ErrInvalidPhoneFormat,
// ErrPhoneFormatMismatch, ErrPhoneLength, ErrInvalidSeparator); match them
// with errors.Is.
//
// Infallible string transforms such as NormalizeWhitespace or NormalizePhone
// can be chained with Apply and Compose:
//
//	clean := sanitizer.Compose(strings.TrimSpace, sanitizer.NormalizeWhitespace)
//
// The package holds no state and every function is safe for concurrent use.
package sanitizer
