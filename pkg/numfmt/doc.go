// Package numfmt formats numbers into a bounded number of significant digits,
// abbreviating large magnitudes with a unit suffix such as K, M or B.
//
// Formatting runs in three stages, all on decimal digit strings so that large
// values never lose precision to floating-point arithmetic:
//
//   - TruncateDecimal rounds the fraction to Config.DecimalDigitLimit digits
//     (half away from zero, carrying into the integer part when needed).
//   - TruncateMagnitude shrinks the result to Config.OverallDigitLimit digits.
//     Fractional digits are dropped first; after that the integer part loses
//     three digits at a time and each removed group moves the value one step
//     up the UnitTable.
//   - FormatGroups inserts thousands separators into the remaining integer
//     digits and Result.String assembles sign, fraction and suffix.
//
// # Usage
//
//	f, err := numfmt.New(numfmt.Config{OverallDigitLimit: 4, DecimalDigitLimit: 2})
//	if err != nil {
//	    return err
//	}
//	s, _ := f.Format(1234.5678)   // "1,234"
//	s, _ = f.Format(98765432)     // "98.76M"
//	s, _ = f.Format("-0.125")     // "-0.13"
//
// The one-shot helper FormatNumber builds a Formatter with DefaultUnits for a
// single call.
//
// # Error Handling
//
// Every failure wraps one of the sentinel errors, so callers can branch with
// errors.Is:
//
//   - ErrInvalidInput      – value is NaN, infinite, malformed or of an unsupported type.
//   - ErrInvalidConfig     – digit limits or unit table are unusable.
//   - ErrMagnitudeOverflow – more digit groups were removed than the unit table covers.
//
// No partial result is returned together with an error.
//
// # Concurrency
//
// The package holds no mutable state. A Formatter is immutable after New and
// may be shared between goroutines.
package numfmt
