package numfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ToDecimal converts a supported numeric value into an exact decimal.
// Floats are taken at their shortest round-trip representation, so 9.996
// becomes exactly 9.996 rather than its binary approximation.
func ToDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, fmt.Errorf("%w: nil decimal", ErrInvalidInput)
		}
		return *v, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int8:
		return decimal.NewFromInt(int64(v)), nil
	case int16:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0), nil
	case uint8:
		return decimal.NewFromInt(int64(v)), nil
	case uint16:
		return decimal.NewFromInt(int64(v)), nil
	case uint32:
		return decimal.NewFromInt(int64(v)), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0), nil
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return decimal.Decimal{}, fmt.Errorf("%w: %v is not finite", ErrInvalidInput, v)
		}
		return decimal.NewFromFloat32(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, fmt.Errorf("%w: %v is not finite", ErrInvalidInput, v)
		}
		return decimal.NewFromFloat(v), nil
	case *big.Int:
		if v == nil {
			return decimal.Decimal{}, fmt.Errorf("%w: nil big.Int", ErrInvalidInput)
		}
		return decimal.NewFromBigInt(v, 0), nil
	case json.Number:
		return parseDecimal(string(v))
	case string:
		return parseDecimal(v)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, value)
	}
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty string", ErrInvalidInput)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.Join(ErrInvalidInput, err)
	}
	return d, nil
}

// TruncateDecimal renders the absolute value of d with exactly decimalLimit
// fractional digits, rounding half away from zero. Whole numbers are returned
// without a fraction whatever the limit is. The result spells out every
// padding zero; Formatter caps the limit to the digits it can show.
//
//	TruncateDecimal(decimal.RequireFromString("9.996"), 2) // "10.00"
//	TruncateDecimal(decimal.RequireFromString("1.5"), 0)   // "2"
//	TruncateDecimal(decimal.NewFromInt(42), 3)             // "42"
func TruncateDecimal(d decimal.Decimal, decimalLimit int) (string, error) {
	if decimalLimit < 0 || decimalLimit > math.MaxInt32 {
		return "", fmt.Errorf("%w: decimal digit limit %d out of range", ErrInvalidConfig, decimalLimit)
	}

	d = d.Abs()
	if d.IsInteger() {
		return d.String(), nil
	}

	return d.StringFixed(int32(decimalLimit)), nil
}
