package numfmt

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Config bounds the size of formatted numbers.
type Config struct {
	// OverallDigitLimit caps integer plus fractional digits. Must be at least 1.
	OverallDigitLimit int
	// DecimalDigitLimit caps fractional digits before the overall limit applies.
	DecimalDigitLimit int
}

// DefaultConfig is wide enough to leave ordinary numbers untouched.
func DefaultConfig() Config {
	return Config{
		OverallDigitLimit: 100,
		DecimalDigitLimit: 100,
	}
}

// Validate reports limits that cannot be applied.
func (c Config) Validate() error {
	if c.OverallDigitLimit < 1 {
		return fmt.Errorf("%w: overall digit limit must be at least 1, got %d", ErrInvalidConfig, c.OverallDigitLimit)
	}
	if c.DecimalDigitLimit < 0 || c.DecimalDigitLimit > math.MaxInt32 {
		return fmt.Errorf("%w: decimal digit limit must be between 0 and %d, got %d", ErrInvalidConfig, math.MaxInt32, c.DecimalDigitLimit)
	}
	return nil
}

// ConfigSource is anything that can hand out the current number format,
// such as a settings struct or a settings store.
type ConfigSource interface {
	NumberFormat() Config
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithUnits replaces DefaultUnits. Empty tables are ignored.
func WithUnits(t UnitTable) Option {
	return func(f *Formatter) {
		if t.Max() > 0 {
			f.units = t
		}
	}
}

// Formatter applies one Config to any number of values.
type Formatter struct {
	cfg   Config
	units UnitTable
}

// New validates cfg and returns a Formatter using DefaultUnits unless
// overridden by options.
func New(cfg Config, opts ...Option) (*Formatter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &Formatter{cfg: cfg, units: DefaultUnits}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// FromSource builds a Formatter from the config src holds right now.
// Later changes to src are not observed.
func FromSource(src ConfigSource, opts ...Option) (*Formatter, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil config source", ErrInvalidConfig)
	}
	return New(src.NumberFormat(), opts...)
}

// Config returns the limits the Formatter applies.
func (f *Formatter) Config() Config {
	return f.cfg
}

// Units returns the unit table the Formatter uses.
func (f *Formatter) Units() UnitTable {
	return f.units
}

// Format renders value within the configured digit budget.
func (f *Formatter) Format(value any) (string, error) {
	res, err := f.FormatResult(value)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

// FormatResult runs decimal and magnitude truncation and returns the parts
// instead of the rendered string.
func (f *Formatter) FormatResult(value any) (Result, error) {
	d, err := ToDecimal(value)
	if err != nil {
		return Result{}, err
	}

	fixed, err := TruncateDecimal(d, decimalPlaces(d, f.cfg))
	if err != nil {
		return Result{}, err
	}

	res, err := TruncateMagnitude(fixed, f.cfg.OverallDigitLimit, f.units)
	if err != nil {
		return Result{}, err
	}

	// Values whose kept digits are all zero lose their sign.
	res.Negative = d.Sign() < 0 && !res.Digits.IsZero()
	return res, nil
}

// decimalPlaces caps the decimal limit at what can reach the output.
// Places past the value's own fraction only add zeros, and zeros past the
// overall limit are always trimmed again, so the cap leaves the result
// unchanged while keeping huge limits cheap.
func decimalPlaces(d decimal.Decimal, cfg Config) int {
	frac := max(0, -int(d.Exponent()))
	return min(cfg.DecimalDigitLimit, max(frac, cfg.OverallDigitLimit))
}

// FormatNumber formats a single value with DefaultUnits.
func FormatNumber(value any, cfg Config) (string, error) {
	f, err := New(cfg)
	if err != nil {
		return "", err
	}
	return f.Format(value)
}
