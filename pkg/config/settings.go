package config

import (
	"errors"
	"math"
	"slices"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/inputkit/pkg/environment"
	"github.com/dmitrymomot/inputkit/pkg/numfmt"
	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
	"github.com/dmitrymomot/inputkit/pkg/validator"
)

// Settings gathers the options of every inputkit routine. It can be filled
// from INPUTKIT_* environment variables with Load and from a YAML, TOML or
// JSON file with LoadFile.
type Settings struct {
	Lang        string `yaml:"lang" toml:"lang" json:"lang" env:"INPUTKIT_LANG" envDefault:"en"`
	LogLevel    string `yaml:"log_level" toml:"log_level" json:"log_level" env:"INPUTKIT_LOG_LEVEL" envDefault:"info"`
	Environment string `yaml:"environment" toml:"environment" json:"environment" env:"INPUTKIT_ENV" envDefault:"production"`

	Number   NumberSettings   `yaml:"number" toml:"number" json:"number" envPrefix:"INPUTKIT_NUMBER_"`
	Password PasswordSettings `yaml:"password" toml:"password" json:"password" envPrefix:"INPUTKIT_PASSWORD_"`
	URL      URLSettings      `yaml:"url" toml:"url" json:"url" envPrefix:"INPUTKIT_URL_"`
	Phone    PhoneSettings    `yaml:"phone" toml:"phone" json:"phone" envPrefix:"INPUTKIT_PHONE_"`
	Email    EmailSettings    `yaml:"email" toml:"email" json:"email" envPrefix:"INPUTKIT_EMAIL_"`
	Tags     TagSettings      `yaml:"tags" toml:"tags" json:"tags" envPrefix:"INPUTKIT_TAGS_"`
	Positive PositiveSettings `yaml:"positive" toml:"positive" json:"positive" envPrefix:"INPUTKIT_POSITIVE_"`
}

// NumberSettings configures the magnitude formatter and its terminal colors.
type NumberSettings struct {
	OverallDigitLimit int    `yaml:"overall_digit_limit" toml:"overall_digit_limit" json:"overall_digit_limit" env:"OVERALL_DIGIT_LIMIT" envDefault:"100"`
	DecimalDigitLimit int    `yaml:"decimal_digit_limit" toml:"decimal_digit_limit" json:"decimal_digit_limit" env:"DECIMAL_DIGIT_LIMIT" envDefault:"100"`
	Units             string `yaml:"units" toml:"units" json:"units" env:"UNITS" envDefault:"default"`
	UseColors         bool   `yaml:"use_colors" toml:"use_colors" json:"use_colors" env:"USE_COLORS" envDefault:"true"`
	PositiveColor     string `yaml:"positive_color" toml:"positive_color" json:"positive_color" env:"POSITIVE_COLOR" envDefault:"#2e8b57"`
	NegativeColor     string `yaml:"negative_color" toml:"negative_color" json:"negative_color" env:"NEGATIVE_COLOR" envDefault:"#dc143c"`
}

type PasswordSettings struct {
	MinLength    int    `yaml:"min_length" toml:"min_length" json:"min_length" env:"MIN_LENGTH" envDefault:"8"`
	MinUppercase int    `yaml:"min_uppercase" toml:"min_uppercase" json:"min_uppercase" env:"MIN_UPPERCASE" envDefault:"1"`
	MinLowercase int    `yaml:"min_lowercase" toml:"min_lowercase" json:"min_lowercase" env:"MIN_LOWERCASE" envDefault:"1"`
	MinDigits    int    `yaml:"min_digits" toml:"min_digits" json:"min_digits" env:"MIN_DIGITS" envDefault:"1"`
	Symbols      string `yaml:"symbols" toml:"symbols" json:"symbols" env:"SYMBOLS" envDefault:"#?!@$%^&*-"`
}

type URLSettings struct {
	DomainOnly   bool `yaml:"domain_only" toml:"domain_only" json:"domain_only" env:"DOMAIN_ONLY" envDefault:"false"`
	PathIncluded bool `yaml:"path_included" toml:"path_included" json:"path_included" env:"PATH_INCLUDED" envDefault:"true"`
}

type PhoneSettings struct {
	Format        string `yaml:"format" toml:"format" json:"format" env:"FORMAT" envDefault:"3-2-3-4"`
	International bool   `yaml:"international" toml:"international" json:"international" env:"INTERNATIONAL" envDefault:"true"`
}

type EmailSettings struct {
	Domains []string `yaml:"domains" toml:"domains" json:"domains" env:"DOMAINS" envSeparator:","`
}

// TagSettings lists tag separators as one string, one rune per separator,
// e.g. ",;".
type TagSettings struct {
	Separators string `yaml:"separators" toml:"separators" json:"separators" env:"SEPARATORS"`
}

type PositiveSettings struct {
	ZeroIncluded bool `yaml:"zero_included" toml:"zero_included" json:"zero_included" env:"ZERO_INCLUDED" envDefault:"false"`
}

// DefaultSettings returns Settings populated from the envDefault tags only,
// ignoring the process environment.
func DefaultSettings() Settings {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: map[string]string{}}); err != nil {
		panic("config: invalid settings defaults: " + err.Error())
	}
	return s
}

// NumberFormat makes Settings a numfmt.ConfigSource.
func (s Settings) NumberFormat() numfmt.Config {
	return s.Number.FormatConfig()
}

// Clone returns a deep copy.
func (s Settings) Clone() Settings {
	s.Email.Domains = slices.Clone(s.Email.Domains)
	return s
}

// Validate checks every option and returns ErrInvalidSettings joined with
// validator.ValidationErrors.
func (s Settings) Validate() error {
	rules := []validator.Rule{
		validator.RequiredString("lang", s.Lang),
		validator.OneOfFold("log_level", s.LogLevel, []string{"debug", "info", "warn", "error"}),
		environmentRule("environment", s.Environment),

		validator.MinNum("number.overall_digit_limit", s.Number.OverallDigitLimit, 1),
		validator.MinNum("number.decimal_digit_limit", s.Number.DecimalDigitLimit, 0),
		validator.MaxNum("number.decimal_digit_limit", s.Number.DecimalDigitLimit, math.MaxInt32),
		validator.OneOfFold("number.units", s.Number.Units, []string{"default", "kmb", "si"}),
		validator.HexColor("number.positive_color", s.Number.PositiveColor),
		validator.HexColor("number.negative_color", s.Number.NegativeColor),

		validator.Positive("password.min_length", s.Password.MinLength, true),
		validator.Positive("password.min_uppercase", s.Password.MinUppercase, true),
		validator.Positive("password.min_lowercase", s.Password.MinLowercase, true),
		validator.Positive("password.min_digits", s.Password.MinDigits, true),

		phoneFormatRule("phone.format", s.Phone.Format),
		tagSeparatorsRule("tags.separators", s.Tags.Separators),
	}

	for _, d := range s.Email.Domains {
		rules = append(rules, validator.RequiredString("email.domains", d))
	}

	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidSettings, err)
	}
	return nil
}

// environmentRule accepts the names understood by environment.Parse,
// including the dev/stage/prod aliases.
func environmentRule(field, name string) validator.Rule {
	options := "development, staging, production"
	return validator.Rule{
		Check: func() bool {
			_, err := environment.Parse(name)
			return err == nil
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        "must be one of: " + options,
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"options": options,
			},
		},
	}
}

func phoneFormatRule(field, format string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			_, err := sanitizer.ParsePhoneFormat(format)
			return err == nil
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        "must be dash-separated slot widths like 3-2-3-4",
			TranslationKey: "validation.phone_format",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func tagSeparatorsRule(field, separators string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			_, err := sanitizer.SplitTags("", TagSettings{Separators: separators}.SeparatorList()...)
			return err == nil
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        "must only contain non-word characters",
			TranslationKey: "validation.tag_separators",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// FormatConfig converts the digit limits into a numfmt.Config.
func (n NumberSettings) FormatConfig() numfmt.Config {
	return numfmt.Config{
		OverallDigitLimit: n.OverallDigitLimit,
		DecimalDigitLimit: n.DecimalDigitLimit,
	}
}

// UnitTable resolves Units by name.
func (n NumberSettings) UnitTable() (numfmt.UnitTable, error) {
	return numfmt.UnitTableByName(n.Units)
}

// Formatter builds a numfmt.Formatter from the digit limits and unit table.
func (n NumberSettings) Formatter() (*numfmt.Formatter, error) {
	units, err := n.UnitTable()
	if err != nil {
		return nil, err
	}
	return numfmt.New(n.FormatConfig(), numfmt.WithUnits(units))
}

func (p PasswordSettings) Policy() validator.PasswordPolicy {
	return validator.PasswordPolicy{
		MinLength:    p.MinLength,
		MinUppercase: p.MinUppercase,
		MinLowercase: p.MinLowercase,
		MinDigits:    p.MinDigits,
		Symbols:      p.Symbols,
	}
}

// StrengthOptions derives the strength ladder from MinLength.
func (p PasswordSettings) StrengthOptions() []validator.StrengthOption {
	return validator.StrengthOptionsFor(p.MinLength)
}

func (u URLSettings) Options() sanitizer.URLOptions {
	return sanitizer.URLOptions{DomainOnly: u.DomainOnly, PathIncluded: u.PathIncluded}
}

func (p PhoneSettings) Options() sanitizer.PhoneOptions {
	return sanitizer.PhoneOptions{Format: p.Format, International: p.International}
}

// SeparatorList splits Separators into one string per rune.
func (t TagSettings) SeparatorList() []string {
	if t.Separators == "" {
		return nil
	}
	out := make([]string, 0, len(t.Separators))
	for _, r := range t.Separators {
		out = append(out, string(r))
	}
	return out
}
