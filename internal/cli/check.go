package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/pkg/i18n"
	"github.com/dmitrymomot/inputkit/pkg/logger"
	"github.com/dmitrymomot/inputkit/pkg/numfmt"
	"github.com/dmitrymomot/inputkit/pkg/validator"
)

func (a *app) passwordCmd() *cobra.Command {
	var minStrength int

	cmd := &cobra.Command{
		Use:   "password password",
		Short: "Checks a password against the password policy",
		Long: `Checks the password against the configured policy and prints its
strength. --min-strength rejects passwords rated below the given level
(0 Weak, 1 Strong, 2 Very Strong).
`,
		Args: cobra.ExactArgs(1),
	}
	cmd.Flags().IntVar(&minStrength, "min-strength", -1, "lowest accepted strength level")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ps := a.settings.Password
		policy, options := ps.Policy(), ps.StrengthOptions()
		if err := policy.Validate(); err != nil {
			return err
		}

		value := args[0]
		report := validator.CheckPassword(value, policy, options)
		a.printf("%s\n", a.tr.Tc(ctx, "cli.strength", "strength", report.Strength.Value))

		rules := validator.PasswordRules("password", value, policy)
		if minStrength >= 0 {
			rules = append(rules, validator.MinPasswordStrength("password", value, options, minStrength))
		}
		if err := validator.Apply(rules...); err != nil {
			a.log.DebugContext(ctx, "password rejected", logger.Errors(err))
			return a.reportInvalid(ctx, err)
		}
		a.printf("%s\n", a.tr.Tc(ctx, "cli.valid"))
		return nil
	}
	return cmd
}

func (a *app) emailCmd() *cobra.Command {
	var domains []string

	cmd := &cobra.Command{
		Use:     "email address...",
		Short:   "Validates email addresses",
		Example: `  inputkit email --domain example.com jane@example.com`,
		Args:    cobra.MinimumNArgs(1),
	}
	p := cmd.Flags()
	p.StringSliceVar(&domains, "domain", nil, "accepted domains (repeatable)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		allowed := a.settings.Email.Domains
		if p.Changed("domain") {
			allowed = domains
		}

		return a.checkEach(cmd, args, func(arg string) []validator.Rule {
			rules := []validator.Rule{validator.ValidEmail(arg, arg)}
			if len(allowed) > 0 {
				rules = append(rules, validator.EmailInDomains(arg, arg, allowed))
			}
			return rules
		})
	}
	return cmd
}

func (a *app) ipCmd() *cobra.Command {
	var v4 bool

	cmd := &cobra.Command{
		Use:   "ip address...",
		Short: "Validates IP addresses",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.Flags().BoolVarP(&v4, "v4", "4", false, "accept IPv4 addresses only")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return a.checkEach(cmd, args, func(arg string) []validator.Rule {
			if v4 {
				return []validator.Rule{validator.ValidIPv4(arg, arg)}
			}
			return []validator.Rule{validator.ValidIP(arg, arg)}
		})
	}
	return cmd
}

func (a *app) positiveCmd() *cobra.Command {
	var zeroIncluded bool

	cmd := &cobra.Command{
		Use:   "positive number...",
		Short: "Reports whether numbers are positive",
		Args:  cobra.MinimumNArgs(1),
	}
	p := cmd.Flags()
	p.BoolVar(&zeroIncluded, "zero-included", false, "treat zero as positive")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		zero := a.settings.Positive.ZeroIncluded
		if p.Changed("zero-included") {
			zero = zeroIncluded
		}

		failed := false
		for _, arg := range args {
			d, err := numfmt.ToDecimal(arg)
			if err != nil {
				failed = true
				a.eprintf("%s: %v\n", arg, err)
				continue
			}
			rule := validator.Positive(arg, d.Sign(), zero)
			if err := validator.Apply(rule); err != nil {
				failed = true
				a.printf("%s\n", a.tr.Tc(ctx, "cli.not_positive", "value", arg))
				continue
			}
			a.printf("%s\n", a.tr.Tc(ctx, "cli.positive", "value", arg))
		}
		if failed {
			return errReported
		}
		return nil
	}
	return cmd
}

// checkEach applies the rules built for every argument. Valid arguments are
// confirmed on stdout, failures are translated onto stderr.
func (a *app) checkEach(cmd *cobra.Command, args []string, rules func(string) []validator.Rule) error {
	ctx := cmd.Context()
	lang := i18n.LangFromContext(ctx)

	failed := false
	for _, arg := range args {
		err := validator.Apply(rules(arg)...)
		if err == nil {
			a.printf("%s: %s\n", arg, a.tr.T(lang, "cli.valid"))
			continue
		}
		failed = true
		a.log.DebugContext(ctx, "input rejected", logger.Input(arg), logger.Error(err))
		for _, line := range a.tr.TranslateErrors(lang, validator.ExtractValidationErrors(err)) {
			a.eprintf("%s\n", line)
		}
	}
	if failed {
		return errReported
	}
	return nil
}
