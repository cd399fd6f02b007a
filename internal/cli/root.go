package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/internal/style"
	"github.com/dmitrymomot/inputkit/pkg/config"
	"github.com/dmitrymomot/inputkit/pkg/environment"
	"github.com/dmitrymomot/inputkit/pkg/i18n"
	"github.com/dmitrymomot/inputkit/pkg/logger"
	"github.com/dmitrymomot/inputkit/pkg/validator"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "indev"

// errReported marks failures whose details were already written to stderr.
var errReported = errors.New("cli: reported")

type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	langFlag   string
	levelFlag  string
	envFlag    string

	settings config.Settings
	lang     string
	log      *slog.Logger
	tr       *i18n.Translator
}

// NewRootCommand builds the inputkit command tree writing to the given
// streams.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		log:    logger.Discard(),
	}

	root := &cobra.Command{
		Use:     "inputkit",
		Version: Version,
		Short:   "Formats numbers and checks user input",
		Long: `inputkit formats numbers within a digit budget and validates or
normalises common user input: passwords, emails, URLs, IPs, phone numbers
and tags.

Settings come from defaults, INPUTKIT_* environment variables (and ./.env),
then the --config file, then flags.
`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	p := root.PersistentFlags()
	p.StringVarP(&a.configPath, "config", "c", "", "settings file (.yaml, .toml or .json)")
	p.StringVar(&a.langFlag, "lang", "", `message language, or "auto" to follow $LC_ALL/$LANG`)
	p.StringVar(&a.levelFlag, "log-level", "", "log level: debug, info, warn or error")
	p.StringVar(&a.envFlag, "env", "", "environment: development, staging or production")

	root.AddCommand(
		a.numberCmd(),
		a.phoneCmd(),
		a.tagsCmd(),
		a.urlCmd(),
		a.passwordCmd(),
		a.emailCmd(),
		a.ipCmd(),
		a.positiveCmd(),
	)
	return root
}

// Execute runs the CLI against os.Args and returns the process exit code.
func Execute(ctx context.Context) int {
	stdout, stderr := style.Stdout(), style.Stderr()
	cmd := NewRootCommand(stdout, stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			p := style.For(stderr, true)
			fmt.Fprintf(stderr, "%s %v\n", p.With("error:", style.Bold, style.Red), err)
		}
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := a.loadSettings(ctx, cmd)
	if err != nil {
		return err
	}
	a.settings = s

	env, _ := environment.Parse(s.Environment)
	a.log = logger.New(
		logger.WithOutput(a.stderr),
		logger.WithEnvironment(env),
		logger.WithLevelName(s.LogLevel),
		logger.WithAttr(logger.Command(cmd.Name())),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			return logger.Lang(i18n.LangFromContext(ctx)), true
		}),
	)

	a.tr, err = i18n.NewBuiltinTranslator(ctx, nil,
		i18n.WithLogger(a.log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	a.lang = a.resolveLang(s.Lang)

	ctx = i18n.WithLang(environment.WithContext(ctx, env), a.lang)
	cmd.SetContext(ctx)

	if err := s.Validate(); err != nil {
		a.log.ErrorContext(ctx, "invalid settings", logger.Error(err))
		return a.reportInvalid(ctx, err)
	}
	a.log.DebugContext(ctx, "settings loaded", logger.Component("cli"))
	return nil
}

// loadSettings applies defaults, the environment, the settings file and
// finally the persistent flags, in that order.
func (a *app) loadSettings(ctx context.Context, cmd *cobra.Command) (config.Settings, error) {
	s := config.DefaultSettings()

	if err := config.LoadEnv(); err != nil {
		return s, err
	}
	if err := config.ForceReloadConfig(&s); err != nil {
		return s, err
	}
	if a.configPath != "" {
		if err := config.LoadFile(ctx, a.configPath, &s); err != nil {
			return s, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		s.Lang = a.langFlag
	}
	if flags.Changed("log-level") {
		s.LogLevel = a.levelFlag
	}
	if flags.Changed("env") {
		env, err := environment.Parse(a.envFlag)
		if err != nil {
			return s, err
		}
		s.Environment = env.String()
	}
	return s, nil
}

func (a *app) resolveLang(lang string) string {
	if lang == "auto" {
		lang = os.Getenv("LC_ALL")
		if lang == "" {
			lang = os.Getenv("LANG")
		}
	}
	return i18n.ResolveLanguage(lang, a.tr.SupportedLanguages(), a.tr.DefaultLanguage())
}

// reportInvalid prints translated validation errors and returns errReported.
// Other errors are returned unchanged.
func (a *app) reportInvalid(ctx context.Context, err error) error {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return err
	}
	for _, line := range a.tr.TranslateErrors(i18n.LangFromContext(ctx), verrs) {
		a.eprintf("%s\n", line)
	}
	return errReported
}

// printf writes to stdout. Write errors on a terminal stream are not
// actionable for the CLI.
func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.stdout, format, args...)
}

func (a *app) eprintf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.stderr, format, args...)
}
