package cli

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputkit/pkg/config"
	"github.com/dmitrymomot/inputkit/pkg/logger"
	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

func (a *app) phoneCmd() *cobra.Command {
	var (
		format   string
		national bool
	)

	cmd := &cobra.Command{
		Use:     "phone number...",
		Short:   "Formats phone numbers into dash-separated slots",
		Example: `  inputkit phone "+123 45 678 9012"
  inputkit phone --format 3-3-4 --national 5551234567`,
		Args: cobra.MinimumNArgs(1),
	}
	p := cmd.Flags()
	p.StringVar(&format, "format", "", "slot widths, e.g. 3-2-3-4")
	p.BoolVar(&national, "national", false, "drop the country code slot")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := a.settings.Phone.Options()
		if p.Changed("format") {
			opts.Format = format
		}
		if national {
			opts.International = false
		}

		return a.eachArg(cmd, args, func(arg string) (string, error) {
			return sanitizer.FormatPhone(arg, opts)
		})
	}
	return cmd
}

func (a *app) urlCmd() *cobra.Command {
	var domainOnly, noPath, lenient bool

	cmd := &cobra.Command{
		Use:   "url url...",
		Short: "Canonicalises http and https URLs",
		Long: `Prints the canonical form of each URL. By default the URL is printed as
given. --domain-only prints the lowercased host followed by path and query;
add --no-path to print the host alone. --no-path without --domain-only
prints the origin. --lenient accepts URLs without a scheme, assuming https.
`,
		Args: cobra.MinimumNArgs(1),
	}
	p := cmd.Flags()
	p.BoolVar(&domainOnly, "domain-only", false, "strip the scheme")
	p.BoolVar(&noPath, "no-path", false, "strip path and query")
	p.BoolVar(&lenient, "lenient", false, "assume https when the scheme is missing")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := a.settings.URL.Options()
		if p.Changed("domain-only") {
			opts.DomainOnly = domainOnly
		}
		if p.Changed("no-path") {
			opts.PathIncluded = !noPath
		}

		return a.eachArg(cmd, args, func(arg string) (string, error) {
			if lenient {
				arg = sanitizer.NormalizeURL(arg)
			}
			return sanitizer.CanonicalURL(arg, opts)
		})
	}
	return cmd
}

func (a *app) tagsCmd() *cobra.Command {
	var (
		separators string
		raw        bool
	)

	cmd := &cobra.Command{
		Use:   "tags text...",
		Short: "Splits text into normalised tags",
		Long: `Splits each argument into tags and prints the unique tags, one per line.
Without --separators the most frequent punctuation or whitespace character
is used as the separator. Tags are case-folded and NFC-normalised unless
--raw is given.
`,
		Example: `  inputkit tags "Go,Rust,go"
  inputkit tags --separators ";" "a,b;c"`,
		Args: cobra.MinimumNArgs(1),
	}
	p := cmd.Flags()
	p.StringVarP(&separators, "separators", "s", "", "allowed separator characters")
	p.BoolVar(&raw, "raw", false, "keep tags as written")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ts := a.settings.Tags
		if p.Changed("separators") {
			ts = config.TagSettings{Separators: separators}
		}

		var tags []string
		for _, arg := range args {
			split, err := sanitizer.SplitTags(arg, ts.SeparatorList()...)
			if err != nil {
				return err
			}
			tags = append(tags, split...)
		}
		if !raw {
			tags = sanitizer.NormalizeTags(tags)
		}

		a.log.DebugContext(cmd.Context(), "split tags",
			logger.Input(strings.Join(args, " ")),
			slog.Any("tags", tags),
		)
		for _, tag := range tags {
			a.printf("%s\n", tag)
		}
		return nil
	}
	return cmd
}

// eachArg prints fn(arg) for every argument. Failures are written to stderr
// and turn into a non-zero exit once all arguments are processed.
func (a *app) eachArg(cmd *cobra.Command, args []string, fn func(string) (string, error)) error {
	failed := false
	for _, arg := range args {
		out, err := fn(arg)
		if err != nil {
			failed = true
			a.log.DebugContext(cmd.Context(), "input rejected", logger.Input(arg), logger.Error(err))
			a.eprintf("%s: %v\n", arg, err)
			continue
		}
		a.printf("%s\n", out)
	}
	if failed {
		return errReported
	}
	return nil
}
