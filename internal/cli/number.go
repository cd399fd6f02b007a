package cli

import (
	"context"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/inputkit/internal/style"
	"github.com/dmitrymomot/inputkit/pkg/config"
	"github.com/dmitrymomot/inputkit/pkg/logger"
	"github.com/dmitrymomot/inputkit/pkg/numfmt"
)

type numberFlags struct {
	digits   int
	decimals int
	units    string
	jobs     int
	noColor  bool
}

func (a *app) numberCmd() *cobra.Command {
	var f numberFlags

	cmd := &cobra.Command{
		Use:   "number value...",
		Short: "Formats numbers within a digit budget",
		Long: `Formats each value with thousands separators, dropping decimal places and
then whole three-digit groups (replaced by K, M, B, ...) until the number
fits the digit budget. Values are printed in argument order.

Put flags first and end them with "--" so negative values are not read as
flags.
`,
		Example: `  inputkit number --digits 3 -- 1234567 -0.5
  inputkit number --units si --digits 4 98765432101234`,
		Args: cobra.MinimumNArgs(1),
	}

	p := cmd.Flags()
	p.IntVarP(&f.digits, "digits", "d", 0, "overall digit limit")
	p.IntVar(&f.decimals, "decimals", 0, "decimal digit limit")
	p.StringVarP(&f.units, "units", "u", "", "unit table: default or si")
	p.IntVarP(&f.jobs, "jobs", "j", runtime.NumCPU(), "values formatted in parallel")
	p.BoolVar(&f.noColor, "no-color", false, "disable colored output")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ns := a.settings.Number
		if p.Changed("digits") {
			ns.OverallDigitLimit = f.digits
		}
		if p.Changed("decimals") {
			ns.DecimalDigitLimit = f.decimals
		}
		if p.Changed("units") {
			ns.Units = f.units
		}
		if f.noColor {
			ns.UseColors = false
		}
		return a.runNumber(cmd.Context(), ns, f.jobs, args)
	}
	return cmd
}

type numberOutput struct {
	res numfmt.Result
	err error
}

func (a *app) runNumber(ctx context.Context, ns config.NumberSettings, jobs int, args []string) error {
	formatter, err := ns.Formatter()
	if err != nil {
		return err
	}
	if jobs <= 0 {
		jobs = 1
	}

	outputs := make([]numberOutput, len(args))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, arg := range args {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			res, err := formatter.FormatResult(arg)
			outputs[i] = numberOutput{res: res, err: err}
			a.log.DebugContext(gctx, "formatted number",
				logger.Input(arg),
				logger.Error(err),
				logger.Duration(time.Since(start)),
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	painter := style.For(a.stdout, ns.UseColors)
	failed := false
	for i, out := range outputs {
		if out.err != nil {
			failed = true
			a.eprintf("%s: %v\n", args[i], out.err)
			continue
		}
		color := ns.PositiveColor
		if out.res.Negative {
			color = ns.NegativeColor
		}
		s, err := painter.Hex(out.res.String(), color)
		if err != nil {
			return err
		}
		a.printf("%s\n", s)
	}
	if failed {
		return errReported
	}
	return nil
}
