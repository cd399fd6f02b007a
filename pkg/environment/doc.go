// Package environment names the environment the inputkit CLI runs in and
// carries it through context.Context.
//
// Parse accepts the canonical names and the short aliases used in
// INPUTKIT_ENV:
//
//	env, err := environment.Parse("prod") // environment.Production
//	ctx = environment.WithContext(ctx, env)
//	if environment.IsProduction(ctx) {
//	    // JSON logs, no colours
//	}
//
// The logger package uses the value to pick its defaults and to stamp an
// "env" attribute on every record.
package environment
