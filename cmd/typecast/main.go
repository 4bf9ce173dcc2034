// Command typecast demonstrates primitive numeric conversions.
// With no arguments it runs the built-in scenarios and prints one
// "<scenario>: <value>" line per scenario.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/FocuswithJustin/typecast/core/castexpr"
	"github.com/FocuswithJustin/typecast/core/numeric"
	"github.com/FocuswithJustin/typecast/core/scenario"
	"github.com/FocuswithJustin/typecast/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for typecast.
type CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (${enum})" enum:"debug,info,warn,error" default:"warn" env:"TYPECAST_LOG_LEVEL"`
	LogFormat string `name:"log-format" help:"Log format (${enum})" enum:"json,text" default:"text" env:"TYPECAST_LOG_FORMAT"`

	Demo      DemoCmd      `cmd:"" default:"withargs" help:"Run the built-in conversion scenarios (default)"`
	Convert   ConvertCmd   `cmd:"" help:"Convert an int32 value with the given conversion"`
	Eval      EvalCmd      `cmd:"" help:"Evaluate a cast expression such as '(byte) 255'"`
	Kinds     KindsCmd     `cmd:"" help:"List supported conversions"`
	Selfcheck SelfcheckCmd `cmd:"" help:"Verify scenario outputs against their expected values"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// runEnv carries per-invocation state into command Run methods.
type runEnv struct {
	ctx context.Context
	out io.Writer
}

// DemoCmd runs the built-in scenarios.
type DemoCmd struct {
	Digest bool `help:"Also print the BLAKE3 digest of the transcript"`
}

func (c *DemoCmd) Run(env *runEnv) error {
	results := scenario.Run(env.ctx, scenario.Default())
	if _, err := env.out.Write(scenario.Transcript(results)); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	if c.Digest {
		fmt.Fprintf(env.out, "digest: %s\n", scenario.Digest(results))
	}
	return scenario.FirstError(results)
}

// ConvertCmd converts an arbitrary int32.
type ConvertCmd struct {
	Value string `arg:"" help:"Decimal int32 value (put -- before negative values)"`
	Kind  string `short:"k" required:"" enum:"${conversion_kinds}" help:"Conversion to apply (${enum})"`
}

func (c *ConvertCmd) Run(env *runEnv) error {
	value, err := castexpr.ParseInt32(c.Value)
	if err != nil {
		return err
	}
	kind, err := numeric.ParseConversionKind(c.Kind)
	if err != nil {
		return err
	}

	result, err := numeric.Convert(value, kind)
	logging.Conversion(env.ctx, kind.String(), value, result.String(), err)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, result)
	return nil
}

// EvalCmd parses and evaluates a cast expression.
type EvalCmd struct {
	Expr string `arg:"" help:"Cast expression, e.g. '(byte) 255'"`
}

func (c *EvalCmd) Run(env *runEnv) error {
	expr, err := castexpr.Parse(c.Expr)
	if err != nil {
		return err
	}

	result, err := expr.Eval()
	logging.Conversion(env.ctx, expr.Kind.String(), expr.Value, result.String(), err, "expr", expr.String())
	if err != nil {
		return err
	}
	fmt.Fprintln(env.out, result)
	return nil
}

// KindsCmd lists the supported conversions.
type KindsCmd struct{}

func (c *KindsCmd) Run(env *runEnv) error {
	for _, k := range numeric.ConversionKinds() {
		direction := "narrowing"
		if k.Widening() {
			direction = "widening"
		}
		fmt.Fprintf(env.out, "%s: %s -> %s (%s)\n", k, k.Source(), k.Target(), direction)
	}
	return nil
}

// SelfcheckCmd verifies the built-in scenarios.
type SelfcheckCmd struct {
	JSON bool `name:"json" help:"Print the report as JSON"`
}

func (c *SelfcheckCmd) Run(env *runEnv) error {
	results := scenario.Run(env.ctx, scenario.Default())
	report := scenario.Check(results)

	if c.JSON {
		enc := json.NewEncoder(env.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	} else {
		failed := lo.SliceToMap(report.Mismatches, func(m scenario.Mismatch) (string, scenario.Mismatch) {
			return m.Name, m
		})
		for _, r := range results {
			m, bad := failed[r.Name]
			switch {
			case !bad:
				fmt.Fprintf(env.out, "ok   %s\n", r.Line())
			case m.Error != "":
				fmt.Fprintf(env.out, "FAIL %s: %s\n", m.Name, m.Error)
			default:
				fmt.Fprintf(env.out, "FAIL %s: got %s, want %s\n", m.Name, m.Got, m.Want)
			}
		}
		fmt.Fprintf(env.out, "%d/%d scenarios passed\n", report.Total-report.Failed, report.Total)
	}

	if !report.Passed {
		return fmt.Errorf("selfcheck failed: %d of %d scenarios mismatched", report.Failed, report.Total)
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(env *runEnv) error {
	fmt.Fprintf(env.out, "typecast version %s\n", version)
	return nil
}

func options(stdout, stderr io.Writer) []kong.Option {
	kindNames := lo.Map(numeric.ConversionKinds(), func(k numeric.ConversionKind, _ int) string {
		return k.String()
	})
	return []kong.Option{
		kong.Name("typecast"),
		kong.Description("Primitive numeric conversion demonstrator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
		kong.Vars{"conversion_kinds": strings.Join(kindNames, ",")},
	}
}

// execute configures logging from the global flags and runs the selected command.
func execute(kctx *kong.Context, cli *CLI) error {
	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cli.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(kctx.Stderr, level, format)

	ctx := logging.WithRunID(context.Background(), uuid.NewString())
	logging.CommandStart(ctx, kctx.Command())

	return kctx.Run(&runEnv{ctx: ctx, out: kctx.Stdout})
}

// run parses args and executes the selected command.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli, options(stdout, stderr)...)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return execute(kctx, &cli)
}

func main() {
	var cli CLI
	parser := kong.Must(&cli, options(os.Stdout, os.Stderr)...)
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	kctx.FatalIfErrorf(execute(kctx, &cli))
}
