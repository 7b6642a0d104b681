// Command curveplot exercises the expression engine from the shell:
// classify raw text, sample any curve family to CSV, and locate roots
// or intersections over a viewport.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isam10/curveplot/core"
	"github.com/isam10/curveplot/curve"
	"github.com/isam10/curveplot/roots"
	"github.com/isam10/curveplot/sampler"
)

var (
	flagViewport string
	flagScope    string
	flagSamples  int
	flagRes      int
)

func main() {
	root := &cobra.Command{
		Use:   "curveplot",
		Short: "Symbolic-to-numeric expression engine for 2-D graphing",
		Long: "curveplot classifies a mathematical expression into a curve family\n" +
			"(standard, polar, parametric, implicit), compiles it, and samples it\n" +
			"into plottable geometry or scalar roots.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flagViewport, "viewport", "-10,10,-10,10",
		"visible window as xmin,xmax,ymin,ymax")
	root.PersistentFlags().StringVar(&flagScope, "scope", "",
		"slider values as name=value[,name=value...]")

	root.AddCommand(classifyCmd(), sampleCmd(), rootsCmd(), intersectCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <expression>",
		Short: "Detect the curve family and free variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pe := curve.Parse(args[0])
			if pe.Errored() {
				fmt.Fprintf(cmd.OutOrStdout(), "parse error: %s\n", pe.ParseError)

				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "kind: %s\n", pe.Kind)
			fmt.Fprintf(cmd.OutOrStdout(), "free variables: %s\n", strings.Join(pe.FreeVariables, ", "))

			return nil
		},
	}
}

func sampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample <expression>",
		Short: "Sample a curve into CSV points or contour segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vp, err := parseViewport(flagViewport)
			if err != nil {
				return err
			}
			scope, err := parseScope(flagScope)
			if err != nil {
				return err
			}
			pe := curve.Parse(args[0])
			if pe.Errored() {
				return fmt.Errorf("parse error: %s", pe.ParseError)
			}
			out := cmd.OutOrStdout()
			switch pe.Kind {
			case curve.Standard:
				writePoints(out, sampler.SampleStandard(pe.Compiled, vp.XMin, vp.XMax, scope,
					sampler.StandardOptions{Samples: flagSamples}))
			case curve.Polar:
				opts := sampler.DefaultPolarOptions()
				opts.Samples = flagSamples
				writePoints(out, sampler.SamplePolar(pe.Compiled, scope, opts))
			case curve.Parametric:
				opts := sampler.DefaultParametricOptions()
				opts.Samples = flagSamples
				writePoints(out, sampler.SampleParametric(pe.CompiledX, pe.CompiledY, scope, opts))
			case curve.Implicit:
				segs := sampler.MarchingSquares(pe.Compiled, vp, scope,
					sampler.ImplicitOptions{Resolution: flagRes})
				for _, s := range segs {
					fmt.Fprintf(out, "%g,%g,%g,%g\n", s.A.X, s.A.Y, s.B.X, s.B.Y)
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&flagSamples, "samples", 0, "sample count (0 = kind default)")
	cmd.Flags().IntVar(&flagRes, "resolution", 0, "implicit grid resolution (0 = default 160)")

	return cmd
}

func rootsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roots <expression>",
		Short: "Find zeros of a standard curve by bisection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vp, err := parseViewport(flagViewport)
			if err != nil {
				return err
			}
			scope, err := parseScope(flagScope)
			if err != nil {
				return err
			}
			pe := curve.Parse(args[0])
			if pe.Errored() {
				return fmt.Errorf("parse error: %s", pe.ParseError)
			}
			opts := roots.DefaultOptions()
			opts.Samples = flagSamples
			for _, p := range roots.FindRoots(pe.Compiled, vp, scope, opts) {
				fmt.Fprintf(cmd.OutOrStdout(), "x=%.10g\n", p.X)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&flagSamples, "samples", 0, "scan interval count (0 = default 400)")

	return cmd
}

func intersectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intersect <expression1> <expression2>",
		Short: "Find intersections of two standard curves",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vp, err := parseViewport(flagViewport)
			if err != nil {
				return err
			}
			scope, err := parseScope(flagScope)
			if err != nil {
				return err
			}
			p1 := curve.Parse(args[0])
			p2 := curve.Parse(args[1])
			if p1.Errored() {
				return fmt.Errorf("parse error in %q: %s", args[0], p1.ParseError)
			}
			if p2.Errored() {
				return fmt.Errorf("parse error in %q: %s", args[1], p2.ParseError)
			}
			opts := roots.DefaultOptions()
			opts.Samples = flagSamples
			pts := roots.FindIntersections(p1.Compiled, p2.Compiled, vp, scope, scope, opts)
			for _, p := range pts {
				fmt.Fprintf(cmd.OutOrStdout(), "(%.10g, %.10g)\n", p.X, p.Y)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&flagSamples, "samples", 0, "scan interval count (0 = default 400)")

	return cmd
}

func writePoints(out io.Writer, pts []core.Point) {
	for _, p := range pts {
		fmt.Fprintf(out, "%g,%g\n", p.X, p.Y)
	}
}

// parseViewport reads "xmin,xmax,ymin,ymax".
func parseViewport(s string) (core.Viewport, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return core.Viewport{}, fmt.Errorf("viewport wants 4 comma-separated numbers, got %q", s)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return core.Viewport{}, fmt.Errorf("bad viewport component %q: %w", p, err)
		}
		vals[i] = v
	}

	return core.Viewport{XMin: vals[0], XMax: vals[1], YMin: vals[2], YMax: vals[3]}, nil
}

// parseScope reads "a=1,b=2.5" into slider bindings.
func parseScope(s string) (core.Scope, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	scope := make(core.Scope)
	for _, pair := range strings.Split(s, ",") {
		name, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("bad scope entry %q, want name=value", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("bad scope value in %q: %w", pair, err)
		}
		scope[strings.TrimSpace(name)] = v
	}

	return scope, nil
}
