// Package main is the entry point for the spline command, which fits a natural
// cubic spline to a table of points and prints it on a dense grid.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/spline/interpolate"
	spio "github.com/phil-mansfield/spline/io"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	log.SetFlags(log.Ltime)
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "spline",
		Short:         "Natural cubic spline interpolation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(evalCmd())
	cmd.AddCommand(exampleConfigCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <config>",
		Short: "Evaluate the spline described by a [Spline] config file",
		Long: `Reads the sample table named by the config file, fits a natural cubic
spline through it and prints 'x y' rows for evenly spaced points spanning the
table's x range.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := spio.ReadSplineConfig(args[0])
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return evalMain(con, cmd.OutOrStdout())
		},
	}
}

func exampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config",
		Short: "Print an example [Spline] config file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), spio.ExampleSplineFile)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "spline version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

// evalMain fits the table given by con and writes the interpolated values to
// w, one 'x y' row per point.
func evalMain(con *spio.SplineConfig, w io.Writer) error {
	xs, ys, err := spio.ReadSamples(con.Input, con.XColumn, con.YColumn)
	if err != nil {
		return fmt.Errorf("read samples: %w", err)
	}
	log.Printf("Read %d points from '%s'.", len(xs), con.Input)

	c, err := interpolate.Solve(xs, ys)
	if err != nil {
		return fmt.Errorf("solve spline: %w", err)
	}

	var intr interpolate.Interpolator = c
	if con.Search == spio.BinarySearch {
		intr = interpolate.NewSpline(c)
	}

	lo, hi := c.Domain()
	qs := interpolate.Linspace(lo, hi, con.Points)
	vals, err := intr.EvalAll(qs)
	if err != nil {
		return fmt.Errorf("evaluate spline: %w", err)
	}
	log.Printf("Evaluated %d points in [%g, %g].", len(qs), lo, hi)

	bw := bufio.NewWriter(w)
	for i := range qs {
		fmt.Fprintf(bw, "%.10g %.10g\n", qs[i], vals[i])
	}
	return bw.Flush()
}
