package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/Simplici0/copcalc/internal/cop"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("copcalc", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	outdoor := fs.String("outdoor", "", "outdoor air temperature in °C")
	flow := fs.String("flow", "", "flow (supply) water temperature in °C")
	ret := fs.String("return", "", "return water temperature in °C")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// without inputs, print the reference operating points
	if fs.NFlag() == 0 {
		for i, c := range cop.DemoCases() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# %s\n", c.Name)
			if err := printRecord(out, cop.Estimate(c.OutdoorC, c.FlowC, c.ReturnC)); err != nil {
				return err
			}
		}
		return nil
	}

	record := cop.Estimate(
		cop.ParseTemperature(*outdoor),
		cop.ParseTemperature(*flow),
		cop.ParseTemperature(*ret),
	)
	return printRecord(out, record)
}

func printRecord(out io.Writer, record cop.Record) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, f := range record.Fields() {
		fmt.Fprintf(tw, "%s\t%s\n", f.Label, cop.FormatValue(f.Value))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
