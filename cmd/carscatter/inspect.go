package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bebeshannu/datavis-a2/src/scene"
	"github.com/bebeshannu/datavis-a2/src/vehicles"
)

func newInspectCmd(root *rootOptions) *cobra.Command {
	var record int
	var list bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print load statistics and one record's details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, stats, src, err := root.load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Source: %s\n", src)
			fmt.Fprintf(out, "Rows: %d  Plotted: %d  Skipped: %d\n", stats.Rows, stats.Kept, stats.Dropped())
			if len(ds) == 0 {
				fmt.Fprintln(out, "No vehicles with price and horsepower")
				return nil
			}
			printExtents(cmd, ds)
			if list {
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "#\tRow\tName\tPrice\tHP")
				for i, v := range ds {
					fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n", i, v.Row, v.Name, scene.FormatCurrency(v.RetailPrice), scene.FormatInteger(v.Horsepower))
				}
				tw.Flush()
			}
			c := scene.New(ds, scene.DefaultOptions())
			if _, ok := c.Select(record); !ok {
				return fmt.Errorf("--record %d out of range [0,%d)", record, len(ds))
			}
			var p scene.TextPanel
			c.ShowDetail(&p)
			fmt.Fprintln(out)
			fmt.Fprint(out, p.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&record, "record", 0, "Index of the record to show")
	cmd.Flags().BoolVar(&list, "list", false, "List every plotted record")
	return cmd
}

func printExtents(cmd *cobra.Command, ds vehicles.Dataset) {
	out := cmd.OutOrStdout()
	lo, hi, _ := ds.Extent(vehicles.RetailPrice)
	fmt.Fprintf(out, "Retail price: %s .. %s\n", scene.FormatCurrency(lo), scene.FormatCurrency(hi))
	lo, hi, _ = ds.Extent(vehicles.Horsepower)
	fmt.Fprintf(out, "Horsepower: %s .. %s\n", scene.FormatInteger(lo), scene.FormatInteger(hi))
	lo, hi, n := ds.Extent(vehicles.EngineSize)
	fmt.Fprintf(out, "Engine size: %s .. %s (%d known)\n", scene.FormatLitres(lo), scene.FormatLitres(hi), n)
	lo, hi, n = ds.Extent(vehicles.CityMPG)
	fmt.Fprintf(out, "City MPG: %s .. %s (%d known)\n", scene.FormatInteger(lo), scene.FormatInteger(hi), n)
}
