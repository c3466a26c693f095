package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/gridstash/internal/journal"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the item definitions of the configured catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry(cfg)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NUM\tID\tNAME\tCATEGORY\tSIZE\tSTACK")
		for _, d := range reg.Export() {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%dx%d\t%d\n", d.NumericID, d.ID, d.Name, d.Category, d.Width, d.Height, d.MaxStack)
		}
		return tw.Flush()
	},
}

var journalCmd = &cobra.Command{
	Use:   "journal <file>",
	Short: "Print the entries of an inventory event journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := journal.ReadAll(args[0])
		if err != nil {
			return fmt.Errorf("failed to read journal: %w", err)
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TIME\tINVENTORY\tEVENT\tKIND\tAMOUNT\tORIGIN\tITEM")
		for _, e := range entries {
			origin := "-"
			if e.Origin != nil {
				origin = fmt.Sprintf("(%d,%d)", e.Origin.X, e.Origin.Y)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
				e.Time.Format("15:04:05"), e.Inventory, e.Event, e.Kind, e.Amount, origin, e.ItemID)
		}
		return tw.Flush()
	},
}
