package main

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sirkon/fluentify/internal/fluentrules"
	"github.com/sirkon/fluentify/internal/recipes"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the recipes in effect",
	Long: `Rules prints every supported assertion method grouped by its dialect, with the
rule code reported for it and an example of the produced assertion, followed by
the description of every rule code. Recipes disabled in the config are not
listed.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

var headerColor = color.New(color.FgBlue, color.Bold)

func runRules(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	table, err := cfg.Table()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var (
		tw      *tabwriter.Writer
		current recipes.Dialect
	)
	for i, e := range table.Entries() {
		if i == 0 || e.Key.Dialect != current {
			if tw != nil {
				if err := tw.Flush(); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			current = e.Key.Dialect
			if _, err := headerColor.Fprintf(out, "%s\n", current); err != nil {
				return err
			}
			tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		}

		if _, err := fmt.Fprintf(tw, "  %s\t%s\t%s\n", e.Key.Method, e.Rule.Code(), e.Example); err != nil {
			return err
		}
	}
	if tw == nil {
		return nil
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return printLegend(out, table)
}

// printLegend describes every rule code the table can report.
func printLegend(out io.Writer, table *recipes.Table) error {
	var rules []fluentrules.Rule
	for _, e := range table.Entries() {
		rules = append(rules, e.Rule)
	}
	slices.Sort(rules)
	rules = slices.Compact(rules)

	if _, err := headerColor.Fprintf(out, "\nrules\n"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, r := range rules {
		if _, err := fmt.Fprintf(tw, "  %s\t%s\n", r.Code(), r.Description()); err != nil {
			return err
		}
	}

	return tw.Flush()
}
