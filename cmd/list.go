package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/monsterdex/monsterdex/internal/monster"
	"github.com/monsterdex/monsterdex/internal/state"
)

var (
	listJSON  bool
	listLimit int
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List monsters",
	Long: `List monsters whose name contains query, ignoring case. Without a query
every monster is listed, in dataset order. Matching is the same as the
search box of the interactive browser.

Example output:
    1  Rathalos        Flying Wyvern   Fire, Poison
    2  Rathian         Flying Wyvern   Fire, Poison`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}

		var query string
		if len(args) == 1 {
			query = args[0]
		}
		records := state.FilterRecords(ds, query)
		if listLimit > 0 && len(records) > listLimit {
			records = records[:listLimit]
		}

		out := cmd.OutOrStdout()
		if listJSON {
			summaries := make([]monster.Summary, 0, len(records))
			for _, rec := range records {
				summaries = append(summaries, rec.Summary())
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"monsters": summaries})
		}

		if len(records) == 0 {
			fmt.Fprintln(out, "No monsters found")
			return nil
		}

		for _, rec := range records {
			fmt.Fprintf(out, "%5d  %-15s %-15s %s\n", rec.ID, rec.Name.Name, rec.BasicInfo.Type, elementNames(rec.Elements))
		}
		return nil
	},
}

func elementNames(elements []monster.Element) string {
	if len(elements) == 0 {
		return "-"
	}
	names := make([]string, len(elements))
	for i, e := range elements {
		names[i] = e.String()
	}
	return strings.Join(names, ", ")
}

func init() {
	RootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of monsters to print (0 for all)")
}
