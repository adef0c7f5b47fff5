package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/monsterdex/monsterdex/internal/monster"
)

var (
	dropsJSON   bool
	dropsRank   string
	dropsSource string
)

var dropsCmd = &cobra.Command{
	Use:               "drops <monster>",
	Short:             "Show a monster's material drops",
	ValidArgsFunction: completeMonsterNames,
	Long: `Show the materials a monster drops for one rank, grouped by how they are
obtained: target rewards, broken parts, wound destroys and carves.

Examples:
  monsterdex drops rathalos
  monsterdex drops rathalos --rank high --source carve

Exit codes:
  0: Success
  1: Error (monster not found, unknown rank or source)
  2: Dataset could not be loaded`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, err := monster.ParseRank(dropsRank)
		if err != nil {
			return err
		}
		sources := []monster.Source{monster.SourceTarget, monster.SourceBrokenPart, monster.SourceWoundDestroy, monster.SourceCarve}
		if dropsSource != "" {
			source, err := monster.ParseSource(dropsSource)
			if err != nil {
				return err
			}
			sources = []monster.Source{source}
		}

		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}
		rec, err := lookupMonster(ds, args[0])
		if err != nil {
			return err
		}

		tables := make([]monster.DropTable, 0, len(sources))
		for _, source := range sources {
			tables = append(tables, rec.Drops.Table(rank, source))
		}

		out := cmd.OutOrStdout()
		if dropsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"monster": rec.Name.Name, "drops": tables})
		}

		fmt.Fprintf(out, "%s · %s\n", rec.Name.Name, rank)
		for i, source := range sources {
			fmt.Fprintf(out, "\n%s:\n", source)
			rows := tables[i].Rows
			if len(rows) == 0 {
				fmt.Fprintln(out, "  (none)")
				continue
			}
			for _, row := range rows {
				fmt.Fprintf(out, "  %-28s %s\n", row.Material, formatChances(row.Chances))
			}
		}
		return nil
	},
}

func formatChances(chances []monster.PartChance) string {
	parts := make([]string, 0, len(chances))
	for _, c := range chances {
		if c.Part == "" {
			parts = append(parts, fmt.Sprintf("%d%%", c.Percentage))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d%%", c.Part, c.Percentage))
	}
	return strings.Join(parts, ", ")
}

func init() {
	RootCmd.AddCommand(dropsCmd)
	dropsCmd.Flags().BoolVar(&dropsJSON, "json", false, "Output in JSON format")
	dropsCmd.Flags().StringVar(&dropsRank, "rank", "low", "Rank: low or high")
	dropsCmd.Flags().StringVar(&dropsSource, "source", "", "Only one source: target, broken_part, wound_destroy or carve")
}
