package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/monsterdex/monsterdex/internal/monster"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:               "show <monster>",
	Short:             "Show a monster's profile",
	ValidArgsFunction: completeMonsterNames,
	Long: `Show everything known about one monster: description, hazards, habitats,
quests, hitzones and ailment weaknesses. Drop tables are printed by the drops
command.

The monster can be given by name, epithet or numeric id, ignoring case:
  monsterdex show rathalos
  monsterdex show "king of the skies"
  monsterdex show 1

Exit codes:
  0: Success
  1: Error (monster not found)
  2: Dataset could not be loaded`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}
		rec, err := lookupMonster(ds, args[0])
		if err != nil {
			return err
		}

		if showJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		}

		printProfile(cmd.OutOrStdout(), rec)
		return nil
	},
}

func printProfile(w io.Writer, rec *monster.Record) {
	fmt.Fprintf(w, "%s (#%d)\n", rec.Name.Name, rec.ID)
	if rec.Name.Aka != "" {
		fmt.Fprintf(w, "  %s\n", rec.Name.Aka)
	}
	fmt.Fprintln(w)

	info := rec.BasicInfo
	fmt.Fprintf(w, "Type:          %s\n", info.Type)
	fmt.Fprintf(w, "Elements:      %s\n", elementNames(rec.Elements))
	fmt.Fprintf(w, "Roar:          %s\n", info.Roar)
	fmt.Fprintf(w, "Wind Pressure: %s\n", info.WindPressure)
	fmt.Fprintf(w, "Tremor:        %s\n", info.Tremor)
	if len(info.StatusEffects) > 0 {
		effects := make([]string, len(info.StatusEffects))
		for i, e := range info.StatusEffects {
			effects[i] = e.String()
		}
		fmt.Fprintf(w, "Status:        %s\n", strings.Join(effects, ", "))
	}

	if rec.Desc.Original != "" || len(rec.Desc.Abilities) > 0 {
		fmt.Fprintln(w, "\nDescription:")
		if rec.Desc.Original != "" {
			fmt.Fprintf(w, "  %s\n", rec.Desc.Original)
		}
		for _, a := range rec.Desc.Abilities {
			fmt.Fprintf(w, "  - %s\n", a)
		}
	}

	if len(rec.Habitats) > 0 {
		fmt.Fprintln(w, "\nHabitats:")
		for _, h := range rec.Habitats {
			fmt.Fprintf(w, "  %-20s start %s  visits %s  rests %d\n",
				h.Region, joinAreas(h.StartingArea), joinAreas(h.VisitedArea), h.RestingArea)
		}
	}

	if len(rec.Quests) > 0 {
		fmt.Fprintln(w, "\nQuests:")
		for _, q := range rec.Quests {
			fmt.Fprintf(w, "  %d★ %-12s %s\n", q.Level, q.Type, q.Name)
		}
	}

	if len(rec.Weaknesses.Damage) > 0 {
		fmt.Fprintln(w, "\nHitzones:")
		fmt.Fprintf(w, "  %-14s %4s %5s %4s %5s %5s %7s %4s %6s\n",
			"Part", "Cut", "Blunt", "Ammo", "Fire", "Water", "Thunder", "Ice", "Dragon")
		for _, d := range rec.Weaknesses.Damage {
			fmt.Fprintf(w, "  %-14s %4d %5d %4d %5d %5d %7d %4d %6d\n", d.Part,
				d.Weapon.Cut, d.Weapon.Blunt, d.Weapon.Ammo,
				d.Element.Fire, d.Element.Water, d.Element.Thunder, d.Element.Ice, d.Element.Dragon)
		}
	}

	table := rec.Weaknesses.Ailments
	fmt.Fprintln(w, "\nAilments:")
	for _, a := range table.Status {
		fmt.Fprintf(w, "  %-10s %s\n", a.Ailment, strings.Repeat("★", int(min(a.Effectiveness, 3))))
	}
	fmt.Fprintln(w, "\nItems:")
	for _, it := range table.Items {
		mark := "no"
		if it.Effective {
			mark = "yes"
		}
		fmt.Fprintf(w, "  %-10s %s\n", it.Item, mark)
	}
}

func joinAreas(areas []uint8) string {
	if len(areas) == 0 {
		return "-"
	}
	parts := make([]string, len(areas))
	for i, a := range areas {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, ",")
}

func init() {
	RootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
