package cmd

import (
	"github.com/spf13/cobra"

	"github.com/monsterdex/monsterdex/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive browser",
	Long: `Launch the full-screen monster browser. This is also what runs when
monsterdex is called without a subcommand.

LAYOUT:
  ┌─ Monster ─────┬─ Basic Info ──────────────┬─ Search ──┐
  │ Rathalos  #1  ├─ Habitat ───┬─ Quests ────┼─ Monsters ┤
  ├─ Description ─┼─ Weakness ──┴─ Ailment ───┤ 1 Rathalos│
  │               ├─ Low Rank · Target ───────┤ 2 Rathian │
  └───────────────┴───────────────────────────┴───────────┘

KEYBINDINGS:

  Main menu:
    ↑/k ↓/j   Move highlight
    enter     Open screen
    q         Quit

  Monster screen:
    ↑/k ↓/j   Previous/next monster (wraps)
    /         Search by name (enter keeps the filter, esc clears it)
    4         Weapon/element hitzones
    $         Ailment/item weaknesses
    5         Drop source: target, broken part, wound destroy, carve
    %         Low/high rank drops
    J/K       Scroll description
    h/l       Habitat page
    n/N       Quest row
    w/W       Hitzone row
    m/M       Drop row
    y         Copy monster name
    ?         Show help overlay
    esc       Back to menu
    q         Quit

Example:
  monsterdex tui --data ~/monsters.yaml --icons ~/icons`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}
		return tui.Start(ds, cfg.Data.IconsDir)
	},
}

func init() {
	RootCmd.AddCommand(tuiCmd)
}
