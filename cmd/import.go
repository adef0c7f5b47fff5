package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/monsterdex/monsterdex/internal/logging"
	"github.com/monsterdex/monsterdex/internal/monster"
	"github.com/monsterdex/monsterdex/internal/paths"
	"github.com/monsterdex/monsterdex/internal/store"
)

var importDB string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON or YAML dataset into SQLite",
	Long: `Validate a JSON or YAML dataset and write it into a SQLite database,
replacing whatever the database held before.

The default database lives in the data directory. Point data.file in the
config (or --data) at it to browse the imported monsters:

  monsterdex import monsters.yaml
  monsterdex --data ~/.local/share/monsterdex/monsters.db

Exit codes:
  0: Success
  1: Error (unreadable file, invalid dataset, database failure)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		records, err := monster.ReadRecordsFile(src)
		if err != nil {
			return err
		}
		// Reject empty sets and duplicate ids before touching the database.
		if _, err := monster.New(records); err != nil {
			return fmt.Errorf("invalid dataset %s: %w", src, err)
		}

		db := importDB
		if db == "" {
			if _, err := paths.EnsureDataDir(); err != nil {
				return err
			}
			db = paths.GetDatabasePath()
		}

		st, err := store.Open(db)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Replace(cmd.Context(), records, src); err != nil {
			return err
		}

		logging.Logger.Info("dataset imported", "source", src, "db", db, "monsters", len(records))
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d monsters into %s\n", len(records), db)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&importDB, "db", "", "database to write (default $XDG_DATA_HOME/monsterdex/monsters.db)")
}
