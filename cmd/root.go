package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monsterdex/monsterdex/internal/config"
	"github.com/monsterdex/monsterdex/internal/logging"
	"github.com/monsterdex/monsterdex/internal/paths"
	"github.com/monsterdex/monsterdex/internal/telemetry"
	"github.com/monsterdex/monsterdex/internal/version"
)

// Exit codes
const (
	exitError     = 1
	exitNoDataset = 2
)

var (
	configPath string
	dataPath   string
	iconsPath  string

	cfg   config.Config
	ready bool
)

// skipTelemetry lists commands that handle their own telemetry or shouldn't be tracked
var skipTelemetry = map[string]bool{
	"monsterdex": true, // runs the tui
	"mcp":        true, // has own telemetry
	"tui":        true, // has own telemetry
	"completion": true, // shell completion
	"__complete": true, // internal completion
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "monsterdex",
	Short: "Terminal field guide to monsters",
	Long: `Browse monsters from the terminal: weaknesses, drops, habitats and quests.

Run without a subcommand to open the interactive browser. The list, show and
drops commands print the same data for scripts, and mcp serves it to AI
agents.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(); err != nil {
			return err
		}

		name := cmd.Name()
		if skipTelemetry[name] {
			return nil
		}
		if parent := cmd.Parent(); parent != nil && parent.Name() == "completion" {
			return nil
		}
		telemetry.CLICommandStart(name)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		telemetry.CLICommandEnd()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tuiCmd.RunE(cmd, args)
	},
}

// setup loads the config file, applies flag overrides and starts logging and
// telemetry. Safe to call more than once.
func setup() error {
	if ready {
		return nil
	}

	path := configPath
	if path == "" {
		path = paths.GetConfigPath()
	}
	loaded, err := config.Load(config.Expand(path))
	if err != nil {
		return err
	}
	if dataPath != "" {
		loaded.Data.File = config.Expand(dataPath)
	}
	if iconsPath != "" {
		loaded.Data.IconsDir = config.Expand(iconsPath)
	}

	level, err := logging.ParseLevel(loaded.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	if err := logging.Init(loaded.Log.File, level); err != nil {
		return err
	}
	telemetry.Init(loaded.Telemetry)

	cfg = loaded
	ready = true
	logging.Logger.Debug("config loaded", "path", path, "data", cfg.Data.File, "icons", cfg.Data.IconsDir)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	telemetry.Flush()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status. A dataset that cannot
// be loaded is reported separately from other failures.
func exitCode(err error) int {
	var le *loadError
	if errors.As(err, &le) {
		return exitNoDataset
	}
	return exitError
}

func init() {
	RootCmd.Version = version.Version

	// Don't show usage on errors - only show it when explicitly requested
	RootCmd.SilenceUsage = true

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/monsterdex/config.toml)")
	flags.StringVar(&dataPath, "data", "", "dataset file: .json, .yaml or a .db imported with 'monsterdex import'")
	flags.StringVar(&iconsPath, "icons", "", "directory of monster icon art")
}
