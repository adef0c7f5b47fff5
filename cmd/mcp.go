package cmd

import (
	"github.com/spf13/cobra"

	"github.com/monsterdex/monsterdex/internal/mcp"
	"github.com/monsterdex/monsterdex/internal/version"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server on stdio",
	Long: `Start an MCP (Model Context Protocol) server on stdio.

This lets AI agents search monsters and read their profiles and drop tables.
The server uses the same dataset as the other commands.

Example configuration for .mcp.json:
  {
    "mcpServers": {
      "monsterdex": {
        "command": "monsterdex",
        "args": ["mcp"]
      }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(cmd.Context())
		if err != nil {
			return err
		}
		server := mcp.NewServer(version.Version, ds)
		return server.Serve()
	},
}

func init() {
	RootCmd.AddCommand(mcpCmd)
}
