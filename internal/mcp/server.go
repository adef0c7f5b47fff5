// Package mcp provides an MCP (Model Context Protocol) server exposing the
// monster dataset to assistants.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/monsterdex/monsterdex/internal/logging"
	"github.com/monsterdex/monsterdex/internal/monster"
	"github.com/monsterdex/monsterdex/internal/state"
	"github.com/monsterdex/monsterdex/internal/telemetry"
)

// Server wraps the MCP server with read-only access to one dataset.
type Server struct {
	mcpServer *server.MCPServer
	dataset   *monster.Dataset
}

// NewServer creates a new MCP server over ds.
func NewServer(version string, ds *monster.Dataset) *Server {
	s := &Server{dataset: ds}

	s.mcpServer = server.NewMCPServer(
		"monsterdex",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.registerTools()

	return s
}

// Serve starts the MCP server on stdio.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

// ListToolNames returns the registered tool names, sorted.
func (s *Server) ListToolNames() []string {
	var names []string
	for name := range s.mcpServer.ListTools() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CallTool invokes a registered tool directly, bypassing the transport.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	tool := s.mcpServer.GetTool(name)
	if tool == nil {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return tool.Handler(ctx, req)
}

func (s *Server) registerTools() {
	s.registerList()
	s.registerShow()
	s.registerDrops()
}

// jsonResult marshals a result to JSON and returns a tool result.
func jsonResult(result any) (*mcp.CallToolResult, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

// lookup resolves the required "monster" argument.
func (s *Server) lookup(request mcp.CallToolRequest) (*monster.Record, *mcp.CallToolResult) {
	ref, err := request.RequireString("monster")
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	rec, ok := s.dataset.Lookup(ref)
	if !ok {
		return nil, mcp.NewToolResultError(fmt.Sprintf("monster not found: %s", ref))
	}
	return rec, nil
}

func called(name string) {
	logging.Logger.Debug("mcp tool call", "tool", name)
	telemetry.MCPToolCall(name)
}

// registerList registers the monsterdex_list tool.
func (s *Server) registerList() {
	tool := mcp.NewTool("monsterdex_list",
		mcp.WithDescription("List monsters, optionally filtered by a case-insensitive name substring"),
		mcp.WithString("query",
			mcp.Description("Substring to match against monster names (default: all monsters)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of monsters to return (default: no limit)"),
		),
	)

	s.mcpServer.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called("monsterdex_list")
		query := request.GetString("query", "")
		limit := request.GetInt("limit", 0)

		records := state.FilterRecords(s.dataset, query)
		if limit > 0 && len(records) > limit {
			records = records[:limit]
		}

		summaries := make([]monster.Summary, 0, len(records))
		for _, rec := range records {
			summaries = append(summaries, rec.Summary())
		}

		return jsonResult(map[string]any{"monsters": summaries})
	})
}

// registerShow registers the monsterdex_show tool.
func (s *Server) registerShow() {
	tool := mcp.NewTool("monsterdex_show",
		mcp.WithDescription("Show the full profile of a monster: description, habitats, quests, weaknesses and drops"),
		mcp.WithString("monster",
			mcp.Required(),
			mcp.Description("Monster name, epithet or numeric id"),
		),
	)

	s.mcpServer.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called("monsterdex_show")
		rec, errResult := s.lookup(request)
		if errResult != nil {
			return errResult, nil
		}
		return jsonResult(rec)
	})
}

// registerDrops registers the monsterdex_drops tool.
func (s *Server) registerDrops() {
	tool := mcp.NewTool("monsterdex_drops",
		mcp.WithDescription("List the materials a monster drops for one rank"),
		mcp.WithString("monster",
			mcp.Required(),
			mcp.Description("Monster name, epithet or numeric id"),
		),
		mcp.WithString("rank",
			mcp.Description("low or high (default: low)"),
		),
		mcp.WithString("source",
			mcp.Description("target, broken_part, wound_destroy or carve (default: all sources)"),
		),
	)

	s.mcpServer.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called("monsterdex_drops")
		rec, errResult := s.lookup(request)
		if errResult != nil {
			return errResult, nil
		}

		rank, err := monster.ParseRank(request.GetString("rank", "low"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		sources := []monster.Source{monster.SourceTarget, monster.SourceBrokenPart, monster.SourceWoundDestroy, monster.SourceCarve}
		if name := request.GetString("source", ""); name != "" {
			source, err := monster.ParseSource(name)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			sources = []monster.Source{source}
		}

		tables := make([]monster.DropTable, 0, len(sources))
		for _, source := range sources {
			tables = append(tables, rec.Drops.Table(rank, source))
		}

		return jsonResult(map[string]any{
			"monster": rec.Name.Name,
			"drops":   tables,
		})
	})
}
