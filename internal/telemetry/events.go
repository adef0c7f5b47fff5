package telemetry

import "time"

// CLI

var cliCommandName string
var cliStartTime time.Time

func CLICommandStart(commandName string) {
	cliCommandName = commandName
	cliStartTime = time.Now()
}

func CLICommandEnd() {
	if cliCommandName == "" {
		return
	}
	durationMs := time.Since(cliStartTime).Milliseconds()
	send("cli:command_run", "command_name", cliCommandName, "duration_ms", durationMs)
}

// TUI

var tuiStartTime time.Time

func TUISessionStart(monsters int) {
	tuiStartTime = time.Now()
	send("tui:session_start", "monsters", monsters)
}

func TUISessionEnd() {
	durationMs := time.Since(tuiStartTime).Milliseconds()
	send("tui:session_end", "duration_ms", durationMs)
}

// TUIScreenOpen records a screen change, including unavailable screens.
func TUIScreenOpen(screen string) {
	send("tui:screen_open", "screen", screen)
}

func TUIActionExecute(actionName string) {
	send("tui:action_execute", "action_name", actionName)
}

// MCP

func MCPToolCall(tool string) {
	send("mcp:tool_call", "tool", tool)
}
