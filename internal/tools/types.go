// Package tools defines the MCP tools exposed by the server. Each tool is a
// stateless fetch → filter → format pipeline over one of the injected
// services, returning a plain-text result.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool pairs an MCP tool definition with the handler that executes it.
// Constructors close over the service they need, so a Tool carries no
// state of its own between invocations.
type Tool struct {
	Definition mcp.Tool
	Handler    server.ToolHandlerFunc
}
