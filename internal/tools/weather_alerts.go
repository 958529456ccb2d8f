package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/fletera/fletera-mcp/internal/models"
	"github.com/fletera/fletera-mcp/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

const alertDelimiter = "\n---\n"

// AlertsTool reports active NWS weather alerts for a US state
func AlertsTool(nws *service.NWSService) Tool {
	return Tool{
		Definition: mcp.NewTool("get_alerts",
			mcp.WithDescription("Get active weather alerts for a US state."),
			mcp.WithString("state",
				mcp.Required(),
				mcp.Description("Two-letter US state code (e.g. CA, NY)"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			state, err := req.RequireString("state")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			state = strings.ToUpper(strings.TrimSpace(state))
			if len(state) != 2 {
				return mcp.NewToolResultError(fmt.Sprintf("invalid state code %q: expected two letters", state)), nil
			}

			features, err := nws.ActiveAlerts(ctx, state)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if len(features) == 0 {
				return mcp.NewToolResultText("No active alerts for this state."), nil
			}

			blocks := make([]string, 0, len(features))
			for _, f := range features {
				blocks = append(blocks, formatAlert(f.Properties))
			}
			return mcp.NewToolResultText(strings.Join(blocks, alertDelimiter)), nil
		},
	}
}

func formatAlert(p models.AlertProperties) string {
	return fmt.Sprintf(`Event: %s
Area: %s
Severity: %s
Description: %s
Instructions: %s`,
		orDefault(p.Event, "Unknown"),
		orDefault(p.AreaDesc, "Unknown"),
		orDefault(p.Severity, "Unknown"),
		orDefault(p.Description, "No description available"),
		orDefault(p.Instruction, "No specific instructions provided"),
	)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
