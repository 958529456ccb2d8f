package tools

import (
	"github.com/fletera/fletera-mcp/internal/service"
)

// Registry returns all tools available for the configured services. Backend
// tools are omitted when no backend service is configured.
func Registry(nws *service.NWSService, backend *service.BackendService) []Tool {
	ts := []Tool{
		AlertsTool(nws),
		ForecastTool(nws),
		SendEmailTool(),
	}
	if backend != nil {
		ts = append(ts,
			TransportsTool(backend),
			LiquidationsTool(backend),
		)
	}
	return ts
}
