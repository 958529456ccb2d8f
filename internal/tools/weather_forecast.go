package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/fletera/fletera-mcp/internal/models"
	"github.com/fletera/fletera-mcp/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

const forecastDelimiter = "\n---\n"

// ForecastTool reports the NWS forecast for a coordinate pair
func ForecastTool(nws *service.NWSService) Tool {
	return Tool{
		Definition: mcp.NewTool("get_forecast",
			mcp.WithDescription("Get the weather forecast for a location."),
			mcp.WithNumber("latitude",
				mcp.Required(),
				mcp.Description("Latitude of the location"),
			),
			mcp.WithNumber("longitude",
				mcp.Required(),
				mcp.Description("Longitude of the location"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			latitude, err := req.RequireFloat("latitude")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			longitude, err := req.RequireFloat("longitude")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			periods, err := nws.Forecast(ctx, latitude, longitude)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if len(periods) == 0 {
				return mcp.NewToolResultText("No forecast available for this location."), nil
			}

			blocks := make([]string, 0, len(periods))
			for _, p := range periods {
				blocks = append(blocks, formatPeriod(p))
			}
			return mcp.NewToolResultText(strings.Join(blocks, forecastDelimiter)), nil
		},
	}
}

func formatPeriod(p models.ForecastPeriod) string {
	return fmt.Sprintf(`%s:
Temperature: %d°%s
Wind: %s %s
Forecast: %s`,
		p.Name,
		p.Temperature,
		orDefault(p.TemperatureUnit, "F"),
		p.WindSpeed,
		p.WindDirection,
		p.DetailedForecast,
	)
}
