package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/fletera/fletera-mcp/internal/models"
	"github.com/fletera/fletera-mcp/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

const liquidationDelimiter = "\n=====\n"

// LiquidationsTool lists the recent liquidation batches, optionally
// restricted to a single transport
func LiquidationsTool(backend *service.BackendService) Tool {
	return Tool{
		Definition: mcp.NewTool("get_recent_liquidations",
			mcp.WithDescription("Obtener las liquidaciones recientes, opcionalmente filtradas por transporte."),
			mcp.WithNumber("transport_id",
				mcp.Description("ID del transporte para filtrar (omitir para todas)"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			transportID := req.GetInt("transport_id", 0)

			liquidations, err := backend.RecentLiquidations(ctx)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if transportID > 0 {
				matched := liquidations[:0]
				for _, l := range liquidations {
					if l.IDTransport == int64(transportID) {
						matched = append(matched, l)
					}
				}
				liquidations = matched
			}

			if len(liquidations) == 0 {
				return mcp.NewToolResultText("No hay liquidaciones recientes."), nil
			}

			blocks := make([]string, 0, len(liquidations))
			for _, l := range liquidations {
				blocks = append(blocks, formatLiquidation(l))
			}
			return mcp.NewToolResultText(strings.Join(blocks, liquidationDelimiter)), nil
		},
	}
}

func formatLiquidation(l models.Liquidation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lote: %d\n", l.LiquidationBatchID)
	fmt.Fprintf(&b, "Transporte: %s\n", l.TransportName)
	fmt.Fprintf(&b, "Subtotal: %.2f %s\n", l.Subtotal, l.Currency)
	fmt.Fprintf(&b, "Total: %.2f %s\n", l.Total, l.Currency)
	fmt.Fprintf(&b, "Estado: %s\n", l.Status)
	fmt.Fprintf(&b, "Fecha: %s", l.LiquidationDate)
	if len(l.Details) > 0 {
		b.WriteString("\nDetalles:")
		for _, d := range l.Details {
			fmt.Fprintf(&b, "\nRuta: %s | Monto: %.2f | Regla: %s",
				d.RouteName, d.AppliedAmount, d.CalculationDetails)
		}
	}
	return b.String()
}
