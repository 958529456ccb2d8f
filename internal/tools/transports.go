package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/fletera/fletera-mcp/internal/models"
	"github.com/fletera/fletera-mcp/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

const transportDelimiter = "\n--\n"

// TransportsTool searches the registered transports in the backend
func TransportsTool(backend *service.BackendService) Tool {
	return Tool{
		Definition: mcp.NewTool("search_transports",
			mcp.WithDescription("Buscar transportes registrados en el sistema."),
			mcp.WithString("search",
				mcp.Description("Texto a buscar en código o nombre (vacío = sin filtro)"),
				mcp.DefaultString(""),
			),
			mcp.WithBoolean("only_active",
				mcp.Description("Incluir solo transportes activos"),
				mcp.DefaultBool(true),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			search := req.GetString("search", "")
			onlyActive := req.GetBool("only_active", true)

			transports, err := backend.SearchTransports(ctx, search)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if onlyActive {
				active := transports[:0]
				for _, t := range transports {
					if t.IsActive {
						active = append(active, t)
					}
				}
				transports = active
			}

			if len(transports) == 0 {
				return mcp.NewToolResultText("No se encontraron transportes."), nil
			}

			blocks := make([]string, 0, len(transports))
			for _, t := range transports {
				blocks = append(blocks, formatTransport(t))
			}
			return mcp.NewToolResultText(strings.Join(blocks, transportDelimiter)), nil
		},
	}
}

func formatTransport(t models.Transport) string {
	estado := "No"
	if t.IsActive {
		estado = "Sí"
	}
	return fmt.Sprintf(`Código: %s
Nombre: %s
Identificación fiscal: %s
Activo: %s`,
		t.Code, t.Name, t.TaxIdentification, estado)
}
