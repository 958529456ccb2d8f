package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// SendEmailTool synthesizes a send confirmation without performing any I/O.
// The actual delivery is handled out of band; this tool only acknowledges
// the request with a timestamp.
func SendEmailTool() Tool {
	return Tool{
		Definition: mcp.NewTool("send_email",
			mcp.WithDescription("Enviar un correo electrónico (simulado: no realiza el envío)."),
			mcp.WithString("to",
				mcp.Required(),
				mcp.Description("Dirección del destinatario"),
			),
			mcp.WithString("subject",
				mcp.Required(),
				mcp.Description("Asunto del correo"),
			),
			mcp.WithString("body",
				mcp.Required(),
				mcp.Description("Cuerpo del mensaje"),
			),
		),
		Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			to, err := req.RequireString("to")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			subject, err := req.RequireString("subject")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if _, err := req.RequireString("body"); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			msg := fmt.Sprintf(`Correo enviado correctamente.
Para: %s
Asunto: %s
Fecha: %s`,
				to, subject, time.Now().Format("2006-01-02 15:04:05"))
			return mcp.NewToolResultText(msg), nil
		},
	}
}
