package tools_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fletera/fletera-mcp/internal/tools"
)

func TestSendEmailConfirmation(t *testing.T) {
	tool := tools.SendEmailTool()
	res, err := tool.Handler(context.Background(), callRequest(map[string]any{
		"to":      "ops@fletera.example",
		"subject": "Liquidación enero",
		"body":    "Adjunto el resumen.",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, res))
	}
	got := resultText(t, res)

	for _, want := range []string{
		"Correo enviado correctamente.",
		"Para: ops@fletera.example",
		"Asunto: Liquidación enero",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("confirmation missing %q:\n%s", want, got)
		}
	}

	lines := strings.Split(got, "\n")
	last := lines[len(lines)-1]
	ts := strings.TrimPrefix(last, "Fecha: ")
	if ts == last {
		t.Fatalf("last line %q should carry the timestamp", last)
	}
	if _, err := time.ParseInLocation("2006-01-02 15:04:05", ts, time.Local); err != nil {
		t.Errorf("timestamp %q does not parse: %v", ts, err)
	}
}

func TestSendEmailMissingRecipient(t *testing.T) {
	tool := tools.SendEmailTool()
	res, err := tool.Handler(context.Background(), callRequest(map[string]any{
		"subject": "sin destinatario",
		"body":    "x",
	}))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !res.IsError {
		t.Error("expected error result when to is missing")
	}
}
