// Command fletera-mcp starts the MCP tool server, either over stdio for a
// local MCP host or as a streamable HTTP endpoint.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fletera/fletera-mcp/internal/config"
	"github.com/fletera/fletera-mcp/internal/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	setupLogger(cfg)

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case config.ModeHTTP:
		log.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("starting MCP HTTP server")
		err = srv.Run(ctx)
	default:
		log.Info().Msg("starting MCP stdio server")
		err = srv.ServeStdio(ctx)
	}
	if err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// setupLogger configures the global zerolog logger. Logs always go to
// stderr so stdio mode keeps stdout clean for the protocol.
func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
