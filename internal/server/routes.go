package server

import (
	"net/http"
	"time"

	"github.com/fletera/fletera-mcp/internal/handler"
	"github.com/fletera/fletera-mcp/internal/middleware"
	"github.com/fletera/fletera-mcp/internal/service"
	"github.com/fletera/fletera-mcp/internal/tools"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

const serverName = "fletera-mcp"
const serverVersion = "1.0.0"

// setupRoutes wires services, tools, and the MCP server, and returns the
// HTTP router hosting them.
func (s *Server) setupRoutes() (http.Handler, error) {
	cfg := s.cfg

	httpClient := &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second}

	// ─── Services ───────────────────────────────────────────────────────────────
	nwsSvc := service.NewNWSService(cfg.NWSBaseURL, cfg.NWSUserAgent, httpClient)

	var backendSvc *service.BackendService
	if cfg.BackendBaseURL != "" {
		backendSvc = service.NewBackendService(cfg.BackendBaseURL, cfg.BackendAPIKey, httpClient)
	} else {
		log.Warn().Msg("BACKEND_BASE_URL not set - transport and liquidation tools disabled")
	}

	// ─── MCP server and tools ───────────────────────────────────────────────────
	registry := tools.Registry(nwsSvc, backendSvc)

	s.mcp = mcpserver.NewMCPServer(serverName, serverVersion,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	for _, t := range registry {
		s.mcp.AddTool(t.Definition, t.Handler)
	}

	log.Info().
		Int("tools", len(registry)).
		Bool("backend_enabled", backendSvc != nil).
		Bool("auth_enabled", cfg.EnableAuth && len(cfg.APIKeys) > 0).
		Str("mode", cfg.Mode).
		Msg("service configuration")

	if cfg.EnableAuth && len(cfg.APIKeys) == 0 {
		log.Warn().Msg("WARNING: auth enabled but no API keys configured - all MCP requests will be rejected")
	}

	// ─── Handlers ────────────────────────────────────────────────────────────────
	healthH := handler.NewHealthHandler(nwsSvc, backendSvc)

	// ─── Router ──────────────────────────────────────────────────────────────────
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins)))
	r.Use(chiMiddleware.RealIP)

	// Public routes
	r.Get("/health", healthH.Health)
	r.Get("/", healthH.Health)

	// MCP endpoint behind rate limiting and optional auth
	streamable := mcpserver.NewStreamableHTTPServer(s.mcp)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, cfg.APIKeyHeader))
		if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
			r.Use(middleware.Auth(cfg.APIKeys, cfg.APIKeyHeader))
		}
		r.Handle("/mcp", streamable)
	})

	return r, nil
}
