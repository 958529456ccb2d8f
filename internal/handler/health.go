package handler

import (
	"net/http"

	"github.com/fletera/fletera-mcp/internal/models"
	"github.com/fletera/fletera-mcp/internal/service"
)

const version = "1.0.0"

// HealthHandler handles GET /health, reporting which services are wired
type HealthHandler struct {
	nws     *service.NWSService
	backend *service.BackendService
}

func NewHealthHandler(nws *service.NWSService, backend *service.BackendService) *HealthHandler {
	return &HealthHandler{nws: nws, backend: backend}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"server": "ok"}

	if h.nws != nil {
		checks["nws"] = "ok"
	} else {
		checks["nws"] = "disabled"
	}
	if h.backend != nil {
		checks["backend"] = "ok"
	} else {
		checks["backend"] = "disabled"
	}

	models.WriteJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Version: version,
		Checks:  checks,
	})
}
