package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/fightcard/internal/usecase"
)

type route struct {
	pattern string
	handler http.Handler
}

func (h *Handler) routes(cfg RouterConfig) []route {
	routes := []route{
		{"GET /healthz", http.HandlerFunc(h.Healthz)},
		{"GET /v1/events", http.HandlerFunc(h.ListEvents)},
		{"GET /v1/events/{eventID}/card", http.HandlerFunc(h.GetEventCard)},
		{"GET /v1/events/{eventID}/fights/{fightKey}", http.HandlerFunc(h.GetFight)},
		{"POST /v1/admin/reload", RequireAdminToken(cfg.AdminToken, http.HandlerFunc(h.Reload))},
	}
	if cfg.SwaggerEnabled {
		routes = append(routes,
			route{"GET /openapi.yaml", http.HandlerFunc(h.OpenAPI)},
			route{"GET /docs", http.HandlerFunc(h.SwaggerUI)},
			route{"GET /docs/", http.HandlerFunc(h.SwaggerUI)},
		)
	}
	return routes
}

// notFound renders unmatched paths in the same envelope as every other error.
func notFound(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSpace(r.URL.Path)
	writeError(r.Context(), w, fmt.Errorf("%w: no route for %s %s", usecase.ErrNotFound, r.Method, path))
}
