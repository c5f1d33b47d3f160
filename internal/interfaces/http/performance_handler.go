package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/mueblesandina/erp-api/internal/infrastructure/cache"
	"github.com/mueblesandina/erp-api/internal/observability/metrics"
)

// PerformanceHandler expone estadísticas de cache y métricas Prometheus.
type PerformanceHandler struct {
	cache *cache.Cache
}

// NewPerformanceHandler construye el handler. cache puede ser nil.
func NewPerformanceHandler(c *cache.Cache) *PerformanceHandler {
	return &PerformanceHandler{cache: c}
}

// CacheStats godoc
// @Summary      Estadísticas del cache Redis
// @Tags         performance
// @Produce      json
// @Success      200  {object}  cache.Stats
// @Router       /api/performance/cache-stats [get]
func (h *PerformanceHandler) CacheStats(c *fiber.Ctx) error {
	return c.JSON(h.cache.Snapshot(c.UserContext()))
}

// Metrics devuelve el handler de exposición Prometheus adaptado a Fiber.
func (h *PerformanceHandler) Metrics() fiber.Handler {
	return adaptor.HTTPHandler(metrics.Handler())
}
