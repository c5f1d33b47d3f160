package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mueblesandina/erp-api/internal/observability/metrics"
)

// MetricsMiddleware registra método, ruta y duración de cada petición en los
// collectors Prometheus. Usa la ruta registrada (con :params) para no explotar
// la cardinalidad de labels.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		metrics.ObserveRequest(c.Method(), path, strconv.Itoa(status), time.Since(start).Seconds())
		return err
	}
}
