// Package metrics expone los collectors Prometheus de la aplicación.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry agrupa los collectors propios de la aplicación.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "erp",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de peticiones HTTP atendidas.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "erp",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms a ~5s
		},
		[]string{"method", "path"},
	)

	storageErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "erp",
			Subsystem: "storage",
			Name:      "errors_total",
			Help:      "Errores reportados por la capa de almacenamiento.",
		},
		[]string{"resource"},
	)
)

func init() {
	Registry.MustRegister(httpRequests, httpDuration, storageErrors)
}

// ObserveRequest registra una petición atendida.
func ObserveRequest(method, path, status string, seconds float64) {
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(seconds)
}

// StorageError registra un fallo de la capa de almacenamiento para un recurso.
func StorageError(resource string) {
	storageErrors.WithLabelValues(resource).Inc()
}

// Handler devuelve el handler HTTP de exposición Prometheus sobre Registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
