package postgres

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/mueblesandina/erp-api/pkg/logger"
)

// Canal de notificaciones de cambios de datos. Los triggers de la DB hacen
// NOTIFY erp_changes con payload "tabla:operacion".
const changeChannel = "erp_changes"

// ChangeListener suscripción a eventos de cambio de la base. La entrega hacia
// los handlers está topada a la tasa configurada al construir el handle
// (eventos/segundo); los eventos que exceden el tope se descartan, igual que
// hace el cliente realtime del servicio alojado.
type ChangeListener struct {
	provider *HandleProvider
	limiter  *rate.Limiter
	log      *logger.Logger
	handlers []func(payload string)
}

// NewChangeListener construye el listener. eventsPerSecond <= 0 usa 1.
func NewChangeListener(provider *HandleProvider, eventsPerSecond int, log *logger.Logger) *ChangeListener {
	if eventsPerSecond <= 0 {
		eventsPerSecond = 1
	}
	return &ChangeListener{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(eventsPerSecond), eventsPerSecond),
		log:      log.Component("listener"),
	}
}

// OnChange registra un handler. Llamar antes de Run; no es seguro después.
func (l *ChangeListener) OnChange(fn func(payload string)) {
	l.handlers = append(l.handlers, fn)
}

// Run escucha notificaciones hasta que el contexto se cancele. Usa una
// conexión dedicada del pool; si la conexión se pierde, retorna el error y el
// llamador decide si reintenta.
func (l *ChangeListener) Run(ctx context.Context) error {
	pool, err := l.provider.Get(ctx)
	if err != nil {
		return fmt.Errorf("obtener handle: %w", err)
	}
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("adquirir conexión: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+changeChannel); err != nil {
		return fmt.Errorf("listen %s: %w", changeChannel, err)
	}
	l.log.Info().Str("channel", changeChannel).Msg("escuchando eventos de cambio")

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			// Cancelación del contexto: apagado normal, no un fallo.
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for notification: %w", err)
		}
		if !l.limiter.Allow() {
			l.log.Debug().Str("payload", n.Payload).Msg("evento descartado por tope de tasa")
			continue
		}
		for _, fn := range l.handlers {
			fn(n.Payload)
		}
	}
}
