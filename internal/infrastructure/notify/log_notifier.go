// Package notify adapta el puerto de notificaciones. La superficie real de
// toasts vive en el front; del lado del servidor el evento se registra
// estructurado para auditoría.
package notify

import (
	appbalance "github.com/jhoicas/Transporte-api/internal/application/balance"
	"github.com/jhoicas/Transporte-api/pkg/logger"
)

var _ appbalance.Notifier = (*LogNotifier)(nil)

// LogNotifier implementación de balance.Notifier sobre zerolog.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el adaptador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify registra el evento. Fire-and-forget: nunca retorna error ni bloquea
// el flujo de guardado.
func (n *LogNotifier) Notify(message, severity string) {
	switch severity {
	case appbalance.SeverityError:
		n.log.Warn().Str("severity", severity).Msg(message)
	default:
		n.log.Info().Str("severity", severity).Msg(message)
	}
}
