package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un viaje.
const (
	TripStatusDone       = "DONE"        // descargado en destino
	TripStatusInProgress = "IN_PROGRESS" // en el camino
	TripStatusStopped    = "STOPPED"     // detenido (retén, avería, etc.)
)

// ValidTripStatus indica si s es uno de los estados conocidos.
func ValidTripStatus(s string) bool {
	switch s {
	case TripStatusDone, TripStatusInProgress, TripStatusStopped:
		return true
	}
	return false
}

// TransportRecord representa un viaje de camión: una carga con destino a un
// sitio de descarga. Date es la fecha de descarga y puede venir vacía en
// registros antiguos; solo se usa para el corte "llegó ayer".
type TransportRecord struct {
	ID            string
	UnloadingSite string
	GoodsType     string
	Weight        decimal.Decimal // toneladas
	Status        string
	Date          *time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
