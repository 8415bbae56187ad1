package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FactoryBalance es el ajuste manual por (sitio, mercancía): saldo de
// apertura y consumo capturados a mano por el supervisor. Se espera a lo sumo
// un registro por par (sitio, mercancía); si existieran varios que hagan
// match, gana el primero por orden de creación (regla explícita, ver
// FactoryBalanceRepository).
type FactoryBalance struct {
	ID                string
	SiteName          string
	GoodsType         string
	OpeningBalance    decimal.Decimal
	ManualConsumption decimal.Decimal
	UpdatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
