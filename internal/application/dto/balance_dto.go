package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryRowResponse una fila del reporte de saldos.
// decimal.Decimal serializa como string JSON, que es lo que el front espera
// para montos en toneladas con 3 decimales.
type SummaryRowResponse struct {
	Site          string          `json:"site"`
	SiteKey       string          `json:"site_key"`
	Goods         string          `json:"goods"`
	Opening       decimal.Decimal `json:"opening"`
	Consumption   decimal.Decimal `json:"consumption"`
	TotalReleased decimal.Decimal `json:"total_released"`
	Arrived       decimal.Decimal `json:"arrived"`
	ArrivedOnDate decimal.Decimal `json:"arrived_on_date"`
	InTransit     decimal.Decimal `json:"in_transit"`
	Stopped       decimal.Decimal `json:"stopped"`
	PortRemaining decimal.Decimal `json:"port_remaining"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
}

// BalanceReportResponse el reporte completo para un material.
type BalanceReportResponse struct {
	Material      string               `json:"material"` // soy | maize
	Goods         string               `json:"goods"`    // label árabe usado en el match
	ReferenceDate string               `json:"reference_date"`
	GeneratedAt   time.Time            `json:"generated_at"`
	Rows          []SummaryRowResponse `json:"rows"`
}

// UpsertBalanceRequest captura manual de apertura/consumo para un par
// (sitio, material). Los numéricos ausentes entran como decimal cero.
type UpsertBalanceRequest struct {
	SiteName          string          `json:"site_name"`
	Material          string          `json:"material"` // soy | maize
	OpeningBalance    decimal.Decimal `json:"opening_balance"`
	ManualConsumption decimal.Decimal `json:"manual_consumption"`
}
