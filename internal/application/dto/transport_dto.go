package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReleaseRequest alta de un إفراج.
type CreateReleaseRequest struct {
	SiteName      string          `json:"site_name"`
	GoodsType     string          `json:"goods_type"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	ReleaseDate   *time.Time      `json:"release_date"`
}

// ReleaseResponse un إفراج persistido.
type ReleaseResponse struct {
	ID            string          `json:"id"`
	SiteName      string          `json:"site_name"`
	GoodsType     string          `json:"goods_type"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	ReleaseDate   time.Time       `json:"release_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateTransportRecordRequest alta de un viaje.
type CreateTransportRecordRequest struct {
	UnloadingSite string          `json:"unloading_site"`
	GoodsType     string          `json:"goods_type"`
	Weight        decimal.Decimal `json:"weight"`
	Status        string          `json:"status"` // DONE | IN_PROGRESS | STOPPED
	Date          *time.Time      `json:"date"`
}

// TransportRecordResponse un viaje persistido.
type TransportRecordResponse struct {
	ID            string          `json:"id"`
	UnloadingSite string          `json:"unloading_site"`
	GoodsType     string          `json:"goods_type"`
	Weight        decimal.Decimal `json:"weight"`
	Status        string          `json:"status"`
	Date          *time.Time      `json:"date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// UpdateTripStatusRequest transición de estado de un viaje.
type UpdateTripStatusRequest struct {
	Status string `json:"status"`
}
