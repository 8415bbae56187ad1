package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Release representa un إفراج: la autorización de embarcar una cantidad de
// mercancía desde un sitio (puerto/fábrica). SiteName y GoodsType son texto
// libre tal como llegan del sistema de autorizaciones; la correlación con las
// otras colecciones se hace por nombre normalizado y por substring del tipo
// de mercancía, no por clave foránea.
type Release struct {
	ID            string
	SiteName      string
	GoodsType     string
	TotalQuantity decimal.Decimal // toneladas, nunca negativa
	ReleaseDate   time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
