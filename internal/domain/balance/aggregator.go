// Package balance contiene el cálculo central del reporte de saldos de
// fábrica: la conciliación entre إفراجات (autorizaciones), viajes y saldos
// manuales, agrupada por sitio normalizado.
//
// El cálculo es un servicio de dominio puro: recorre las tres colecciones en
// memoria, sin I/O y sin condiciones de error — los campos numéricos
// ausentes entran como decimal cero, nunca como fallo.
package balance

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/sitename"
)

// stockEpsilon suprime filas cuyo único valor distinto de cero es un residuo
// de redondeo en el stock actual (|stock| <= 0.001 toneladas).
var stockEpsilon = decimal.New(1, -3)

// SummaryRow es una fila del reporte: un par (sitio normalizado, mercancía)
// con sus cantidades derivadas. Es efímera — se recalcula completa en cada
// consulta, nunca se persiste.
type SummaryRow struct {
	Site    string // nombre para mostrar (primera variante original encontrada)
	SiteKey string // clave normalizada (sitename.Normalize)
	Goods   string // label de la mercancía seleccionada

	Opening     decimal.Decimal // saldo de apertura (manual)
	Consumption decimal.Decimal // consumo capturado a mano

	TotalReleased decimal.Decimal // suma de إفراجات
	Arrived       decimal.Decimal // acumulado descargado (viajes DONE)
	ArrivedOnDate decimal.Decimal // descargado en la fecha de referencia
	InTransit     decimal.Decimal // viajes IN_PROGRESS
	Stopped       decimal.Decimal // viajes STOPPED

	// PortRemaining = TotalReleased − Arrived − InTransit − Stopped.
	// Negativo significa sobre-embarque respecto a lo autorizado; se muestra,
	// no se recorta a cero.
	PortRemaining decimal.Decimal

	// CurrentStock = Opening + ArrivedOnDate − Consumption.
	// Negativo significa déficit en fábrica; también se muestra tal cual.
	CurrentStock decimal.Decimal
}

// Aggregate produce una fila por sitio normalizado para la mercancía
// goodsLabel, usando referenceDate (solo la porción de fecha) como corte de
// "llegó ayer". Las colecciones de entrada se tratan como snapshots de solo
// lectura. El resultado viene ordenado por nombre de sitio con colación
// árabe.
func Aggregate(
	releases []*entity.Release,
	records []*entity.TransportRecord,
	balances []*entity.FactoryBalance,
	goodsLabel string,
	referenceDate time.Time,
) []SummaryRow {
	if goodsLabel == "" {
		// Label vacío no hace match con nada (no es comodín).
		return nil
	}

	// ── 1. Sitios distintos en las tres colecciones ───────────────────────────
	// Un sitio puede descubrirse desde cualquiera de las tres. Por cada clave
	// guardamos la primera escritura original vista en cada colección; la
	// preferencia para mostrar es release > viaje > saldo manual.
	sites := make(map[string]struct{})
	fromRelease := make(map[string]string)
	fromRecord := make(map[string]string)
	fromBalance := make(map[string]string)

	discover := func(raw string, seen map[string]string) {
		key := sitename.Normalize(raw)
		if key == "" {
			return
		}
		sites[key] = struct{}{}
		if _, ok := seen[key]; !ok {
			seen[key] = strings.TrimSpace(raw)
		}
	}
	for _, r := range releases {
		discover(r.SiteName, fromRelease)
	}
	for _, r := range records {
		discover(r.UnloadingSite, fromRecord)
	}
	for _, b := range balances {
		discover(b.SiteName, fromBalance)
	}

	// ── 2. Una pasada de filtro-y-suma por sitio ──────────────────────────────
	rows := make([]SummaryRow, 0, len(sites))
	for key := range sites {
		row := SummaryRow{
			Site:    displayName(key, fromRelease, fromRecord, fromBalance),
			SiteKey: key,
			Goods:   goodsLabel,
		}

		if manual := firstManualMatch(balances, key, goodsLabel); manual != nil {
			row.Opening = manual.OpeningBalance
			row.Consumption = manual.ManualConsumption
		}

		for _, r := range releases {
			if sitename.Normalize(r.SiteName) == key && strings.Contains(r.GoodsType, goodsLabel) {
				row.TotalReleased = row.TotalReleased.Add(r.TotalQuantity)
			}
		}

		for _, r := range records {
			if sitename.Normalize(r.UnloadingSite) != key || !strings.Contains(r.GoodsType, goodsLabel) {
				continue
			}
			switch r.Status {
			case entity.TripStatusDone:
				row.Arrived = row.Arrived.Add(r.Weight)
				if r.Date != nil && sameDay(*r.Date, referenceDate) {
					row.ArrivedOnDate = row.ArrivedOnDate.Add(r.Weight)
				}
			case entity.TripStatusInProgress:
				row.InTransit = row.InTransit.Add(r.Weight)
			case entity.TripStatusStopped:
				row.Stopped = row.Stopped.Add(r.Weight)
			}
		}

		row.PortRemaining = row.TotalReleased.Sub(row.Arrived).Sub(row.InTransit).Sub(row.Stopped)
		row.CurrentStock = row.Opening.Add(row.ArrivedOnDate).Sub(row.Consumption)

		if emit(row) {
			rows = append(rows, row)
		}
	}

	// ── 3. Orden por nombre visible, colación árabe ───────────────────────────
	c := collate.New(language.Arabic)
	sort.SliceStable(rows, func(i, j int) bool {
		return c.CompareString(rows[i].Site, rows[j].Site) < 0
	})
	return rows
}

// emit aplica la regla de supresión de ruido: la fila sale solo si hay
// actividad real para el par (sitio, mercancía).
func emit(r SummaryRow) bool {
	return r.TotalReleased.IsPositive() ||
		r.Opening.IsPositive() ||
		r.Arrived.IsPositive() ||
		r.InTransit.IsPositive() ||
		r.CurrentStock.Abs().GreaterThan(stockEpsilon)
}

// firstManualMatch devuelve el primer saldo manual cuyo sitio normalizado
// coincide y cuyo tipo de mercancía contiene goodsLabel. "El primero gana"
// es la regla documentada: el orden de balances lo fija el repositorio
// (created_at ascendente).
func firstManualMatch(balances []*entity.FactoryBalance, key, goodsLabel string) *entity.FactoryBalance {
	for _, b := range balances {
		if sitename.Normalize(b.SiteName) == key && strings.Contains(b.GoodsType, goodsLabel) {
			return b
		}
	}
	return nil
}

// displayName resuelve el nombre a mostrar con preferencia ordenada:
// release > viaje > saldo manual > clave normalizada.
func displayName(key string, fromRelease, fromRecord, fromBalance map[string]string) string {
	if s, ok := fromRelease[key]; ok {
		return s
	}
	if s, ok := fromRecord[key]; ok {
		return s
	}
	if s, ok := fromBalance[key]; ok {
		return s
	}
	return key
}

// sameDay compara solo la porción de fecha, ignorando la hora.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
