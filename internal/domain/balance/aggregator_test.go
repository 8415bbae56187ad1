package balance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Transporte-api/internal/domain/balance"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const goodsSoy = "صويا"

var refDate = time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func release(site string, qty float64) *entity.Release {
	return &entity.Release{SiteName: site, GoodsType: "فول " + goodsSoy, TotalQuantity: dec(qty)}
}

func trip(site, status string, weight float64, date *time.Time) *entity.TransportRecord {
	return &entity.TransportRecord{
		UnloadingSite: site,
		GoodsType:     goodsSoy,
		Weight:        dec(weight),
		Status:        status,
		Date:          date,
	}
}

func manual(site string, opening, consumption float64) *entity.FactoryBalance {
	return &entity.FactoryBalance{
		SiteName:          site,
		GoodsType:         goodsSoy,
		OpeningBalance:    dec(opening),
		ManualConsumption: dec(consumption),
	}
}

func findRow(t *testing.T, rows []balance.SummaryRow, siteKey string) balance.SummaryRow {
	t.Helper()
	for _, r := range rows {
		if r.SiteKey == siteKey {
			return r
		}
	}
	require.Failf(t, "fila no encontrada", "no hay fila para el sitio %q", siteKey)
	return balance.SummaryRow{}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de la conciliación
// ──────────────────────────────────────────────────────────────────────────────

// Escenario base: un إفراج de 100 y un viaje DONE de 40 con fecha = referencia.
func TestAggregate_EscenarioBase(t *testing.T) {
	d := refDate
	rows := balance.Aggregate(
		[]*entity.Release{release("Factory A ", 100)},
		[]*entity.TransportRecord{trip("Factory A", entity.TripStatusDone, 40, &d)},
		nil,
		goodsSoy, refDate,
	)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "Factory A", r.Site, "el nombre visible prefiere la escritura del release, recortada")
	assert.True(t, dec(100).Equal(r.TotalReleased))
	assert.True(t, dec(40).Equal(r.Arrived))
	assert.True(t, decimal.Zero.Equal(r.InTransit))
	assert.True(t, dec(60).Equal(r.PortRemaining), "portRemaining = 100−40−0−0")
	assert.True(t, dec(40).Equal(r.ArrivedOnDate))
	assert.True(t, dec(40).Equal(r.CurrentStock), "stock = (0+40)−0")
}

// Mismo escenario más un saldo manual: apertura 10, consumo 5.
func TestAggregate_ConSaldoManual(t *testing.T) {
	d := refDate
	rows := balance.Aggregate(
		[]*entity.Release{release("Factory A", 100)},
		[]*entity.TransportRecord{trip("Factory A", entity.TripStatusDone, 40, &d)},
		[]*entity.FactoryBalance{manual("Factory A", 10, 5)},
		goodsSoy, refDate,
	)
	require.Len(t, rows, 1)
	assert.True(t, dec(45).Equal(rows[0].CurrentStock), "stock = (10+40)−5")
}

// Un viaje STOPPED descuenta del metraje pendiente en puerto.
func TestAggregate_ViajeDetenidoDescuentaDelPuerto(t *testing.T) {
	d := refDate
	rows := balance.Aggregate(
		[]*entity.Release{release("Factory A", 100)},
		[]*entity.TransportRecord{
			trip("Factory A", entity.TripStatusDone, 40, &d),
			trip("Factory A", entity.TripStatusStopped, 20, nil),
		},
		nil,
		goodsSoy, refDate,
	)
	require.Len(t, rows, 1)
	assert.True(t, dec(40).Equal(rows[0].PortRemaining), "portRemaining = 100−40−0−20")
	assert.True(t, dec(20).Equal(rows[0].Stopped))
}

// Sin registros que hagan match, el par (sitio, mercancía) no aparece.
func TestAggregate_SinActividadNoEmiteFila(t *testing.T) {
	rows := balance.Aggregate(
		[]*entity.Release{{SiteName: "Factory B", GoodsType: "ذرة", TotalQuantity: dec(50)}},
		nil, nil,
		goodsSoy, refDate,
	)
	assert.Empty(t, rows, "actividad solo de ذرة no debe producir filas de صويا")
}

// Sobre-embarque: más descargado+en camino que lo autorizado → negativo visible.
func TestAggregate_PortRemainingNegativoSeMuestra(t *testing.T) {
	rows := balance.Aggregate(
		[]*entity.Release{release("Factory A", 50)},
		[]*entity.TransportRecord{
			trip("Factory A", entity.TripStatusDone, 60, nil),
			trip("Factory A", entity.TripStatusInProgress, 30, nil),
		},
		nil,
		goodsSoy, refDate,
	)
	require.Len(t, rows, 1)
	assert.True(t, dec(-40).Equal(rows[0].PortRemaining), "50−60−30 = −40, sin recorte")
}

// Consumo mayor que apertura+llegadas → stock negativo visible (déficit).
func TestAggregate_StockNegativoSeMuestra(t *testing.T) {
	rows := balance.Aggregate(
		nil, nil,
		[]*entity.FactoryBalance{manual("Factory A", 10, 25)},
		goodsSoy, refDate,
	)
	require.Len(t, rows, 1)
	assert.True(t, dec(-15).Equal(rows[0].CurrentStock))
}

// La supresión por epsilon: |stock| <= 0.001 con todo lo demás en cero no sale.
func TestAggregate_EpsilonSuprimeResiduos(t *testing.T) {
	rows := balance.Aggregate(
		nil, nil,
		[]*entity.FactoryBalance{manual("Factory A", 0, 0.0005)},
		goodsSoy, refDate,
	)
	assert.Empty(t, rows, "un residuo de ±0.0005 no es actividad")

	rows = balance.Aggregate(
		nil, nil,
		[]*entity.FactoryBalance{manual("Factory A", 0, 0.002)},
		goodsSoy, refDate,
	)
	require.Len(t, rows, 1, "un déficit de 0.002 sí supera el epsilon")
	assert.True(t, dec(-0.002).Equal(rows[0].CurrentStock))
}

// Variantes de alef y espacios colapsan a una sola fila con cantidades sumadas.
func TestAggregate_VariantesDeSitioSeFusionan(t *testing.T) {
	releases := []*entity.Release{
		{SiteName: "مصنع أحمد", GoodsType: goodsSoy, TotalQuantity: dec(100)},
		{SiteName: " مصنع  احمد ", GoodsType: goodsSoy, TotalQuantity: dec(50)},
	}
	records := []*entity.TransportRecord{
		trip("مصنع آحمد", entity.TripStatusDone, 30, nil),
	}
	rows := balance.Aggregate(releases, records, nil, goodsSoy, refDate)
	require.Len(t, rows, 1, "las tres escrituras son el mismo sitio normalizado")

	r := rows[0]
	assert.Equal(t, "مصنع احمد", r.SiteKey)
	assert.Equal(t, "مصنع أحمد", r.Site, "se muestra la primera escritura original del release")
	assert.True(t, dec(150).Equal(r.TotalReleased), "100+50, no duplicado")
	assert.True(t, dec(30).Equal(r.Arrived))
}

// El corte "llegó ayer" compara solo la porción de fecha, no la hora.
func TestAggregate_FechaIgnoraLaHora(t *testing.T) {
	sameDayEvening := time.Date(2026, 2, 10, 21, 45, 0, 0, time.UTC)
	dayBefore := time.Date(2026, 2, 9, 23, 59, 0, 0, time.UTC)
	rows := balance.Aggregate(
		nil,
		[]*entity.TransportRecord{
			trip("Factory A", entity.TripStatusDone, 40, &sameDayEvening),
			trip("Factory A", entity.TripStatusDone, 25, &dayBefore),
		},
		nil,
		goodsSoy, refDate,
	)
	require.Len(t, rows, 1)
	assert.True(t, dec(65).Equal(rows[0].Arrived), "el acumulado suma ambos viajes")
	assert.True(t, dec(40).Equal(rows[0].ArrivedOnDate), "solo el viaje del día de referencia")
}

// Viajes sin fecha cuentan en el acumulado pero nunca en el corte del día.
func TestAggregate_ViajeSinFechaNoEntraEnElCorte(t *testing.T) {
	rows := balance.Aggregate(
		nil,
		[]*entity.TransportRecord{trip("Factory A", entity.TripStatusDone, 40, nil)},
		nil,
		goodsSoy, refDate,
	)
	require.Len(t, rows, 1)
	assert.True(t, dec(40).Equal(rows[0].Arrived))
	assert.True(t, decimal.Zero.Equal(rows[0].ArrivedOnDate))
	assert.True(t, decimal.Zero.Equal(rows[0].CurrentStock))
}

// Si varios saldos manuales hacen match, gana el primero de la colección.
// El duplicado usa otra escritura (espacios, hamza) que normaliza a la misma
// clave; el orden de la colección es la regla de desempate.
func TestAggregate_PrimerSaldoManualGana(t *testing.T) {
	rows := balance.Aggregate(
		nil, nil,
		[]*entity.FactoryBalance{
			manual("Factory A", 10, 2),
			manual(" Factory   A ", 99, 99), // duplicado tardío: se ignora
			manual("مصنع أحمد", 7, 3),
			manual("مصنع احمد", 88, 88), // variante de hamza del anterior
		},
		goodsSoy, refDate,
	)
	require.Len(t, rows, 2, "cada par de escrituras es un solo sitio normalizado")

	r := findRow(t, rows, "Factory A")
	assert.True(t, dec(10).Equal(r.Opening), "gana la apertura del primer registro")
	assert.True(t, dec(2).Equal(r.Consumption))

	r = findRow(t, rows, "مصنع احمد")
	assert.True(t, dec(7).Equal(r.Opening))
	assert.True(t, dec(3).Equal(r.Consumption))
}

// Filas ordenadas ascendentemente por nombre visible.
func TestAggregate_OrdenPorNombreDeSitio(t *testing.T) {
	releases := []*entity.Release{
		release("جيزة", 10),
		release("اسكندرية", 10),
		release("طنطا", 10),
	}
	rows := balance.Aggregate(releases, nil, nil, goodsSoy, refDate)
	require.Len(t, rows, 3)
	assert.Equal(t, "اسكندرية", rows[0].Site)
	assert.Equal(t, "جيزة", rows[1].Site)
	assert.Equal(t, "طنطا", rows[2].Site)
}

// Label vacío no es comodín: no hace match con nada.
func TestAggregate_LabelVacioNoEmiteNada(t *testing.T) {
	rows := balance.Aggregate(
		[]*entity.Release{release("Factory A", 100)},
		nil, nil,
		"", refDate,
	)
	assert.Empty(t, rows)
}

// Sitios en blanco se descartan en vez de agruparse en una fila fantasma.
func TestAggregate_SitioEnBlancoSeDescarta(t *testing.T) {
	rows := balance.Aggregate(
		[]*entity.Release{release("   ", 100)},
		nil, nil,
		goodsSoy, refDate,
	)
	assert.Empty(t, rows)
}

// El match de mercancía es por substring del label.
func TestAggregate_MatchDeMercanciaPorSubstring(t *testing.T) {
	releases := []*entity.Release{
		{SiteName: "Factory A", GoodsType: "فول صويا مستورد", TotalQuantity: dec(80)},
		{SiteName: "Factory A", GoodsType: "ذرة صفراء", TotalQuantity: dec(999)},
	}
	rows := balance.Aggregate(releases, nil, nil, goodsSoy, refDate)
	require.Len(t, rows, 1)
	assert.True(t, dec(80).Equal(rows[0].TotalReleased), "la ذرة no cuenta para صويا")
}

// Identidad de portRemaining sobre una mezcla arbitraria de estados.
func TestAggregate_IdentidadPortRemaining(t *testing.T) {
	d := refDate
	rows := balance.Aggregate(
		[]*entity.Release{release("Factory A", 500)},
		[]*entity.TransportRecord{
			trip("Factory A", entity.TripStatusDone, 120, &d),
			trip("Factory A", entity.TripStatusDone, 80, nil),
			trip("Factory A", entity.TripStatusInProgress, 60, nil),
			trip("Factory A", entity.TripStatusStopped, 15, nil),
			trip("Factory A", entity.TripStatusStopped, 5, nil),
		},
		[]*entity.FactoryBalance{manual("Factory A", 30, 12)},
		goodsSoy, refDate,
	)
	require.Len(t, rows, 1)

	r := rows[0]
	expected := r.TotalReleased.Sub(r.Arrived).Sub(r.InTransit).Sub(r.Stopped)
	assert.True(t, expected.Equal(r.PortRemaining),
		"portRemaining debe ser exactamente totalReleased−arrived−inTransit−stopped")
	expectedStock := r.Opening.Add(r.ArrivedOnDate).Sub(r.Consumption)
	assert.True(t, expectedStock.Equal(r.CurrentStock),
		"currentStock debe ser exactamente (opening+arrivedOnDate)−consumption")
	assert.True(t, dec(220).Equal(r.PortRemaining), "500−200−60−20")
	assert.True(t, dec(138).Equal(r.CurrentStock), "(30+120)−12")
}
