// Package balance contiene los casos de uso del reporte de saldos de fábrica
// y la sesión de edición de los saldos manuales.
package balance

import (
	"fmt"
	"time"

	"github.com/jhoicas/Transporte-api/internal/application/dto"
	"github.com/jhoicas/Transporte-api/internal/domain"
	domainbalance "github.com/jhoicas/Transporte-api/internal/domain/balance"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

// ReportUseCase arma el reporte de conciliación para un material.
//
// Carga las tres colecciones completas (son de escala operativa, no
// warehouse) y delega el cálculo en domainbalance.Aggregate. Cada consulta
// es un snapshot: no hay deltas ni caché.
type ReportUseCase struct {
	releaseRepo repository.ReleaseRepository
	recordRepo  repository.TransportRecordRepository
	balanceRepo repository.FactoryBalanceRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	releaseRepo repository.ReleaseRepository,
	recordRepo repository.TransportRecordRepository,
	balanceRepo repository.FactoryBalanceRepository,
) *ReportUseCase {
	return &ReportUseCase{
		releaseRepo: releaseRepo,
		recordRepo:  recordRepo,
		balanceRepo: balanceRepo,
	}
}

// GetReport genera el reporte para material ("soy" | "maize"). Si
// referenceDate es nil se usa ayer (el corte que el front recalculaba por
// montaje). Retorna domain.ErrUnknownMaterial para códigos fuera del set.
func (uc *ReportUseCase) GetReport(material string, referenceDate *time.Time) (*dto.BalanceReportResponse, error) {
	goodsLabel, ok := entity.GoodsLabel(material)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMaterial, material)
	}

	refDate := Yesterday(time.Now())
	if referenceDate != nil {
		refDate = *referenceDate
	}

	rows, err := uc.AggregateRows(goodsLabel, refDate)
	if err != nil {
		return nil, err
	}

	out := &dto.BalanceReportResponse{
		Material:      material,
		Goods:         goodsLabel,
		ReferenceDate: refDate.Format("2006-01-02"),
		GeneratedAt:   time.Now(),
		Rows:          make([]dto.SummaryRowResponse, 0, len(rows)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, toSummaryRowResponse(r))
	}
	return out, nil
}

// AggregateRows carga las tres colecciones y ejecuta la conciliación.
// Separado de GetReport para que el caso de uso de PDF reutilice las filas
// de dominio sin pasar por el DTO JSON.
func (uc *ReportUseCase) AggregateRows(goodsLabel string, referenceDate time.Time) ([]domainbalance.SummaryRow, error) {
	// Las tres consultas son independientes; se lanzan en paralelo como en
	// el dashboard de analítica.
	type releasesResult struct {
		items []*entity.Release
		err   error
	}
	type recordsResult struct {
		items []*entity.TransportRecord
		err   error
	}
	type balancesResult struct {
		items []*entity.FactoryBalance
		err   error
	}
	releasesCh := make(chan releasesResult, 1)
	recordsCh := make(chan recordsResult, 1)
	balancesCh := make(chan balancesResult, 1)

	go func() {
		items, err := uc.releaseRepo.List()
		releasesCh <- releasesResult{items, err}
	}()
	go func() {
		items, err := uc.recordRepo.List()
		recordsCh <- recordsResult{items, err}
	}()
	go func() {
		items, err := uc.balanceRepo.List()
		balancesCh <- balancesResult{items, err}
	}()

	releases := <-releasesCh
	records := <-recordsCh
	balances := <-balancesCh

	if releases.err != nil {
		return nil, fmt.Errorf("reporte: cargar releases: %w", releases.err)
	}
	if records.err != nil {
		return nil, fmt.Errorf("reporte: cargar viajes: %w", records.err)
	}
	if balances.err != nil {
		return nil, fmt.Errorf("reporte: cargar saldos manuales: %w", balances.err)
	}

	return domainbalance.Aggregate(releases.items, records.items, balances.items, goodsLabel, referenceDate), nil
}

// Yesterday devuelve la porción de fecha del día anterior a now, en su misma
// zona horaria.
func Yesterday(now time.Time) time.Time {
	y := now.AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, y.Location())
}

func toSummaryRowResponse(r domainbalance.SummaryRow) dto.SummaryRowResponse {
	return dto.SummaryRowResponse{
		Site:          r.Site,
		SiteKey:       r.SiteKey,
		Goods:         r.Goods,
		Opening:       r.Opening,
		Consumption:   r.Consumption,
		TotalReleased: r.TotalReleased,
		Arrived:       r.Arrived,
		ArrivedOnDate: r.ArrivedOnDate,
		InTransit:     r.InTransit,
		Stopped:       r.Stopped,
		PortRemaining: r.PortRemaining,
		CurrentStock:  r.CurrentStock,
	}
}
