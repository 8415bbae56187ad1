package balance

import (
	"context"
	"time"

	domainbalance "github.com/jhoicas/Transporte-api/internal/domain/balance"
)

// Severidades de notificación (la superficie de toasts vive en el front; el
// backend solo emite el evento).
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// Notifier puerto fire-and-forget hacia la superficie de notificaciones.
type Notifier interface {
	Notify(message, severity string)
}

// ReportPDFGenerator puerto para la representación imprimible del reporte
// (A4 horizontal, como el botón "طباعة PDF" del front original).
type ReportPDFGenerator interface {
	GenerateReportPDF(
		ctx context.Context,
		goodsLabel string,
		referenceDate time.Time,
		generatedAt time.Time,
		rows []domainbalance.SummaryRow,
	) ([]byte, error)
}
