package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
)

// PDFUseCase genera la versión imprimible del reporte de saldos (el "طباعة
// PDF (Landscape)" del front). Reutiliza la conciliación del ReportUseCase y
// delega el dibujo en el puerto ReportPDFGenerator.
type PDFUseCase struct {
	report    *ReportUseCase
	generator ReportPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(report *ReportUseCase, generator ReportPDFGenerator) *PDFUseCase {
	return &PDFUseCase{report: report, generator: generator}
}

// DownloadReportPDF genera el PDF del reporte para material y devuelve los
// bytes junto con un nombre de archivo sugerido.
func (uc *PDFUseCase) DownloadReportPDF(
	ctx context.Context,
	material string,
	referenceDate *time.Time,
) (pdfBytes []byte, filename string, err error) {
	goodsLabel, ok := entity.GoodsLabel(material)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", domain.ErrUnknownMaterial, material)
	}

	refDate := Yesterday(time.Now())
	if referenceDate != nil {
		refDate = *referenceDate
	}

	rows, err := uc.report.AggregateRows(goodsLabel, refDate)
	if err != nil {
		return nil, "", err
	}

	generatedAt := time.Now()
	pdfBytes, err = uc.generator.GenerateReportPDF(ctx, goodsLabel, refDate, generatedAt, rows)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("saldos_%s_%s.pdf", material, refDate.Format("2006-01-02"))
	return pdfBytes, filename, nil
}
