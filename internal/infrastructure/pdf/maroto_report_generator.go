// Package pdf implementa la versión imprimible del reporte de saldos de
// fábrica (el "طباعة PDF (Landscape)" del front original).
//
// Layout de la página A4 horizontal:
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  HEADER: sistema + título del reporte + fecha de extracción          │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  TABLA: sitio | apertura | إفراج | descargado | en camino | detenido │
//	│         | puerto | llegó (fecha ref) | consumo | stock actual        │
//	│  ──────────────────────────────────────────────────────────────────  │
//	│  FOOTER: fórmulas de conciliación + leyenda                          │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbalance "github.com/jhoicas/Transporte-api/internal/application/balance"
	domainbalance "github.com/jhoicas/Transporte-api/internal/domain/balance"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 15, Green: 23, Blue: 42}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorNegative = &props.Color{Red: 190, Green: 30, Blue: 45}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbalance.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa balance.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(
	_ context.Context,
	goodsLabel string,
	referenceDate time.Time,
	generatedAt time.Time,
	rows []domainbalance.SummaryRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("تقرير أرصدة المخازن والموانئ", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(goodsLabel, referenceDate, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(referenceDate))
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del sistema + título con la mercancía + fecha de extracción.
func headerRow(goodsLabel string, referenceDate, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("نظام إدارة نقل الخامات الرئيسي", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("تقرير أرصدة المخازن والموانئ - قسم "+goodsLabel, props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("تاريخ الاستخراج: "+generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("يوم المرجع: "+referenceDate.Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de saldos.
func tableHeaderRow(referenceDate time.Time) core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(9).Add(
		h("الموقع", 2),
		h("رصيد البداية", 1),
		h("إجمالي الإفراجات", 1),
		h("تم تحميله", 1),
		h("في الطريق", 1),
		h("متوقف", 1),
		h("بالميناء (متبقي)", 2),
		h("وارد "+referenceDate.Format("01-02"), 1),
		h("الصرف (يدوي)", 1),
		h("رصيد المصنع", 1),
	)
}

// tableDetailRow: una fila por sitio. Los derivados negativos (sobre-embarque,
// déficit) van en rojo, igual que el coloreado del front.
func tableDetailRow(r domainbalance.SummaryRow) core.Row {
	cell := func(d decimal.Decimal, size int) core.Col {
		color := colorPrimary
		if d.IsNegative() {
			color = colorNegative
		}
		return col.New(size).Add(text.New(formatQty(d), props.Text{
			Size: 7.5, Align: align.Center, Top: 1, Color: color,
		}))
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(r.Site, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: align.Center, Top: 1,
		})),
		cell(r.Opening, 1),
		cell(r.TotalReleased, 1),
		cell(r.Arrived, 1),
		cell(r.InTransit, 1),
		cell(r.Stopped, 1),
		cell(r.PortRemaining, 2),
		cell(r.ArrivedOnDate, 1),
		cell(r.Consumption, 1),
		cell(r.CurrentStock, 1),
	)
}

// footerRows: fórmulas de conciliación + leyenda de extracción automática.
func footerRows() []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("متبقي الإفراج = إجمالي الإفراج − تم تحميله − في الطريق − متوقف", props.Text{
				Size: 7, Color: colorGray, Top: 1,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("رصيد المصنع = بداية المدة + وارد يوم المرجع − الصرف", props.Text{
				Size: 7, Color: colorGray, Top: 1,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("تم استخراج هذا التقرير تلقائياً بواسطة نظام النقل الذكي", props.Text{
				Size: 6.5, Color: colorGray, Align: align.Center, Top: 2,
			}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatQty formatea una cantidad en toneladas: separador de miles en la
// parte entera y hasta 3 decimales sin ceros de relleno.
// Ej: 25000 → "25,000", 1234.500 → "1,234.5", −40 → "−40" (con signo ASCII).
func formatQty(d decimal.Decimal) string {
	s := d.StringFixed(3)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, intPart[i])
	}
	out := string(buf)
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
