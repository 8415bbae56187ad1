package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	appbalance "github.com/jhoicas/Transporte-api/internal/application/balance"
	"github.com/jhoicas/Transporte-api/internal/application/dto"
	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
)

// BalanceHandler maneja el reporte de saldos y la edición de saldos manuales.
type BalanceHandler struct {
	reportUC *appbalance.ReportUseCase
	pdfUC    *appbalance.PDFUseCase
	session  *appbalance.EditSession
}

// NewBalanceHandler construye el handler.
func NewBalanceHandler(reportUC *appbalance.ReportUseCase, pdfUC *appbalance.PDFUseCase, session *appbalance.EditSession) *BalanceHandler {
	return &BalanceHandler{reportUC: reportUC, pdfUC: pdfUC, session: session}
}

// parseReportQuery lee material y fecha de referencia del query string.
// date vacío → nil (el caso de uso usa ayer).
func parseReportQuery(c *fiber.Ctx) (material string, refDate *time.Time, err error) {
	material = c.Query("material", entity.MaterialSoy)
	if raw := c.Query("date"); raw != "" {
		d, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return "", nil, perr
		}
		refDate = &d
	}
	return material, refDate, nil
}

// Report godoc
// @Summary      Reporte de saldos de fábrica
// @Tags         balances
// @Security     Bearer
// @Produce      json
// @Param        material  query  string  false  "soy | maize"        default(soy)
// @Param        date      query  string  false  "YYYY-MM-DD (día de referencia; por defecto ayer)"
// @Success      200  {object}  dto.BalanceReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/balances/report [get]
func (h *BalanceHandler) Report(c *fiber.Ctx) error {
	material, refDate, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date debe ser YYYY-MM-DD"})
	}
	out, err := h.reportUC.GetReport(material, refDate)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownMaterial) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_MATERIAL", Message: "material debe ser soy o maize"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte de saldos en PDF (A4 horizontal)
// @Tags         balances
// @Security     Bearer
// @Produce      application/pdf
// @Param        material  query  string  false  "soy | maize"  default(soy)
// @Param        date      query  string  false  "YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/balances/report/pdf [get]
func (h *BalanceHandler) ReportPDF(c *fiber.Ctx) error {
	material, refDate, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date debe ser YYYY-MM-DD"})
	}
	pdfBytes, filename, err := h.pdfUC.DownloadReportPDF(c.Context(), material, refDate)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownMaterial) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_MATERIAL", Message: "material debe ser soy o maize"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// UpsertBalance godoc
// @Summary      Guardar saldo manual (apertura + consumo) de un sitio
// @Tags         balances
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertBalanceRequest  true  "Saldo manual"
// @Success      200   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.ErrorResponse  "guardado en curso"
// @Router       /api/balances [put]
func (h *BalanceHandler) UpsertBalance(c *fiber.Ctx) error {
	var in dto.UpsertBalanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	goodsLabel, ok := entity.GoodsLabel(in.Material)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_MATERIAL", Message: "material debe ser soy o maize"})
	}

	// Sesión de edición: abrir, stage y commit en la misma petición. La
	// bandera de guardado rechaza un segundo commit mientras hay uno en
	// vuelo, igual que el botón deshabilitado del front.
	if err := h.session.Start(in.SiteName, goodsLabel, in.OpeningBalance, in.ManualConsumption); err != nil {
		switch {
		case errors.Is(err, domain.ErrSaveInProgress):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SAVE_IN_PROGRESS", Message: "hay un guardado en curso, reintente"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "site_name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := h.session.Commit(GetUserID(c)); err != nil {
		if errors.Is(err, domain.ErrSaveInProgress) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SAVE_IN_PROGRESS", Message: "hay un guardado en curso, reintente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPDATE_FAILED", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "saldo actualizado"})
}
