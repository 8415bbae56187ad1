package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Transporte-api/internal/application/dto"
	"github.com/jhoicas/Transporte-api/internal/application/transport"
	"github.com/jhoicas/Transporte-api/internal/domain"
)

// TransportHandler maneja releases (إفراجات) y viajes.
type TransportHandler struct {
	uc *transport.UseCase
}

// NewTransportHandler construye el handler.
func NewTransportHandler(uc *transport.UseCase) *TransportHandler {
	return &TransportHandler{uc: uc}
}

// CreateRelease godoc
// @Summary      Registrar إفراج
// @Tags         releases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReleaseRequest  true  "Datos del release"
// @Success      201   {object}  dto.ReleaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/releases [post]
func (h *TransportHandler) CreateRelease(c *fiber.Ctx) error {
	var in dto.CreateReleaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateRelease(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReleases godoc
// @Summary      Listar إفراجات
// @Tags         releases
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReleaseResponse
// @Router       /api/releases [get]
func (h *TransportHandler) ListReleases(c *fiber.Ctx) error {
	out, err := h.uc.ListReleases()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateRecord godoc
// @Summary      Registrar viaje
// @Tags         transport-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransportRecordRequest  true  "Datos del viaje"
// @Success      201   {object}  dto.TransportRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transport-records [post]
func (h *TransportHandler) CreateRecord(c *fiber.Ctx) error {
	var in dto.CreateTransportRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateRecord(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRecords godoc
// @Summary      Listar viajes
// @Tags         transport-records
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransportRecordResponse
// @Router       /api/transport-records [get]
func (h *TransportHandler) ListRecords(c *fiber.Ctx) error {
	out, err := h.uc.ListRecords()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateTripStatus godoc
// @Summary      Cambiar estado de un viaje
// @Tags         transport-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del viaje"
// @Param        body  body  dto.UpdateTripStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transport-records/{id}/status [patch]
func (h *TransportHandler) UpdateTripStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateTripStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateTripStatus(id, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "viaje no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "estado actualizado"})
}
