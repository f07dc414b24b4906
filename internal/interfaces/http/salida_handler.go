package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/application/salida"
)

// SalidaHandler maneja las salidas de stock (venta y merma).
type SalidaHandler struct {
	uc *salida.UseCase
}

// NewSalidaHandler construye el handler.
func NewSalidaHandler(uc *salida.UseCase) *SalidaHandler {
	return &SalidaHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar salida y debitar stock (piso del 15%)
// @Tags         salidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CrearSalidaRequest  true  "nombre_perfume, cantidad, tipo"
// @Success      201   {object}  dto.SalidaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/salidas/crear [post]
func (h *SalidaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearSalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.Crear(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromSalida(s))
}

// CrearManual registra una salida del auditor sin debitar stock.
func (h *SalidaHandler) CrearManual(c *fiber.Ctx) error {
	var in dto.CrearSalidaManualRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.CrearManual(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromSalida(s))
}

// AlmacenPorPerfume devuelve el almacén donde se ubica un perfume por su nombre.
func (h *SalidaHandler) AlmacenPorPerfume(c *fiber.Ctx) error {
	almacen, err := h.uc.AlmacenPorPerfume(c.Context(), c.Params("nombre_perfume"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"almacen_id": almacen})
}

// PorMes lista las salidas del mes indicado (1-12) del año en curso.
func (h *SalidaHandler) PorMes(c *fiber.Ctx) error {
	mes, err := strconv.Atoi(c.Params("mes"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes inválido"})
	}
	salidas, err := h.uc.PorMes(c.Context(), mes)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SalidaResponse, 0, len(salidas))
	for _, s := range salidas {
		out = append(out, dto.FromSalida(s))
	}
	return c.JSON(out)
}

// List lista salidas con paginación.
func (h *SalidaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	salidas, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SalidaResponse, 0, len(salidas))
	for _, s := range salidas {
		out = append(out, dto.FromSalida(s))
	}
	return c.JSON(out)
}
