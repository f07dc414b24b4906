package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/application/entrada"
)

// EntradaHandler maneja las peticiones de entradas de mercancía.
type EntradaHandler struct {
	uc *entrada.UseCase
}

// NewEntradaHandler construye el handler.
func NewEntradaHandler(uc *entrada.UseCase) *EntradaHandler {
	return &EntradaHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar la entrada de una orden de compra
// @Tags         entradas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegistrarEntradaRequest  true  "n_orden_compra, fecha_entrada"
// @Success      201   {object}  dto.EntradaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/entradas/registrar [post]
func (h *EntradaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	e, err := h.uc.RegistrarDesdeOrden(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromEntrada(e))
}

// CrearManual registra una entrada sin documento de origen.
func (h *EntradaHandler) CrearManual(c *fiber.Ctx) error {
	var in dto.CrearEntradaManualRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	e, err := h.uc.CrearManual(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromEntrada(e))
}

// ListMias lista las entradas registradas por el usuario autenticado.
func (h *EntradaHandler) ListMias(c *fiber.Ctx) error {
	entradas, err := h.uc.ListByUsuario(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.EntradaResponse, 0, len(entradas))
	for _, e := range entradas {
		out = append(out, dto.FromEntrada(e))
	}
	return c.JSON(out)
}

// GetByNumero busca una entrada por su folio ENT-###.
func (h *EntradaHandler) GetByNumero(c *fiber.Ctx) error {
	e, err := h.uc.GetByNumero(c.Context(), c.Params("numero"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromEntrada(e))
}
