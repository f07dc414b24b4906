package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/application/movimiento"
)

// MovimientoHandler maneja traspasos entre almacenes y la consulta de perfume.
type MovimientoHandler struct {
	uc *movimiento.UseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *movimiento.UseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// CrearTraspaso godoc
// @Summary      Crear traspaso entre almacenes (máximo 50% del stock actual)
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CrearTraspasoRequest  true  "nombre_perfume, cantidad, almacen_destino"
// @Success      201   {object}  dto.TraspasoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimientos/crear [post]
func (h *MovimientoHandler) CrearTraspaso(c *fiber.Ctx) error {
	var in dto.CrearTraspasoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	traspaso, err := h.uc.CrearTraspaso(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromTraspaso(traspaso))
}

// InfoPerfume devuelve ubicación, marca y stock de un perfume (vía caché).
func (h *MovimientoHandler) InfoPerfume(c *fiber.Ctx) error {
	var in dto.InfoPerfumeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	info, err := h.uc.InfoPerfume(c.Context(), in.NombrePerfume)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.InfoPerfumeResponse{
		UbicacionPer: info.UbicacionPer,
		Marca:        info.Marca,
		StockActual:  info.StockActual,
	})
}

// List lista traspasos con paginación.
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	traspasos, err := h.uc.ListTraspasos(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.TraspasoResponse, 0, len(traspasos))
	for _, t := range traspasos {
		out = append(out, dto.FromTraspaso(t))
	}
	return c.JSON(out)
}

// GetByNumero busca un traspaso por su folio TRAS-###.
func (h *MovimientoHandler) GetByNumero(c *fiber.Ctx) error {
	traspaso, err := h.uc.GetTraspasoByNumero(c.Context(), c.Params("numero"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromTraspaso(traspaso))
}
