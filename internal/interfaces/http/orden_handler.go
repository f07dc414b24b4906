package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/application/ordencompra"
)

// OrdenHandler maneja las peticiones de órdenes de compra.
type OrdenHandler struct {
	uc *ordencompra.UseCase
}

// NewOrdenHandler construye el handler.
func NewOrdenHandler(uc *ordencompra.UseCase) *OrdenHandler {
	return &OrdenHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear orden de compra
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CrearOrdenRequest  true  "datos de la orden"
// @Success      201   {object}  dto.OrdenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ordenes [post]
func (h *OrdenHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	orden, err := h.uc.Crear(c.Context(), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromOrden(orden))
}

// Validar godoc
// @Summary      Validar una orden (la marca Completada y crea la entrada asociada)
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "ID de la orden"
// @Param        body  body      dto.ValidarOrdenRequest  false "validado_por, observaciones"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ordenes/validar/{id} [put]
func (h *OrdenHandler) Validar(c *fiber.Ctx) error {
	var in dto.ValidarOrdenRequest
	// El cuerpo es opcional: sin observaciones se genera "Validada el <fecha>".
	_ = c.BodyParser(&in)

	validadoPor := in.ValidadoPor
	if validadoPor == "" {
		validadoPor = GetUserID(c)
	}
	orden, entrada, err := h.uc.Validar(c.Context(), c.Params("id"), validadoPor, in.Observaciones)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"orden":   dto.FromOrden(orden),
		"entrada": dto.FromEntrada(entrada),
	})
}

// DesdeEntrada godoc
// @Summary      Crear orden Completada a partir de una entrada existente
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.OrdenDesdeEntradaRequest  true  "numero_entrada"
// @Success      201   {object}  dto.OrdenResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ordenes/desde-entrada [post]
func (h *OrdenHandler) DesdeEntrada(c *fiber.Ctx) error {
	var in dto.OrdenDesdeEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	orden, err := h.uc.CrearDesdeEntrada(c.Context(), in.NumeroEntrada)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromOrden(orden))
}

// List lista órdenes con paginación.
func (h *OrdenHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	ordenes, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.OrdenResponse, 0, len(ordenes))
	for _, o := range ordenes {
		out = append(out, dto.FromOrden(o))
	}
	return c.JSON(out)
}

// GetByNumero busca una orden por su folio ORD-###.
func (h *OrdenHandler) GetByNumero(c *fiber.Ctx) error {
	orden, err := h.uc.GetByNumero(c.Context(), c.Params("numero"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromOrden(orden))
}
