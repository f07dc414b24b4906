package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartflow/smartflow-api/internal/application/conversion"
	"github.com/smartflow/smartflow-api/internal/application/dto"
)

// ConversionHandler maneja la conversión de documentos entre sí.
type ConversionHandler struct {
	uc *conversion.UseCase
}

// NewConversionHandler construye el handler.
func NewConversionHandler(uc *conversion.UseCase) *ConversionHandler {
	return &ConversionHandler{uc: uc}
}

// ConvertirEntrada godoc
// @Summary      Convertir una entrada en orden (tipo Compra) o traspaso (tipo Traspaso)
// @Tags         conversion
// @Security     Bearer
// @Produce      json
// @Param        numero_entrada  path      string  true  "folio ENT-###"
// @Success      201  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/conversion/convertir-entrada/{numero_entrada} [post]
func (h *ConversionHandler) ConvertirEntrada(c *fiber.Ctx) error {
	resultado, err := h.uc.ConvertirEntradaPorNumero(c.Context(), c.Params("numero_entrada"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resultadoJSON(resultado))
}

// EntradaDesdeReferencia godoc
// @Summary      Crear una entrada a partir de una referencia ORD-### o TRAS-###
// @Tags         conversion
// @Security     Bearer
// @Produce      json
// @Param        referencia  path      string  true  "folio del documento de origen"
// @Success      201  {object}  dto.EntradaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ingreso-desde-referencia/entrada/desde-referencia/{referencia} [post]
func (h *ConversionHandler) EntradaDesdeReferencia(c *fiber.Ctx) error {
	e, err := h.uc.CrearEntradaDesdeReferencia(c.Context(), c.Params("referencia"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromEntrada(e))
}

// BuscarReferencia resuelve una referencia a su documento sin crear nada.
func (h *ConversionHandler) BuscarReferencia(c *fiber.Ctx) error {
	resultado, err := h.uc.BuscarDocumentoPorReferencia(c.Context(), c.Params("referencia"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resultadoJSON(resultado))
}

func resultadoJSON(r *conversion.Resultado) fiber.Map {
	if r.Orden != nil {
		return fiber.Map{"tipo": "orden", "orden": dto.FromOrden(r.Orden)}
	}
	return fiber.Map{"tipo": "traspaso", "traspaso": dto.FromTraspaso(r.Traspaso)}
}
