package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/application/usecase"
)

// AlmacenHandler maneja el catálogo de almacenes.
type AlmacenHandler struct {
	uc *usecase.AlmacenUseCase
}

// NewAlmacenHandler construye el handler.
func NewAlmacenHandler(uc *usecase.AlmacenUseCase) *AlmacenHandler {
	return &AlmacenHandler{uc: uc}
}

// Crear registra un almacén.
func (h *AlmacenHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearAlmacenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	almacen, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromAlmacen(almacen))
}

// GetByCodigo busca un almacén por su código.
func (h *AlmacenHandler) GetByCodigo(c *fiber.Ctx) error {
	almacen, err := h.uc.GetByCodigo(c.Context(), c.Params("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromAlmacen(almacen))
}

// List lista almacenes con paginación.
func (h *AlmacenHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	almacenes, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.AlmacenResponse, 0, len(almacenes))
	for _, a := range almacenes {
		out = append(out, dto.FromAlmacen(a))
	}
	return c.JSON(out)
}
