package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/application/usecase"
)

// ProveedorHandler maneja el catálogo de proveedores.
type ProveedorHandler struct {
	uc *usecase.ProveedorUseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *usecase.ProveedorUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc}
}

// Crear registra un proveedor.
func (h *ProveedorHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	proveedor, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromProveedor(proveedor))
}

// GetByID busca un proveedor por ID.
func (h *ProveedorHandler) GetByID(c *fiber.Ctx) error {
	proveedor, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromProveedor(proveedor))
}

// List lista proveedores con paginación.
func (h *ProveedorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	proveedores, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, dto.FromProveedor(p))
	}
	return c.JSON(out)
}
