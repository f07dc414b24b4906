package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/application/usecase"
)

// PerfumeHandler maneja el catálogo de perfumes.
type PerfumeHandler struct {
	uc *usecase.PerfumeUseCase
}

// NewPerfumeHandler construye el handler.
func NewPerfumeHandler(uc *usecase.PerfumeUseCase) *PerfumeHandler {
	return &PerfumeHandler{uc: uc}
}

// Crear registra un perfume en el catálogo.
func (h *PerfumeHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPerfumeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	perfume, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromPerfume(perfume))
}

// GetByID busca un perfume por ID.
func (h *PerfumeHandler) GetByID(c *fiber.Ctx) error {
	perfume, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromPerfume(perfume))
}

// List lista perfumes con paginación.
func (h *PerfumeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	perfumes, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PerfumeResponse, 0, len(perfumes))
	for _, p := range perfumes {
		out = append(out, dto.FromPerfume(p))
	}
	return c.JSON(out)
}
