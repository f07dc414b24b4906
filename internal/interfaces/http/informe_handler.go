package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/application/informe"
)

// InformeHandler maneja los informes mensuales de movimientos.
type InformeHandler struct {
	uc *informe.UseCase
}

// NewInformeHandler construye el handler.
func NewInformeHandler(uc *informe.UseCase) *InformeHandler {
	return &InformeHandler{uc: uc}
}

// PorMes devuelve entradas y salidas del mes indicado (1-12) del año en curso.
func (h *InformeHandler) PorMes(c *fiber.Ctx) error {
	mes, err := strconv.Atoi(c.Params("mes"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes inválido"})
	}
	inf, err := h.uc.PorMes(c.Context(), mes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inf)
}
