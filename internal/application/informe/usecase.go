package informe

import (
	"context"

	"github.com/smartflow/smartflow-api/internal/application/salida"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

// InformeMensual agrupa los movimientos de un mes: entradas con el nombre del
// perfume resuelto y salidas del periodo.
type InformeMensual struct {
	Mes      int                          `json:"mes"`
	Entradas []*repository.EntradaInforme `json:"entradas"`
	Salidas  []*entity.Salida             `json:"salidas"`
}

// UseCase arma el informe mensual de movimientos.
type UseCase struct {
	entradas repository.EntradaRepository
	salidas  repository.SalidaRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(entradas repository.EntradaRepository, salidas repository.SalidaRepository) *UseCase {
	return &UseCase{entradas: entradas, salidas: salidas}
}

// PorMes devuelve entradas y salidas del mes indicado (1-12) del año en curso.
func (uc *UseCase) PorMes(ctx context.Context, mes int) (*InformeMensual, error) {
	desde, hasta, err := salida.RangoMes(mes)
	if err != nil {
		return nil, err
	}

	entradas, err := uc.entradas.ListInformePorRango(desde, hasta)
	if err != nil {
		return nil, err
	}
	salidas, err := uc.salidas.ListPorRango(desde, hasta)
	if err != nil {
		return nil, err
	}

	return &InformeMensual{Mes: mes, Entradas: entradas, Salidas: salidas}, nil
}
