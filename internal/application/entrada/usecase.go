package entrada

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/folio"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

// UseCase gestiona entradas de mercancía: registro desde una orden de compra,
// alta manual y consulta por usuario.
type UseCase struct {
	entradas repository.EntradaRepository
	ordenes  repository.OrdenCompraRepository
	counters repository.CounterRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	entradas repository.EntradaRepository,
	ordenes repository.OrdenCompraRepository,
	counters repository.CounterRepository,
) *UseCase {
	return &UseCase{entradas: entradas, ordenes: ordenes, counters: counters}
}

// RegistrarDesdeOrden crea la entrada asociada a una orden de compra ya
// existente. A lo sumo una entrada por orden: un folio ya consumido es Conflict.
func (uc *UseCase) RegistrarDesdeOrden(ctx context.Context, in dto.RegistrarEntradaRequest, usuarioID string) (*entity.Entrada, error) {
	if in.NOrdenCompra == "" {
		return nil, domain.ErrInvalidInput
	}

	orden, err := uc.ordenes.GetByNumero(in.NOrdenCompra)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}

	existe, err := uc.entradas.ExistsPorOrdenCompra(orden.NOrdenCompra)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrConflict
	}

	seq, err := uc.counters.Next(folio.ClaveEntrada)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	fechaEntrada := now
	if in.FechaEntrada != nil && !in.FechaEntrada.IsZero() {
		fechaEntrada = *in.FechaEntrada
	}

	entrada := &entity.Entrada{
		ID:                uuid.New().String(),
		NumeroEntrada:     folio.Format(folio.PrefijoEntrada, seq),
		PerfumeID:         orden.PerfumeID,
		Cantidad:          orden.Cantidad,
		ProveedorID:       orden.ProveedorID,
		FechaEntrada:      fechaEntrada,
		UsuarioRegistroID: usuarioID,
		OrdenCompra:       orden.NOrdenCompra,
		AlmacenDestino:    entity.ParseAlmacenRef(orden.Almacen),
		Tipo:              entity.TipoCompra,
		Fecha:             fechaEntrada,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.entradas.Create(entrada); err != nil {
		return nil, err
	}
	return entrada, nil
}

// CrearManual registra una entrada sin documento de origen.
func (uc *UseCase) CrearManual(ctx context.Context, in dto.CrearEntradaManualRequest, usuarioID string) (*entity.Entrada, error) {
	if in.IDPerfume == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.TipoCompra
	}
	if tipo != entity.TipoCompra && tipo != entity.TipoTraspaso {
		return nil, domain.ErrInvalidInput
	}

	seq, err := uc.counters.Next(folio.ClaveEntrada)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	fechaEntrada := now
	if in.FechaEntrada != nil && !in.FechaEntrada.IsZero() {
		fechaEntrada = *in.FechaEntrada
	}

	entrada := &entity.Entrada{
		ID:                uuid.New().String(),
		NumeroEntrada:     folio.Format(folio.PrefijoEntrada, seq),
		PerfumeID:         in.IDPerfume,
		Cantidad:          in.Cantidad,
		ProveedorID:       in.Proveedor,
		FechaEntrada:      fechaEntrada,
		UsuarioRegistroID: usuarioID,
		AlmacenDestino:    entity.ParseAlmacenRef(in.AlmacenDestino),
		Tipo:              tipo,
		Fecha:             fechaEntrada,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.entradas.Create(entrada); err != nil {
		return nil, err
	}
	return entrada, nil
}

// GetByNumero busca una entrada por su folio.
func (uc *UseCase) GetByNumero(ctx context.Context, numero string) (*entity.Entrada, error) {
	entrada, err := uc.entradas.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if entrada == nil {
		return nil, domain.ErrNotFound
	}
	return entrada, nil
}

// ListByUsuario lista las entradas registradas por un usuario.
func (uc *UseCase) ListByUsuario(ctx context.Context, usuarioID string) ([]*entity.Entrada, error) {
	return uc.entradas.ListByUsuario(usuarioID)
}
