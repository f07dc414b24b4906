package ordencompra

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/folio"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

// Precio unitario fijo usado al crear una orden desde una entrada, y almacén
// de destino por defecto de esas órdenes.
var precioUnitarioFijo = decimal.NewFromInt(350)

const almacenPorDefecto = "ALM001"

// UseCase gestiona órdenes de compra: alta, validación (que acuña la entrada
// asociada) y la conversión inversa entrada -> orden.
type UseCase struct {
	txRunner TxRunner
	ordenes  repository.OrdenCompraRepository
	entradas repository.EntradaRepository
	counters repository.CounterRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	ordenes repository.OrdenCompraRepository,
	entradas repository.EntradaRepository,
	counters repository.CounterRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, ordenes: ordenes, entradas: entradas, counters: counters}
}

// Crear registra una orden de compra manual en estado pendiente.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearOrdenRequest, solicitanteID string) (*entity.OrdenCompra, error) {
	if in.NOrdenCompra == "" || in.IDPerfume == "" || in.Cantidad <= 0 || in.Proveedor == "" || solicitanteID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	orden := &entity.OrdenCompra{
		ID:                   uuid.New().String(),
		NOrdenCompra:         in.NOrdenCompra,
		PerfumeID:            in.IDPerfume,
		Cantidad:             in.Cantidad,
		UsuarioSolicitanteID: solicitanteID,
		ProveedorID:          in.Proveedor,
		Fecha:                fechaODefecto(in.Fecha, now),
		PrecioUnitario:       in.PrecioUnitario,
		PrecioTotal:          in.PrecioTotal,
		Almacen:              in.Almacen,
		Estado:               entity.OrdenPendiente,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.ordenes.Create(orden); err != nil {
		return nil, err
	}
	return orden, nil
}

// Validar marca la orden como Completada y crea la entrada correspondiente.
// La transición es unidireccional: una orden ya Completada falla con
// ErrAlreadyValidated y no produce una segunda entrada.
func (uc *UseCase) Validar(ctx context.Context, ordenID, validadoPorID, observaciones string) (*entity.OrdenCompra, *entity.Entrada, error) {
	orden, err := uc.ordenes.GetByID(ordenID)
	if err != nil {
		return nil, nil, err
	}
	if orden == nil {
		return nil, nil, domain.ErrNotFound
	}
	if orden.Estado == entity.OrdenCompletada {
		return nil, nil, domain.ErrAlreadyValidated
	}

	now := time.Now()
	if observaciones == "" {
		observaciones = fmt.Sprintf("Validada el %s", now.Format("02/01/2006 15:04"))
	}

	seq, err := uc.counters.Next(folio.ClaveEntrada)
	if err != nil {
		return nil, nil, err
	}

	entrada := &entity.Entrada{
		ID:                   uuid.New().String(),
		NumeroEntrada:        folio.Format(folio.PrefijoEntrada, seq),
		PerfumeID:            orden.PerfumeID,
		Cantidad:             orden.Cantidad,
		ProveedorID:          orden.ProveedorID,
		FechaEntrada:         now,
		UsuarioRegistroID:    orden.UsuarioSolicitanteID,
		OrdenCompra:          orden.NOrdenCompra,
		AlmacenDestino:       entity.ParseAlmacenRef(orden.Almacen),
		Tipo:                 entity.TipoCompra,
		Fecha:                now,
		FechaValidacion:      &now,
		ValidadoPorID:        validadoPorID,
		ObservacionesAuditor: observaciones,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	// Marcar la orden y crear la entrada en la misma transacción.
	err = uc.txRunner.RunConversion(ctx, func(
		ordenes repository.OrdenCompraRepository,
		entradas repository.EntradaRepository,
		_ repository.TraspasoRepository,
	) error {
		if err := ordenes.UpdateEstado(orden.ID, entity.OrdenCompletada, observaciones); err != nil {
			return err
		}
		return entradas.Create(entrada)
	})
	if err != nil {
		return nil, nil, err
	}

	orden.Estado = entity.OrdenCompletada
	orden.Observaciones = observaciones
	orden.UpdatedAt = now
	return orden, entrada, nil
}

// CrearDesdeEntrada crea una orden Completada a partir de una entrada
// existente, con precio unitario fijo. La comprobación de duplicado es
// heurística: coincide por perfume y cantidad, no por enlace de identificador.
func (uc *UseCase) CrearDesdeEntrada(ctx context.Context, numeroEntrada string) (*entity.OrdenCompra, error) {
	if numeroEntrada == "" {
		return nil, domain.ErrInvalidInput
	}
	entrada, err := uc.entradas.GetByNumero(numeroEntrada)
	if err != nil {
		return nil, err
	}
	if entrada == nil {
		return nil, domain.ErrNotFound
	}

	existe, err := uc.ordenes.ExistsConParametros(entrada.PerfumeID, entrada.Cantidad)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrConflict
	}

	seq, err := uc.counters.Next(folio.ClaveOrden)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	orden := &entity.OrdenCompra{
		ID:                   uuid.New().String(),
		NOrdenCompra:         folio.Format(folio.PrefijoOrden, seq),
		PerfumeID:            entrada.PerfumeID,
		Cantidad:             entrada.Cantidad,
		UsuarioSolicitanteID: entrada.UsuarioRegistroID,
		ProveedorID:          entrada.ProveedorID,
		Fecha:                fechaODefectoT(entrada.FechaEntrada, now),
		PrecioUnitario:       precioUnitarioFijo,
		PrecioTotal:          precioUnitarioFijo.Mul(decimal.NewFromInt(entrada.Cantidad)),
		Almacen:              almacenPorDefecto,
		Estado:               entity.OrdenCompletada,
		Observaciones:        entrada.ObservacionesAuditor,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.ordenes.Create(orden); err != nil {
		return nil, err
	}
	return orden, nil
}

// GetByNumero busca una orden por su folio.
func (uc *UseCase) GetByNumero(ctx context.Context, numero string) (*entity.OrdenCompra, error) {
	orden, err := uc.ordenes.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	return orden, nil
}

// List lista órdenes con paginación.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*entity.OrdenCompra, error) {
	return uc.ordenes.List(limit, offset)
}

func fechaODefecto(fecha *time.Time, defecto time.Time) time.Time {
	if fecha == nil || fecha.IsZero() {
		return defecto
	}
	return *fecha
}

func fechaODefectoT(fecha, defecto time.Time) time.Time {
	if fecha.IsZero() {
		return defecto
	}
	return fecha
}
