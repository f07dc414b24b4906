package conversion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/folio"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

// UseCase convierte documentos entre sí preservando las referencias cruzadas:
// entrada Compra -> orden, entrada Traspaso -> traspaso, y referencia
// (ORD-### / TRAS-###) -> entrada nueva. Garantiza a lo sumo un destino por
// documento de origen.
type UseCase struct {
	txRunner  TxRunner
	entradas  repository.EntradaRepository
	ordenes   repository.OrdenCompraRepository
	traspasos repository.TraspasoRepository
	perfumes  repository.PerfumeRepository
	counters  repository.CounterRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	entradas repository.EntradaRepository,
	ordenes repository.OrdenCompraRepository,
	traspasos repository.TraspasoRepository,
	perfumes repository.PerfumeRepository,
	counters repository.CounterRepository,
) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		entradas:  entradas,
		ordenes:   ordenes,
		traspasos: traspasos,
		perfumes:  perfumes,
		counters:  counters,
	}
}

// Resultado de una conversión de entrada: exactamente uno de los dos campos
// está poblado según el tipo de la entrada.
type Resultado struct {
	Orden    *entity.OrdenCompra
	Traspaso *entity.Traspaso
}

// ConvertirEntradaPorNumero convierte la entrada identificada por su folio.
// Tipo Compra produce una orden con folio derivado (ENT -> ORD); tipo Traspaso
// consume el contador numero_traspaso, crea el traspaso y retro-enlaza la
// entrada vía referencia_traspaso.
func (uc *UseCase) ConvertirEntradaPorNumero(ctx context.Context, numeroEntrada, usuarioID string) (*Resultado, error) {
	entrada, err := uc.entradas.GetByNumero(numeroEntrada)
	if err != nil {
		return nil, err
	}
	if entrada == nil {
		return nil, domain.ErrNotFound
	}

	perfume, err := uc.perfumes.GetByID(entrada.PerfumeID)
	if err != nil {
		return nil, err
	}
	if perfume == nil {
		return nil, domain.ErrNotFound
	}

	switch entrada.Tipo {
	case entity.TipoCompra:
		orden, err := uc.convertirACompra(entrada, perfume, usuarioID)
		if err != nil {
			return nil, err
		}
		return &Resultado{Orden: orden}, nil
	case entity.TipoTraspaso:
		traspaso, err := uc.convertirATraspaso(ctx, entrada, usuarioID)
		if err != nil {
			return nil, err
		}
		return &Resultado{Traspaso: traspaso}, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}

// convertirACompra: el folio de la orden se deriva sustituyendo el prefijo
// (no consume contador); colisión con una orden existente es Conflict.
func (uc *UseCase) convertirACompra(entrada *entity.Entrada, perfume *entity.Perfume, usuarioID string) (*entity.OrdenCompra, error) {
	folioOrden := folio.DerivarOrden(entrada.NumeroEntrada)

	existente, err := uc.ordenes.GetByNumero(folioOrden)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrConflict
	}

	precioUnitario := perfume.PrecioCompra()
	now := time.Now()
	orden := &entity.OrdenCompra{
		ID:                   uuid.New().String(),
		NOrdenCompra:         folioOrden,
		PerfumeID:            entrada.PerfumeID,
		Cantidad:             entrada.Cantidad,
		UsuarioSolicitanteID: usuarioID,
		ProveedorID:          entrada.ProveedorID,
		Fecha:                fechaODefecto(entrada.FechaEntrada, now),
		PrecioUnitario:       precioUnitario,
		PrecioTotal:          precioUnitario.Mul(decimal.NewFromInt(entrada.Cantidad)),
		Almacen:              entrada.AlmacenDestino.Valor(),
		Estado:               entity.OrdenPendiente,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.ordenes.Create(orden); err != nil {
		return nil, err
	}
	return orden, nil
}

// convertirATraspaso: el contador es monotónico, así que el folio recién
// acuñado no debería existir; la comprobación se conserva como defensa.
func (uc *UseCase) convertirATraspaso(ctx context.Context, entrada *entity.Entrada, usuarioID string) (*entity.Traspaso, error) {
	seq, err := uc.counters.Next(folio.ClaveTraspaso)
	if err != nil {
		return nil, err
	}
	numeroTraspaso := folio.Format(folio.PrefijoTraspaso, seq)

	existente, err := uc.traspasos.GetByNumero(numeroTraspaso)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	traspaso := &entity.Traspaso{
		ID:                uuid.New().String(),
		NumeroTraspaso:    numeroTraspaso,
		PerfumeID:         entrada.PerfumeID,
		Cantidad:          entrada.Cantidad,
		ProveedorID:       entrada.ProveedorID,
		FechaSalida:       fechaODefecto(entrada.FechaEntrada, now),
		UsuarioRegistroID: usuarioID,
		AlmacenSalida:     entrada.AlmacenDestino,
		AlmacenDestino:    entrada.AlmacenDestino,
		EstatusValidacion: entity.TraspasoPendiente,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// Crear el traspaso y retro-enlazar la entrada en la misma transacción.
	err = uc.txRunner.RunConversion(ctx, func(
		_ repository.OrdenCompraRepository,
		entradas repository.EntradaRepository,
		traspasos repository.TraspasoRepository,
	) error {
		if err := traspasos.Create(traspaso); err != nil {
			return err
		}
		return entradas.SetReferenciaTraspaso(entrada.ID, numeroTraspaso)
	})
	if err != nil {
		return nil, err
	}
	return traspaso, nil
}

// CrearEntradaDesdeReferencia resuelve una referencia ORD-### o TRAS-### y
// crea la entrada correspondiente, copiando campos y fijando la
// retro-referencia del tipo de origen. A lo sumo una entrada por referencia.
func (uc *UseCase) CrearEntradaDesdeReferencia(ctx context.Context, referencia, usuarioID string) (*entity.Entrada, error) {
	kind, err := folio.Dispatch(referencia)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entrada := &entity.Entrada{
		ID:                uuid.New().String(),
		UsuarioRegistroID: usuarioID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	switch kind {
	case folio.KindOrden:
		orden, err := uc.ordenes.GetByNumero(referencia)
		if err != nil {
			return nil, err
		}
		if orden == nil {
			return nil, domain.ErrNotFound
		}
		existe, err := uc.entradas.ExistsPorOrdenCompra(referencia)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, domain.ErrConflict
		}
		entrada.Tipo = entity.TipoCompra
		entrada.PerfumeID = orden.PerfumeID
		entrada.Cantidad = orden.Cantidad
		entrada.ProveedorID = orden.ProveedorID
		entrada.FechaEntrada = fechaODefecto(orden.Fecha, now)
		entrada.Fecha = entrada.FechaEntrada
		entrada.AlmacenDestino = entity.ParseAlmacenRef(orden.Almacen)
		entrada.OrdenCompra = orden.NOrdenCompra

	case folio.KindTraspaso:
		traspaso, err := uc.traspasos.GetByNumero(referencia)
		if err != nil {
			return nil, err
		}
		if traspaso == nil {
			return nil, domain.ErrNotFound
		}
		existe, err := uc.entradas.ExistsPorReferenciaTraspaso(referencia)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, domain.ErrConflict
		}
		entrada.Tipo = entity.TipoTraspaso
		entrada.PerfumeID = traspaso.PerfumeID
		entrada.Cantidad = traspaso.Cantidad
		entrada.ProveedorID = traspaso.ProveedorID
		entrada.FechaEntrada = fechaODefecto(traspaso.FechaSalida, now)
		entrada.Fecha = entrada.FechaEntrada
		entrada.AlmacenDestino = traspaso.AlmacenDestino
		entrada.ReferenciaTraspaso = traspaso.NumeroTraspaso

	default:
		// ENT-### no es un documento de origen válido para crear entradas
		return nil, domain.ErrInvalidReference
	}

	seq, err := uc.counters.Next(folio.ClaveEntrada)
	if err != nil {
		return nil, err
	}
	entrada.NumeroEntrada = folio.Format(folio.PrefijoEntrada, seq)

	if err := uc.entradas.Create(entrada); err != nil {
		return nil, err
	}
	return entrada, nil
}

// BuscarDocumentoPorReferencia resuelve una referencia a su documento sin
// crear nada (consulta previa del cliente Android).
func (uc *UseCase) BuscarDocumentoPorReferencia(ctx context.Context, referencia string) (*Resultado, error) {
	kind, err := folio.Dispatch(referencia)
	if err != nil {
		return nil, err
	}
	switch kind {
	case folio.KindOrden:
		orden, err := uc.ordenes.GetByNumero(referencia)
		if err != nil {
			return nil, err
		}
		if orden == nil {
			return nil, domain.ErrNotFound
		}
		return &Resultado{Orden: orden}, nil
	case folio.KindTraspaso:
		traspaso, err := uc.traspasos.GetByNumero(referencia)
		if err != nil {
			return nil, err
		}
		if traspaso == nil {
			return nil, domain.ErrNotFound
		}
		return &Resultado{Traspaso: traspaso}, nil
	default:
		return nil, domain.ErrInvalidReference
	}
}

func fechaODefecto(fecha, defecto time.Time) time.Time {
	if fecha.IsZero() {
		return defecto
	}
	return fecha
}
