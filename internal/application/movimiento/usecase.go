package movimiento

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/folio"
	"github.com/smartflow/smartflow-api/internal/domain/nombres"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
	"github.com/smartflow/smartflow-api/internal/domain/stock"
)

// UseCase gestiona traspasos entre almacenes y la consulta rápida de
// información de perfume. El traspaso se valida contra el stock del perfume
// (máximo 50%) pero no debita al crearse: el débito ocurre cuando el destino
// registra la entrada correspondiente.
type UseCase struct {
	traspasos           repository.TraspasoRepository
	perfumes            repository.PerfumeRepository
	almacenes           repository.AlmacenRepository
	counters            repository.CounterRepository
	cache               PerfumeInfoCache
	proveedorPorDefecto string
	log                 zerolog.Logger
}

// NewUseCase construye el caso de uso. cache puede ser nil (caché desactivada).
func NewUseCase(
	traspasos repository.TraspasoRepository,
	perfumes repository.PerfumeRepository,
	almacenes repository.AlmacenRepository,
	counters repository.CounterRepository,
	cache PerfumeInfoCache,
	proveedorPorDefecto string,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		traspasos:           traspasos,
		perfumes:            perfumes,
		almacenes:           almacenes,
		counters:            counters,
		cache:               cache,
		proveedorPorDefecto: proveedorPorDefecto,
		log:                 log,
	}
}

// CrearTraspaso crea un traspaso desde el almacén hogar del perfume hacia el
// almacén destino. Reglas: el perfume debe tener ubicación, origen y destino
// deben existir y ser distintos, y la cantidad no puede superar el 50% del
// stock actual.
func (uc *UseCase) CrearTraspaso(ctx context.Context, in dto.CrearTraspasoRequest, usuarioID string) (*entity.Traspaso, error) {
	if in.NombrePerfume == "" || in.Cantidad <= 0 || in.AlmacenDestino == "" {
		return nil, domain.ErrInvalidInput
	}

	perfume, err := uc.perfumes.GetByNombre(nombres.Normalizar(in.NombrePerfume))
	if err != nil {
		return nil, err
	}
	if perfume == nil {
		return nil, domain.ErrNotFound
	}
	if perfume.UbicacionPer == "" {
		return nil, domain.ErrSinUbicacion
	}

	if err := stock.ValidarTraspaso(perfume.StockActual, in.Cantidad); err != nil {
		return nil, err
	}

	origen, err := uc.almacenes.GetByCodigo(perfume.UbicacionPer)
	if err != nil {
		return nil, err
	}
	if origen == nil {
		return nil, domain.ErrNotFound
	}
	destino, err := uc.almacenes.GetByCodigo(in.AlmacenDestino)
	if err != nil {
		return nil, err
	}
	if destino == nil {
		return nil, domain.ErrNotFound
	}
	if origen.Codigo == destino.Codigo {
		return nil, domain.ErrInvalidRoute
	}

	seq, err := uc.counters.Next(folio.ClaveTraspaso)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	traspaso := &entity.Traspaso{
		ID:                uuid.New().String(),
		NumeroTraspaso:    folio.Format(folio.PrefijoTraspaso, seq),
		PerfumeID:         perfume.ID,
		Cantidad:          in.Cantidad,
		ProveedorID:       uc.proveedorPorDefecto,
		FechaSalida:       now,
		UsuarioRegistroID: usuarioID,
		AlmacenSalida:     entity.AlmacenPorCodigo(origen.Codigo),
		AlmacenDestino:    entity.AlmacenPorCodigo(destino.Codigo),
		EstatusValidacion: entity.TraspasoPendiente,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.traspasos.Create(traspaso); err != nil {
		return nil, err
	}

	uc.invalidarCache(ctx, perfume.NamePer)
	return traspaso, nil
}

// InfoPerfume devuelve ubicación, marca y stock actual de un perfume,
// resolviendo primero contra la caché.
func (uc *UseCase) InfoPerfume(ctx context.Context, nombrePerfume string) (*InfoPerfume, error) {
	if nombrePerfume == "" {
		return nil, domain.ErrInvalidInput
	}
	clave := nombres.Normalizar(nombrePerfume)

	if uc.cache != nil {
		info, err := uc.cache.Get(ctx, clave)
		if err != nil {
			uc.log.Warn().Err(err).Str("perfume", clave).Msg("caché de perfume no disponible")
		} else if info != nil {
			return info, nil
		}
	}

	perfume, err := uc.perfumes.GetByNombre(clave)
	if err != nil {
		return nil, err
	}
	if perfume == nil {
		return nil, domain.ErrNotFound
	}

	info := &InfoPerfume{
		UbicacionPer: perfume.UbicacionPer,
		Marca:        perfume.Marca,
		StockActual:  perfume.StockActual,
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, clave, info); err != nil {
			uc.log.Warn().Err(err).Str("perfume", clave).Msg("no se pudo cachear info de perfume")
		}
	}
	return info, nil
}

// ListTraspasos lista traspasos con paginación.
func (uc *UseCase) ListTraspasos(ctx context.Context, limit, offset int) ([]*entity.Traspaso, error) {
	return uc.traspasos.List(limit, offset)
}

// GetTraspasoByNumero busca un traspaso por su folio.
func (uc *UseCase) GetTraspasoByNumero(ctx context.Context, numero string) (*entity.Traspaso, error) {
	traspaso, err := uc.traspasos.GetByNumero(numero)
	if err != nil {
		return nil, err
	}
	if traspaso == nil {
		return nil, domain.ErrNotFound
	}
	return traspaso, nil
}

func (uc *UseCase) invalidarCache(ctx context.Context, nombrePerfume string) {
	if uc.cache == nil {
		return
	}
	clave := nombres.Normalizar(nombrePerfume)
	if err := uc.cache.Invalidate(ctx, clave); err != nil {
		uc.log.Warn().Err(err).Str("perfume", clave).Msg("no se pudo invalidar caché de perfume")
	}
}
