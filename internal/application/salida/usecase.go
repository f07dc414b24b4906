package salida

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/nombres"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
	"github.com/smartflow/smartflow-api/internal/domain/stock"
)

// CacheInvalidator invalida la entrada cacheada de un perfume tras un débito
// de stock. Puede ser nil (caché desactivada).
type CacheInvalidator interface {
	Invalidate(ctx context.Context, nombre string) error
}

// UseCase gestiona salidas de stock (venta o merma). Crear debita el stock del
// perfume respetando el piso del 15%; CrearManual solo registra el documento.
type UseCase struct {
	txRunner TxRunner
	salidas  repository.SalidaRepository
	perfumes repository.PerfumeRepository
	cache    CacheInvalidator
	log      zerolog.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	salidas repository.SalidaRepository,
	perfumes repository.PerfumeRepository,
	cache CacheInvalidator,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{txRunner: txRunner, salidas: salidas, perfumes: perfumes, cache: cache, log: log}
}

// Crear registra una salida y debita el stock del perfume. La fila del perfume
// se bloquea dentro de la transacción: la validación del umbral y el débito
// ven el mismo stock.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearSalidaRequest, usuarioID string) (*entity.Salida, error) {
	if in.NombrePerfume == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.SalidaVenta
	}
	if tipo != entity.SalidaVenta && tipo != entity.SalidaMerma {
		return nil, domain.ErrInvalidInput
	}

	clave := nombres.Normalizar(in.NombrePerfume)
	now := time.Now()
	var creada *entity.Salida

	err := uc.txRunner.RunSalida(ctx, func(
		salidas repository.SalidaRepository,
		perfumes repository.PerfumeRepository,
	) error {
		perfume, err := perfumes.GetByNombreForUpdate(clave)
		if err != nil {
			return err
		}
		if perfume == nil {
			return domain.ErrNotFound
		}
		if perfume.UbicacionPer == "" {
			return domain.ErrSinUbicacion
		}
		if err := stock.ValidarSalida(perfume.StockActual, in.Cantidad); err != nil {
			return err
		}
		if err := perfumes.UpdateStock(perfume.ID, perfume.StockActual-in.Cantidad); err != nil {
			return err
		}

		salida := &entity.Salida{
			ID:                uuid.New().String(),
			NombrePerfume:     perfume.NamePer,
			AlmacenSalida:     perfume.UbicacionPer,
			Cantidad:          in.Cantidad,
			Tipo:              tipo,
			FechaSalida:       now,
			UsuarioRegistroID: usuarioID,
			UpdatedAt:         now,
		}
		if err := salidas.Create(salida); err != nil {
			return err
		}
		creada = salida
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidarCache(ctx, clave)
	return creada, nil
}

// CrearManual registra una salida del auditor sin tocar el stock.
func (uc *UseCase) CrearManual(ctx context.Context, in dto.CrearSalidaManualRequest, usuarioID string) (*entity.Salida, error) {
	if in.NombrePerfume == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.SalidaVenta
	}
	if tipo != entity.SalidaVenta && tipo != entity.SalidaMerma {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	fechaSalida := now
	if in.FechaSalida != nil && !in.FechaSalida.IsZero() {
		fechaSalida = *in.FechaSalida
	}

	salida := &entity.Salida{
		ID:                uuid.New().String(),
		NombrePerfume:     in.NombrePerfume,
		AlmacenSalida:     in.AlmacenSalida,
		Cantidad:          in.Cantidad,
		Tipo:              tipo,
		FechaSalida:       fechaSalida,
		UsuarioRegistroID: usuarioID,
		UpdatedAt:         now,
	}
	if err := uc.salidas.Create(salida); err != nil {
		return nil, err
	}
	return salida, nil
}

// AlmacenPorPerfume devuelve el código del almacén donde se ubica el perfume
// (consulta previa del cliente antes de registrar la salida).
func (uc *UseCase) AlmacenPorPerfume(ctx context.Context, nombrePerfume string) (string, error) {
	if nombrePerfume == "" {
		return "", domain.ErrInvalidInput
	}
	perfume, err := uc.perfumes.GetByNombre(nombres.Normalizar(nombrePerfume))
	if err != nil {
		return "", err
	}
	if perfume == nil {
		return "", domain.ErrNotFound
	}
	return perfume.UbicacionPer, nil
}

// PorMes lista las salidas del mes indicado (1-12) del año en curso.
func (uc *UseCase) PorMes(ctx context.Context, mes int) ([]*entity.Salida, error) {
	desde, hasta, err := RangoMes(mes)
	if err != nil {
		return nil, err
	}
	return uc.salidas.ListPorRango(desde, hasta)
}

// List lista salidas con paginación.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*entity.Salida, error) {
	return uc.salidas.List(limit, offset)
}

// RangoMes devuelve [inicio, fin) del mes indicado (1-12) en el año en curso.
func RangoMes(mes int) (time.Time, time.Time, error) {
	if mes < 1 || mes > 12 {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	anio := time.Now().Year()
	desde := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	hasta := desde.AddDate(0, 1, 0)
	return desde, hasta, nil
}

func (uc *UseCase) invalidarCache(ctx context.Context, clave string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, clave); err != nil {
		uc.log.Warn().Err(err).Str("perfume", clave).Msg("no se pudo invalidar caché de perfume")
	}
}
