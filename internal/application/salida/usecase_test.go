package salida_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/application/salida"
	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/nombres"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSalidaRepo struct {
	salidas []*entity.Salida
}

func (r *fakeSalidaRepo) Create(s *entity.Salida) error {
	r.salidas = append(r.salidas, s)
	return nil
}

func (r *fakeSalidaRepo) ListPorRango(desde, hasta time.Time) ([]*entity.Salida, error) {
	var out []*entity.Salida
	for _, s := range r.salidas {
		if !s.FechaSalida.Before(desde) && s.FechaSalida.Before(hasta) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSalidaRepo) List(limit, offset int) ([]*entity.Salida, error) {
	return r.salidas, nil
}

type fakePerfumeRepo struct {
	porNombre map[string]*entity.Perfume
}

func newFakePerfumeRepo(perfumes ...*entity.Perfume) *fakePerfumeRepo {
	r := &fakePerfumeRepo{porNombre: map[string]*entity.Perfume{}}
	for _, p := range perfumes {
		r.porNombre[nombres.Normalizar(p.NamePer)] = p
	}
	return r
}

func (r *fakePerfumeRepo) Create(p *entity.Perfume) error {
	r.porNombre[nombres.Normalizar(p.NamePer)] = p
	return nil
}

func (r *fakePerfumeRepo) GetByID(id string) (*entity.Perfume, error) { return nil, nil }

func (r *fakePerfumeRepo) GetByNombre(nombre string) (*entity.Perfume, error) {
	return r.porNombre[nombre], nil
}

func (r *fakePerfumeRepo) GetByNombreForUpdate(nombre string) (*entity.Perfume, error) {
	return r.porNombre[nombre], nil
}

func (r *fakePerfumeRepo) UpdateStock(id string, stockActual int64) error {
	for _, p := range r.porNombre {
		if p.ID == id {
			p.StockActual = stockActual
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakePerfumeRepo) Update(p *entity.Perfume) error { return nil }

func (r *fakePerfumeRepo) List(limit, offset int) ([]*entity.Perfume, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback con los repos dados, sin transacción real.
type fakeTxRunner struct {
	salidas  repository.SalidaRepository
	perfumes repository.PerfumeRepository
}

func (r *fakeTxRunner) RunSalida(ctx context.Context, fn func(
	salidas repository.SalidaRepository,
	perfumes repository.PerfumeRepository,
) error) error {
	return fn(r.salidas, r.perfumes)
}

type fakeInvalidator struct {
	invalidations []string
}

func (c *fakeInvalidator) Invalidate(ctx context.Context, nombre string) error {
	c.invalidations = append(c.invalidations, nombre)
	return nil
}

func perfumeConStock(stock int64) *entity.Perfume {
	return &entity.Perfume{
		ID:           "perfume-1",
		NamePer:      "Aqua Di Gio",
		StockActual:  stock,
		UbicacionPer: "ALM001",
	}
}

func buildUseCase(perfumes *fakePerfumeRepo, cache salida.CacheInvalidator) (*salida.UseCase, *fakeSalidaRepo) {
	salidas := &fakeSalidaRepo{}
	tx := &fakeTxRunner{salidas: salidas, perfumes: perfumes}
	return salida.NewUseCase(tx, salidas, perfumes, cache, zerolog.Nop()), salidas
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_DebitaStockHastaElPiso(t *testing.T) {
	perfumes := newFakePerfumeRepo(perfumeConStock(100))
	uc, salidas := buildUseCase(perfumes, nil)

	// floor(100*0.15) = 15; salen 85 y quedan exactamente 15.
	s, err := uc.Crear(context.Background(), dto.CrearSalidaRequest{
		NombrePerfume: "Aqua Di Gio",
		Cantidad:      85,
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.SalidaVenta, s.Tipo, "tipo por defecto es Venta")
	assert.Equal(t, "Aqua Di Gio", s.NombrePerfume, "nombre desnormalizado")
	assert.Equal(t, "ALM001", s.AlmacenSalida, "almacén hogar del perfume")

	p, _ := perfumes.GetByNombre(nombres.Normalizar("Aqua Di Gio"))
	assert.Equal(t, int64(15), p.StockActual)
	assert.Len(t, salidas.salidas, 1)
}

func TestCrear_BajoElPisoDel15Falla(t *testing.T) {
	perfumes := newFakePerfumeRepo(perfumeConStock(100))
	uc, salidas := buildUseCase(perfumes, nil)

	_, err := uc.Crear(context.Background(), dto.CrearSalidaRequest{
		NombrePerfume: "Aqua Di Gio",
		Cantidad:      86,
	}, "user-1")
	require.Error(t, err)

	var minErr *domain.StockMinimoError
	require.True(t, errors.As(err, &minErr))
	assert.Equal(t, int64(100), minErr.StockActual)
	assert.Equal(t, int64(15), minErr.Minimo)

	// Nada persistido ni debitado.
	p, _ := perfumes.GetByNombre(nombres.Normalizar("Aqua Di Gio"))
	assert.Equal(t, int64(100), p.StockActual)
	assert.Empty(t, salidas.salidas)
}

func TestCrear_TipoMermaExplicito(t *testing.T) {
	uc, _ := buildUseCase(newFakePerfumeRepo(perfumeConStock(100)), nil)

	s, err := uc.Crear(context.Background(), dto.CrearSalidaRequest{
		NombrePerfume: "Aqua Di Gio",
		Cantidad:      10,
		Tipo:          entity.SalidaMerma,
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SalidaMerma, s.Tipo)
}

func TestCrear_TipoDesconocidoEsInvalido(t *testing.T) {
	uc, _ := buildUseCase(newFakePerfumeRepo(perfumeConStock(100)), nil)

	_, err := uc.Crear(context.Background(), dto.CrearSalidaRequest{
		NombrePerfume: "Aqua Di Gio",
		Cantidad:      10,
		Tipo:          "Regalo",
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrear_PerfumeInexistente404(t *testing.T) {
	uc, _ := buildUseCase(newFakePerfumeRepo(), nil)

	_, err := uc.Crear(context.Background(), dto.CrearSalidaRequest{
		NombrePerfume: "Fantasma",
		Cantidad:      1,
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrear_PerfumeSinUbicacionEsRechazado(t *testing.T) {
	p := perfumeConStock(100)
	p.UbicacionPer = ""
	perfumes := newFakePerfumeRepo(p)
	uc, salidas := buildUseCase(perfumes, nil)

	_, err := uc.Crear(context.Background(), dto.CrearSalidaRequest{
		NombrePerfume: "Aqua Di Gio",
		Cantidad:      10,
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrSinUbicacion,
		"sin ubicación no hay almacén de origen para la salida")

	// Nada persistido ni debitado.
	assert.Empty(t, salidas.salidas)
	assert.Equal(t, int64(100), p.StockActual)
}

func TestCrear_InvalidaCacheTrasDebitar(t *testing.T) {
	cache := &fakeInvalidator{}
	uc, _ := buildUseCase(newFakePerfumeRepo(perfumeConStock(100)), cache)

	_, err := uc.Crear(context.Background(), dto.CrearSalidaRequest{
		NombrePerfume: "Aqua Di Gio",
		Cantidad:      10,
	}, "user-1")
	require.NoError(t, err)

	assert.Contains(t, cache.invalidations, nombres.Normalizar("Aqua Di Gio"))
}

// ──────────────────────────────────────────────────────────────────────────────
// CrearManual
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearManual_NoTocaElStock(t *testing.T) {
	perfumes := newFakePerfumeRepo(perfumeConStock(100))
	uc, salidas := buildUseCase(perfumes, nil)

	fecha := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	s, err := uc.CrearManual(context.Background(), dto.CrearSalidaManualRequest{
		NombrePerfume: "Aqua Di Gio",
		AlmacenSalida: "ALM002",
		Cantidad:      90,
		Tipo:          entity.SalidaMerma,
		FechaSalida:   &fecha,
	}, "auditor-1")
	require.NoError(t, err)

	assert.Equal(t, fecha, s.FechaSalida)
	assert.Equal(t, "ALM002", s.AlmacenSalida)

	// 90 de 100 rompería el piso del 15%, pero la salida manual no debita.
	p, _ := perfumes.GetByNombre(nombres.Normalizar("Aqua Di Gio"))
	assert.Equal(t, int64(100), p.StockActual)
	assert.Len(t, salidas.salidas, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// AlmacenPorPerfume
// ──────────────────────────────────────────────────────────────────────────────

func TestAlmacenPorPerfume_DevuelveUbicacion(t *testing.T) {
	uc, _ := buildUseCase(newFakePerfumeRepo(perfumeConStock(100)), nil)

	almacen, err := uc.AlmacenPorPerfume(context.Background(), "  AQUA DI GIO  ")
	require.NoError(t, err, "la búsqueda normaliza mayúsculas y espacios")
	assert.Equal(t, "ALM001", almacen)
}

func TestAlmacenPorPerfume_NoExiste404(t *testing.T) {
	uc, _ := buildUseCase(newFakePerfumeRepo(), nil)

	_, err := uc.AlmacenPorPerfume(context.Background(), "Fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// PorMes / RangoMes
// ──────────────────────────────────────────────────────────────────────────────

func TestRangoMes_VentanaDelMes(t *testing.T) {
	desde, hasta, err := salida.RangoMes(3)
	require.NoError(t, err)

	anio := time.Now().Year()
	assert.Equal(t, time.Date(anio, time.March, 1, 0, 0, 0, 0, time.UTC), desde)
	assert.Equal(t, time.Date(anio, time.April, 1, 0, 0, 0, 0, time.UTC), hasta)
}

func TestRangoMes_MesFueraDeRango(t *testing.T) {
	for _, mes := range []int{0, 13, -1} {
		_, _, err := salida.RangoMes(mes)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "mes %d", mes)
	}
}

func TestPorMes_FiltraPorFechaDeSalida(t *testing.T) {
	anio := time.Now().Year()
	salidas := &fakeSalidaRepo{salidas: []*entity.Salida{
		{ID: "s-1", FechaSalida: time.Date(anio, time.March, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "s-2", FechaSalida: time.Date(anio, time.April, 1, 0, 0, 0, 0, time.UTC)},
	}}
	perfumes := newFakePerfumeRepo()
	tx := &fakeTxRunner{salidas: salidas, perfumes: perfumes}
	uc := salida.NewUseCase(tx, salidas, perfumes, nil, zerolog.Nop())

	out, err := uc.PorMes(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, out, 1, "el límite superior es exclusivo")
	assert.Equal(t, "s-1", out[0].ID)
}
