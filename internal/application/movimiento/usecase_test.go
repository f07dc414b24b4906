package movimiento_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/application/movimiento"
	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/nombres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTraspasoRepo struct {
	porNumero map[string]*entity.Traspaso
}

func newFakeTraspasoRepo() *fakeTraspasoRepo {
	return &fakeTraspasoRepo{porNumero: map[string]*entity.Traspaso{}}
}

func (r *fakeTraspasoRepo) Create(tr *entity.Traspaso) error {
	if _, ok := r.porNumero[tr.NumeroTraspaso]; ok {
		return domain.ErrConflict
	}
	r.porNumero[tr.NumeroTraspaso] = tr
	return nil
}

func (r *fakeTraspasoRepo) GetByNumero(numero string) (*entity.Traspaso, error) {
	return r.porNumero[numero], nil
}

func (r *fakeTraspasoRepo) List(limit, offset int) ([]*entity.Traspaso, error) {
	var out []*entity.Traspaso
	for _, tr := range r.porNumero {
		out = append(out, tr)
	}
	return out, nil
}

// fakePerfumeRepo indexa por nombre normalizado, igual que la columna
// nombre_normalizado de la tabla real.
type fakePerfumeRepo struct {
	porNombre map[string]*entity.Perfume
	consultas int
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

func (r *fakePerfumeRepo) GetByID(id string) (*entity.Perfume, error) {
	for _, p := range r.porNombre {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePerfumeRepo) GetByNombre(nombre string) (*entity.Perfume, error) {
	r.consultas++
	return r.porNombre[nombre], nil
}

func (r *fakePerfumeRepo) GetByNombreForUpdate(nombre string) (*entity.Perfume, error) {
	return r.GetByNombre(nombre)
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

type fakeAlmacenRepo struct {
	porCodigo map[string]*entity.Almacen
}

func newFakeAlmacenRepo(codigos ...string) *fakeAlmacenRepo {
	r := &fakeAlmacenRepo{porCodigo: map[string]*entity.Almacen{}}
	for _, c := range codigos {
		r.porCodigo[c] = &entity.Almacen{ID: "id-" + c, Codigo: c, Nombre: "Almacén " + c}
	}
	return r
}

func (r *fakeAlmacenRepo) Create(a *entity.Almacen) error {
	r.porCodigo[a.Codigo] = a
	return nil
}

func (r *fakeAlmacenRepo) GetByCodigo(codigo string) (*entity.Almacen, error) {
	return r.porCodigo[codigo], nil
}

func (r *fakeAlmacenRepo) List(limit, offset int) ([]*entity.Almacen, error) {
	return nil, nil
}

type fakeCounter struct {
	seqs map[string]int64
}

func newFakeCounter() *fakeCounter { return &fakeCounter{seqs: map[string]int64{}} }

func (c *fakeCounter) Next(clave string) (int64, error) {
	c.seqs[clave]++
	return c.seqs[clave], nil
}

// fakeCache caché en memoria con contadores de acierto y errores inyectables.
type fakeCache struct {
	datos         map[string]*movimiento.InfoPerfume
	getErr        error
	invalidations []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{datos: map[string]*movimiento.InfoPerfume{}}
}

func (c *fakeCache) Get(ctx context.Context, nombre string) (*movimiento.InfoPerfume, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.datos[nombre], nil
}

func (c *fakeCache) Set(ctx context.Context, nombre string, info *movimiento.InfoPerfume) error {
	c.datos[nombre] = info
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, nombre string) error {
	delete(c.datos, nombre)
	c.invalidations = append(c.invalidations, nombre)
	return nil
}

func perfumeConStock(stock int64) *entity.Perfume {
	return &entity.Perfume{
		ID:           "perfume-1",
		NamePer:      "Aqua Di Gio",
		Marca:        "Armani",
		StockActual:  stock,
		UbicacionPer: "ALM001",
	}
}

func buildUseCase(perfumes *fakePerfumeRepo, almacenes *fakeAlmacenRepo, cache movimiento.PerfumeInfoCache) (*movimiento.UseCase, *fakeTraspasoRepo) {
	traspasos := newFakeTraspasoRepo()
	uc := movimiento.NewUseCase(traspasos, perfumes, almacenes, newFakeCounter(), cache, "INTERNO", zerolog.Nop())
	return uc, traspasos
}

// ──────────────────────────────────────────────────────────────────────────────
// CrearTraspaso
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearTraspaso_HastaMitadDelStock(t *testing.T) {
	perfumes := newFakePerfumeRepo(perfumeConStock(100))
	uc, traspasos := buildUseCase(perfumes, newFakeAlmacenRepo("ALM001", "ALM002"), nil)

	tr, err := uc.CrearTraspaso(context.Background(), dto.CrearTraspasoRequest{
		NombrePerfume:  "Aqua Di Gio",
		Cantidad:       50,
		AlmacenDestino: "ALM002",
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "TRAS-001", tr.NumeroTraspaso)
	assert.Equal(t, "ALM001", tr.AlmacenSalida.Valor(), "origen = almacén hogar del perfume")
	assert.Equal(t, "ALM002", tr.AlmacenDestino.Valor())
	assert.Equal(t, entity.TraspasoPendiente, tr.EstatusValidacion)
	assert.Equal(t, "INTERNO", tr.ProveedorID)

	guardado, _ := traspasos.GetByNumero("TRAS-001")
	require.NotNil(t, guardado)

	// El stock no se debita al crear el traspaso.
	p, _ := perfumes.GetByID("perfume-1")
	assert.Equal(t, int64(100), p.StockActual)
}

func TestCrearTraspaso_SuperaLimiteDel50(t *testing.T) {
	perfumes := newFakePerfumeRepo(perfumeConStock(100))
	uc, _ := buildUseCase(perfumes, newFakeAlmacenRepo("ALM001", "ALM002"), nil)

	_, err := uc.CrearTraspaso(context.Background(), dto.CrearTraspasoRequest{
		NombrePerfume:  "Aqua Di Gio",
		Cantidad:       51,
		AlmacenDestino: "ALM002",
	}, "user-1")
	require.Error(t, err)

	var limErr *domain.LimiteTraspasoError
	require.True(t, errors.As(err, &limErr))
	assert.Equal(t, int64(50), limErr.Limite)
}

func TestCrearTraspaso_CantidadSuperaStock(t *testing.T) {
	perfumes := newFakePerfumeRepo(perfumeConStock(10))
	uc, _ := buildUseCase(perfumes, newFakeAlmacenRepo("ALM001", "ALM002"), nil)

	_, err := uc.CrearTraspaso(context.Background(), dto.CrearTraspasoRequest{
		NombrePerfume:  "Aqua Di Gio",
		Cantidad:       11,
		AlmacenDestino: "ALM002",
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCrearTraspaso_PerfumeSinUbicacion(t *testing.T) {
	p := perfumeConStock(100)
	p.UbicacionPer = ""
	uc, _ := buildUseCase(newFakePerfumeRepo(p), newFakeAlmacenRepo("ALM001", "ALM002"), nil)

	_, err := uc.CrearTraspaso(context.Background(), dto.CrearTraspasoRequest{
		NombrePerfume:  "Aqua Di Gio",
		Cantidad:       10,
		AlmacenDestino: "ALM002",
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrSinUbicacion)
}

func TestCrearTraspaso_OrigenIgualDestino(t *testing.T) {
	uc, _ := buildUseCase(newFakePerfumeRepo(perfumeConStock(100)), newFakeAlmacenRepo("ALM001"), nil)

	_, err := uc.CrearTraspaso(context.Background(), dto.CrearTraspasoRequest{
		NombrePerfume:  "Aqua Di Gio",
		Cantidad:       10,
		AlmacenDestino: "ALM001",
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidRoute)
}

func TestCrearTraspaso_DestinoInexistente(t *testing.T) {
	uc, _ := buildUseCase(newFakePerfumeRepo(perfumeConStock(100)), newFakeAlmacenRepo("ALM001"), nil)

	_, err := uc.CrearTraspaso(context.Background(), dto.CrearTraspasoRequest{
		NombrePerfume:  "Aqua Di Gio",
		Cantidad:       10,
		AlmacenDestino: "ALM009",
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrearTraspaso_NombreInsensibleAMayusculasYAcentos(t *testing.T) {
	uc, _ := buildUseCase(newFakePerfumeRepo(perfumeConStock(100)), newFakeAlmacenRepo("ALM001", "ALM002"), nil)

	tr, err := uc.CrearTraspaso(context.Background(), dto.CrearTraspasoRequest{
		NombrePerfume:  "  AQUA DI GIO  ",
		Cantidad:       10,
		AlmacenDestino: "ALM002",
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "perfume-1", tr.PerfumeID)
}

func TestCrearTraspaso_InvalidaCache(t *testing.T) {
	cache := newFakeCache()
	uc, _ := buildUseCase(newFakePerfumeRepo(perfumeConStock(100)), newFakeAlmacenRepo("ALM001", "ALM002"), cache)

	_, err := uc.CrearTraspaso(context.Background(), dto.CrearTraspasoRequest{
		NombrePerfume:  "Aqua Di Gio",
		Cantidad:       10,
		AlmacenDestino: "ALM002",
	}, "user-1")
	require.NoError(t, err)

	assert.Contains(t, cache.invalidations, nombres.Normalizar("Aqua Di Gio"))
}

// ──────────────────────────────────────────────────────────────────────────────
// InfoPerfume
// ──────────────────────────────────────────────────────────────────────────────

func TestInfoPerfume_MissPueblaLaCache(t *testing.T) {
	cache := newFakeCache()
	perfumes := newFakePerfumeRepo(perfumeConStock(40))
	uc, _ := buildUseCase(perfumes, newFakeAlmacenRepo(), cache)

	info, err := uc.InfoPerfume(context.Background(), "Aqua Di Gio")
	require.NoError(t, err)

	assert.Equal(t, "ALM001", info.UbicacionPer)
	assert.Equal(t, "Armani", info.Marca)
	assert.Equal(t, int64(40), info.StockActual)

	cacheado := cache.datos[nombres.Normalizar("Aqua Di Gio")]
	require.NotNil(t, cacheado, "el miss debe poblar la caché")
	assert.Equal(t, info, cacheado)
}

func TestInfoPerfume_HitEvitaElRepositorio(t *testing.T) {
	cache := newFakeCache()
	clave := nombres.Normalizar("Aqua Di Gio")
	cache.datos[clave] = &movimiento.InfoPerfume{UbicacionPer: "ALM003", Marca: "Armani", StockActual: 7}

	perfumes := newFakePerfumeRepo(perfumeConStock(40))
	uc, _ := buildUseCase(perfumes, newFakeAlmacenRepo(), cache)

	info, err := uc.InfoPerfume(context.Background(), "Aqua Di Gio")
	require.NoError(t, err)

	assert.Equal(t, "ALM003", info.UbicacionPer, "el hit responde desde la caché")
	assert.Equal(t, 0, perfumes.consultas, "con hit no se consulta el repositorio")
}

func TestInfoPerfume_ErrorDeCacheNoTumbaLaConsulta(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("redis: connection refused")
	perfumes := newFakePerfumeRepo(perfumeConStock(40))
	uc, _ := buildUseCase(perfumes, newFakeAlmacenRepo(), cache)

	info, err := uc.InfoPerfume(context.Background(), "Aqua Di Gio")
	require.NoError(t, err, "la caída de la caché no debe propagar error")
	assert.Equal(t, int64(40), info.StockActual)
}

func TestInfoPerfume_SinCacheConsultaDirecta(t *testing.T) {
	perfumes := newFakePerfumeRepo(perfumeConStock(40))
	uc, _ := buildUseCase(perfumes, newFakeAlmacenRepo(), nil)

	info, err := uc.InfoPerfume(context.Background(), "Aqua Di Gio")
	require.NoError(t, err)
	assert.Equal(t, "ALM001", info.UbicacionPer)
}

func TestInfoPerfume_NoExiste404(t *testing.T) {
	uc, _ := buildUseCase(newFakePerfumeRepo(), newFakeAlmacenRepo(), nil)

	_, err := uc.InfoPerfume(context.Background(), "Inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
