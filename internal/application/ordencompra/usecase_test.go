package ordencompra_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartflow/smartflow-api/internal/application/dto"
	"github.com/smartflow/smartflow-api/internal/application/ordencompra"
	"github.com/smartflow/smartflow-api/internal/domain"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
	"github.com/smartflow/smartflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrdenRepo struct {
	porNumero map[string]*entity.OrdenCompra
}

func newFakeOrdenRepo(ordenes ...*entity.OrdenCompra) *fakeOrdenRepo {
	r := &fakeOrdenRepo{porNumero: map[string]*entity.OrdenCompra{}}
	for _, o := range ordenes {
		r.porNumero[o.NOrdenCompra] = o
	}
	return r
}

func (r *fakeOrdenRepo) Create(o *entity.OrdenCompra) error {
	if _, ok := r.porNumero[o.NOrdenCompra]; ok {
		return domain.ErrConflict
	}
	r.porNumero[o.NOrdenCompra] = o
	return nil
}

func (r *fakeOrdenRepo) GetByID(id string) (*entity.OrdenCompra, error) {
	for _, o := range r.porNumero {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrdenRepo) GetByNumero(numero string) (*entity.OrdenCompra, error) {
	return r.porNumero[numero], nil
}

func (r *fakeOrdenRepo) UpdateEstado(id, estado, observaciones string) error {
	for _, o := range r.porNumero {
		if o.ID == id {
			o.Estado = estado
			o.Observaciones = observaciones
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeOrdenRepo) ExistsConParametros(perfumeID string, cantidad int64) (bool, error) {
	for _, o := range r.porNumero {
		if o.PerfumeID == perfumeID && o.Cantidad == cantidad {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOrdenRepo) List(limit, offset int) ([]*entity.OrdenCompra, error) {
	var out []*entity.OrdenCompra
	for _, o := range r.porNumero {
		out = append(out, o)
	}
	return out, nil
}

type fakeEntradaRepo struct {
	porNumero map[string]*entity.Entrada
}

func newFakeEntradaRepo(entradas ...*entity.Entrada) *fakeEntradaRepo {
	r := &fakeEntradaRepo{porNumero: map[string]*entity.Entrada{}}
	for _, e := range entradas {
		r.porNumero[e.NumeroEntrada] = e
	}
	return r
}

func (r *fakeEntradaRepo) Create(e *entity.Entrada) error {
	if _, ok := r.porNumero[e.NumeroEntrada]; ok {
		return domain.ErrConflict
	}
	r.porNumero[e.NumeroEntrada] = e
	return nil
}

func (r *fakeEntradaRepo) GetByNumero(numero string) (*entity.Entrada, error) {
	return r.porNumero[numero], nil
}

func (r *fakeEntradaRepo) ExistsPorOrdenCompra(folioOrden string) (bool, error) {
	for _, e := range r.porNumero {
		if e.OrdenCompra == folioOrden {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEntradaRepo) ExistsPorReferenciaTraspaso(folioTraspaso string) (bool, error) {
	return false, nil
}

func (r *fakeEntradaRepo) SetReferenciaTraspaso(id, folioTraspaso string) error {
	return nil
}

func (r *fakeEntradaRepo) ListByUsuario(usuarioID string) ([]*entity.Entrada, error) {
	return nil, nil
}

func (r *fakeEntradaRepo) ListInformePorRango(desde, hasta time.Time) ([]*repository.EntradaInforme, error) {
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

type fakeTxRunner struct {
	ordenes  repository.OrdenCompraRepository
	entradas repository.EntradaRepository
}

func (r *fakeTxRunner) RunConversion(ctx context.Context, fn func(
	ordenes repository.OrdenCompraRepository,
	entradas repository.EntradaRepository,
	traspasos repository.TraspasoRepository,
) error) error {
	return fn(r.ordenes, r.entradas, nil)
}

func buildUseCase(ordenes *fakeOrdenRepo, entradas *fakeEntradaRepo, counter *fakeCounter) *ordencompra.UseCase {
	tx := &fakeTxRunner{ordenes: ordenes, entradas: entradas}
	return ordencompra.NewUseCase(tx, ordenes, entradas, counter)
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_OrdenQuedaPendiente(t *testing.T) {
	ordenes := newFakeOrdenRepo()
	uc := buildUseCase(ordenes, newFakeEntradaRepo(), newFakeCounter())

	orden, err := uc.Crear(context.Background(), dto.CrearOrdenRequest{
		NOrdenCompra:   "ORD-001",
		IDPerfume:      "perfume-1",
		Cantidad:       12,
		Proveedor:      "prov-1",
		PrecioUnitario: decimal.NewFromInt(200),
		PrecioTotal:    decimal.NewFromInt(2400),
		Almacen:        "ALM001",
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, entity.OrdenPendiente, orden.Estado)
	assert.NotEmpty(t, orden.ID)
	guardada, _ := ordenes.GetByNumero("ORD-001")
	require.NotNil(t, guardada)
}

func TestCrear_CamposObligatorios(t *testing.T) {
	uc := buildUseCase(newFakeOrdenRepo(), newFakeEntradaRepo(), newFakeCounter())

	casos := []dto.CrearOrdenRequest{
		{IDPerfume: "p", Cantidad: 1, Proveedor: "prov"},         // sin folio
		{NOrdenCompra: "ORD-001", Cantidad: 1, Proveedor: "p"},   // sin perfume
		{NOrdenCompra: "ORD-001", IDPerfume: "p", Proveedor: "p"}, // cantidad <= 0
	}
	for _, in := range casos {
		_, err := uc.Crear(context.Background(), in, "user-1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validar
// ──────────────────────────────────────────────────────────────────────────────

func ordenPendiente() *entity.OrdenCompra {
	return &entity.OrdenCompra{
		ID:                   "orden-1",
		NOrdenCompra:         "ORD-010",
		PerfumeID:            "perfume-1",
		Cantidad:             8,
		UsuarioSolicitanteID: "user-1",
		ProveedorID:          "prov-1",
		Almacen:              "ALM002",
		Estado:               entity.OrdenPendiente,
	}
}

func TestValidar_CompletaOrdenYCreaEntrada(t *testing.T) {
	ordenes := newFakeOrdenRepo(ordenPendiente())
	entradas := newFakeEntradaRepo()
	uc := buildUseCase(ordenes, entradas, newFakeCounter())

	orden, entrada, err := uc.Validar(context.Background(), "orden-1", "auditor-1", "revisada sin incidencias")
	require.NoError(t, err)

	assert.Equal(t, entity.OrdenCompletada, orden.Estado)
	assert.Equal(t, "revisada sin incidencias", orden.Observaciones)

	require.NotNil(t, entrada)
	assert.Equal(t, "ENT-001", entrada.NumeroEntrada, "primer valor del contador numero_entrada")
	assert.Equal(t, entity.TipoCompra, entrada.Tipo)
	assert.Equal(t, "ORD-010", entrada.OrdenCompra, "la entrada referencia el folio de la orden")
	assert.Equal(t, "ALM002", entrada.AlmacenDestino.Valor())
	assert.Equal(t, "auditor-1", entrada.ValidadoPorID)
	require.NotNil(t, entrada.FechaValidacion)

	guardada, _ := entradas.GetByNumero("ENT-001")
	require.NotNil(t, guardada, "la entrada debe persistirse")
}

func TestValidar_ObservacionesPorDefecto(t *testing.T) {
	ordenes := newFakeOrdenRepo(ordenPendiente())
	uc := buildUseCase(ordenes, newFakeEntradaRepo(), newFakeCounter())

	orden, _, err := uc.Validar(context.Background(), "orden-1", "auditor-1", "")
	require.NoError(t, err)

	assert.Contains(t, orden.Observaciones, "Validada el ",
		"sin observaciones se genera el texto con fecha")
}

func TestValidar_SegundaVezEsAlreadyValidated(t *testing.T) {
	ordenes := newFakeOrdenRepo(ordenPendiente())
	uc := buildUseCase(ordenes, newFakeEntradaRepo(), newFakeCounter())

	_, _, err := uc.Validar(context.Background(), "orden-1", "auditor-1", "")
	require.NoError(t, err)

	_, _, err = uc.Validar(context.Background(), "orden-1", "auditor-1", "")
	assert.ErrorIs(t, err, domain.ErrAlreadyValidated,
		"la transición pendiente -> Completada es unidireccional")
}

func TestValidar_OrdenInexistente404(t *testing.T) {
	uc := buildUseCase(newFakeOrdenRepo(), newFakeEntradaRepo(), newFakeCounter())

	_, _, err := uc.Validar(context.Background(), "no-existe", "auditor-1", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CrearDesdeEntrada
// ──────────────────────────────────────────────────────────────────────────────

func entradaExistente() *entity.Entrada {
	return &entity.Entrada{
		ID:                "ent-1",
		NumeroEntrada:     "ENT-044",
		PerfumeID:         "perfume-1",
		Cantidad:          6,
		ProveedorID:       "prov-1",
		UsuarioRegistroID: "user-1",
		FechaEntrada:      time.Now(),
		Tipo:              entity.TipoCompra,
	}
}

func TestCrearDesdeEntrada_PrecioFijoYCompletada(t *testing.T) {
	entradas := newFakeEntradaRepo(entradaExistente())
	ordenes := newFakeOrdenRepo()
	uc := buildUseCase(ordenes, entradas, newFakeCounter())

	orden, err := uc.CrearDesdeEntrada(context.Background(), "ENT-044")
	require.NoError(t, err)

	assert.Equal(t, "ORD-001", orden.NOrdenCompra, "folio nuevo del contador orden_compra")
	assert.Equal(t, entity.OrdenCompletada, orden.Estado)
	assert.True(t, orden.PrecioUnitario.Equal(decimal.NewFromInt(350)), "precio unitario fijo")
	assert.True(t, orden.PrecioTotal.Equal(decimal.NewFromInt(2100)), "350 * 6")
	assert.Equal(t, "ALM001", orden.Almacen, "almacén por defecto")
}

func TestCrearDesdeEntrada_DuplicadoHeuristicoEsConflict(t *testing.T) {
	// Orden previa con mismo perfume y misma cantidad: se considera duplicada
	// aunque no haya enlace por identificador.
	previa := &entity.OrdenCompra{ID: "o-1", NOrdenCompra: "ORD-099", PerfumeID: "perfume-1", Cantidad: 6}
	entradas := newFakeEntradaRepo(entradaExistente())
	uc := buildUseCase(newFakeOrdenRepo(previa), entradas, newFakeCounter())

	_, err := uc.CrearDesdeEntrada(context.Background(), "ENT-044")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCrearDesdeEntrada_EntradaInexistente404(t *testing.T) {
	uc := buildUseCase(newFakeOrdenRepo(), newFakeEntradaRepo(), newFakeCounter())

	_, err := uc.CrearDesdeEntrada(context.Background(), "ENT-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByNumero_NoExiste404(t *testing.T) {
	uc := buildUseCase(newFakeOrdenRepo(), newFakeEntradaRepo(), newFakeCounter())

	_, err := uc.GetByNumero(context.Background(), "ORD-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
