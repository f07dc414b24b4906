package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartflow/smartflow-api/internal/domain/entity"
)

// CrearOrdenRequest cuerpo para crear una orden de compra manual.
type CrearOrdenRequest struct {
	NOrdenCompra   string          `json:"n_orden_compra"`
	IDPerfume      string          `json:"id_perfume"`
	Cantidad       int64           `json:"cantidad"`
	Proveedor      string          `json:"proveedor"`
	Fecha          *time.Time      `json:"fecha"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	PrecioTotal    decimal.Decimal `json:"precio_total"`
	Almacen        string          `json:"almacen"`
}

// ValidarOrdenRequest cuerpo para validar una orden (crea la entrada asociada).
type ValidarOrdenRequest struct {
	ValidadoPor   string `json:"validado_por"`
	Observaciones string `json:"observaciones"`
}

// OrdenDesdeEntradaRequest cuerpo para crear una orden a partir de una entrada.
type OrdenDesdeEntradaRequest struct {
	NumeroEntrada string `json:"numero_entrada"`
}

// RegistrarEntradaRequest cuerpo para registrar la entrada de una orden.
type RegistrarEntradaRequest struct {
	NOrdenCompra string     `json:"n_orden_compra"`
	FechaEntrada *time.Time `json:"fecha_entrada"`
}

// CrearEntradaManualRequest cuerpo para crear una entrada sin documento de origen.
type CrearEntradaManualRequest struct {
	IDPerfume      string     `json:"id_perfume"`
	Cantidad       int64      `json:"cantidad"`
	Proveedor      string     `json:"proveedor"`
	FechaEntrada   *time.Time `json:"fecha_entrada"`
	Tipo           string     `json:"tipo"`
	AlmacenDestino string     `json:"almacen_destino"`
}

// CrearTraspasoRequest cuerpo para crear un traspaso entre almacenes.
type CrearTraspasoRequest struct {
	NombrePerfume  string `json:"nombre_perfume"`
	Cantidad       int64  `json:"cantidad"`
	AlmacenDestino string `json:"almacen_destino"`
}

// CrearSalidaRequest cuerpo para registrar una salida (venta o merma).
type CrearSalidaRequest struct {
	NombrePerfume string `json:"nombre_perfume"`
	Cantidad      int64  `json:"cantidad"`
	Tipo          string `json:"tipo"`
}

// CrearSalidaManualRequest cuerpo para la salida manual del auditor.
type CrearSalidaManualRequest struct {
	NombrePerfume string     `json:"nombre_perfume"`
	AlmacenSalida string     `json:"almacen_salida"`
	Cantidad      int64      `json:"cantidad"`
	Tipo          string     `json:"tipo"`
	FechaSalida   *time.Time `json:"fecha_salida"`
}

// InfoPerfumeRequest cuerpo para la consulta de ubicación/marca/stock.
type InfoPerfumeRequest struct {
	NombrePerfume string `json:"nombre_perfume"`
}

// OrdenResponse representación de una orden de compra en la API.
type OrdenResponse struct {
	ID             string          `json:"id"`
	NOrdenCompra   string          `json:"n_orden_compra"`
	IDPerfume      string          `json:"id_perfume"`
	Cantidad       int64           `json:"cantidad"`
	Solicitante    string          `json:"usuario_solicitante"`
	Proveedor      string          `json:"proveedor"`
	Fecha          time.Time       `json:"fecha"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	PrecioTotal    decimal.Decimal `json:"precio_total"`
	Almacen        string          `json:"almacen"`
	Estado         string          `json:"estado"`
	Observaciones  string          `json:"observaciones,omitempty"`
}

// EntradaResponse representación de una entrada en la API.
type EntradaResponse struct {
	ID                 string     `json:"id"`
	NumeroEntrada      string     `json:"numero_entrada"`
	IDPerfume          string     `json:"id_perfume"`
	Cantidad           int64      `json:"cantidad"`
	Proveedor          string     `json:"proveedor"`
	FechaEntrada       time.Time  `json:"fecha_entrada"`
	UsuarioRegistro    string     `json:"usuario_registro"`
	OrdenCompra        string     `json:"orden_compra,omitempty"`
	AlmacenDestino     string     `json:"almacen_destino,omitempty"`
	Tipo               string     `json:"tipo"`
	Fecha              time.Time  `json:"fecha"`
	ReferenciaTraspaso string     `json:"referencia_traspaso,omitempty"`
	FechaValidacion    *time.Time `json:"fecha_validacion,omitempty"`
	ValidadoPor        string     `json:"validado_por,omitempty"`
	Observaciones      string     `json:"observaciones_auditor,omitempty"`
}

// TraspasoResponse representación de un traspaso en la API.
type TraspasoResponse struct {
	ID                string    `json:"id"`
	NumeroTraspaso    string    `json:"numero_traspaso"`
	IDPerfume         string    `json:"id_perfume"`
	Cantidad          int64     `json:"cantidad"`
	Proveedor         string    `json:"proveedor"`
	FechaSalida       time.Time `json:"fecha_salida"`
	UsuarioRegistro   string    `json:"usuario_registro"`
	AlmacenSalida     string    `json:"almacen_salida"`
	AlmacenDestino    string    `json:"almacen_destino"`
	EstatusValidacion string    `json:"estatus_validacion"`
}

// SalidaResponse representación de una salida en la API.
type SalidaResponse struct {
	ID              string    `json:"id"`
	NombrePerfume   string    `json:"nombre_perfume"`
	AlmacenSalida   string    `json:"almacen_salida"`
	Cantidad        int64     `json:"cantidad"`
	Tipo            string    `json:"tipo"`
	FechaSalida     time.Time `json:"fecha_salida"`
	UsuarioRegistro string    `json:"usuario_registro"`
}

// InfoPerfumeResponse ubicación, marca y stock actual de un perfume.
type InfoPerfumeResponse struct {
	UbicacionPer string `json:"ubicacion_per"`
	Marca        string `json:"marca"`
	StockActual  int64  `json:"stock_actual"`
}

// FromOrden mapea la entidad a su representación API.
func FromOrden(o *entity.OrdenCompra) OrdenResponse {
	return OrdenResponse{
		ID:             o.ID,
		NOrdenCompra:   o.NOrdenCompra,
		IDPerfume:      o.PerfumeID,
		Cantidad:       o.Cantidad,
		Solicitante:    o.UsuarioSolicitanteID,
		Proveedor:      o.ProveedorID,
		Fecha:          o.Fecha,
		PrecioUnitario: o.PrecioUnitario,
		PrecioTotal:    o.PrecioTotal,
		Almacen:        o.Almacen,
		Estado:         o.Estado,
		Observaciones:  o.Observaciones,
	}
}

// FromEntrada mapea la entidad a su representación API.
func FromEntrada(e *entity.Entrada) EntradaResponse {
	return EntradaResponse{
		ID:                 e.ID,
		NumeroEntrada:      e.NumeroEntrada,
		IDPerfume:          e.PerfumeID,
		Cantidad:           e.Cantidad,
		Proveedor:          e.ProveedorID,
		FechaEntrada:       e.FechaEntrada,
		UsuarioRegistro:    e.UsuarioRegistroID,
		OrdenCompra:        e.OrdenCompra,
		AlmacenDestino:     e.AlmacenDestino.Valor(),
		Tipo:               e.Tipo,
		Fecha:              e.Fecha,
		ReferenciaTraspaso: e.ReferenciaTraspaso,
		FechaValidacion:    e.FechaValidacion,
		ValidadoPor:        e.ValidadoPorID,
		Observaciones:      e.ObservacionesAuditor,
	}
}

// FromTraspaso mapea la entidad a su representación API.
func FromTraspaso(tr *entity.Traspaso) TraspasoResponse {
	return TraspasoResponse{
		ID:                tr.ID,
		NumeroTraspaso:    tr.NumeroTraspaso,
		IDPerfume:         tr.PerfumeID,
		Cantidad:          tr.Cantidad,
		Proveedor:         tr.ProveedorID,
		FechaSalida:       tr.FechaSalida,
		UsuarioRegistro:   tr.UsuarioRegistroID,
		AlmacenSalida:     tr.AlmacenSalida.Valor(),
		AlmacenDestino:    tr.AlmacenDestino.Valor(),
		EstatusValidacion: tr.EstatusValidacion,
	}
}

// FromSalida mapea la entidad a su representación API.
func FromSalida(s *entity.Salida) SalidaResponse {
	return SalidaResponse{
		ID:              s.ID,
		NombrePerfume:   s.NombrePerfume,
		AlmacenSalida:   s.AlmacenSalida,
		Cantidad:        s.Cantidad,
		Tipo:            s.Tipo,
		FechaSalida:     s.FechaSalida,
		UsuarioRegistro: s.UsuarioRegistroID,
	}
}
