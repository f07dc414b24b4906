package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartflow/smartflow-api/internal/domain/entity"
)

// CrearPerfumeRequest alta de perfume en el catálogo.
type CrearPerfumeRequest struct {
	NamePer        string          `json:"name_per"`
	DescripcionPer string          `json:"descripcion_per"`
	Marca          string          `json:"marca"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	PrecioVentaPer decimal.Decimal `json:"precio_venta_per"`
	StockMinimoPer int64           `json:"stock_minimo_per"`
	StockActual    int64           `json:"stock_actual"`
	UbicacionPer   string          `json:"ubicacion_per"`
	SKU            string          `json:"sku"`
	CategoriaPer   string          `json:"categoria_per"`
	AlmacenID      string          `json:"almacen_id"`
}

// PerfumeResponse representación de un perfume en la API.
type PerfumeResponse struct {
	ID             string          `json:"id"`
	NamePer        string          `json:"name_per"`
	DescripcionPer string          `json:"descripcion_per,omitempty"`
	Marca          string          `json:"marca,omitempty"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	PrecioVentaPer decimal.Decimal `json:"precio_venta_per"`
	StockMinimoPer int64           `json:"stock_minimo_per"`
	StockActual    int64           `json:"stock_actual"`
	UbicacionPer   string          `json:"ubicacion_per"`
	SKU            string          `json:"sku,omitempty"`
	CategoriaPer   string          `json:"categoria_per,omitempty"`
	Estado         string          `json:"estado,omitempty"`
	AlmacenID      string          `json:"almacen_id"`
}

// CrearAlmacenRequest alta de almacén.
type CrearAlmacenRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Codigo    string `json:"codigo"`
}

// AlmacenResponse representación de un almacén en la API.
type AlmacenResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Codigo    string `json:"codigo"`
}

// CrearProveedorRequest alta de proveedor.
type CrearProveedorRequest struct {
	Nombre    string `json:"nombre_proveedor"`
	Contacto  string `json:"contacto"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Correo    string `json:"correo"`
}

// ProveedorResponse representación de un proveedor en la API.
type ProveedorResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre_proveedor"`
	Contacto      string    `json:"contacto,omitempty"`
	Telefono      string    `json:"telefono,omitempty"`
	Direccion     string    `json:"direccion,omitempty"`
	Correo        string    `json:"correo,omitempty"`
	Estado        bool      `json:"estado"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// FromPerfume mapea la entidad a su representación API.
func FromPerfume(p *entity.Perfume) PerfumeResponse {
	return PerfumeResponse{
		ID:             p.ID,
		NamePer:        p.NamePer,
		DescripcionPer: p.DescripcionPer,
		Marca:          p.Marca,
		PrecioUnitario: p.PrecioUnitario,
		PrecioVentaPer: p.PrecioVentaPer,
		StockMinimoPer: p.StockMinimoPer,
		StockActual:    p.StockActual,
		UbicacionPer:   p.UbicacionPer,
		SKU:            p.SKU,
		CategoriaPer:   p.CategoriaPer,
		Estado:         p.Estado,
		AlmacenID:      p.AlmacenID,
	}
}

// FromAlmacen mapea la entidad a su representación API.
func FromAlmacen(a *entity.Almacen) AlmacenResponse {
	return AlmacenResponse{
		ID:        a.ID,
		Nombre:    a.Nombre,
		Direccion: a.Direccion,
		Telefono:  a.Telefono,
		Codigo:    a.Codigo,
	}
}

// FromProveedor mapea la entidad a su representación API.
func FromProveedor(p *entity.Proveedor) ProveedorResponse {
	return ProveedorResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		Contacto:      p.Contacto,
		Telefono:      p.Telefono,
		Direccion:     p.Direccion,
		Correo:        p.Correo,
		Estado:        p.Estado,
		FechaCreacion: p.FechaCreacion,
	}
}
