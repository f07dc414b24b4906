package repository

import (
	"time"

	"github.com/smartflow/smartflow-api/internal/domain/entity"
)

// EntradaInforme fila del informe mensual: entrada con el nombre del perfume resuelto.
type EntradaInforme struct {
	NombrePerfume  string    `json:"nombre_perfume"`
	Cantidad       int64     `json:"cantidad"`
	FechaEntrada   time.Time `json:"fecha_entrada"`
	AlmacenDestino string    `json:"almacen_destino"`
}

// EntradaRepository define el puerto de persistencia para Entrada (DIP).
type EntradaRepository interface {
	Create(entrada *entity.Entrada) error
	GetByNumero(numero string) (*entity.Entrada, error)
	// ExistsPorOrdenCompra indica si ya hay una entrada ligada al folio de orden dado.
	ExistsPorOrdenCompra(folioOrden string) (bool, error)
	// ExistsPorReferenciaTraspaso indica si ya hay una entrada ligada al folio de traspaso dado.
	ExistsPorReferenciaTraspaso(folioTraspaso string) (bool, error)
	SetReferenciaTraspaso(id, folioTraspaso string) error
	ListByUsuario(usuarioID string) ([]*entity.Entrada, error)
	ListInformePorRango(desde, hasta time.Time) ([]*EntradaInforme, error)
}
