package movimiento

import "context"

// InfoPerfume datos de consulta rápida de un perfume (ubicación, marca, stock).
type InfoPerfume struct {
	UbicacionPer string `json:"ubicacion_per"`
	Marca        string `json:"marca"`
	StockActual  int64  `json:"stock_actual"`
}

// PerfumeInfoCache cachea InfoPerfume por nombre normalizado. Get devuelve
// (nil, nil) en miss; los errores de la caché no deben tumbar la consulta.
type PerfumeInfoCache interface {
	Get(ctx context.Context, nombre string) (*InfoPerfume, error)
	Set(ctx context.Context, nombre string, info *InfoPerfume) error
	Invalidate(ctx context.Context, nombre string) error
}
