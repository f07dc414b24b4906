package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartflow/smartflow-api/internal/application/movimiento"
	"github.com/smartflow/smartflow-api/internal/application/salida"
	"github.com/smartflow/smartflow-api/pkg/config"
)

var _ movimiento.PerfumeInfoCache = (*PerfumeCache)(nil)
var _ salida.CacheInvalidator = (*PerfumeCache)(nil)

// PerfumeCache cachea InfoPerfume en Redis por nombre normalizado, con TTL.
type PerfumeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPerfumeCache conecta a Redis y construye la caché. Devuelve error si el
// ping inicial falla.
func NewPerfumeCache(ctx context.Context, cfg config.RedisConfig) (*PerfumeCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &PerfumeCache{client: client, ttl: time.Duration(cfg.TTLSeconds) * time.Second}, nil
}

func cacheKey(nombre string) string {
	return "perfume:info:" + nombre
}

// Get devuelve la info cacheada o (nil, nil) en miss.
func (c *PerfumeCache) Get(ctx context.Context, nombre string) (*movimiento.InfoPerfume, error) {
	data, err := c.client.Get(ctx, cacheKey(nombre)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get perfume cache: %w", err)
	}
	var info movimiento.InfoPerfume
	if err := json.Unmarshal(data, &info); err != nil {
		// Entrada corrupta: tratarla como miss y dejar que Set la reescriba.
		return nil, nil
	}
	return &info, nil
}

// Set guarda la info con el TTL configurado.
func (c *PerfumeCache) Set(ctx context.Context, nombre string, info *movimiento.InfoPerfume) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal perfume info: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(nombre), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set perfume cache: %w", err)
	}
	return nil
}

// Invalidate elimina la entrada de un perfume (tras un cambio de stock o ubicación).
func (c *PerfumeCache) Invalidate(ctx context.Context, nombre string) error {
	if err := c.client.Del(ctx, cacheKey(nombre)).Err(); err != nil {
		return fmt.Errorf("invalidate perfume cache: %w", err)
	}
	return nil
}

// Close cierra la conexión con Redis.
func (c *PerfumeCache) Close() error {
	return c.client.Close()
}
