// Package cache implementa un cache read-through sobre Redis para lecturas
// calientes (mapeos de cuenta). Un *Cache nil es válido y significa "cache
// deshabilitado": todas las operaciones son passthrough.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "erp:"

// Cache cliente Redis con contadores de aciertos/fallos para el endpoint de
// performance.
type Cache struct {
	rdb    *redis.Client
	hits   atomic.Int64
	misses atomic.Int64
}

// New construye el cache. Addr vacío devuelve nil (deshabilitado).
func New(addr, password string, db int) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// GetJSON carga y decodifica un valor. Devuelve false en miss, clave corrupta
// o cache deshabilitado; el error solo señala fallos de infraestructura.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	raw, err := c.rdb.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		c.misses.Add(1)
		return false, nil
	}
	if err != nil {
		c.misses.Add(1)
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// Valor corrupto: tratar como miss para que el llamador lo reconstruya.
		c.misses.Add(1)
		return false, nil
	}
	c.hits.Add(1)
	return true, nil
}

// SetJSON serializa y guarda un valor con TTL. No-op con cache deshabilitado.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyPrefix+key, raw, ttl).Err()
}

// Invalidate elimina claves por patrón (bajo el prefijo de la app).
func (c *Cache) Invalidate(ctx context.Context, pattern string) error {
	if c == nil {
		return nil
	}
	iter := c.rdb.Scan(ctx, 0, keyPrefix+pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Stats instantánea de contadores para GET /api/performance/cache-stats.
type Stats struct {
	Enabled bool  `json:"enabled"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Keys    int64 `json:"keys"`
}

// Snapshot devuelve las estadísticas actuales. Con cache deshabilitado todos
// los contadores son cero.
func (c *Cache) Snapshot(ctx context.Context) Stats {
	if c == nil {
		return Stats{Enabled: false}
	}
	keys, err := c.rdb.DBSize(ctx).Result()
	if err != nil {
		keys = -1 // Redis inalcanzable; los contadores locales siguen siendo válidos
	}
	return Stats{
		Enabled: true,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Keys:    keys,
	}
}
