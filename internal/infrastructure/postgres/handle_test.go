package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mueblesandina/erp-api/pkg/config"
)

func validDBConfig() config.DBConfig {
	return config.DBConfig{
		Endpoint:   "postgresql://postgres@db.proyecto.supabase.co:5432/postgres?sslmode=require",
		ServiceKey: "service-key-de-prueba",
		Schema:     "public",
		ClientInfo: "erp-test/go",
	}
}

func TestNewHandleProvider_ConfigFaltante_Falla(t *testing.T) {
	cfg := validDBConfig()
	cfg.Endpoint = ""
	_, err := NewHandleProvider(cfg)
	assert.Error(t, err, "sin endpoint la construcción debe fallar antes de cualquier petición")

	cfg = validDBConfig()
	cfg.ServiceKey = ""
	_, err = NewHandleProvider(cfg)
	assert.Error(t, err, "sin credencial la construcción debe fallar antes de cualquier petición")
}

func TestGet_DevuelveSiempreElMismoHandle(t *testing.T) {
	p, err := NewHandleProvider(validDBConfig())
	require.NoError(t, err)

	// Pool sin conexión real: la identidad es lo que se verifica, no el wire.
	sentinel := &pgxpool.Pool{}
	builds := 0
	p.build = func(ctx context.Context) (*pgxpool.Pool, error) {
		builds++
		return sentinel, nil
	}

	for i := 0; i < 10; i++ {
		got, err := p.Get(context.Background())
		require.NoError(t, err)
		assert.Same(t, sentinel, got, "cada llamada debe devolver la instancia idéntica")
	}
	assert.Equal(t, 1, builds, "el pool debe construirse exactamente una vez")
}

func TestGet_ConcurrenciaEnPrimerAcceso_ConstruyeUnaVez(t *testing.T) {
	p, err := NewHandleProvider(validDBConfig())
	require.NoError(t, err)

	sentinel := &pgxpool.Pool{}
	builds := 0
	p.build = func(ctx context.Context) (*pgxpool.Pool, error) {
		builds++
		return sentinel, nil
	}

	var wg sync.WaitGroup
	results := make([]*pgxpool.Pool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := p.Get(context.Background())
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, builds)
	for _, got := range results {
		assert.Same(t, sentinel, got)
	}
}

func TestGet_ErrorDeConstruccion_SeMemoiza(t *testing.T) {
	p, err := NewHandleProvider(validDBConfig())
	require.NoError(t, err)

	builds := 0
	p.build = func(ctx context.Context) (*pgxpool.Pool, error) {
		builds++
		return nil, assert.AnError
	}

	_, err1 := p.Get(context.Background())
	_, err2 := p.Get(context.Background())
	assert.Error(t, err1)
	assert.Error(t, err2)
	assert.Equal(t, 1, builds, "no se reintenta la construcción: el fallo es fatal para el proceso")
}

func TestDSN_InyectaCredencialComoPassword(t *testing.T) {
	cfg := validDBConfig()
	dsn, err := cfg.DSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "postgres:service-key-de-prueba@db.proyecto.supabase.co:5432")
	assert.Contains(t, dsn, "sslmode=require")
}
