package postgres

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mueblesandina/erp-api/pkg/config"
)

// HandleProvider entrega el handle único hacia la base alojada. El pool se
// construye perezosamente en la primera llamada a Get y todas las llamadas
// posteriores devuelven exactamente la misma instancia; sync.Once garantiza
// una sola construcción aunque varios llamadores lleguen a la vez.
//
// La configuración queda fija al construir: schema destino (search_path),
// identificador adjunto a cada llamada (application_name) y codec
// NUMERIC->decimal. El handle no gestiona sesiones de autenticación propias:
// la credencial de servicio viaja en el DSN y nada más.
type HandleProvider struct {
	cfg config.DBConfig

	once sync.Once
	pool *pgxpool.Pool
	err  error

	// build es reemplazable en tests para verificar la propiedad de identidad
	// sin un servidor real.
	build func(ctx context.Context) (*pgxpool.Pool, error)
}

// NewHandleProvider valida la configuración obligatoria y prepara el provider.
// Endpoint o credencial ausentes son un fallo fatal de arranque: no existe un
// handle degradado de respaldo.
func NewHandleProvider(cfg config.DBConfig) (*HandleProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("postgres: endpoint del servicio no configurado")
	}
	if cfg.ServiceKey == "" {
		return nil, fmt.Errorf("postgres: credencial del servicio no configurada")
	}
	p := &HandleProvider{cfg: cfg}
	p.build = p.newPool
	return p, nil
}

// Get devuelve el handle, construyéndolo solo la primera vez.
func (p *HandleProvider) Get(ctx context.Context) (*pgxpool.Pool, error) {
	p.once.Do(func() {
		p.pool, p.err = p.build(ctx)
	})
	return p.pool, p.err
}

// Close cierra el pool si llegó a construirse.
func (p *HandleProvider) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// newPool construye el pool de conexiones con la configuración fija del provider.
func (p *HandleProvider) newPool(ctx context.Context) (*pgxpool.Pool, error) {
	dsn, err := p.cfg.DSN()
	if err != nil {
		return nil, fmt.Errorf("armar DSN: %w", err)
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// Schema destino e identificador de cliente, fijos para toda conexión del pool.
	poolConfig.ConnConfig.RuntimeParams["search_path"] = p.cfg.Schema
	poolConfig.ConnConfig.RuntimeParams["application_name"] = p.cfg.ClientInfo

	// Forzar IPv4 en el dial: Docker suele no tener IPv6 y Supabase puede resolver solo AAAA.
	poolConfig.ConnConfig.DialFunc = dialIPv4

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal (todas las conexiones del pool).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// dialIPv4 intenta conectar por IPv4; si el host no resuelve A records cae al dial normal.
func dialIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ipv4, err := resolveIPv4(host)
	if err != nil {
		return dialer.DialContext(ctx, network, addr)
	}
	return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
}

// resolveIPv4 resuelve un hostname a su dirección IPv4.
func resolveIPv4(host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("es IPv6")
	}
	ips, err := net.LookupIP(host)
	if err != nil {
		return "", err
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String(), nil
		}
	}
	return "", fmt.Errorf("no hay IPv4")
}
