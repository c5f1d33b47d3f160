package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	DB      DBConfig
	Session SessionConfig
	Redis   RedisConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig configuración del handle hacia la base de datos alojada (Supabase).
// Endpoint y ServiceKey son obligatorios: sin ellos el proceso no puede servir
// ninguna petición respaldada por datos y el arranque falla.
type DBConfig struct {
	Endpoint   string // SUPABASE_DB_URL: postgresql://user@host:port/dbname?sslmode=require
	ServiceKey string // SUPABASE_SERVICE_KEY: credencial de servicio, se inyecta como password
	Schema     string // search_path fijado al construir el handle
	ClientInfo string // identificador adjunto a cada llamada saliente (application_name)
	// RealtimeEventsPerSecond tope de entrega de eventos de cambio (LISTEN/NOTIFY).
	RealtimeEventsPerSecond int
}

// DSN devuelve el connection string con la credencial de servicio inyectada como password.
// Usa url.UserPassword para manejar correctamente caracteres especiales.
func (c DBConfig) DSN() (string, error) {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, c.ServiceKey)
	return u.String(), nil
}

// SessionConfig configuración del token de sesión (capability token firmado).
type SessionConfig struct {
	Secret     string // obligatorio: firma HS256 del token de sesión
	Issuer     string
	ExpMinutes int // usado por cmd/seed al emitir tokens; la verificación siempre chequea exp
}

// RedisConfig configuración del cache. Addr vacío = cache deshabilitado.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, SUPABASE_DB_URL, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "muebles-andina-erp"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		DB: DBConfig{
			Endpoint:                getString(v, "SUPABASE_DB_URL", ""),
			ServiceKey:              getString(v, "SUPABASE_SERVICE_KEY", ""),
			Schema:                  getString(v, "DB_SCHEMA", "public"),
			ClientInfo:              getString(v, "DB_CLIENT_INFO", "muebles-andina-erp/go"),
			RealtimeEventsPerSecond: getInt(v, "REALTIME_EVENTS_PER_SECOND", 2),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", ""),
			Issuer:     getString(v, "SESSION_ISSUER", "muebles-andina-erp"),
			ExpMinutes: getInt(v, "SESSION_EXP_MINUTES", 480),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
	}

	return cfg, nil
}

// Validate verifica los valores sin los cuales el proceso no puede operar.
// Falla en el arranque, no por petición: no existe un handle de respaldo.
func (c *Config) Validate() error {
	if c.DB.Endpoint == "" {
		return fmt.Errorf("config: SUPABASE_DB_URL es obligatorio")
	}
	if c.DB.ServiceKey == "" {
		return fmt.Errorf("config: SUPABASE_SERVICE_KEY es obligatorio")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("config: SESSION_SECRET es obligatorio")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
