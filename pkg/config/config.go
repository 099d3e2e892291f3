package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Session SessionConfig
	Draft   DraftConfig
	Export  ExportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerFile string // vacío = sin /docs
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	BodyLimitMB int // límite del cuerpo (subida de logo incluida)
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BodyLimit límite del cuerpo en bytes.
func (c HTTPConfig) BodyLimit() int {
	return c.BodyLimitMB * 1024 * 1024
}

// SessionConfig firma de los tokens de sesión de borradores.
type SessionConfig struct {
	Secret     string
	Issuer     string
	Expiration int // minutos
}

// DraftConfig vida de los borradores en memoria.
type DraftConfig struct {
	TTLMinutes           int
	SweepIntervalSeconds int
}

// TTL inactividad máxima antes de descartar un borrador.
func (c DraftConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// SweepInterval frecuencia del barrido de borradores.
func (c DraftConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// ExportConfig configuración fija de exportación a PDF (A4 vertical).
type ExportConfig struct {
	FileName       string
	MarginMM       float64
	ImageQuality   float64 // 0..1, calidad JPEG de las imágenes embebidas
	RenderScale    int     // factor de rasterizado del logo
	ViewportWidth  int     // ancho lógico de captura
	ViewportHeight int     // alto lógico de captura
}

// JPEGQuality convierte ImageQuality (0..1) a la escala 1..100 de image/jpeg.
func (c ExportConfig) JPEGQuality() int {
	q := int(c.ImageQuality*100 + 0.5)
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

// a4ShortSideMM ancho de la página A4 vertical.
const a4ShortSideMM = 210.0

// DefaultExport valores de exportación: márgenes de 10 mm, JPEG 0.98, escala 4, viewport 1200×1600.
func DefaultExport() ExportConfig {
	return ExportConfig{
		FileName:       "Invoice.pdf",
		MarginMM:       10,
		ImageQuality:   0.98,
		RenderScale:    4,
		ViewportWidth:  1200,
		ViewportHeight: 1600,
	}
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	exp := DefaultExport()
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "gst-invoice"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			BodyLimitMB: getInt(v, "HTTP_BODY_LIMIT_MB", 5),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", ""),
			Issuer:     getString(v, "SESSION_ISSUER", "gst-invoice"),
			Expiration: getInt(v, "SESSION_EXPIRATION_MINUTES", 240),
		},
		Draft: DraftConfig{
			TTLMinutes:           getInt(v, "DRAFT_TTL_MINUTES", 240),
			SweepIntervalSeconds: getInt(v, "DRAFT_SWEEP_INTERVAL_SECONDS", 60),
		},
		Export: ExportConfig{
			FileName:       getString(v, "EXPORT_FILENAME", exp.FileName),
			MarginMM:       getFloat(v, "EXPORT_MARGIN_MM", exp.MarginMM),
			ImageQuality:   getFloat(v, "EXPORT_IMAGE_QUALITY", exp.ImageQuality),
			RenderScale:    getInt(v, "EXPORT_RENDER_SCALE", exp.RenderScale),
			ViewportWidth:  getInt(v, "EXPORT_VIEWPORT_WIDTH", exp.ViewportWidth),
			ViewportHeight: getInt(v, "EXPORT_VIEWPORT_HEIGHT", exp.ViewportHeight),
		},
	}

	if cfg.Session.Secret == "" {
		if cfg.App.Env != "development" {
			return nil, fmt.Errorf("config: SESSION_SECRET requerido en entorno %s", cfg.App.Env)
		}
		cfg.Session.Secret = "dev-session-secret"
	}
	if cfg.Export.MarginMM <= 0 || cfg.Export.MarginMM >= a4ShortSideMM/2 {
		return nil, fmt.Errorf("config: EXPORT_MARGIN_MM debe estar entre 0 y %v (%v)", a4ShortSideMM/2, cfg.Export.MarginMM)
	}
	if cfg.Export.ImageQuality <= 0 || cfg.Export.ImageQuality > 1 {
		return nil, fmt.Errorf("config: EXPORT_IMAGE_QUALITY debe estar entre 0 y 1 (%v)", cfg.Export.ImageQuality)
	}
	if cfg.Export.RenderScale < 1 || cfg.Export.ViewportWidth <= 0 || cfg.Export.ViewportHeight <= 0 {
		return nil, fmt.Errorf("config: escala y viewport de exportación deben ser positivos")
	}
	return cfg, nil
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}
