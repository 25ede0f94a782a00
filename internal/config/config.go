package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ResolverMode выбирает бэкенд резолвера: прямой запрос в реестр или
// делегирование внешнему lookup API
type ResolverMode string

const (
	ResolverModeRegistry ResolverMode = "registry"
	ResolverModeHTTP     ResolverMode = "http"
)

// Config содержит все настройки сервиса
type Config struct {
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL       URLPrefix      `env:"BASE_URL"`

	// DatabaseDSN пустой -> in-memory реестр (локальная разработка и тесты)
	DatabaseDSN string `env:"DATABASE_DSN"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret"`

	// Resolver настройки
	ResolverMode    ResolverMode  `env:"RESOLVER_MODE" envDefault:"registry"`
	LookupUpstream  string        `env:"LOOKUP_UPSTREAM"`
	ResolverTimeout time.Duration `env:"RESOLVER_TIMEOUT" envDefault:"3s"`

	// Redis кэш резолвера; пустой адрес отключает кэширование
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisCacheTTL time.Duration `env:"REDIS_CACHE_TTL" envDefault:"5m"`

	// Click recorder
	ClickBufferSize  int `env:"CLICK_BUFFER_SIZE" envDefault:"1024"`
	ClickWorkerCount int `env:"CLICK_WORKER_COUNT" envDefault:"4"`

	// Geolocation service
	GeoBaseURL      string        `env:"GEO_BASE_URL" envDefault:"https://ipapi.co"`
	GeoTimeout      time.Duration `env:"GEO_TIMEOUT" envDefault:"2s"`
	GeoRatePerSec   float64       `env:"GEO_RATE_PER_SEC" envDefault:"10"`
	GeoRateBurst    int           `env:"GEO_RATE_BURST" envDefault:"20"`

	Retry RetryConfig
}

// RetryConfig настройки повторов генерации уникального кода
type RetryConfig struct {
	MaxAttempts int `env:"CODE_MAX_ATTEMPTS" envDefault:"10"`
}

// Load читает конфигурацию из флагов и переменных окружения.
// Переменные окружения имеют приоритет над флагами.
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:       URLPrefix("http://localhost:8080"),
	}

	flag.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flag.Var(&cfg.BaseURL, "b", "base URL for shortened links")
	flag.StringVar(&cfg.DatabaseDSN, "d", "", "PostgreSQL DSN for the link registry")
	flag.StringVar(&cfg.LookupUpstream, "u", "", "upstream lookup API base URL (http resolver mode)")
	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.ResolverMode != ResolverModeRegistry && cfg.ResolverMode != ResolverModeHTTP {
		return nil, fmt.Errorf("unknown resolver mode: %s", cfg.ResolverMode)
	}
	if cfg.ResolverMode == ResolverModeHTTP && cfg.LookupUpstream == "" {
		return nil, fmt.Errorf("http resolver mode requires LOOKUP_UPSTREAM")
	}

	return cfg, nil
}
