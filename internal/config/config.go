package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

var (
	ErrReadConfig    = errors.New("failed to read config")
	ErrInvalidConfig = errors.New("invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Admin     AdminConfig     `toml:"admin"`
	Pricing   PricingConfig   `toml:"pricing"`
	Worker    WorkerConfig    `toml:"worker"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	CacheTTL int    `toml:"cache_ttl"` // секунды
}

// CacheTTLDuration возвращает TTL снимка каталога
func (r RedisConfig) CacheTTLDuration() time.Duration {
	return time.Duration(r.CacheTTL) * time.Second
}

type RateLimitConfig struct {
	Enabled           bool     `toml:"enabled"`
	RequestsPerSecond float64  `toml:"requests_per_second"`
	Burst             int      `toml:"burst"`
	TrustedProxies    []string `toml:"trusted_proxies"` // IP или CIDR; только им верим в X-Forwarded-For
}

type AdminConfig struct {
	UserIDs []int64 `toml:"user_ids"`
}

type PricingConfig struct {
	HourlyRates map[string]int64 `toml:"hourly_rates"`
	Addons      map[string]int64 `toml:"addons"`
}

// RateTable возвращает ставки в доменном виде
func (p PricingConfig) RateTable() domain.RateTable {
	table := make(domain.RateTable, len(p.HourlyRates))
	for category, rate := range p.HourlyRates {
		table[domain.Category(category)] = rate
	}
	return table
}

// AddonPrices возвращает прайс дополнительных позиций в доменном виде
func (p PricingConfig) AddonPrices() domain.AddonPrices {
	prices := make(domain.AddonPrices, len(p.Addons))
	for name, price := range p.Addons {
		prices[name] = price
	}
	return prices
}

type WorkerConfig struct {
	Enabled            bool `toml:"enabled"`
	CompletionInterval int  `toml:"completion_interval"` // секунды
}

// Load загружает конфигурацию из TOML файла
// Переменные окружения (в том числе из .env) перекрывают значения файла
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load(".env")

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DB_PORT=%q", ErrInvalidConfig, v)
		}
		c.Database.Port = port
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.DBName = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "venue-booking"
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.CacheTTL == 0 {
		c.Redis.CacheTTL = 60
	}

	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}

	if len(c.Pricing.HourlyRates) == 0 {
		c.Pricing.HourlyRates = make(map[string]int64)
		for category, rate := range domain.DefaultRateTable() {
			c.Pricing.HourlyRates[string(category)] = rate
		}
	}
	if len(c.Pricing.Addons) == 0 {
		c.Pricing.Addons = make(map[string]int64)
		for name, price := range domain.DefaultAddonPrices() {
			c.Pricing.Addons[name] = price
		}
	}

	if c.Worker.CompletionInterval == 0 {
		c.Worker.CompletionInterval = 300
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}

	for category, rate := range c.Pricing.HourlyRates {
		if !domain.Category(category).IsValid() {
			return fmt.Errorf("%w: pricing.hourly_rates: unknown category %q", ErrInvalidConfig, category)
		}
		if rate <= 0 {
			return fmt.Errorf("%w: pricing.hourly_rates.%s must be positive", ErrInvalidConfig, category)
		}
	}
	for _, category := range domain.Categories {
		if _, ok := c.Pricing.HourlyRates[string(category)]; !ok {
			return fmt.Errorf("%w: pricing.hourly_rates: missing category %q", ErrInvalidConfig, category)
		}
	}
	for name, price := range c.Pricing.Addons {
		if price < 0 {
			return fmt.Errorf("%w: pricing.addons.%s must not be negative", ErrInvalidConfig, name)
		}
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	for _, proxy := range c.RateLimit.TrustedProxies {
		if _, _, err := net.ParseCIDR(proxy); err != nil && net.ParseIP(proxy) == nil {
			return fmt.Errorf("%w: rate_limit.trusted_proxies: %q is neither IP nor CIDR", ErrInvalidConfig, proxy)
		}
	}
	if c.Worker.Enabled && c.Worker.CompletionInterval <= 0 {
		return fmt.Errorf("%w: worker.completion_interval must be positive", ErrInvalidConfig)
	}

	return nil
}

// IsAdmin возвращает true, если пользователь входит в список администраторов
func (a AdminConfig) IsAdmin(userID int64) bool {
	for _, id := range a.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
