package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/emberandoak/storefront-core/pkg/enums"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Shipping ShippingConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(cfg.Redis); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOREFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type StorageConfig struct {
	Backend     string `envconfig:"STOREFRONT_STORAGE_BACKEND" default:"file"`
	FileDir     string `envconfig:"STOREFRONT_STORAGE_FILE_DIR" default:".storefront"`
	SQLitePath  string `envconfig:"STOREFRONT_STORAGE_SQLITE_PATH" default:"storefront.db"`
	CartKey     string `envconfig:"STOREFRONT_STORAGE_CART_KEY" default:"cart"`
	WishlistKey string `envconfig:"STOREFRONT_STORAGE_WISHLIST_KEY" default:"wishlist"`
}

// BackendKind returns the parsed storage backend selector.
func (s StorageConfig) BackendKind() enums.StorageBackend {
	backend, err := enums.ParseStorageBackend(strings.ToLower(strings.TrimSpace(s.Backend)))
	if err != nil {
		return enums.StorageBackendFile
	}
	return backend
}

func (s StorageConfig) validate(redis RedisConfig) error {
	backend, err := enums.ParseStorageBackend(strings.ToLower(strings.TrimSpace(s.Backend)))
	if err != nil {
		return err
	}
	if backend == enums.StorageBackendRedis && redis.URL == "" && redis.Address == "" {
		return fmt.Errorf("%s or STOREFRONT_REDIS_ADDR is required for the redis backend", EnvRedisURL)
	}
	if strings.TrimSpace(s.CartKey) == "" || strings.TrimSpace(s.WishlistKey) == "" {
		return fmt.Errorf("storage record keys must not be empty")
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOREFRONT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type ShippingConfig struct {
	DefaultLine1      string `envconfig:"STOREFRONT_SHIPPING_DEFAULT_LINE1"`
	DefaultCity       string `envconfig:"STOREFRONT_SHIPPING_DEFAULT_CITY"`
	DefaultState      string `envconfig:"STOREFRONT_SHIPPING_DEFAULT_STATE"`
	DefaultPostalCode string `envconfig:"STOREFRONT_SHIPPING_DEFAULT_POSTAL_CODE"`
	DefaultCountry    string `envconfig:"STOREFRONT_SHIPPING_DEFAULT_COUNTRY" default:"US"`
}

// HasDefaultAddress reports whether a full default shipping address is configured.
func (s ShippingConfig) HasDefaultAddress() bool {
	return strings.TrimSpace(s.DefaultLine1) != "" &&
		strings.TrimSpace(s.DefaultCity) != "" &&
		strings.TrimSpace(s.DefaultState) != "" &&
		strings.TrimSpace(s.DefaultPostalCode) != ""
}
