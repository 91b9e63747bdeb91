package config

const (
	EnvPrefix = "STOREFRONT"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv         = "STOREFRONT_APP_ENV"
	EnvAppPort        = "STOREFRONT_APP_PORT"
	EnvStorageBackend = "STOREFRONT_STORAGE_BACKEND"
	EnvRedisURL       = "STOREFRONT_REDIS_URL"
)
