package config

// EnvPrefix is handed to envconfig; every field overrides it with an explicit key.
const EnvPrefix = "ISLANDTRACKER"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	DefaultSQLiteDSN = "file:islandtracker.db?_foreign_keys=on"
)

const (
	EnvAppEnv   = "ISLANDTRACKER_APP_ENV"
	EnvPort     = "ISLANDTRACKER_APP_PORT"
	EnvLogLevel = "ISLANDTRACKER_LOG_LEVEL"

	EnvDBDSN    = "ISLANDTRACKER_DB_DSN"
	EnvDBDriver = "ISLANDTRACKER_DB_DRIVER"
	EnvDBHost   = "ISLANDTRACKER_DB_HOST"
	EnvDBUser   = "ISLANDTRACKER_DB_USER"
	EnvDBName   = "ISLANDTRACKER_DB_NAME"

	EnvRedisURL = "ISLANDTRACKER_REDIS_URL"

	EnvJWTSecret  = "ISLANDTRACKER_JWT_SECRET"
	EnvJWTIssuer  = "ISLANDTRACKER_JWT_ISSUER"
	EnvJWTExpMins = "ISLANDTRACKER_JWT_EXPIRATION_MINUTES"

	EnvCORSOrigins = "ISLANDTRACKER_CORS_ALLOWED_ORIGINS"

	EnvBootstrapAdminEmail    = "ISLANDTRACKER_BOOTSTRAP_ADMIN_EMAIL"
	EnvBootstrapAdminPassword = "ISLANDTRACKER_BOOTSTRAP_ADMIN_PASSWORD"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
