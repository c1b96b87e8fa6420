package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
	Bootstrap    BootstrapConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ISLANDTRACKER_APP_ENV" required:"true"`
	Port         string `envconfig:"ISLANDTRACKER_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"ISLANDTRACKER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ISLANDTRACKER_LOG_WARN_STACK" default:"false"`
	LogFormat    string `envconfig:"ISLANDTRACKER_LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// ConsoleLogs reports whether logs should use the human-readable writer.
func (a AppConfig) ConsoleLogs() bool {
	return strings.EqualFold(strings.TrimSpace(a.LogFormat), "console")
}

type DBConfig struct {
	DSN    string `envconfig:"ISLANDTRACKER_DB_DSN"`
	Driver string `envconfig:"ISLANDTRACKER_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ISLANDTRACKER_DB_HOST"`
	LegacyPort     int    `envconfig:"ISLANDTRACKER_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ISLANDTRACKER_DB_USER"`
	LegacyPassword string `envconfig:"ISLANDTRACKER_DB_PASSWORD"`
	LegacyName     string `envconfig:"ISLANDTRACKER_DB_NAME"`
	LegacySSLMode  string `envconfig:"ISLANDTRACKER_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ISLANDTRACKER_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ISLANDTRACKER_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ISLANDTRACKER_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ISLANDTRACKER_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the embedded sqlite driver is selected.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), DBDriverSQLite)
}

// Redis is optional; when neither URL nor address is set, idempotent replay is disabled.
type RedisConfig struct {
	URL          string        `envconfig:"ISLANDTRACKER_REDIS_URL"`
	Address      string        `envconfig:"ISLANDTRACKER_REDIS_ADDR"`
	Password     string        `envconfig:"ISLANDTRACKER_REDIS_PASSWORD"`
	DB           int           `envconfig:"ISLANDTRACKER_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ISLANDTRACKER_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ISLANDTRACKER_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ISLANDTRACKER_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ISLANDTRACKER_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ISLANDTRACKER_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint has been configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"ISLANDTRACKER_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"ISLANDTRACKER_JWT_ISSUER" default:"islandtracker"`
	ExpirationMinutes int    `envconfig:"ISLANDTRACKER_JWT_EXPIRATION_MINUTES" default:"10080"`
}

// TTL returns the absolute lifetime of an issued access token.
func (j JWTConfig) TTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	BcryptCost int `envconfig:"ISLANDTRACKER_BCRYPT_COST" default:"12"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ISLANDTRACKER_CORS_ALLOWED_ORIGINS" default:"*"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ISLANDTRACKER_AUTO_MIGRATE" default:"false"`
	SeedIslands bool `envconfig:"ISLANDTRACKER_SEED_ISLANDS" default:"true"`
}

// BootstrapConfig optionally guarantees an administrator exists at startup.
type BootstrapConfig struct {
	AdminEmail    string `envconfig:"ISLANDTRACKER_BOOTSTRAP_ADMIN_EMAIL"`
	AdminUsername string `envconfig:"ISLANDTRACKER_BOOTSTRAP_ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ISLANDTRACKER_BOOTSTRAP_ADMIN_PASSWORD"`
}

// Enabled reports whether both admin credentials were supplied.
func (b BootstrapConfig) Enabled() bool {
	return strings.TrimSpace(b.AdminEmail) != "" && b.AdminPassword != ""
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		db.DSN = DefaultSQLiteDSN
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
