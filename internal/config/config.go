package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Supported token validation backends
const (
	AuthProviderUserCycle = "usercycle"
	AuthProviderKeycloak  = "keycloak"
)

// Config holds all configuration for the service
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Keycloak   KeycloakConfig
	Redis      RedisConfig
	Monitoring MonitoringConfig
	Telemetry  TelemetryConfig
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

type DatabaseConfig struct {
	TimescaleDB PostgresConfig `mapstructure:"timescaledb"`
}

type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	Migrate         bool          `mapstructure:"migrate"`
}

// AuthConfig selects how bearer tokens are verified
type AuthConfig struct {
	Provider     string        `mapstructure:"provider"`
	UserCycleURL string        `mapstructure:"user_cycle_url"`
	TestBypass   bool          `mapstructure:"test_bypass"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type KeycloakConfig struct {
	URL          string `mapstructure:"url"`
	Realm        string `mapstructure:"realm"`
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
}

// RedisConfig configures the token cache; an empty host disables it
type RedisConfig struct {
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	Password      string        `mapstructure:"password"`
	DB            int           `mapstructure:"db"`
	TokenCacheTTL time.Duration `mapstructure:"token_cache_ttl"`
}

type MonitoringConfig struct {
	MetricsPath string `mapstructure:"metrics_path"`
	Namespace   string `mapstructure:"namespace"`
}

type TelemetryConfig struct {
	// Timezone is the IANA zone local calendar days are evaluated in
	Timezone string `mapstructure:"timezone"`
}

// Location resolves the configured timezone
func (c TelemetryConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Flags returns the command line flags understood by Load
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("telemetry", pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (default ./config/config.yaml)")
	fs.Int("port", 0, "HTTP listen port, overrides server.port")
	fs.Bool("migrate", false, "apply database migrations on startup, overrides database.timescaledb.migrate")
	return fs
}

// Load initializes configuration from flags, environment variables and config file.
// fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("W4B")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	configFile := ""
	if fs != nil {
		configFile, _ = fs.GetString("config")
		if f := fs.Lookup("port"); f != nil && f.Changed {
			if err := v.BindPFlag("server.port", f); err != nil {
				return nil, fmt.Errorf("error binding port flag: %w", err)
			}
		}
		if f := fs.Lookup("migrate"); f != nil && f.Changed {
			if err := v.BindPFlag("database.timescaledb.migrate", f); err != nil {
				return nil, fmt.Errorf("error binding migrate flag: %w", err)
			}
		}
	}

	// Load config file if exists
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

// every key gets a default so AutomaticEnv can override it
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.max_body_bytes", 5*1024*1024) // 5MB
	v.SetDefault("server.cors_origins", []string{"*"})

	// Database defaults
	v.SetDefault("database.timescaledb.host", "")
	v.SetDefault("database.timescaledb.port", 5432)
	v.SetDefault("database.timescaledb.user", "postgres")
	v.SetDefault("database.timescaledb.password", "")
	v.SetDefault("database.timescaledb.dbname", "telemetry")
	v.SetDefault("database.timescaledb.sslmode", "disable")
	v.SetDefault("database.timescaledb.max_open_conns", 20)
	v.SetDefault("database.timescaledb.max_idle_conns", 5)
	v.SetDefault("database.timescaledb.conn_max_lifetime", "30m")
	v.SetDefault("database.timescaledb.migrate", true)

	// Auth defaults
	v.SetDefault("auth.provider", AuthProviderUserCycle)
	v.SetDefault("auth.user_cycle_url", "")
	v.SetDefault("auth.test_bypass", false)
	v.SetDefault("auth.timeout", "5s")

	// Keycloak defaults
	v.SetDefault("keycloak.url", "")
	v.SetDefault("keycloak.realm", "")
	v.SetDefault("keycloak.client_id", "")
	v.SetDefault("keycloak.client_secret", "")

	// Redis defaults
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.token_cache_ttl", "5m")

	// Monitoring defaults
	v.SetDefault("monitoring.metrics_path", "/metrics")
	v.SetDefault("monitoring.namespace", "telemetry")

	// Telemetry defaults
	v.SetDefault("telemetry.timezone", "UTC")
}

func validateConfig(config *Config) error {
	if config.Database.TimescaleDB.Host == "" {
		return fmt.Errorf("timescaledb host is required")
	}

	switch config.Auth.Provider {
	case AuthProviderUserCycle:
		if config.Auth.UserCycleURL == "" {
			return fmt.Errorf("auth user_cycle_url is required for provider %s", AuthProviderUserCycle)
		}
	case AuthProviderKeycloak:
		if config.Keycloak.URL == "" || config.Keycloak.Realm == "" {
			return fmt.Errorf("keycloak URL and realm are required for provider %s", AuthProviderKeycloak)
		}
	default:
		return fmt.Errorf("unknown auth provider %q", config.Auth.Provider)
	}

	if _, err := config.Telemetry.Location(); err != nil {
		return fmt.Errorf("invalid telemetry timezone %q: %w", config.Telemetry.Timezone, err)
	}
	return nil
}
