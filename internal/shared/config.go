package shared

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrMissingConnectionString = errors.New("database connection string is required")

// AppConfig general application configurations
type AppConfig struct {
	Environment string          `yaml:"environment"`
	Server      ServerConfig    `yaml:"server"`
	Database    DatabaseConfig  `yaml:"database"`
	Identity    IdentityConfig  `yaml:"identity"`
	Telemetry   TelemetryConfig `yaml:"telemetry"`
	Log         LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

type DatabaseConfig struct {
	ConnectionString string        `yaml:"connectionString"`
	LogQueries       bool          `yaml:"logQueries"`
	MaxOpenConns     int           `yaml:"maxOpenConns"`
	MaxIdleConns     int           `yaml:"maxIdleConns"`
	ConnMaxLifetime  time.Duration `yaml:"connMaxLifetime"`
}

// IdentityConfig selects the login provider. With a ClientID the external
// password grant is used, otherwise tokens are issued locally.
type IdentityConfig struct {
	ClientID  string        `yaml:"clientId"`
	TenantID  string        `yaml:"tenantId"`
	Scopes    []string      `yaml:"scopes"`
	TokenURL  string        `yaml:"tokenUrl"`
	JWTSecret string        `yaml:"jwtSecret"`
	TokenTTL  time.Duration `yaml:"tokenTTL"`
}

func (c IdentityConfig) External() bool {
	return c.ClientID != ""
}

type TelemetryConfig struct {
	ServiceName    string `yaml:"serviceName"`
	ServiceVersion string `yaml:"serviceVersion"`
	MetricsPort    string `yaml:"metricsPort"`
	OTLPEndpoint   string `yaml:"otlpEndpoint"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// GetDefaultConfig returns default configuration
func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		Environment: "development",
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Identity: IdentityConfig{
			TokenTTL: 3 * time.Hour,
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "todoapi",
			ServiceVersion: "1.0.0",
			MetricsPort:    "9091",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig layers defaults, the optional YAML file at CONFIG_PATH and
// environment overrides, then validates the result.
func LoadConfig() (*AppConfig, error) {
	cfg := GetDefaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadYAML(path string, target *AppConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return nil
}

func (c *AppConfig) applyEnv() {
	c.Environment = getEnv("APP_ENV", c.Environment)
	c.Server.Port = getEnv("PORT", c.Server.Port)

	c.Database.ConnectionString = getEnv("DATABASE_URL", c.Database.ConnectionString)
	c.Database.ConnectionString = getEnv("SQLConnectionString", c.Database.ConnectionString)

	c.Identity.ClientID = getEnv("IDENTITY_CLIENT_ID", c.Identity.ClientID)
	c.Identity.TenantID = getEnv("IDENTITY_TENANT_ID", c.Identity.TenantID)
	c.Identity.TokenURL = getEnv("IDENTITY_TOKEN_URL", c.Identity.TokenURL)
	c.Identity.JWTSecret = getEnv("JWT_SECRET", c.Identity.JWTSecret)

	if scopes, ok := os.LookupEnv("IDENTITY_SCOPES"); ok {
		c.Identity.Scopes = splitList(scopes)
	}

	c.Telemetry.MetricsPort = getEnv("METRICS_PORT", c.Telemetry.MetricsPort)
	c.Telemetry.OTLPEndpoint = getEnv("OTLP_ENDPOINT", c.Telemetry.OTLPEndpoint)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
}

func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.Database.ConnectionString) == "" {
		return ErrMissingConnectionString
	}

	if c.Identity.External() && c.Identity.TenantID == "" && c.Identity.TokenURL == "" {
		return errors.New("identity tenant id or token url is required with a client id")
	}

	return nil
}

func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return fallback
}

func splitList(raw string) []string {
	var out []string

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
