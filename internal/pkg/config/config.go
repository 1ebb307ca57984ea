package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (sweep cadence, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Sweep  SweepConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// SweepConfig controls the auto-completion sweep for approved events whose
// end instant has passed.
type SweepConfig struct {
	Interval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`
	Enabled  bool          `envconfig:"SWEEP_ENABLED" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Sweep: SweepConfig{
			Interval: time.Minute,
			Enabled:  false,
		},
	}
}
