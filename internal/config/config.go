package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
	Security  SecurityConfig  `mapstructure:"security"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	S3        S3Config        `mapstructure:"s3"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release, test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URI           string `mapstructure:"uri"`
	Name          string `mapstructure:"name"`
	EnsureIndexes bool   `mapstructure:"ensure_indexes"`
}

// CORSConfig keeps the raw comma-separated allow-list as supplied.
type CORSConfig struct {
	Origins string `mapstructure:"origins"`
}

// AllowedOrigins splits the configured list, dropping blanks. An empty list
// means every origin is allowed.
func (c CORSConfig) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.Origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

type SecurityConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// RateLimitConfig limits requests per client IP. RPS <= 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type S3Config struct {
	Enabled         bool          `mapstructure:"enabled"`
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	PresignExpiry   time.Duration `mapstructure:"presign_expiry"`
}

// LoadConfig reads configuration from an optional .env file, an optional
// config.yaml in path, and the environment, in increasing precedence.
func LoadConfig(path string) (Config, error) {
	var config Config

	// Variables already present in the environment win over .env entries.
	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config, err
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Names used by existing deployments.
	_ = v.BindEnv("database.uri", "DATABASE_URI", "MONGO_URL")
	_ = v.BindEnv("database.name", "DATABASE_NAME", "DB_NAME")
	_ = v.BindEnv("cors.origins", "CORS_ORIGINS")
	_ = v.BindEnv("server.mode", "SERVER_MODE", "GIN_MODE")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, err
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, err
	}
	return config, nil
}

// Every key needs a default (even empty) so that Unmarshal sees values that
// only arrive through AutomaticEnv.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8001")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "byklab")
	v.SetDefault("database.ensure_indexes", true)
	v.SetDefault("cors.origins", "*")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("security.bcrypt_cost", 10)
	v.SetDefault("ratelimit.rps", 0)
	v.SetDefault("ratelimit.burst", 20)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.presign_expiry", "15m")
}
